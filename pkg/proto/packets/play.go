package packets

import (
	"github.com/ry-diffusion/gyra-go/pkg/codec"
	"github.com/ry-diffusion/gyra-go/pkg/proto"
)

const (
	PlayKeepAliveID             int32 = 0x00
	PlayJoinGameID              int32 = 0x01
	PlayChatMessageID           int32 = 0x02
	PlaySendChatMessageID       int32 = 0x01
	PlayPlayerPositionID        int32 = 0x04
	PlayPlayerLookID            int32 = 0x05
	PlayPlayerPositionAndLookID int32 = 0x08
	PlayEntityID                int32 = 0x14
	PlayEntityRelativeMoveID    int32 = 0x15
	PlayChunkDataID             int32 = 0x21
	PlayMapChunkBulkID          int32 = 0x26
	PlayDisconnectID            int32 = 0x40
)

// KeepAlive is sent ToClient with an id the client must echo back
// ToServer verbatim in the same tick.
type KeepAlive struct {
	ID int32
}

func (p *KeepAlive) Encode(w *codec.Writer) { w.VarInt(p.ID) }

func (p *KeepAlive) Decode(r *codec.Reader) error {
	var err error
	if p.ID, err = r.VarInt(); err != nil {
		return &proto.CantParseFieldError{Field: "ID", Cause: err}
	}
	return nil
}

// JoinGame is ToClient, Play: triggers the GameReady domain event.
type JoinGame struct {
	EntityID         int32
	Gamemode         byte
	Dimension        int8
	Difficulty       byte
	MaxPlayers       byte
	LevelType        string
	ReducedDebugInfo bool
}

func (p *JoinGame) Encode(w *codec.Writer) {
	w.Int32(p.EntityID)
	w.Byte(p.Gamemode)
	w.Int8(p.Dimension)
	w.Byte(p.Difficulty)
	w.Byte(p.MaxPlayers)
	w.String(p.LevelType)
	w.Bool(p.ReducedDebugInfo)
}

func (p *JoinGame) Decode(r *codec.Reader) error {
	var err error
	if p.EntityID, err = r.Int32(); err != nil {
		return &proto.CantParseFieldError{Field: "EntityID", Cause: err}
	}
	if p.Gamemode, err = r.Byte(); err != nil {
		return &proto.CantParseFieldError{Field: "Gamemode", Cause: err}
	}
	if p.Dimension, err = r.Int8(); err != nil {
		return &proto.CantParseFieldError{Field: "Dimension", Cause: err}
	}
	if p.Difficulty, err = r.Byte(); err != nil {
		return &proto.CantParseFieldError{Field: "Difficulty", Cause: err}
	}
	if p.MaxPlayers, err = r.Byte(); err != nil {
		return &proto.CantParseFieldError{Field: "MaxPlayers", Cause: err}
	}
	if p.LevelType, err = r.String(); err != nil {
		return &proto.CantParseFieldError{Field: "LevelType", Cause: err}
	}
	if p.ReducedDebugInfo, err = r.Bool(); err != nil {
		return &proto.CantParseFieldError{Field: "ReducedDebugInfo", Cause: err}
	}
	return nil
}

// ChatMessage carries a raw JSON ChatComponent (see pkg/chat) plus its
// placement (0 = chat box, 1 = system message, 2 = action bar).
type ChatMessage struct {
	Content  string
	Position int8
}

func (p *ChatMessage) Encode(w *codec.Writer) {
	w.String(p.Content)
	w.Int8(p.Position)
}

func (p *ChatMessage) Decode(r *codec.Reader) error {
	var err error
	if p.Content, err = r.String(); err != nil {
		return &proto.CantParseFieldError{Field: "Content", Cause: err}
	}
	if p.Position, err = r.Int8(); err != nil {
		return &proto.CantParseFieldError{Field: "Position", Cause: err}
	}
	return nil
}

// SendChatMessage is ToServer, Play: the client's chat submission.
type SendChatMessage struct {
	Message string
}

func (p *SendChatMessage) Encode(w *codec.Writer) { w.String(p.Message) }

func (p *SendChatMessage) Decode(r *codec.Reader) error {
	var err error
	if p.Message, err = r.String(); err != nil {
		return &proto.CantParseFieldError{Field: "Message", Cause: err}
	}
	return nil
}

// PlayerPosition is ToServer, Play: a movement update with no look change.
type PlayerPosition struct {
	X, Y, Z  float64
	OnGround bool
}

func (p *PlayerPosition) Encode(w *codec.Writer) {
	w.Float64(p.X)
	w.Float64(p.Y)
	w.Float64(p.Z)
	w.Bool(p.OnGround)
}

func (p *PlayerPosition) Decode(r *codec.Reader) error {
	var err error
	if p.X, err = r.Float64(); err != nil {
		return &proto.CantParseFieldError{Field: "X", Cause: err}
	}
	if p.Y, err = r.Float64(); err != nil {
		return &proto.CantParseFieldError{Field: "Y", Cause: err}
	}
	if p.Z, err = r.Float64(); err != nil {
		return &proto.CantParseFieldError{Field: "Z", Cause: err}
	}
	if p.OnGround, err = r.Bool(); err != nil {
		return &proto.CantParseFieldError{Field: "OnGround", Cause: err}
	}
	return nil
}

// PlayerLook is ToServer, Play: a look-direction update with no position
// change.
type PlayerLook struct {
	Yaw, Pitch float32
	OnGround   bool
}

func (p *PlayerLook) Encode(w *codec.Writer) {
	w.Float32(p.Yaw)
	w.Float32(p.Pitch)
	w.Bool(p.OnGround)
}

func (p *PlayerLook) Decode(r *codec.Reader) error {
	var err error
	if p.Yaw, err = r.Float32(); err != nil {
		return &proto.CantParseFieldError{Field: "Yaw", Cause: err}
	}
	if p.Pitch, err = r.Float32(); err != nil {
		return &proto.CantParseFieldError{Field: "Pitch", Cause: err}
	}
	if p.OnGround, err = r.Bool(); err != nil {
		return &proto.CantParseFieldError{Field: "OnGround", Cause: err}
	}
	return nil
}

// PlayerPositionAndLook is ToClient, Play: the authoritative server
// position the client snaps to on teleport (see §4.5).
type PlayerPositionAndLook struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	Flags      byte
}

func (p *PlayerPositionAndLook) Encode(w *codec.Writer) {
	w.Float64(p.X)
	w.Float64(p.Y)
	w.Float64(p.Z)
	w.Float32(p.Yaw)
	w.Float32(p.Pitch)
	w.Byte(p.Flags)
}

func (p *PlayerPositionAndLook) Decode(r *codec.Reader) error {
	var err error
	if p.X, err = r.Float64(); err != nil {
		return &proto.CantParseFieldError{Field: "X", Cause: err}
	}
	if p.Y, err = r.Float64(); err != nil {
		return &proto.CantParseFieldError{Field: "Y", Cause: err}
	}
	if p.Z, err = r.Float64(); err != nil {
		return &proto.CantParseFieldError{Field: "Z", Cause: err}
	}
	if p.Yaw, err = r.Float32(); err != nil {
		return &proto.CantParseFieldError{Field: "Yaw", Cause: err}
	}
	if p.Pitch, err = r.Float32(); err != nil {
		return &proto.CantParseFieldError{Field: "Pitch", Cause: err}
	}
	if p.Flags, err = r.Byte(); err != nil {
		return &proto.CantParseFieldError{Field: "Flags", Cause: err}
	}
	return nil
}

// Entity is ToClient, Play: spawns/refreshes the base state the entity
// table needs before EntityRelativeMove deltas are meaningful (see
// SPEC_FULL.md §4.10).
type Entity struct {
	EntityID int32
}

func (p *Entity) Encode(w *codec.Writer) { w.VarInt(p.EntityID) }

func (p *Entity) Decode(r *codec.Reader) error {
	var err error
	if p.EntityID, err = r.VarInt(); err != nil {
		return &proto.CantParseFieldError{Field: "EntityID", Cause: err}
	}
	return nil
}

// EntityRelativeMove is ToClient, Play: a fixed-point position delta,
// packed as 1/32 of a block per unit times 128 (vanilla 1.8 scaling).
type EntityRelativeMove struct {
	EntityID   int32
	DX, DY, DZ int8
	OnGround   bool
}

func (p *EntityRelativeMove) Encode(w *codec.Writer) {
	w.VarInt(p.EntityID)
	w.Int8(p.DX)
	w.Int8(p.DY)
	w.Int8(p.DZ)
	w.Bool(p.OnGround)
}

func (p *EntityRelativeMove) Decode(r *codec.Reader) error {
	var err error
	if p.EntityID, err = r.VarInt(); err != nil {
		return &proto.CantParseFieldError{Field: "EntityID", Cause: err}
	}
	if p.DX, err = r.Int8(); err != nil {
		return &proto.CantParseFieldError{Field: "DX", Cause: err}
	}
	if p.DY, err = r.Int8(); err != nil {
		return &proto.CantParseFieldError{Field: "DY", Cause: err}
	}
	if p.DZ, err = r.Int8(); err != nil {
		return &proto.CantParseFieldError{Field: "DZ", Cause: err}
	}
	if p.OnGround, err = r.Bool(); err != nil {
		return &proto.CantParseFieldError{Field: "OnGround", Cause: err}
	}
	return nil
}

// Disconnect is ToClient, Play: a normal shutdown, not an error.
type Disconnect struct {
	Reason string
}

func (p *Disconnect) Encode(w *codec.Writer) { w.String(p.Reason) }

func (p *Disconnect) Decode(r *codec.Reader) error {
	var err error
	if p.Reason, err = r.String(); err != nil {
		return &proto.CantParseFieldError{Field: "Reason", Cause: err}
	}
	return nil
}
