package packets

import (
	"github.com/ry-diffusion/gyra-go/pkg/codec"
	"github.com/ry-diffusion/gyra-go/pkg/proto"
)

const (
	LoginStartID      int32 = 0x00
	LoginDisconnectID int32 = 0x00
	LoginSuccessID    int32 = 0x02
	SetCompressionID  int32 = 0x03
)

// LoginStart is ToServer, Login phase: the player's chosen username.
type LoginStart struct {
	Name string
}

func (p *LoginStart) Encode(w *codec.Writer) { w.String(p.Name) }

func (p *LoginStart) Decode(r *codec.Reader) error {
	var err error
	if p.Name, err = r.String(); err != nil {
		return &proto.CantParseFieldError{Field: "Name", Cause: err}
	}
	return nil
}

// LoginDisconnect is ToClient, Login phase: shares id 0x00 with LoginStart
// but is only ever looked up under the ToClient direction.
type LoginDisconnect struct {
	Reason string
}

func (p *LoginDisconnect) Encode(w *codec.Writer) { w.String(p.Reason) }

func (p *LoginDisconnect) Decode(r *codec.Reader) error {
	var err error
	if p.Reason, err = r.String(); err != nil {
		return &proto.CantParseFieldError{Field: "Reason", Cause: err}
	}
	return nil
}

// LoginSuccess is ToClient, Login phase: transitions the connection to Play.
type LoginSuccess struct {
	UUID     string
	Username string
}

func (p *LoginSuccess) Encode(w *codec.Writer) {
	w.String(p.UUID)
	w.String(p.Username)
}

func (p *LoginSuccess) Decode(r *codec.Reader) error {
	var err error
	if p.UUID, err = r.String(); err != nil {
		return &proto.CantParseFieldError{Field: "UUID", Cause: err}
	}
	if p.Username, err = r.String(); err != nil {
		return &proto.CantParseFieldError{Field: "Username", Cause: err}
	}
	return nil
}

// SetCompression is ToClient, Login phase (and registered again for Play,
// where a server may re-announce it): announces the compression
// threshold to apply to every subsequent frame, in both directions.
type SetCompression struct {
	Threshold int32
}

func (p *SetCompression) Encode(w *codec.Writer) { w.VarInt(p.Threshold) }

func (p *SetCompression) Decode(r *codec.Reader) error {
	var err error
	if p.Threshold, err = r.VarInt(); err != nil {
		return &proto.CantParseFieldError{Field: "Threshold", Cause: err}
	}
	return nil
}
