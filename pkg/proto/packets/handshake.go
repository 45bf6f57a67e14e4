// Package packets implements the concrete wire packets required by
// protocol version 47, with positional field encode/decode matching the
// order fields appear on the wire.
package packets

import (
	"github.com/ry-diffusion/gyra-go/pkg/codec"
	"github.com/ry-diffusion/gyra-go/pkg/proto"
)

// Next-state values carried by Handshake.
const (
	NextStateStatus int32 = 1
	NextStateLogin  int32 = 2
)

const HandshakeID int32 = 0x00

// Handshake is the first packet of every connection: ToServer, Handshake
// phase. It carries the protocol version and requests the next phase.
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       int32
}

func (p *Handshake) Encode(w *codec.Writer) {
	w.VarInt(p.ProtocolVersion)
	w.String(p.ServerAddress)
	w.Uint16(p.ServerPort)
	w.VarInt(p.NextState)
}

func (p *Handshake) Decode(r *codec.Reader) error {
	var err error
	if p.ProtocolVersion, err = r.VarInt(); err != nil {
		return &proto.CantParseFieldError{Field: "ProtocolVersion", Cause: err}
	}
	if p.ServerAddress, err = r.String(); err != nil {
		return &proto.CantParseFieldError{Field: "ServerAddress", Cause: err}
	}
	if p.ServerPort, err = r.Uint16(); err != nil {
		return &proto.CantParseFieldError{Field: "ServerPort", Cause: err}
	}
	if p.NextState, err = r.VarInt(); err != nil {
		return &proto.CantParseFieldError{Field: "NextState", Cause: err}
	}
	return nil
}
