package packets

import (
	"github.com/ry-diffusion/gyra-go/pkg/codec"
	"github.com/ry-diffusion/gyra-go/pkg/proto"
)

const (
	StatusRequestID  int32 = 0x00
	StatusResponseID int32 = 0x00
	StatusPingID     int32 = 0x01
)

// StatusRequest is ToServer, Status phase: an empty body requesting the
// server description JSON.
type StatusRequest struct{}

func (p *StatusRequest) Encode(w *codec.Writer) {}
func (p *StatusRequest) Decode(r *codec.Reader) error { return nil }

// StatusResponse is ToClient, Status phase: the server-list description.
type StatusResponse struct {
	JSON string
}

func (p *StatusResponse) Encode(w *codec.Writer) { w.String(p.JSON) }

func (p *StatusResponse) Decode(r *codec.Reader) error {
	var err error
	if p.JSON, err = r.String(); err != nil {
		return &proto.CantParseFieldError{Field: "JSON", Cause: err}
	}
	return nil
}

// StatusPing carries an opaque payload both ways (ToServer "Ping",
// ToClient "Pong" in vanilla terms, same wire shape either direction) for
// round-trip latency measurement during the lobby probe.
type StatusPing struct {
	Payload int64
}

func (p *StatusPing) Encode(w *codec.Writer) { w.Int64(p.Payload) }

func (p *StatusPing) Decode(r *codec.Reader) error {
	var err error
	if p.Payload, err = r.Int64(); err != nil {
		return &proto.CantParseFieldError{Field: "Payload", Cause: err}
	}
	return nil
}
