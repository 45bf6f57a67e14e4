package packets

import (
	"github.com/ry-diffusion/gyra-go/pkg/codec"
	"github.com/ry-diffusion/gyra-go/pkg/proto"
)

// ChunkData is ToClient, Play. It carries a single column's section
// payload; decoding the payload into a ChunkColumn is pkg/chunk's job (the
// packet itself only knows the wire framing, not the section grammar).
type ChunkData struct {
	X, Z      int32
	FullChunk bool
	BitMask   uint16
	Payload   []byte
}

func (p *ChunkData) Encode(w *codec.Writer) {
	panic("packets: ChunkData is server-to-client only; client-side encode is refused")
}

func (p *ChunkData) Decode(r *codec.Reader) error {
	var err error
	if p.X, err = r.Int32(); err != nil {
		return &proto.CantParseFieldError{Field: "X", Cause: err}
	}
	if p.Z, err = r.Int32(); err != nil {
		return &proto.CantParseFieldError{Field: "Z", Cause: err}
	}
	if p.FullChunk, err = r.Bool(); err != nil {
		return &proto.CantParseFieldError{Field: "FullChunk", Cause: err}
	}
	if p.BitMask, err = r.Uint16(); err != nil {
		return &proto.CantParseFieldError{Field: "BitMask", Cause: err}
	}
	payloadLen, err := r.VarInt()
	if err != nil {
		return &proto.CantParseFieldError{Field: "PayloadLen", Cause: err}
	}
	if p.Payload, err = r.Bytes(int(payloadLen)); err != nil {
		return &proto.CantParseFieldError{Field: "Payload", Cause: err}
	}
	return nil
}

// BulkColumnMeta is one entry of MapChunkBulk's column-metadata array.
type BulkColumnMeta struct {
	X, Z    int32
	BitMask uint16
}

// MapChunkBulk is ToClient, Play: several columns sent in one packet,
// server-to-client only (client-side encode refuses, matching spec.md
// §4.6's "client-side encode is not required and must refuse").
type MapChunkBulk struct {
	IsOverworld bool
	Columns     []BulkColumnMeta
	// Payload holds every section+biome byte that follows the metadata
	// array, in column order; pkg/chunk walks it using the bitmasks above.
	Payload []byte
}

func (p *MapChunkBulk) Encode(w *codec.Writer) {
	panic("packets: MapChunkBulk is server-to-client only; client-side encode is refused")
}

func (p *MapChunkBulk) Decode(r *codec.Reader) error {
	var err error
	if p.IsOverworld, err = r.Bool(); err != nil {
		return &proto.CantParseFieldError{Field: "IsOverworld", Cause: err}
	}
	count, err := r.VarInt()
	if err != nil {
		return &proto.CantParseFieldError{Field: "ColumnCount", Cause: err}
	}
	p.Columns = make([]BulkColumnMeta, count)
	for i := range p.Columns {
		if p.Columns[i].X, err = r.Int32(); err != nil {
			return &proto.CantParseFieldError{Field: "Columns[].X", Cause: err}
		}
		if p.Columns[i].Z, err = r.Int32(); err != nil {
			return &proto.CantParseFieldError{Field: "Columns[].Z", Cause: err}
		}
		if p.Columns[i].BitMask, err = r.Uint16(); err != nil {
			return &proto.CantParseFieldError{Field: "Columns[].BitMask", Cause: err}
		}
	}
	if p.Payload, err = r.ReadAll(); err != nil {
		return &proto.CantParseFieldError{Field: "Payload", Cause: err}
	}
	return nil
}
