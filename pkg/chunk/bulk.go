package chunk

import (
	"bytes"

	"github.com/sirupsen/logrus"

	"github.com/ry-diffusion/gyra-go/pkg/codec"
	"github.com/ry-diffusion/gyra-go/pkg/proto/packets"
)

// DecodeChunkData turns a ChunkData packet's payload into a single Column.
// The loop bound is 16, not 15 — bit 15 is a valid section position.
func DecodeChunkData(p *packets.ChunkData, log *logrus.Entry) (*Column, error) {
	col := &Column{
		Pos:        Vec2{X: p.X, Z: p.Z},
		BitMask:    p.BitMask,
		FullColumn: p.FullChunk,
	}

	r := codec.NewReader(bytes.NewReader(p.Payload))
	for i := 0; i < SectionsPerColumn; i++ {
		if p.BitMask&(1<<uint(i)) == 0 {
			continue
		}
		sec, err := DecodeSection(r, log)
		if err != nil {
			return nil, err
		}
		col.Sections[i] = sec
	}

	if p.FullChunk {
		biomes, err := r.Bytes(256)
		if err != nil {
			return nil, err
		}
		copy(col.Biomes[:], biomes)
	}

	return col, nil
}

// DecodeMapChunkBulk turns a MapChunkBulk packet into one Column per
// metadata entry, in the order the metadata array named them.
func DecodeMapChunkBulk(p *packets.MapChunkBulk, log *logrus.Entry) ([]*Column, error) {
	r := codec.NewReader(bytes.NewReader(p.Payload))
	columns := make([]*Column, len(p.Columns))

	for ci, meta := range p.Columns {
		col := &Column{
			Pos:        Vec2{X: meta.X, Z: meta.Z},
			BitMask:    meta.BitMask,
			FullColumn: true,
		}
		for i := 0; i < SectionsPerColumn; i++ {
			if meta.BitMask&(1<<uint(i)) == 0 {
				continue
			}
			sec, err := DecodeSection(r, log)
			if err != nil {
				return nil, err
			}
			col.Sections[i] = sec
		}
		biomes, err := r.Bytes(256)
		if err != nil {
			return nil, err
		}
		copy(col.Biomes[:], biomes)

		columns[ci] = col
	}

	return columns, nil
}
