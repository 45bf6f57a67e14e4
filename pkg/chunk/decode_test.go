package chunk

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ry-diffusion/gyra-go/pkg/codec"
	"github.com/ry-diffusion/gyra-go/pkg/proto/packets"
)

func encodeSectionBlocks(block NetworkBlock, count int) []byte {
	buf := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		var le [2]byte
		binary.LittleEndian.PutUint16(le[:], uint16(block))
		buf = append(buf, le[:]...)
	}
	return buf
}

func TestDecodeSectionEndStone(t *testing.T) {
	block := NewNetworkBlock(121, 0) // end stone, id 121 metadata 0
	var buf bytes.Buffer
	buf.Write(encodeSectionBlocks(block, SectionBlockCount))
	buf.Write(make([]byte, LightBytes)) // block light, all zero
	buf.Write(make([]byte, LightBytes)) // sky light, all zero

	sec, err := DecodeSection(codec.NewReader(&buf), nil)
	require.NoError(t, err)
	require.False(t, sec.Truncated)

	got := sec.BlockAt(1, 1, 1)
	assert.Equal(t, uint16(121), got.ID())
	assert.Equal(t, uint8(0), got.Metadata())
	assert.Equal(t, SectionBlockCount, sec.NonAirCount)
}

func TestDecodeSectionTruncatesOnSentinel(t *testing.T) {
	blocks := make([]NetworkBlock, SectionBlockCount)
	for i := range blocks {
		blocks[i] = NewNetworkBlock(1, 0)
	}
	// sentinel at index 10: id field all ones.
	blocks[10] = NetworkBlock(0xFFFF)

	var buf bytes.Buffer
	for _, b := range blocks {
		var le [2]byte
		binary.LittleEndian.PutUint16(le[:], uint16(b))
		buf.Write(le[:])
	}
	// Per §4.6, no light data follows a truncated section, so we
	// deliberately do NOT write any here — decoding must not try to read it.
	sec, err := DecodeSection(codec.NewReader(&buf), nil)
	require.NoError(t, err)
	assert.True(t, sec.Truncated)
	assert.Len(t, sec.Blocks, 10)
}

func TestBlockIndexLayout(t *testing.T) {
	// Y-major, Z-middle, X-fastest.
	assert.Equal(t, 0, BlockIndex(0, 0, 0))
	assert.Equal(t, 1, BlockIndex(1, 0, 0))
	assert.Equal(t, 16, BlockIndex(0, 0, 1))
	assert.Equal(t, 256, BlockIndex(0, 1, 0))
}

func buildSectionBytes(block NetworkBlock) []byte {
	var buf bytes.Buffer
	buf.Write(encodeSectionBlocks(block, SectionBlockCount))
	buf.Write(make([]byte, LightBytes))
	buf.Write(make([]byte, LightBytes))
	return buf.Bytes()
}

func TestDecodeMapChunkBulkTwoColumns(t *testing.T) {
	section := buildSectionBytes(NewNetworkBlock(1, 0))

	var payload bytes.Buffer
	// column (0,0): bitmask 0x0001 -> one section, then biomes.
	payload.Write(section)
	payload.Write(make([]byte, 256))
	// column (1,0): bitmask 0x0003 -> two sections, then biomes.
	payload.Write(section)
	payload.Write(section)
	payload.Write(make([]byte, 256))

	pkt := &packets.MapChunkBulk{
		IsOverworld: true,
		Columns: []packets.BulkColumnMeta{
			{X: 0, Z: 0, BitMask: 0x0001},
			{X: 1, Z: 0, BitMask: 0x0003},
		},
		Payload: payload.Bytes(),
	}

	cols, err := DecodeMapChunkBulk(pkt, nil)
	require.NoError(t, err)
	require.Len(t, cols, 2)

	assert.Equal(t, Vec2{X: 0, Z: 0}, cols[0].Pos)
	assert.NotNil(t, cols[0].Sections[0])
	assert.Nil(t, cols[0].Sections[1])

	assert.Equal(t, Vec2{X: 1, Z: 0}, cols[1].Pos)
	assert.NotNil(t, cols[1].Sections[0])
	assert.NotNil(t, cols[1].Sections[1])
	assert.Nil(t, cols[1].Sections[2])
}
