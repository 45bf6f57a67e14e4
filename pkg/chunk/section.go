package chunk

import (
	"github.com/sirupsen/logrus"

	"github.com/ry-diffusion/gyra-go/pkg/codec"
)

// SectionBlockCount is the nominal number of blocks in a fully-populated
// 16x16x16 section. A truncated section (see DecodeSection) holds fewer.
const SectionBlockCount = 16 * 16 * 16

// LightBytes is the size of one nibble-packed light array: 4096 4-bit
// values, two per byte.
const LightBytes = SectionBlockCount / 2

// Section is one 16x16x16 vertical slice of a column.
type Section struct {
	Blocks      []NetworkBlock
	BlockLight  [LightBytes]byte
	SkyLight    [LightBytes]byte
	NonAirCount int
	// Truncated records whether the §4.6 sentinel quirk fired for this
	// section; light arrays were not read from the stream in that case.
	Truncated bool
}

// Clone returns a deep copy of s, safe to hand to a goroutine running
// concurrently with further decoding into the original.
func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Blocks = append([]NetworkBlock(nil), s.Blocks...)
	return &clone
}

// BlockAt returns the block at local (x, y, z), or Air if the section was
// truncated before that index was reached.
func (s *Section) BlockAt(x, y, z int) NetworkBlock {
	idx := BlockIndex(x, y, z)
	if idx >= len(s.Blocks) {
		return Air
	}
	return s.Blocks[idx]
}

// LightNibble reads one 4-bit value from a packed light array: index i
// even selects the low nibble, odd selects the high nibble.
func LightNibble(packed []byte, i int) uint8 {
	b := packed[i/2]
	if i%2 == 0 {
		return b & 0x0F
	}
	return b >> 4
}

// DecodeSection reads one section's blocks and light data in the order
// §4.6 specifies: 4096 little-endian u16 blocks, then 2048 bytes of
// block-light nibbles, then 2048 bytes of sky-light nibbles.
//
// If any block after index 0 decodes to the sentinel id 0xFFF, decoding
// stops immediately: the remaining blocks are treated as absent and no
// light data is consumed for this section. This is a wire-compatibility
// quirk inherited from the source server, not a normal code path — it is
// logged at warn level so an operator notices it happening.
func DecodeSection(r *codec.Reader, log *logrus.Entry) (*Section, error) {
	sec := &Section{Blocks: make([]NetworkBlock, 0, SectionBlockCount)}

	for i := 0; i < SectionBlockCount; i++ {
		raw, err := r.Uint16LE()
		if err != nil {
			return nil, err
		}
		block := NetworkBlock(raw)
		if i > 0 && block.ID() == SentinelID {
			sec.Truncated = true
			if log != nil {
				log.WithField("index", i).Warn("chunk section truncated: sentinel block id 0xFFF")
			}
			return sec, nil
		}
		sec.Blocks = append(sec.Blocks, block)
		if !block.IsAir() {
			sec.NonAirCount++
		}
	}

	if _, err := readFull(r, sec.BlockLight[:]); err != nil {
		return nil, err
	}
	if _, err := readFull(r, sec.SkyLight[:]); err != nil {
		return nil, err
	}
	return sec, nil
}

func readFull(r *codec.Reader, dst []byte) (int, error) {
	buf, err := r.Bytes(len(dst))
	if err != nil {
		return 0, err
	}
	copy(dst, buf)
	return len(buf), nil
}
