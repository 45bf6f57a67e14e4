package codec

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarIntRoundTrip(t *testing.T) {
	for _, n := range []int32{0, 1, -1, 127, 128, 16383, 16384, 2097151,
		2147483647, -2147483648, 300, -300} {
		encoded := EncodeVarInt(n)
		decoded, err := DecodeVarInt(bufio.NewReader(bytes.NewReader(encoded)))
		require.NoError(t, err)
		assert.Equal(t, n, decoded, "round trip of %d", n)
	}
}

func TestVarIntKnownValues(t *testing.T) {
	cases := []struct {
		bytes []byte
		want  int32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0xFF, 0x01}, 255},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0xFF, 0x7F}, 16383},
		{[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07}, 2147483647},
	}
	for _, c := range cases {
		got, err := DecodeVarInt(bufio.NewReader(bytes.NewReader(c.bytes)))
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestVarIntTooBig(t *testing.T) {
	// six continuation bytes in a row must fail, never loop forever.
	input := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}
	_, err := DecodeVarInt(bufio.NewReader(bytes.NewReader(input)))
	assert.ErrorIs(t, err, ErrVarIntTooBig)
}

func TestVarIntSizeMatchesEncoding(t *testing.T) {
	for _, n := range []int32{0, 1, -1, 127, 128, 16383, 2147483647, -2147483648} {
		assert.Equal(t, len(EncodeVarInt(n)), VarIntSize(n))
	}
}
