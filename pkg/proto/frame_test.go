package proto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ry-diffusion/gyra-go/pkg/codec"
)

func TestFrameRoundTripUncompressed(t *testing.T) {
	var f Framer
	var buf bytes.Buffer
	require.NoError(t, f.WriteFrame(&buf, 0x10, []byte("hello")))

	id, body, err := f.ReadFrame(codec.NewReader(&buf))
	require.NoError(t, err)
	assert.Equal(t, int32(0x10), id)
	rest, err := body.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), rest)
}

func TestFrameSubThresholdCarriesInnerZeroMarker(t *testing.T) {
	var f Framer
	f.SetCompression(256)

	var buf bytes.Buffer
	body := bytes.Repeat([]byte{0x42}, 100)
	require.NoError(t, f.WriteFrame(&buf, 0x01, body))

	raw := buf.Bytes()
	r := codec.NewReader(bytes.NewReader(raw))
	outerLen, err := r.VarInt()
	require.NoError(t, err)

	innerBuf, err := r.Bytes(int(outerLen))
	require.NoError(t, err)
	inner := codec.NewReader(bytes.NewReader(innerBuf))
	marker, err := inner.VarInt()
	require.NoError(t, err)
	assert.Equal(t, int32(0), marker, "sub-threshold frame must carry inner VarInt(0)")

	id, decodedBody, err := f.ReadFrame(codec.NewReader(bytes.NewReader(raw)))
	require.NoError(t, err)
	assert.Equal(t, int32(0x01), id)
	rest, err := decodedBody.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, body, rest)
}

func TestFrameAboveThresholdCompresses(t *testing.T) {
	var f Framer
	f.SetCompression(256)

	var buf bytes.Buffer
	body := bytes.Repeat([]byte{0x07}, 1000)
	require.NoError(t, f.WriteFrame(&buf, 0x02, body))

	id, decodedBody, err := f.ReadFrame(codec.NewReader(&buf))
	require.NoError(t, err)
	assert.Equal(t, int32(0x02), id)
	rest, err := decodedBody.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, body, rest)
}
