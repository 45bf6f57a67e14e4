package proto

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/ry-diffusion/gyra-go/pkg/codec"
)

// Framer reads and writes length-prefixed, optionally zlib-compressed wire
// frames. A zero-value Framer has compression disabled; SetCompression
// enables it once the server announces a threshold.
type Framer struct {
	threshold int
	enabled   bool
}

// SetCompression enables threshold compression. A negative threshold
// disables compression again (vanilla servers never do this, but nothing
// in the wire format forbids it).
func (f *Framer) SetCompression(threshold int) {
	f.enabled = threshold >= 0
	f.threshold = threshold
}

// WriteFrame encodes id+body as one wire frame into w, compressing the
// packet bytes when enabled and the packet meets the threshold.
func (f *Framer) WriteFrame(w io.Writer, id int32, body []byte) error {
	packet := codec.NewWriter()
	packet.VarInt(id)
	packet.Raw(body)
	packetBytes := packet.Bytes()

	if !f.enabled {
		outer := codec.NewWriter()
		outer.VarInt(int32(len(packetBytes)))
		outer.Raw(packetBytes)
		_, err := w.Write(outer.Bytes())
		return err
	}

	if len(packetBytes) < f.threshold {
		// Inner VarInt(0) marks "not compressed" even though compression
		// is enabled for the stream (§4.3).
		inner := codec.NewWriter()
		inner.VarInt(0)
		inner.Raw(packetBytes)
		innerBytes := inner.Bytes()

		outer := codec.NewWriter()
		outer.VarInt(int32(len(innerBytes)))
		outer.Raw(innerBytes)
		_, err := w.Write(outer.Bytes())
		return err
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(packetBytes); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	inner := codec.NewWriter()
	inner.VarInt(int32(len(packetBytes)))
	inner.Raw(compressed.Bytes())
	innerBytes := inner.Bytes()

	outer := codec.NewWriter()
	outer.VarInt(int32(len(innerBytes)))
	outer.Raw(innerBytes)
	_, err := w.Write(outer.Bytes())
	return err
}

// ReadFrame reads one frame from r and returns the packet id plus its
// decoded body reader.
func (f *Framer) ReadFrame(r *codec.Reader) (int32, *codec.Reader, error) {
	outerLen, err := r.VarInt()
	if err != nil {
		return 0, nil, err
	}
	buf, err := r.Bytes(int(outerLen))
	if err != nil {
		return 0, nil, err
	}
	body := codec.NewReader(bytes.NewReader(buf))

	if !f.enabled {
		id, err := body.VarInt()
		if err != nil {
			return 0, nil, err
		}
		return id, body, nil
	}

	uncompressedLen, err := body.VarInt()
	if err != nil {
		return 0, nil, err
	}
	if uncompressedLen == 0 {
		id, err := body.VarInt()
		if err != nil {
			return 0, nil, err
		}
		return id, body, nil
	}

	rest, err := body.ReadAll()
	if err != nil {
		return 0, nil, err
	}
	zr, err := zlib.NewReader(bytes.NewReader(rest))
	if err != nil {
		return 0, nil, err
	}
	defer zr.Close()
	inflated := make([]byte, uncompressedLen)
	if _, err := io.ReadFull(zr, inflated); err != nil {
		return 0, nil, err
	}

	inflatedReader := codec.NewReader(bytes.NewReader(inflated))
	id, err := inflatedReader.VarInt()
	if err != nil {
		return 0, nil, err
	}
	return id, inflatedReader, nil
}
