package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"unicode/utf8"
)

// ErrUtf8 is returned when a decoded string is not valid UTF-8.
var ErrUtf8 = errors.New("codec: invalid utf-8")

// Reader wraps an io.Reader with the primitive decoders the packet registry
// needs. It buffers internally so VarInt's byte-at-a-time reads don't incur
// a syscall per byte on a raw net.Conn.
type Reader struct {
	br *bufio.Reader
}

// NewReader wraps r for primitive decoding. If r is already a *bufio.Reader
// it is used directly rather than double-buffered.
func NewReader(r io.Reader) *Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return &Reader{br: br}
	}
	return &Reader{br: bufio.NewReader(r)}
}

func (r *Reader) VarInt() (int32, error) { return DecodeVarInt(r.br) }

func (r *Reader) Bool() (bool, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (r *Reader) Byte() (byte, error) { return r.br.ReadByte() }

func (r *Reader) Int8() (int8, error) {
	b, err := r.br.ReadByte()
	return int8(b), err
}

func (r *Reader) Uint16() (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r.br, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

// Uint16LE reads a little-endian u16. Every fixed-width integer elsewhere on
// the wire is big-endian; the chunk section block array is the one
// documented exception (§4.6).
func (r *Reader) Uint16LE() (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r.br, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func (r *Reader) Uint32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r.br, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

func (r *Reader) Int64() (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r.br, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	return math.Float32frombits(v), err
}

func (r *Reader) Float64() (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r.br, buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf[:])), nil
}

// String reads VarInt(byte_len) | utf8_bytes.
func (r *Reader) String() (string, error) {
	n, err := r.VarInt()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", errors.New("codec: negative string length")
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrUtf8
	}
	return string(buf), nil
}

// Bytes reads exactly n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := io.ReadFull(r.br, buf)
	return buf, err
}

// ReadAll drains and returns every byte remaining in the underlying stream.
// Packets whose trailing section is a run of sub-records with no explicit
// length prefix (MapChunkBulk's column payloads) rely on the frame codec
// having already bounded the reader to exactly one packet body.
func (r *Reader) ReadAll() ([]byte, error) {
	return io.ReadAll(r.br)
}

// Writer accumulates encoded primitives into an in-memory buffer, matching
// the write side of Reader.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) VarInt(v int32) { w.buf = append(w.buf, EncodeVarInt(v)...) }

func (w *Writer) Bool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

func (w *Writer) Byte(v byte) { w.buf = append(w.buf, v) }

func (w *Writer) Int8(v int8) { w.buf = append(w.buf, byte(v)) }

func (w *Writer) Uint16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.buf = append(w.buf, buf[:]...)
}

func (w *Writer) Int16(v int16) { w.Uint16(uint16(v)) }

func (w *Writer) Uint32(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	w.buf = append(w.buf, buf[:]...)
}

func (w *Writer) Int32(v int32) { w.Uint32(uint32(v)) }

func (w *Writer) Int64(v int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	w.buf = append(w.buf, buf[:]...)
}

func (w *Writer) Float32(v float32) { w.Uint32(math.Float32bits(v)) }

func (w *Writer) Float64(v float64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
	w.buf = append(w.buf, buf[:]...)
}

func (w *Writer) String(s string) {
	w.VarInt(int32(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *Writer) Raw(b []byte) { w.buf = append(w.buf, b...) }
