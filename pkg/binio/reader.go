// Package binio provides bounds-checked little-endian cursors over in-memory
// byte buffers. Asset containers are small enough to materialize fully, so
// every reader operates on a slice and reports truncation as an error instead
// of panicking.
package binio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrShortBuffer is wrapped by every read that runs past the end of the
// underlying buffer.
var ErrShortBuffer = errors.New("binio: read past end of buffer")

// Reader is a sequential cursor over a byte slice. All multi-byte reads are
// little-endian. The zero value reads from an empty buffer.
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a cursor positioned at the start of data. The reader
// never mutates data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the total buffer length.
func (r *Reader) Len() int { return len(r.data) }

// Offset returns the current cursor position.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

// SeekTo moves the cursor to an absolute offset.
func (r *Reader) SeekTo(off int) error {
	if off < 0 || off > len(r.data) {
		return fmt.Errorf("%w: seek to %d (len %d)", ErrShortBuffer, off, len(r.data))
	}
	r.off = off
	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.Remaining() < n {
		return fmt.Errorf("%w: skip %d at offset %d (have %d)", ErrShortBuffer, n, r.off, r.Remaining())
	}
	r.off += n
	return nil
}

// Bytes reads n bytes and returns them as a fresh slice.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d at offset %d (have %d)", ErrShortBuffer, n, r.off, r.Remaining())
	}
	out := make([]byte, n)
	copy(out, r.data[r.off:r.off+n])
	r.off += n
	return out, nil
}

// U8 reads one unsigned byte.
func (r *Reader) U8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, fmt.Errorf("%w: need 1 at offset %d", ErrShortBuffer, r.off)
	}
	v := r.data[r.off]
	r.off++
	return v, nil
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, fmt.Errorf("%w: need 2 at offset %d (have %d)", ErrShortBuffer, r.off, r.Remaining())
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v, nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, fmt.Errorf("%w: need 4 at offset %d (have %d)", ErrShortBuffer, r.off, r.Remaining())
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

// I32 reads a little-endian int32.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// F32 reads a little-endian IEEE 754 float32.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	return math.Float32frombits(v), err
}

// F64 reads a little-endian IEEE 754 float64.
func (r *Reader) F64() (float64, error) {
	if r.Remaining() < 8 {
		return 0, fmt.Errorf("%w: need 8 at offset %d (have %d)", ErrShortBuffer, r.off, r.Remaining())
	}
	v := binary.LittleEndian.Uint64(r.data[r.off:])
	r.off += 8
	return math.Float64frombits(v), nil
}

// CString reads bytes up to (and consuming) the next NUL terminator and
// returns them as a string. A buffer that ends before the terminator is a
// truncation error.
func (r *Reader) CString() (string, error) {
	start := r.off
	for i := r.off; i < len(r.data); i++ {
		if r.data[i] == 0 {
			r.off = i + 1
			return string(r.data[start:i]), nil
		}
	}
	return "", fmt.Errorf("%w: unterminated string at offset %d", ErrShortBuffer, start)
}
