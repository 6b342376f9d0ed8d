package gms

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/binio"
)

// DecompressSection expands one stored section: a u32 uncompressed size
// followed by either a zlib stream or, when the stored size equals the
// remaining byte count, the raw bytes themselves. The result is always a
// fresh slice.
func DecompressSection(data []byte) ([]byte, error) {
	r := binio.NewReader(data)
	size, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("gms: section size: %w", err)
	}
	rest := data[r.Offset():]

	if int64(size) == int64(len(rest)) {
		out := make([]byte, len(rest))
		copy(out, rest)
		return out, nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(rest))
	if err != nil {
		return nil, fmt.Errorf("gms: section is neither raw nor zlib: %w", err)
	}
	defer zr.Close()

	// The declared size bounds the inflate; one extra byte exposes streams
	// that would overshoot it.
	out, err := io.ReadAll(io.LimitReader(zr, int64(size)+1))
	if err != nil {
		return nil, fmt.Errorf("gms: inflate section: %w", err)
	}
	if int64(len(out)) != int64(size) {
		return nil, fmt.Errorf("gms: section inflated to %d bytes, header declared %d", len(out), size)
	}
	return out, nil
}
