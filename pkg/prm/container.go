package prm

import (
	"fmt"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/binio"
)

// ParseContainer decodes a whole chunk container: a u32 chunk count, a
// descriptor table of {u32 kind, u32 size} per chunk, then the payloads
// concatenated in declaration order. Every chunk is classified on the way
// out; truncation anywhere names the chunk it hit.
func ParseContainer(data []byte) ([]Chunk, error) {
	r := binio.NewReader(data)

	count, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("prm: chunk count: %w", err)
	}

	type descriptor struct {
		kind ChunkKind
		size uint32
	}
	hint := count
	if hint > 4096 {
		hint = 4096
	}
	table := make([]descriptor, 0, hint)
	for i := uint32(0); i < count; i++ {
		kind, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("prm: chunk %d: kind: %w", i, err)
		}
		size, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("prm: chunk %d: size: %w", i, err)
		}
		table = append(table, descriptor{kind: ChunkKind(kind), size: size})
	}

	chunks := make([]Chunk, 0, len(table))
	for i, d := range table {
		payload, err := r.Bytes(int(d.size))
		if err != nil {
			return nil, fmt.Errorf("prm: chunk %d: payload: %w", i, err)
		}
		c, err := Classify(i, d.kind, payload)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}
