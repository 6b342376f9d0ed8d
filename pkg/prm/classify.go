package prm

import (
	"fmt"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/binio"
)

// Classify decodes one declared chunk into its typed record. Zero-length
// payloads become ChunkZero regardless of their declared kind. Vertex
// chunks read a leading format code (unrecognized codes map to
// VertexUnknown), index chunks a leading indices count; unknown kind tags
// map to ChunkUnknown. Only a payload too short for its declared header is
// a hard error.
func Classify(idx int, kind ChunkKind, payload []byte) (Chunk, error) {
	c := Chunk{Index: idx, Kind: kind, Buffer: payload}
	if len(payload) == 0 {
		c.Kind = ChunkZero
		return c, nil
	}

	switch kind {
	case ChunkVertexBuffer:
		code, err := binio.NewReader(payload).U32()
		if err != nil {
			return Chunk{}, fmt.Errorf("prm: chunk %d: vertex format: %w", idx, err)
		}
		c.Vertex = &VertexBufferHeader{Format: vertexFormat(code)}
	case ChunkIndexBuffer:
		count, err := binio.NewReader(payload).U32()
		if err != nil {
			return Chunk{}, fmt.Errorf("prm: chunk %d: index count: %w", idx, err)
		}
		c.IndexHeader = &IndexBufferHeader{IndicesCount: count}
	case ChunkDescriptionBuffer, ChunkZero:
		// No typed header.
	default:
		c.Kind = ChunkUnknown
	}
	return c, nil
}

func vertexFormat(code uint32) VertexFormat {
	switch f := VertexFormat(code); f {
	case VertexFormat10, VertexFormat24, VertexFormat28, VertexFormat34:
		return f
	}
	return VertexUnknown
}
