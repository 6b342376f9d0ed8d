// Package prm decodes the geometry chunk container: a table of declared
// buffers classified into vertex, index, description, zero-length and
// unknown chunks, with the kind-specific headers parsed out.
package prm

// ChunkKind tags one declared chunk in container order.
type ChunkKind uint32

const (
	ChunkUnknown ChunkKind = iota
	ChunkVertexBuffer
	ChunkIndexBuffer
	ChunkDescriptionBuffer
	ChunkZero
)

var chunkKindNames = map[ChunkKind]string{
	ChunkUnknown:           "unknown",
	ChunkVertexBuffer:      "vertex",
	ChunkIndexBuffer:       "index",
	ChunkDescriptionBuffer: "description",
	ChunkZero:              "zero",
}

func (k ChunkKind) String() string {
	if name, ok := chunkKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// VertexFormat is the leading format code of a vertex buffer. The code
// doubles as the per-vertex byte stride; anything outside the four known
// strides is representable as VertexUnknown, never an error.
type VertexFormat uint32

const (
	VertexUnknown  VertexFormat = 0
	VertexFormat10 VertexFormat = 0x10
	VertexFormat24 VertexFormat = 0x24
	VertexFormat28 VertexFormat = 0x28
	VertexFormat34 VertexFormat = 0x34
)

// Stride returns the per-vertex byte stride, 0 for unknown formats.
func (f VertexFormat) Stride() int { return int(f) }

func (f VertexFormat) String() string {
	switch f {
	case VertexFormat10:
		return "Vertex10"
	case VertexFormat24:
		return "Vertex24"
	case VertexFormat28:
		return "Vertex28"
	case VertexFormat34:
		return "Vertex34"
	}
	return "VertexUnknown"
}

// VertexBufferHeader is the decoded header of a vertex chunk.
type VertexBufferHeader struct {
	Format VertexFormat
}

// IndexBufferHeader is the decoded header of an index chunk.
type IndexBufferHeader struct {
	IndicesCount uint32
}

// Chunk is one classified buffer. Exactly one of Vertex or IndexHeader is
// set, matching the kind; Buffer holds the chunk's raw bytes including any
// decoded header.
type Chunk struct {
	Index       int
	Kind        ChunkKind
	Buffer      []byte
	Vertex      *VertexBufferHeader
	IndexHeader *IndexBufferHeader
}
