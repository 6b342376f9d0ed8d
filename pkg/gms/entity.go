// Package gms decodes the geometry hierarchy side of a level: the entity
// table naming every scene node, the depth-driven parent links between
// them, and the compressed sections the table is stored in.
package gms

import (
	"fmt"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/binio"
)

// InvalidParent is the reserved parent index marking an entity without a
// parent.
const InvalidParent uint32 = 0xFFFFFFEE

// entityRecordSize is the fixed on-disk size of one entity record.
const entityRecordSize = 0x40

// GeomEntity is one row of the geometry hierarchy table.
type GeomEntity struct {
	Name        string
	TypeID      uint32
	PrimitiveID uint32
	InstanceID  uint32
	ColiBits    uint32
	DepthLevel  uint32
	ParentIndex uint32
}

// Inherited reports whether the entity hangs below another geometry node.
func (e *GeomEntity) Inherited() bool { return e.ParentIndex != InvalidParent }

// DeserializeEntity consumes one fixed-size record from hdr and resolves
// the entity's name through the side buffer. Word 0 of the record is the
// name's byte offset into buf; words 3, 5, 7 and 12 carry the primitive id,
// type id, collision bits and instance id; the remaining words are
// reserved. The parent index stays at the sentinel until tree assembly
// overwrites it.
func DeserializeEntity(hdr, buf *binio.Reader, depth uint32) (GeomEntity, error) {
	var words [entityRecordSize / 4]uint32
	for i := range words {
		w, err := hdr.U32()
		if err != nil {
			return GeomEntity{}, fmt.Errorf("record word %d: %w", i, err)
		}
		words[i] = w
	}
	if err := buf.SeekTo(int(words[0])); err != nil {
		return GeomEntity{}, fmt.Errorf("name offset %#x: %w", words[0], err)
	}
	name, err := buf.CString()
	if err != nil {
		return GeomEntity{}, fmt.Errorf("name at %#x: %w", words[0], err)
	}
	return GeomEntity{
		Name:        name,
		PrimitiveID: words[3],
		TypeID:      words[5],
		ColiBits:    words[7],
		InstanceID:  words[12],
		DepthLevel:  depth,
		ParentIndex: InvalidParent,
	}, nil
}

// ReadEntities decodes a whole entity table section: a u32 entity count,
// then one depth-prefixed record per entity, names resolved through the
// side buffer. Parent links are left at the sentinel; run LinkHierarchy
// afterwards.
func ReadEntities(table, names []byte) ([]GeomEntity, error) {
	hdr := binio.NewReader(table)
	buf := binio.NewReader(names)

	count, err := hdr.U32()
	if err != nil {
		return nil, fmt.Errorf("gms: entity count: %w", err)
	}
	hint := count
	if hint > 4096 {
		hint = 4096
	}
	out := make([]GeomEntity, 0, hint)
	for i := uint32(0); i < count; i++ {
		depth, err := hdr.U32()
		if err != nil {
			return nil, fmt.Errorf("gms: entity %d: depth: %w", i, err)
		}
		e, err := DeserializeEntity(hdr, buf, depth)
		if err != nil {
			return nil, fmt.Errorf("gms: entity %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
