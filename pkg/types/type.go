// Package types holds the schema side of the asset pipeline: type
// descriptors loaded from a JSON type database, the catalog that indexes
// them by name and hash, and the two-phase verify/map contract that decodes
// instruction windows into typed values.
package types

import (
	"strings"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/prp"
)

// EnumEntry is one named constant of an enum type.
type EnumEntry struct {
	Name  string
	Value int32
}

// Field is one ordered member of a complex type. Type stays nil until the
// catalog's Link pass resolves TypeName.
type Field struct {
	Name     string
	TypeName string
	Type     *Type
}

// Type is a single descriptor covering every declarable shape. Kind selects
// which field group is meaningful; the rest stay zero. Descriptors are
// mutated only by Catalog registration and Link, and are read-only afterwards.
type Type struct {
	Name string
	Hash uint32
	Kind Kind

	// Primitive: the one opcode this type expects on the wire.
	Op prp.OpCode

	// Enum: named constants. The wire form is a single Int32 instruction;
	// raw values without an entry are representable, not an error.
	Entries []EnumEntry

	// Array: fixed element type, Capacity > 0 pins the element count.
	ElementName string
	Element     *Type
	Capacity    int32

	// Complex: optional base type whose fields precede ours, then the own
	// ordered fields. AllowUnexposed marks types that tolerate trailing
	// instructions from newer schema versions.
	ParentName     string
	Parent         *Type
	Fields         []Field
	AllowUnexposed bool
}

// ShortName returns the last dot-separated segment of the type name.
// Controllers are looked up through this form.
func (t *Type) ShortName() string {
	if i := strings.LastIndexByte(t.Name, '.'); i >= 0 {
		return t.Name[i+1:]
	}
	return t.Name
}

// EntryName resolves an enum raw value to its declared constant name.
func (t *Type) EntryName(value int32) (string, bool) {
	for _, e := range t.Entries {
		if e.Value == value {
			return e.Name, true
		}
	}
	return "", false
}
