package types

import "github.com/BlannyBlannyBlanc/BMEdit/pkg/prp"

// NamedValue pairs a field or controller name with its decoded value.
type NamedValue struct {
	Name  string
	Value *Value
}

// Value is one node of a decoded tree. Kind mirrors the producing type's
// kind and selects the payload: Scalar for primitives and enums, Elems for
// arrays, Fields for complex types.
//
// Unexposed is normally nil. The scene builder appends instructions here
// when a controller's scope carries trailing data its descriptor does not
// account for; the tail is kept verbatim so a future writer can re-emit it.
type Value struct {
	Type      *Type
	Kind      Kind
	Scalar    prp.Instruction
	Elems     []*Value
	Fields    []NamedValue
	Unexposed []prp.Instruction
}

// Bool reads a primitive scalar as a boolean.
func (v *Value) Bool() bool { return v.Scalar.Int != 0 }

// Int reads a primitive or enum scalar as an integer.
func (v *Value) Int() int64 { return v.Scalar.Int }

// Real reads a primitive scalar as a float.
func (v *Value) Real() float64 { return v.Scalar.Real }

// Str reads a string scalar.
func (v *Value) Str() string { return v.Scalar.Str }

// EnumName resolves an enum value's raw integer to its declared constant
// name. Raw values outside the declaration report ok=false.
func (v *Value) EnumName() (string, bool) {
	if v.Type == nil || v.Type.Kind != KindEnum {
		return "", false
	}
	return v.Type.EntryName(int32(v.Scalar.Int))
}

// Field returns the named member of a complex value.
func (v *Value) Field(name string) (*Value, bool) {
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
