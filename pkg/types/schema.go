package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/prp"
)

// declaration mirrors one entry of the JSON type database.
type declaration struct {
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Opcode    string          `json:"opcode"`
	Entries   []enumEntryDecl `json:"entries"`
	Element   string          `json:"element"`
	Capacity  int32           `json:"capacity"`
	Parent    string          `json:"parent"`
	Unexposed bool            `json:"unexposed"`
	Fields    []fieldDecl     `json:"fields"`
}

type enumEntryDecl struct {
	Name  string `json:"name"`
	Value int32  `json:"value"`
}

type fieldDecl struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// parseDeclaration builds a descriptor from one raw schema entry.
// Structural problems (missing name, unknown kind, a primitive bound to a
// structural opcode) are errors; references stay unresolved until Link.
func parseDeclaration(raw json.RawMessage) (*Type, error) {
	var d declaration
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	if d.Name == "" {
		return nil, fmt.Errorf("declaration without a name")
	}
	kind, ok := ParseKind(d.Kind)
	if !ok {
		return nil, fmt.Errorf("%s: unknown kind %q", d.Name, d.Kind)
	}

	t := &Type{Name: d.Name, Kind: kind}
	switch kind {
	case KindPrimitive:
		op, ok := prp.ParseOpCode(d.Opcode)
		if !ok {
			return nil, fmt.Errorf("%s: unknown opcode %q", d.Name, d.Opcode)
		}
		if !op.IsTrivial() && op != prp.OpString {
			return nil, fmt.Errorf("%s: opcode %v cannot carry a primitive", d.Name, op)
		}
		t.Op = op
	case KindEnum:
		t.Entries = make([]EnumEntry, 0, len(d.Entries))
		for _, e := range d.Entries {
			if e.Name == "" {
				return nil, fmt.Errorf("%s: enum entry without a name", d.Name)
			}
			t.Entries = append(t.Entries, EnumEntry{Name: e.Name, Value: e.Value})
		}
	case KindArray:
		if d.Element == "" {
			return nil, fmt.Errorf("%s: array without an element type", d.Name)
		}
		if d.Capacity < 0 {
			return nil, fmt.Errorf("%s: negative capacity %d", d.Name, d.Capacity)
		}
		t.ElementName = d.Element
		t.Capacity = d.Capacity
	case KindComplex:
		t.ParentName = d.Parent
		t.AllowUnexposed = d.Unexposed
		t.Fields = make([]Field, 0, len(d.Fields))
		for _, f := range d.Fields {
			if f.Name == "" || f.Type == "" {
				return nil, fmt.Errorf("%s: field needs both name and type", d.Name)
			}
			t.Fields = append(t.Fields, Field{Name: f.Name, TypeName: f.Type})
		}
	}
	return t, nil
}

// ParseHash parses a 32-bit type hash written as hex, with or without a
// "0x" prefix.
func ParseHash(s string) (uint32, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hash %q", s)
	}
	return uint32(v), nil
}
