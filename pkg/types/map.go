package types

import "github.com/BlannyBlannyBlanc/BMEdit/pkg/prp"

// Map decodes the front of in into a Value and returns the advanced stream.
// A nil Value reports failure and leaves the stream unadvanced. Map repeats
// Verify's shape checks instruction by instruction, so a bare Map can never
// read past a mismatch; callers still run Verify first to reject malformed
// windows before any allocation.
func (t *Type) Map(in prp.Stream) (*Value, prp.Stream) {
	switch t.Kind {
	case KindPrimitive:
		front, ok := in.Front()
		if !ok || front.Op != t.Op {
			return nil, in
		}
		return &Value{Type: t, Kind: KindPrimitive, Scalar: front}, in.Tail()

	case KindEnum:
		front, ok := in.Front()
		if !ok || front.Op != prp.OpInt32 {
			return nil, in
		}
		return &Value{Type: t, Kind: KindEnum, Scalar: front}, in.Tail()

	case KindArray:
		front, ok := in.Front()
		if !ok || !front.Op.IsContainer() || t.Element == nil {
			return nil, in
		}
		count := front.Int
		if count < 0 || (t.Capacity > 0 && count != int64(t.Capacity)) {
			return nil, in
		}
		// The count is input-controlled; clamp the allocation hint and let
		// stream exhaustion fail the loop before growth matters.
		hint := count
		if hint > 1024 {
			hint = 1024
		}
		elems := make([]*Value, 0, hint)
		rest := in.Tail()
		for i := int64(0); i < count; i++ {
			el, r := t.Element.Map(rest)
			if el == nil {
				return nil, in
			}
			elems = append(elems, el)
			rest = r
		}
		return &Value{Type: t, Kind: KindArray, Elems: elems}, rest

	case KindComplex:
		fields := make([]NamedValue, 0, len(t.Fields))
		rest, ok := t.mapFields(in, &fields)
		if !ok {
			return nil, in
		}
		return &Value{Type: t, Kind: KindComplex, Fields: fields}, rest
	}
	return nil, in
}

// mapFields decodes the inherited chain base-first, then the own fields,
// flattening everything into one ordered list.
func (t *Type) mapFields(in prp.Stream, fields *[]NamedValue) (prp.Stream, bool) {
	rest := in
	if t.Parent != nil {
		r, ok := t.Parent.mapFields(rest, fields)
		if !ok {
			return in, false
		}
		rest = r
	}
	for i := range t.Fields {
		f := &t.Fields[i]
		if f.Type == nil {
			return in, false
		}
		v, r := f.Type.Map(rest)
		if v == nil {
			return in, false
		}
		*fields = append(*fields, NamedValue{Name: f.Name, Value: v})
		rest = r
	}
	return rest, true
}
