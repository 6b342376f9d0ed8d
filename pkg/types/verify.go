package types

import "github.com/BlannyBlannyBlanc/BMEdit/pkg/prp"

// Verify checks that the front of in matches t's declared shape without
// allocating decoded values. It reports whether the window matched and
// returns the stream advanced past everything the shape covers; ok=false
// returns in unadvanced. Unlinked references fail the check.
func (t *Type) Verify(in prp.Stream) (bool, prp.Stream) {
	switch t.Kind {
	case KindPrimitive:
		front, ok := in.Front()
		if !ok || front.Op != t.Op {
			return false, in
		}
		return true, in.Tail()

	case KindEnum:
		front, ok := in.Front()
		if !ok || front.Op != prp.OpInt32 {
			return false, in
		}
		return true, in.Tail()

	case KindArray:
		front, ok := in.Front()
		if !ok || !front.Op.IsContainer() || t.Element == nil {
			return false, in
		}
		count := front.Int
		if count < 0 || (t.Capacity > 0 && count != int64(t.Capacity)) {
			return false, in
		}
		rest := in.Tail()
		for i := int64(0); i < count; i++ {
			elOK, r := t.Element.Verify(rest)
			if !elOK {
				return false, in
			}
			rest = r
		}
		return true, rest

	case KindComplex:
		rest := in
		if t.Parent != nil {
			parentOK, r := t.Parent.Verify(rest)
			if !parentOK {
				return false, in
			}
			rest = r
		}
		for i := range t.Fields {
			ft := t.Fields[i].Type
			if ft == nil {
				return false, in
			}
			fieldOK, r := ft.Verify(rest)
			if !fieldOK {
				return false, in
			}
			rest = r
		}
		return true, rest
	}
	return false, in
}
