package scene

import (
	"github.com/BlannyBlannyBlanc/BMEdit/pkg/prp"
	"github.com/BlannyBlannyBlanc/BMEdit/pkg/types"
)

var (
	beginOps     = []prp.OpCode{prp.OpBeginObject, prp.OpBeginNamedObject}
	containerOps = []prp.OpCode{prp.OpContainer, prp.OpNamedContainer}
)

// LoadProperties fills the placeholder objects from the instruction stream.
//
// Placeholders arrive in pre-order, one per geometry node, carrying Name and
// TypeID; the first is the root. The grammar per object is: a begin opcode,
// the object's property window (its type looked up by hash), EndObject, a
// container of controllers, then a container of children, each child decoded
// recursively and closed by a trailing EndObject. The catalog must already
// be linked.
//
// Any error aborts the whole load; the objects slice holds partial state
// afterwards and must be discarded by the caller. Instructions past the
// root's scope are left unconsumed.
func LoadProperties(cat *types.Catalog, objects []Object, in prp.Stream) error {
	if len(objects) == 0 {
		return nil
	}
	for i := range objects {
		objects[i].Properties = nil
		objects[i].Controllers = nil
		objects[i].Parent = NoParent
		objects[i].Children = nil
	}
	ld := &loader{cat: cat, objects: objects, next: 1}
	if _, err := ld.visit(0, in); err != nil {
		return err
	}
	if ld.next != len(objects) {
		return &StructuralError{
			ObjectIndex: ld.next,
			Detail:      "placeholder never visited by the stream",
		}
	}
	return nil
}

// loader carries the shared decode state: the catalog, the placeholder
// arena and the index of the next unclaimed placeholder. The cursor itself
// is threaded through visit as a value.
type loader struct {
	cat     *types.Catalog
	objects []Object
	next    int
}

// visit decodes one object's three stages and recurses into its children,
// returning the stream advanced past everything consumed.
func (ld *loader) visit(idx int, in prp.Stream) (prp.Stream, error) {
	obj := &ld.objects[idx]

	// Stage 1: properties.
	front, ok := in.Front()
	if !ok {
		return in, &ExhaustedError{ObjectIndex: idx, Detail: "expecting object begin"}
	}
	if !front.Op.IsBeginObject() {
		return in, &StructuralError{ObjectIndex: idx, Want: beginOps, Got: front.Op}
	}
	in = in.Tail()

	typ := ld.cat.FindByHash(obj.TypeID)
	if typ == nil {
		return in, &TypeNotFoundError{ObjectIndex: idx, Hash: obj.TypeID}
	}
	if ok, _ := typ.Verify(in); !ok {
		return in, &VerificationError{ObjectIndex: idx, TypeName: typ.Name}
	}
	props, rest := typ.Map(in)
	if props == nil {
		return in, &VerificationError{ObjectIndex: idx, TypeName: typ.Name}
	}
	in = rest
	obj.Properties = props

	in, err := ld.require(idx, in, prp.OpEndObject)
	if err != nil {
		return in, err
	}

	// Stage 2: controllers.
	count, in, err := ld.containerCount(idx, in, "controller container")
	if err != nil {
		return in, err
	}
	for i := int64(0); i < count; i++ {
		in, err = ld.controller(idx, obj, in)
		if err != nil {
			return in, err
		}
	}

	// Stage 3: children.
	count, in, err = ld.containerCount(idx, in, "child container")
	if err != nil {
		return in, err
	}
	for i := int64(0); i < count; i++ {
		if ld.next >= len(ld.objects) {
			return in, &StructuralError{
				ObjectIndex: idx,
				Detail:      "child demanded beyond the placeholder list",
			}
		}
		child := ld.next
		ld.next++
		ld.objects[child].Parent = idx
		obj.Children = append(obj.Children, child)

		in, err = ld.visit(child, in)
		if err != nil {
			return in, err
		}
		in, err = ld.require(idx, in, prp.OpEndObject)
		if err != nil {
			return in, err
		}
	}
	return in, nil
}

// controller decodes one named controller attached to obj: the short type
// name, a begin opcode, the controller's window, optionally an unexposed
// tail, and the closing EndObject.
func (ld *loader) controller(idx int, obj *Object, in prp.Stream) (prp.Stream, error) {
	front, ok := in.Front()
	if !ok {
		return in, &ExhaustedError{ObjectIndex: idx, Detail: "expecting controller name"}
	}
	if front.Op != prp.OpString {
		return in, &StructuralError{ObjectIndex: idx, Want: []prp.OpCode{prp.OpString}, Got: front.Op, Detail: "controller name"}
	}
	name := front.Str
	in = in.Tail()

	front, ok = in.Front()
	if !ok {
		return in, &ExhaustedError{ObjectIndex: idx, Detail: "expecting controller begin"}
	}
	if !front.Op.IsBeginObject() {
		return in, &StructuralError{ObjectIndex: idx, Want: beginOps, Got: front.Op, Detail: "controller " + name}
	}
	in = in.Tail()

	typ := ld.cat.FindByShortName(name)
	if typ == nil {
		return in, &TypeNotFoundError{ObjectIndex: idx, Name: name}
	}
	if typ.Kind != types.KindComplex {
		return in, &StructuralError{
			ObjectIndex: idx,
			Detail:      "type " + typ.Name + " is not allowed as a controller",
		}
	}

	val, rest := typ.Map(in)
	if val == nil {
		return in, &VerificationError{ObjectIndex: idx, TypeName: typ.Name}
	}
	in = rest

	front, ok = in.Front()
	if !ok {
		return in, &ExhaustedError{ObjectIndex: idx, Detail: "expecting controller end"}
	}
	if front.Op != prp.OpEndObject {
		if !typ.AllowUnexposed {
			return in, &StructuralError{ObjectIndex: idx, Want: []prp.OpCode{prp.OpEndObject}, Got: front.Op, Detail: "controller " + name}
		}
		// The window belongs to a newer schema than ours. Keep every
		// instruction up to the scope's EndObject verbatim on the value.
		end := -1
		for k := 0; k < in.Len(); k++ {
			if instr, _ := in.At(k); instr.Op == prp.OpEndObject {
				end = k
				break
			}
		}
		if end < 0 {
			return in, &ExhaustedError{ObjectIndex: idx, Detail: "controller " + name + " never closed during unexposed recovery"}
		}
		val.Unexposed = append(val.Unexposed, in[:end]...)
		in = in.Skip(end)
	}

	in, err := ld.require(idx, in, prp.OpEndObject)
	if err != nil {
		return in, err
	}
	obj.Controllers = append(obj.Controllers, types.NamedValue{Name: name, Value: val})
	return in, nil
}

// containerCount consumes a container opcode and returns its declared
// count.
func (ld *loader) containerCount(idx int, in prp.Stream, what string) (int64, prp.Stream, error) {
	front, ok := in.Front()
	if !ok {
		return 0, in, &ExhaustedError{ObjectIndex: idx, Detail: "expecting " + what}
	}
	if !front.Op.IsContainer() {
		return 0, in, &StructuralError{ObjectIndex: idx, Want: containerOps, Got: front.Op, Detail: what}
	}
	if front.Int < 0 {
		return 0, in, &StructuralError{ObjectIndex: idx, Got: front.Op, Detail: what + " declares a negative count"}
	}
	return front.Int, in.Tail(), nil
}

// require consumes exactly one instruction that must carry op.
func (ld *loader) require(idx int, in prp.Stream, op prp.OpCode) (prp.Stream, error) {
	front, ok := in.Front()
	if !ok {
		return in, &ExhaustedError{ObjectIndex: idx, Detail: "expecting " + op.String()}
	}
	if front.Op != op {
		return in, &StructuralError{ObjectIndex: idx, Want: []prp.OpCode{op}, Got: front.Op}
	}
	return in.Tail(), nil
}
