// Package scene turns a flat property instruction stream into a linked
// tree of scene objects. Objects are preallocated by an upstream geometry
// pass as a pre-order placeholder slice; the loader walks the stream
// depth-first and fills properties, controllers and parent/child links
// in place.
package scene

import "github.com/BlannyBlannyBlanc/BMEdit/pkg/types"

// NoParent marks an object without a parent.
const NoParent = -1

// Object is one node of the scene graph. Objects live in a single
// caller-owned slice; Parent and Children are indices into that same slice.
// Placeholders carry Name and TypeID before loading; the loader fills the
// rest.
type Object struct {
	Name        string
	TypeID      uint32
	Properties  *types.Value
	Controllers []types.NamedValue
	Parent      int
	Children    []int
}

// Controller returns the controller registered under name.
func (o *Object) Controller(name string) (*types.Value, bool) {
	for _, c := range o.Controllers {
		if c.Name == name {
			return c.Value, true
		}
	}
	return nil, false
}

// Walk visits root and every descendant in pre-order, reporting each
// object's index and depth below root.
func Walk(objects []Object, root int, fn func(idx, depth int)) {
	var rec func(idx, depth int)
	rec = func(idx, depth int) {
		fn(idx, depth)
		for _, child := range objects[idx].Children {
			rec(child, depth+1)
		}
	}
	rec(root, 0)
}
