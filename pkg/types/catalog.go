package types

import (
	"encoding/json"
	"fmt"
)

// Catalog owns every registered type descriptor and the lookup indices over
// them. Lifecycle: register in bulk, Link exactly once, then read-only.
// The catalog carries no locking; the load phase must finish before any
// decode borrows it, and Reset may only run while no decode is in flight.
type Catalog struct {
	types   []*Type
	byName  map[string]*Type
	byShort map[string]*Type
	byHash  map[uint32]*Type
	linked  bool
}

// NewCatalog returns an empty, unlinked catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byName:  make(map[string]*Type),
		byShort: make(map[string]*Type),
		byHash:  make(map[uint32]*Type),
	}
}

// Len reports the number of registered types.
func (c *Catalog) Len() int { return len(c.types) }

// Linked reports whether the Link pass has completed.
func (c *Catalog) Linked() bool { return c.linked }

// RegisterTypes ingests raw schema declarations plus a hash alias table
// (hex hash string to canonical type name). The first registration of a
// name wins; later duplicates are dropped silently. Aliases naming
// unregistered types are skipped. Malformed declarations and unparseable
// hash keys are load errors.
func (c *Catalog) RegisterTypes(decls []json.RawMessage, aliases map[string]string) error {
	if c.linked {
		return ErrLinked
	}
	for i, raw := range decls {
		t, err := parseDeclaration(raw)
		if err != nil {
			return fmt.Errorf("types: declaration %d: %w", i, err)
		}
		c.register(t)
	}
	for key, name := range aliases {
		hash, err := ParseHash(key)
		if err != nil {
			return fmt.Errorf("types: alias: %w", err)
		}
		c.AddHashAlias(hash, name)
	}
	return nil
}

func (c *Catalog) register(t *Type) bool {
	if _, ok := c.byName[t.Name]; ok {
		return false
	}
	c.types = append(c.types, t)
	c.byName[t.Name] = t
	if short := t.ShortName(); c.byShort[short] == nil {
		c.byShort[short] = t
	}
	return true
}

// AddHashAlias points hash at an already-registered type name and reports
// whether the name was known. Re-pointing an existing hash is allowed;
// renamed-but-equivalent schema types resolve through exactly this path.
// Aliasing belongs to the load phase, before Link.
func (c *Catalog) AddHashAlias(hash uint32, name string) bool {
	t, ok := c.byName[name]
	if !ok {
		return false
	}
	if t.Hash == 0 {
		t.Hash = hash
	}
	c.byHash[hash] = t
	return true
}

// FindByName returns the type registered under name, or nil.
func (c *Catalog) FindByName(name string) *Type {
	return c.byName[name]
}

// FindByShortName resolves the last dot-separated segment form used for
// controller lookup, or nil.
func (c *Catalog) FindByShortName(short string) *Type {
	return c.byShort[short]
}

// FindByHash returns the type the hash index points at, or nil.
func (c *Catalog) FindByHash(hash uint32) *Type {
	return c.byHash[hash]
}

// FindByHashString parses a hex hash, "0x" prefixed or bare, and resolves
// it through the hash index.
func (c *Catalog) FindByHashString(s string) *Type {
	hash, err := ParseHash(s)
	if err != nil {
		return nil
	}
	return c.byHash[hash]
}

// ForEach visits every registered type in registration order until the
// visitor returns false.
func (c *Catalog) ForEach(fn func(*Type) bool) {
	for _, t := range c.types {
		if !fn(t) {
			return
		}
	}
}

// Link resolves every by-name reference (array elements, complex parents
// and fields) to descriptor pointers. It runs exactly once; unresolvable or
// cyclic references fail with a LinkError and leave the catalog unlinked.
// After a successful Link the catalog is ready for verify/map.
func (c *Catalog) Link() error {
	if c.linked {
		return ErrLinked
	}
	for _, t := range c.types {
		switch t.Kind {
		case KindArray:
			el := c.byName[t.ElementName]
			if el == nil {
				return &LinkError{TypeName: t.Name, Ref: t.ElementName}
			}
			t.Element = el
		case KindComplex:
			if t.ParentName != "" {
				p := c.byName[t.ParentName]
				if p == nil {
					return &LinkError{TypeName: t.Name, Ref: t.ParentName}
				}
				if p.Kind != KindComplex {
					return &LinkError{TypeName: t.Name, Ref: t.ParentName, Detail: "non-complex parent"}
				}
				t.Parent = p
			}
			for i := range t.Fields {
				f := &t.Fields[i]
				ft := c.byName[f.TypeName]
				if ft == nil {
					return &LinkError{TypeName: t.Name, Ref: f.TypeName}
				}
				f.Type = ft
			}
		}
	}
	if err := c.checkCycles(); err != nil {
		return err
	}
	c.linked = true
	return nil
}

// checkCycles rejects complex-to-complex reference loops. Parent and field
// edges between complex types consume no instructions by themselves, so a
// loop would recurse forever at decode time. Array hops are safe: every
// nesting level consumes a container instruction from a finite stream.
func (c *Catalog) checkCycles() error {
	const (
		white = iota
		gray
		black
	)
	state := make(map[*Type]int, len(c.types))
	var visit func(t *Type) *LinkError
	visit = func(t *Type) *LinkError {
		state[t] = gray
		step := func(next *Type) *LinkError {
			if next == nil || next.Kind != KindComplex {
				return nil
			}
			switch state[next] {
			case gray:
				return &LinkError{TypeName: t.Name, Ref: next.Name, Detail: "reference cycle through"}
			case white:
				return visit(next)
			}
			return nil
		}
		if err := step(t.Parent); err != nil {
			return err
		}
		for i := range t.Fields {
			if err := step(t.Fields[i].Type); err != nil {
				return err
			}
		}
		state[t] = black
		return nil
	}
	for _, t := range c.types {
		if t.Kind == KindComplex && state[t] == white {
			if err := visit(t); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reset drops every descriptor and clears all indices, returning the
// catalog to its empty, unlinked state. Callers must ensure no decode is in
// flight.
func (c *Catalog) Reset() {
	c.types = nil
	c.byName = make(map[string]*Type)
	c.byShort = make(map[string]*Type)
	c.byHash = make(map[uint32]*Type)
	c.linked = false
}
