package types

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func rawDecls(decls ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(decls))
	for i, d := range decls {
		out[i] = json.RawMessage(d)
	}
	return out
}

func testDeclarations() []json.RawMessage {
	return rawDecls(
		`{"name":"ZBool","kind":"primitive","opcode":"Bool"}`,
		`{"name":"ZREAL32","kind":"primitive","opcode":"Float32"}`,
		`{"name":"ZSTRING","kind":"primitive","opcode":"String"}`,
		`{"name":"ZINT32","kind":"primitive","opcode":"Int32"}`,
		`{"name":"EBoundKind","kind":"enum","entries":[{"name":"BK_NONE","value":0},{"name":"BK_BOX","value":1}]}`,
		`{"name":"ZVec3","kind":"array","element":"ZREAL32","capacity":3}`,
		`{"name":"ZList","kind":"array","element":"ZINT32"}`,
		`{"name":"ZBase","kind":"complex","fields":[{"name":"id","type":"ZINT32"}]}`,
		`{"name":"Glacier.ZGEOM","kind":"complex","parent":"ZBase","fields":[{"name":"position","type":"ZVec3"},{"name":"visible","type":"ZBool"}]}`,
		`{"name":"Glacier.ZEventBuffer","kind":"complex","unexposed":true,"fields":[{"name":"label","type":"ZSTRING"}]}`,
	)
}

func testAliases() map[string]string {
	return map[string]string{
		"0x0600C533": "Glacier.ZGEOM",
		"0x1A2B3C4D": "ZBase",
	}
}

func newLinkedCatalog(t testing.TB) *Catalog {
	t.Helper()
	c := NewCatalog()
	if err := c.RegisterTypes(testDeclarations(), testAliases()); err != nil {
		t.Fatalf("RegisterTypes: %v", err)
	}
	if err := c.Link(); err != nil {
		t.Fatalf("Link: %v", err)
	}
	return c
}

func TestLookupSymmetry(t *testing.T) {
	c := newLinkedCatalog(t)

	geom := c.FindByName("Glacier.ZGEOM")
	if geom == nil {
		t.Fatal("FindByName returned nil for registered type")
	}
	if got := c.FindByHash(0x0600C533); got != geom {
		t.Errorf("FindByHash = %p, want the same descriptor %p", got, geom)
	}
	if got := c.FindByShortName("ZGEOM"); got != geom {
		t.Errorf("FindByShortName = %p, want the same descriptor %p", got, geom)
	}
	if got := c.FindByHashString("0x0600C533"); got != geom {
		t.Errorf("FindByHashString(prefixed) = %p, want %p", got, geom)
	}
	if got := c.FindByHashString("0600C533"); got != geom {
		t.Errorf("FindByHashString(bare) = %p, want %p", got, geom)
	}
	if geom.Hash != 0x0600C533 {
		t.Errorf("alias did not assign the descriptor hash, got %#x", geom.Hash)
	}

	if c.FindByName("ZMissing") != nil || c.FindByHash(0xDEAD) != nil {
		t.Error("lookups for unregistered entries returned a descriptor")
	}
	if c.FindByHashString("not-hex") != nil {
		t.Error("FindByHashString accepted garbage input")
	}
}

func TestFirstRegistrationWins(t *testing.T) {
	c := NewCatalog()
	decls := rawDecls(
		`{"name":"ZDup","kind":"primitive","opcode":"Bool"}`,
		`{"name":"ZDup","kind":"enum","entries":[{"name":"A","value":0}]}`,
	)
	if err := c.RegisterTypes(decls, nil); err != nil {
		t.Fatalf("RegisterTypes: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if got := c.FindByName("ZDup"); got.Kind != KindPrimitive {
		t.Errorf("duplicate overwrote the first registration, kind = %v", got.Kind)
	}
}

func TestLinkResolvesReferences(t *testing.T) {
	c := newLinkedCatalog(t)

	vec := c.FindByName("ZVec3")
	if vec.Element != c.FindByName("ZREAL32") {
		t.Error("array element not linked to its descriptor")
	}
	geom := c.FindByName("Glacier.ZGEOM")
	if geom.Parent != c.FindByName("ZBase") {
		t.Error("complex parent not linked")
	}
	if geom.Fields[0].Type != vec || geom.Fields[1].Type != c.FindByName("ZBool") {
		t.Error("complex fields not linked in order")
	}
}

func TestLinkUnresolvedReference(t *testing.T) {
	c := NewCatalog()
	decls := rawDecls(`{"name":"ZBroken","kind":"complex","fields":[{"name":"x","type":"ZMissing"}]}`)
	if err := c.RegisterTypes(decls, nil); err != nil {
		t.Fatalf("RegisterTypes: %v", err)
	}

	err := c.Link()
	var linkErr *LinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("Link error = %v, want LinkError", err)
	}
	if linkErr.TypeName != "ZBroken" || linkErr.Ref != "ZMissing" {
		t.Errorf("LinkError = %+v", linkErr)
	}
	if c.Linked() {
		t.Error("catalog reported linked after a failed Link")
	}
}

func TestLinkRejectsReferenceCycle(t *testing.T) {
	c := NewCatalog()
	decls := rawDecls(
		`{"name":"ZA","kind":"complex","fields":[{"name":"b","type":"ZB"}]}`,
		`{"name":"ZB","kind":"complex","parent":"ZA"}`,
	)
	if err := c.RegisterTypes(decls, nil); err != nil {
		t.Fatalf("RegisterTypes: %v", err)
	}

	err := c.Link()
	var linkErr *LinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("Link error = %v, want LinkError", err)
	}
	if !strings.Contains(linkErr.Error(), "cycle") {
		t.Errorf("LinkError message = %q, want cycle diagnosis", linkErr.Error())
	}
}

func TestLinkExactlyOnce(t *testing.T) {
	c := newLinkedCatalog(t)
	if err := c.Link(); !errors.Is(err, ErrLinked) {
		t.Fatalf("second Link error = %v, want ErrLinked", err)
	}
	if err := c.RegisterTypes(testDeclarations(), nil); !errors.Is(err, ErrLinked) {
		t.Fatalf("RegisterTypes after Link = %v, want ErrLinked", err)
	}
}

func catalogShape(c *Catalog) []string {
	var shape []string
	c.ForEach(func(t *Type) bool {
		shape = append(shape, t.Name+"/"+t.Kind.String())
		return true
	})
	return shape
}

func TestResetThenReload(t *testing.T) {
	c := newLinkedCatalog(t)
	before := catalogShape(c)

	c.Reset()
	if c.Len() != 0 || c.Linked() {
		t.Fatalf("after Reset: Len=%d Linked=%v", c.Len(), c.Linked())
	}
	if c.FindByName("Glacier.ZGEOM") != nil || c.FindByHash(0x0600C533) != nil {
		t.Fatal("lookups survived Reset")
	}

	// Reloading the same inputs restores an identical shape.
	if err := c.RegisterTypes(testDeclarations(), testAliases()); err != nil {
		t.Fatalf("RegisterTypes after Reset: %v", err)
	}
	if err := c.Link(); err != nil {
		t.Fatalf("Link after Reset: %v", err)
	}
	after := catalogShape(c)
	if len(before) != len(after) {
		t.Fatalf("shape length changed across reload: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("shape[%d] = %q after reload, want %q", i, after[i], before[i])
		}
	}
	if c.FindByName("Glacier.ZGEOM") != c.FindByHash(0x0600C533) {
		t.Error("lookup symmetry lost after reload")
	}
}

func TestAddHashAliasUnknownName(t *testing.T) {
	c := NewCatalog()
	if c.AddHashAlias(0x1234, "ZNowhere") {
		t.Fatal("AddHashAlias accepted an unregistered name")
	}
	// The same case inside RegisterTypes is skipped, not an error.
	if err := c.RegisterTypes(nil, map[string]string{"0x1234": "ZNowhere"}); err != nil {
		t.Fatalf("RegisterTypes: %v", err)
	}
	if c.FindByHash(0x1234) != nil {
		t.Fatal("skipped alias still populated the hash index")
	}
}

func TestRegisterTypesBadDeclarations(t *testing.T) {
	cases := []struct {
		name string
		decl string
	}{
		{"missing name", `{"kind":"primitive","opcode":"Bool"}`},
		{"unknown kind", `{"name":"ZX","kind":"matrix"}`},
		{"unknown opcode", `{"name":"ZX","kind":"primitive","opcode":"Quaternion"}`},
		{"structural opcode", `{"name":"ZX","kind":"primitive","opcode":"EndObject"}`},
		{"array without element", `{"name":"ZX","kind":"array"}`},
		{"negative capacity", `{"name":"ZX","kind":"array","element":"ZBool","capacity":-1}`},
		{"field without type", `{"name":"ZX","kind":"complex","fields":[{"name":"x"}]}`},
		{"not json", `{"name":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCatalog()
			err := c.RegisterTypes(rawDecls(tc.decl), nil)
			if err == nil {
				t.Fatal("RegisterTypes accepted malformed declaration")
			}
			if !strings.Contains(err.Error(), "declaration 0") {
				t.Errorf("error %q does not name the declaration index", err)
			}
		})
	}

	c := NewCatalog()
	if err := c.RegisterTypes(nil, map[string]string{"zz": "ZBool"}); err == nil {
		t.Fatal("RegisterTypes accepted an unparseable alias hash")
	}
}

func TestForEachStops(t *testing.T) {
	c := newLinkedCatalog(t)
	var visited int
	c.ForEach(func(*Type) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Fatalf("visited %d types, want 3", visited)
	}
}

func TestParseHash(t *testing.T) {
	for _, s := range []string{"0x0600C533", "0600C533", "0X0600c533"} {
		h, err := ParseHash(s)
		if err != nil || h != 0x0600C533 {
			t.Errorf("ParseHash(%q) = %#x, %v", s, h, err)
		}
	}
	for _, s := range []string{"", "0x", "wxyz", "0x123456789"} {
		if _, err := ParseHash(s); err == nil {
			t.Errorf("ParseHash(%q) succeeded", s)
		}
	}
}
