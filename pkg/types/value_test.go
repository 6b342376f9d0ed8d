package types

import (
	"testing"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/prp"
)

func TestValueScalarAccessors(t *testing.T) {
	c := newLinkedCatalog(t)

	str, _ := c.FindByName("ZSTRING").Map(prp.Stream{{Op: prp.OpString, Str: "GROUND"}})
	if str.Str() != "GROUND" {
		t.Errorf("Str() = %q", str.Str())
	}

	real32, _ := c.FindByName("ZREAL32").Map(prp.Stream{{Op: prp.OpFloat32, Real: 0.5}})
	if real32.Real() != 0.5 {
		t.Errorf("Real() = %v", real32.Real())
	}

	off, _ := c.FindByName("ZBool").Map(prp.Stream{{Op: prp.OpBool, Int: 0}})
	if off.Bool() {
		t.Error("Bool() = true for zero scalar")
	}

	if _, ok := str.EnumName(); ok {
		t.Error("EnumName resolved on a non-enum value")
	}
}

func TestValueFieldMiss(t *testing.T) {
	c := newLinkedCatalog(t)
	v, _ := c.FindByName("ZBase").Map(prp.Stream{{Op: prp.OpInt32, Int: 9}})
	if v == nil {
		t.Fatal("Map returned nil")
	}
	if _, ok := v.Field("missing"); ok {
		t.Error("Field resolved an unknown name")
	}
}
