package prp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/binio"
)

// buildContainer assembles an on-disk property container from its parts.
func buildContainer(flags byte, tokens []string, count uint32, bytecode []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(headerMagic)
	buf.WriteByte(flags)
	binary.Write(&buf, binary.LittleEndian, uint32(len(tokens)))
	for _, tok := range tokens {
		buf.WriteString(tok)
		buf.WriteByte(0)
	}
	binary.Write(&buf, binary.LittleEndian, count)
	buf.Write(bytecode)
	return buf.Bytes()
}

func appendU32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

func TestDecodeInlineStrings(t *testing.T) {
	var code []byte
	code = append(code, byte(OpBeginObject))
	code = append(code, byte(OpString))
	code = append(code, "ZSTDOBJ\x00"...)
	code = append(code, byte(OpContainer))
	code = appendU32(code, 2)
	code = append(code, byte(OpInt32))
	code = appendU32(code, 0xFFFFFFFF) // -1
	code = append(code, byte(OpBool), 1)
	code = append(code, byte(OpEndObject))

	got, err := Decode(buildContainer(0, nil, 6, code))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []Instruction{
		{Op: OpBeginObject},
		{Op: OpString, Str: "ZSTDOBJ"},
		{Op: OpContainer, Int: 2},
		{Op: OpInt32, Int: -1},
		{Op: OpBool, Int: 1},
		{Op: OpEndObject},
	}
	if len(got) != len(want) {
		t.Fatalf("decoded %d instructions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("instruction %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecodeTokenStrings(t *testing.T) {
	var code []byte
	code = append(code, byte(OpString))
	code = appendU32(code, 1)
	code = append(code, byte(OpString))
	code = appendU32(code, 0)

	got, err := Decode(buildContainer(flagTokenStrings, []string{"GROUND", "ZItem"}, 2, code))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got[0].Str != "ZItem" || got[1].Str != "GROUND" {
		t.Fatalf("token refs resolved to %q, %q", got[0].Str, got[1].Str)
	}
}

func TestDecodeTokenOutOfRange(t *testing.T) {
	var code []byte
	code = append(code, byte(OpString))
	code = appendU32(code, 5)

	_, err := Decode(buildContainer(flagTokenStrings, []string{"only"}, 1, code))
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("err = %v, want token range error", err)
	}
}

func TestDecodeScalarOperands(t *testing.T) {
	var code []byte
	code = append(code, byte(OpChar), 'A')
	code = append(code, byte(OpInt8), 0x80) // -128
	code = append(code, byte(OpInt16), 0xFE, 0xFF)
	code = append(code, byte(OpFloat32))
	code = appendU32(code, math.Float32bits(1.5))
	code = append(code, byte(OpFloat64))
	code = binary.LittleEndian.AppendUint64(code, math.Float64bits(-2.25))

	got, err := Decode(buildContainer(0, nil, 5, code))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got[0].Int != 'A' {
		t.Errorf("char = %d, want %d", got[0].Int, 'A')
	}
	if got[1].Int != -128 {
		t.Errorf("int8 = %d, want -128", got[1].Int)
	}
	if got[2].Int != -2 {
		t.Errorf("int16 = %d, want -2", got[2].Int)
	}
	if got[3].Real != 1.5 {
		t.Errorf("float32 = %v, want 1.5", got[3].Real)
	}
	if got[4].Real != -2.25 {
		t.Errorf("float64 = %v, want -2.25", got[4].Real)
	}
}

func TestDecodeBadMagic(t *testing.T) {
	data := buildContainer(0, nil, 0, nil)
	data[0] = 'X'
	if _, err := Decode(data); err == nil || !strings.Contains(err.Error(), "magic") {
		t.Fatalf("err = %v, want magic error", err)
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	_, err := Decode(buildContainer(0, nil, 1, []byte{0x7F}))
	if err == nil || !strings.Contains(err.Error(), "unknown tag") {
		t.Fatalf("err = %v, want unknown tag error", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	var code []byte
	code = append(code, byte(OpBeginObject))
	code = append(code, byte(OpInt32), 0x01, 0x02) // two bytes short
	data := buildContainer(0, nil, 2, code)

	_, err := Decode(data)
	if err == nil {
		t.Fatal("Decode accepted truncated container")
	}
	if !errors.Is(err, binio.ErrShortBuffer) {
		t.Fatalf("err = %v, want wrapped ErrShortBuffer", err)
	}
	if !strings.Contains(err.Error(), "instruction 1") {
		t.Fatalf("err = %v, want instruction index in message", err)
	}

	// Declared count larger than the bytecode is also truncation.
	if _, err := Decode(buildContainer(0, nil, 3, []byte{byte(OpEndObject)})); err == nil {
		t.Fatal("Decode accepted missing instructions")
	}
}

func TestDecodeFrom(t *testing.T) {
	data := buildContainer(0, nil, 1, []byte{byte(OpEndObject)})
	got, err := DecodeFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeFrom: %v", err)
	}
	if len(got) != 1 || got[0].Op != OpEndObject {
		t.Fatalf("DecodeFrom = %+v", got)
	}
}
