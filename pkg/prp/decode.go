package prp

import (
	"fmt"
	"io"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/binio"
)

// headerMagic opens every property container.
const headerMagic = "IOPacked v0.1"

// flagTokenStrings marks containers whose String operands are stored as
// indices into the token table instead of inline NUL-terminated text.
const flagTokenStrings = 0x01

// Decode parses an on-disk property container into its instruction sequence.
//
// Layout: the 13-byte magic, one flags byte, a token table (u32 count, then
// that many NUL-terminated strings), a u32 instruction count, and the
// bytecode itself: one tag byte per instruction followed by its operand
// (little-endian scalars; counts are signed 32-bit). Truncation anywhere and
// unknown tag bytes are errors; the instruction vocabulary is closed.
func Decode(data []byte) ([]Instruction, error) {
	r := binio.NewReader(data)

	magic, err := r.Bytes(len(headerMagic))
	if err != nil {
		return nil, fmt.Errorf("prp: header: %w", err)
	}
	if string(magic) != headerMagic {
		return nil, fmt.Errorf("prp: invalid magic %q", magic)
	}

	flags, err := r.U8()
	if err != nil {
		return nil, fmt.Errorf("prp: header flags: %w", err)
	}
	tokenStrings := flags&flagTokenStrings != 0

	tokenCount, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("prp: token count: %w", err)
	}
	hint := int(tokenCount)
	if hint > 4096 {
		hint = 4096
	}
	tokens := make([]string, 0, hint)
	for i := uint32(0); i < tokenCount; i++ {
		tok, err := r.CString()
		if err != nil {
			return nil, fmt.Errorf("prp: token %d: %w", i, err)
		}
		tokens = append(tokens, tok)
	}

	count, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("prp: instruction count: %w", err)
	}

	// Each instruction is at least one tag byte, so an oversized declared
	// count fails on truncation; only the allocation hint needs a cap.
	hint = int(count)
	if hint > 4096 {
		hint = 4096
	}
	out := make([]Instruction, 0, hint)
	for i := uint32(0); i < count; i++ {
		tag, err := r.U8()
		if err != nil {
			return nil, fmt.Errorf("prp: instruction %d: %w", i, err)
		}

		in := Instruction{Op: OpCode(tag)}
		switch in.Op {
		case OpBeginObject, OpBeginNamedObject, OpEndObject:
			// No operand.
		case OpContainer, OpNamedContainer:
			n, err := r.I32()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d: container count: %w", i, err)
			}
			in.Int = int64(n)
		case OpString:
			if tokenStrings {
				idx, err := r.U32()
				if err != nil {
					return nil, fmt.Errorf("prp: instruction %d: token ref: %w", i, err)
				}
				if idx >= uint32(len(tokens)) {
					return nil, fmt.Errorf("prp: instruction %d: token ref %d out of range (table has %d)", i, idx, len(tokens))
				}
				in.Str = tokens[idx]
			} else {
				s, err := r.CString()
				if err != nil {
					return nil, fmt.Errorf("prp: instruction %d: string: %w", i, err)
				}
				in.Str = s
			}
		case OpBool, OpChar:
			v, err := r.U8()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d: scalar: %w", i, err)
			}
			in.Int = int64(v)
		case OpInt8:
			v, err := r.U8()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d: scalar: %w", i, err)
			}
			in.Int = int64(int8(v))
		case OpInt16:
			v, err := r.U16()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d: scalar: %w", i, err)
			}
			in.Int = int64(int16(v))
		case OpInt32:
			v, err := r.I32()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d: scalar: %w", i, err)
			}
			in.Int = int64(v)
		case OpFloat32:
			v, err := r.F32()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d: scalar: %w", i, err)
			}
			in.Real = float64(v)
		case OpFloat64:
			v, err := r.F64()
			if err != nil {
				return nil, fmt.Errorf("prp: instruction %d: scalar: %w", i, err)
			}
			in.Real = v
		default:
			return nil, fmt.Errorf("prp: instruction %d: unknown tag %#02x", i, tag)
		}
		out = append(out, in)
	}

	return out, nil
}

// DecodeFrom reads a complete property container from r and delegates to
// Decode.
func DecodeFrom(r io.Reader) ([]Instruction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("prp: read container: %w", err)
	}
	return Decode(data)
}
