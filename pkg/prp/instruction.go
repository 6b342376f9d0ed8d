package prp

import "fmt"

// Instruction is one decoded bytecode instruction. Instructions are immutable
// once produced; decoding only ever advances a cursor over them. Exactly one
// operand field is meaningful for a given opcode:
//
//	Int   integer trivials (Bool, Char, Int8..Int32) and container counts
//	Real  Float32 and Float64
//	Str   String payloads
type Instruction struct {
	Op   OpCode
	Int  int64
	Real float64
	Str  string
}

// Count returns the element count of a container instruction.
func (in Instruction) Count() int32 {
	return int32(in.Int)
}

func (in Instruction) String() string {
	switch {
	case in.Op.IsContainer():
		return fmt.Sprintf("%s(%d)", in.Op, in.Count())
	case in.Op == OpString:
		return fmt.Sprintf("%s(%q)", in.Op, in.Str)
	case in.Op == OpFloat32 || in.Op == OpFloat64:
		return fmt.Sprintf("%s(%g)", in.Op, in.Real)
	case in.Op.IsTrivial():
		return fmt.Sprintf("%s(%d)", in.Op, in.Int)
	default:
		return in.Op.String()
	}
}
