// Package prp models the Glacier property bytecode: the instruction
// vocabulary driving scene reconstruction, a sliceable cursor over decoded
// instructions, and a reader for the on-disk container form.
package prp

import "fmt"

// OpCode identifies one instruction in the property bytecode. The numeric
// values double as the on-disk tag bytes.
type OpCode uint8

const (
	OpInvalid OpCode = iota

	// Structure opcodes. Begin/End pairs delimit object scopes; containers
	// carry the element count of the run that follows them.
	OpBeginObject
	OpBeginNamedObject
	OpEndObject
	OpContainer
	OpNamedContainer

	// OpString carries a text payload.
	OpString

	// Trivial opcodes carry a single scalar operand.
	OpBool
	OpChar
	OpInt8
	OpInt16
	OpInt32
	OpFloat32
	OpFloat64
)

var opNames = map[OpCode]string{
	OpInvalid:          "Invalid",
	OpBeginObject:      "BeginObject",
	OpBeginNamedObject: "BeginNamedObject",
	OpEndObject:        "EndObject",
	OpContainer:        "Container",
	OpNamedContainer:   "NamedContainer",
	OpString:           "String",
	OpBool:             "Bool",
	OpChar:             "Char",
	OpInt8:             "Int8",
	OpInt16:            "Int16",
	OpInt32:            "Int32",
	OpFloat32:          "Float32",
	OpFloat64:          "Float64",
}

func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OpCode(%d)", uint8(op))
}

// ParseOpCode resolves an opcode by its canonical name, as used in type
// schema declarations.
func ParseOpCode(name string) (OpCode, bool) {
	for op, n := range opNames {
		if n == name && op != OpInvalid {
			return op, true
		}
	}
	return OpInvalid, false
}

// IsTrivial reports whether the opcode carries a single scalar operand.
func (op OpCode) IsTrivial() bool {
	return op >= OpBool && op <= OpFloat64
}

// IsBeginObject reports whether the opcode opens an object scope.
func (op OpCode) IsBeginObject() bool {
	return op == OpBeginObject || op == OpBeginNamedObject
}

// IsContainer reports whether the opcode carries an element count.
func (op OpCode) IsContainer() bool {
	return op == OpContainer || op == OpNamedContainer
}
