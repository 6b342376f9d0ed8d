package scene

import (
	"fmt"
	"strings"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/prp"
)

// TypeNotFoundError reports an object or controller whose type has no
// catalog entry. Hash is set for object lookups, Name for controller
// lookups; ObjectIndex is the 0-based pre-order position of the object
// being decoded.
type TypeNotFoundError struct {
	ObjectIndex int
	Hash        uint32
	Name        string
}

func (e *TypeNotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("scene: object %d: controller type %q not found", e.ObjectIndex, e.Name)
	}
	return fmt.Sprintf("scene: object %d: type %#08x not found", e.ObjectIndex, e.Hash)
}

// VerificationError reports a property or controller window rejected by the
// type's verify/map contract.
type VerificationError struct {
	ObjectIndex int
	TypeName    string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("scene: object %d: type %s rejected its instruction window", e.ObjectIndex, e.TypeName)
}

// StructuralError reports a grammar violation: a required opcode missing,
// a non-complex type used as a controller, or the placeholder list running
// against the stream's object count. Want lists the acceptable opcodes when
// the violation is positional.
type StructuralError struct {
	ObjectIndex int
	Want        []prp.OpCode
	Got         prp.OpCode
	Detail      string
}

func (e *StructuralError) Error() string {
	msg := fmt.Sprintf("scene: object %d", e.ObjectIndex)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if len(e.Want) > 0 {
		names := make([]string, len(e.Want))
		for i, op := range e.Want {
			names[i] = op.String()
		}
		msg += fmt.Sprintf(": want %s, got %s", strings.Join(names, " or "), e.Got)
	}
	return msg
}

// ExhaustedError reports a cursor that ran out of instructions while the
// grammar still demanded input, including during unexposed-tail recovery.
type ExhaustedError struct {
	ObjectIndex int
	Detail      string
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("scene: object %d: stream exhausted, %s", e.ObjectIndex, e.Detail)
}
