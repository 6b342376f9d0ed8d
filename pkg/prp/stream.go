package prp

// Stream is a bounds-checked window over a decoded instruction sequence.
// Slicing never copies: every derived Stream shares the same backing array,
// so a cursor can be threaded through recursive decode calls as a plain
// value. Reads past the window report ok=false instead of panicking.
type Stream []Instruction

// Len returns the number of instructions left in the window.
func (s Stream) Len() int { return len(s) }

// Empty reports whether the window is exhausted.
func (s Stream) Empty() bool { return len(s) == 0 }

// Front returns the first instruction of the window.
func (s Stream) Front() (Instruction, bool) {
	if len(s) == 0 {
		return Instruction{}, false
	}
	return s[0], true
}

// At returns the instruction i positions into the window.
func (s Stream) At(i int) (Instruction, bool) {
	if i < 0 || i >= len(s) {
		return Instruction{}, false
	}
	return s[i], true
}

// Tail returns the window advanced past its first instruction. The tail of
// an empty window is empty.
func (s Stream) Tail() Stream {
	if len(s) == 0 {
		return s
	}
	return s[1:]
}

// Skip returns the window advanced by n instructions, clamped to the end.
func (s Stream) Skip(n int) Stream {
	if n < 0 {
		return s
	}
	if n > len(s) {
		n = len(s)
	}
	return s[n:]
}
