package types

// Kind discriminates the closed set of type shapes the schema can declare.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindPrimitive
	KindEnum
	KindArray
	KindComplex
)

var kindNames = map[Kind]string{
	KindInvalid:   "invalid",
	KindPrimitive: "primitive",
	KindEnum:      "enum",
	KindArray:     "array",
	KindComplex:   "complex",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// ParseKind maps a schema kind tag to its Kind. The zero Kind is not
// parseable; unknown tags report ok=false.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if k != KindInvalid && n == name {
			return k, true
		}
	}
	return KindInvalid, false
}
