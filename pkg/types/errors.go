package types

import (
	"errors"
	"fmt"
)

// ErrLinked rejects mutation of a catalog after its Link pass has run.
var ErrLinked = errors.New("types: catalog already linked")

// LinkError reports a schema reference that could not be resolved while
// linking the catalog. Ref names the reference that failed; Detail refines
// the failure when plain resolution is not the cause.
type LinkError struct {
	TypeName string
	Ref      string
	Detail   string
}

func (e *LinkError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("types: link %s: %s %q", e.TypeName, e.Detail, e.Ref)
	}
	return fmt.Sprintf("types: link %s: unresolved reference %q", e.TypeName, e.Ref)
}
