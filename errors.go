package sqlbuilder

import "fmt"

// StateError reports a construction step invoked against a query state that
// does not support it, for example Where before any Select. It signals a
// misordered call sequence, not a transient failure.
type StateError struct {
	Op    string
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("sqlbuilder: %s is not valid for a %s query", e.Op, e.State)
}
