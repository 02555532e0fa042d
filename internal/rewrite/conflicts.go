package rewrite

import (
	"fmt"

	"github.com/mcpstack/tool-bootstrap/internal/names"
)

// ReentrantError reports a name whose value would itself be rewritten by a
// later run, so repeated applies would keep changing the tree.
type ReentrantError struct {
	Field names.Field
	Value string
	After string
}

// Error implements the error interface.
func (e ReentrantError) Error() string {
	return fmt.Sprintf("%s %q contains a placeholder token and would be rewritten again to %q",
		e.Field.FlagName(), e.Value, e.After)
}

// Reentrant returns one error per field whose value is not a fixed point of
// the plan. A field set to its own placeholder is a fixed point.
func Reentrant(n names.NameSet) []ReentrantError {
	plan := NewPlan(n)
	var out []ReentrantError
	for _, f := range names.Fields() {
		v := n.Get(f)
		if after := plan.Apply(v); after != v {
			out = append(out, ReentrantError{Field: f, Value: v, After: after})
		}
	}
	return out
}
