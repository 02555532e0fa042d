package names

import "strings"

// Collision reports two fields whose values are textually identical once
// case is ignored. Rewriting still works, but the template
// can no longer be told apart field by field.
type Collision struct {
	A, B  Field
	Value string
}

// Collisions returns every pair of fields whose values are equal ignoring case.
func Collisions(n NameSet) []Collision {
	fields := Fields()
	var out []Collision
	for i := 0; i < len(fields); i++ {
		for j := i + 1; j < len(fields); j++ {
			a, b := n.Get(fields[i]), n.Get(fields[j])
			if a == "" || b == "" {
				continue
			}
			if strings.EqualFold(a, b) {
				out = append(out, Collision{A: fields[i], B: fields[j], Value: a})
			}
		}
	}
	return out
}
