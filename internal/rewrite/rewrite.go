package rewrite

import (
	"strings"

	"github.com/mcpstack/tool-bootstrap/internal/names"
)

// Plan is the ordered list of substitutions for one NameSet. It is cheap to
// build and holds no state between calls.
type Plan struct {
	names names.NameSet
}

// NewPlan builds the substitution plan for a NameSet.
func NewPlan(n names.NameSet) Plan {
	return Plan{names: n}
}

// Names returns the NameSet the plan substitutes.
func (p Plan) Names() names.NameSet {
	return p.names
}

// Apply runs every rule in order over text. It is pure: the same text and
// names always produce byte-identical output.
func (p Plan) Apply(text string) string {
	for _, r := range rules {
		value := p.names.Get(r.Field)
		if r.Compound {
			// The match ends with the character that follows the placeholder;
			// keep it.
			text = r.Pattern.ReplaceAllStringFunc(text, func(m string) string {
				return value + m[len(r.Placeholder):]
			})
			continue
		}
		text = r.Pattern.ReplaceAllLiteralString(text, value)
	}
	return text
}

// Rewrite applies the plan for n to text.
func Rewrite(text string, n names.NameSet) string {
	return NewPlan(n).Apply(text)
}

// Match is one placeholder occurrence found by a rule.
type Match struct {
	Rule  string
	Start int
	End   int
}

// Matches returns every occurrence each rule would rewrite in the original
// text, in rule order. Compound matches exclude the trailing character.
func Matches(text string) []Match {
	var out []Match
	for _, r := range rules {
		for _, loc := range r.Pattern.FindAllStringIndex(text, -1) {
			end := loc[1]
			if r.Compound {
				end = loc[0] + len(r.Placeholder)
			}
			out = append(out, Match{Rule: r.Name, Start: loc[0], End: end})
		}
	}
	return out
}

// ContainsPlaceholder reports whether text still holds any placeholder token.
func ContainsPlaceholder(text string) bool {
	for _, r := range rules {
		if strings.Contains(text, r.Placeholder) {
			return true
		}
	}
	return false
}
