package names

import (
	"fmt"
	"regexp"
	"strings"
)

// rule defines the grammar a single field must satisfy.
type rule struct {
	field Field

	// pattern is matched against the whole value.
	pattern *regexp.Regexp

	// convention is the human name of the naming convention.
	convention string

	// grammar is the pattern in human-readable form.
	grammar string
}

var rules = []rule{
	{
		field:      FieldToolSlug,
		pattern:    regexp.MustCompile(`^[a-z][a-z0-9_]*$`),
		convention: "snake_case",
		grammar:    "[a-z][a-z0-9_]*",
	},
	{
		field:      FieldClassName,
		pattern:    regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`),
		convention: "PascalCase",
		grammar:    "[A-Z][A-Za-z0-9_]*",
	},
	{
		field:      FieldPackageName,
		pattern:    regexp.MustCompile(`^[a-z][a-z0-9_]*$`),
		convention: "a valid module name",
		grammar:    "[a-z][a-z0-9_]*",
	},
	{
		field:      FieldDistName,
		pattern:    regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`),
		convention: "kebab-case",
		grammar:    "[a-z0-9][a-z0-9-]*",
	},
	{
		field:      FieldEnvPrefix,
		pattern:    regexp.MustCompile(`^[A-Z0-9_]+$`),
		convention: "upper snake",
		grammar:    "[A-Z0-9_]+",
	},
}

// ValidationError reports a single field that broke its naming convention.
type ValidationError struct {
	Field      Field
	Value      string
	Convention string
	Grammar    string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s must be %s: %s", e.Field.FlagName(), e.Convention, e.Grammar)
}

// ValidationErrors is the complete list of problems found in a NameSet.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	return strings.Join(e.Messages(), "\n")
}

// Messages returns one message per error, in field order.
func (e ValidationErrors) Messages() []string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return msgs
}

// Validate checks every field against its grammar. All five checks always
// run; the returned error is a ValidationErrors holding every violation, or
// nil when the NameSet is valid.
func Validate(n NameSet) error {
	var errs ValidationErrors
	for _, r := range rules {
		v := n.Get(r.field)
		if !r.pattern.MatchString(v) {
			errs = append(errs, ValidationError{
				Field:      r.field,
				Value:      v,
				Convention: r.convention,
				Grammar:    r.grammar,
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Valid reports whether the NameSet passes Validate.
func (n NameSet) Valid() bool {
	return Validate(n) == nil
}
