package config

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema/config.cue
var configSchemaCUE []byte

// Validator checks raw config documents against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(configSchemaCUE, cue.Filename("config.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling config schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if !def.Exists() {
		return nil, fmt.Errorf("config schema: #Config not defined")
	}

	return &Validator{ctx: ctx, schema: def}, nil
}

// Validate unifies a JSON document with #Config and requires a concrete
// result. The returned error lists every violation.
func (v *Validator) Validate(data []byte) error {
	doc := v.ctx.CompileBytes(data, cue.Filename(FileName))
	if doc.Err() != nil {
		return fmt.Errorf("parsing: %w", doc.Err())
	}

	unified := v.schema.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &SchemaError{Details: cueMessages(err)}
	}
	return nil
}

// SchemaError reports schema violations of a stored config.
type SchemaError struct {
	Details []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return strings.Join(e.Details, "; ")
}

func cueMessages(err error) []string {
	var msgs []string
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if path := e.Path(); len(path) > 0 {
			msg = strings.Join(path, ".") + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	if len(msgs) == 0 {
		msgs = append(msgs, err.Error())
	}
	return msgs
}
