// Package prompt asks the user for names and confirmations, through huh
// forms on a terminal and through defaults everywhere else.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mcpstack/tool-bootstrap/internal/output"
)

// ErrCancelled is returned when the user aborts a prompt (Ctrl+C / Esc).
var ErrCancelled = errors.New("prompt cancelled")

// Prompter asks questions. Implementations return the default when the user
// submits an empty answer.
type Prompter interface {
	// Input asks for a string.
	Input(title, def string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(title string, def bool) (bool, error)
}

// Interactive reports whether p talks to a user.
func Interactive(p Prompter) bool {
	_, headless := p.(Headless)
	return !headless
}

// Default returns a huh-backed Prompter when stdin is a terminal and a
// Headless one otherwise.
func Default() Prompter {
	if output.StdinIsTerminal() {
		return NewForm()
	}
	return Headless{}
}

// Form runs one huh form per question.
type Form struct {
	theme      *huh.Theme
	accessible bool
}

// NewForm creates a huh-backed Prompter.
func NewForm() *Form {
	return &Form{theme: huh.ThemeCharm()}
}

// Input implements Prompter.
func (f *Form) Input(title, def string) (string, error) {
	value := def
	in := huh.NewInput().
		Title(title).
		Value(&value)
	if def != "" {
		in = in.Placeholder(def)
	}

	if err := f.run(in); err != nil {
		return "", err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		value = def
	}
	return value, nil
}

// Confirm implements Prompter.
func (f *Form) Confirm(title string, def bool) (bool, error) {
	value := def
	c := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := f.run(c); err != nil {
		return false, err
	}
	return value, nil
}

func (f *Form) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(f.theme).
		WithAccessible(f.accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}

// Headless answers every question with its default.
type Headless struct{}

// Input implements Prompter.
func (Headless) Input(_, def string) (string, error) { return def, nil }

// Confirm implements Prompter.
func (Headless) Confirm(_ string, def bool) (bool, error) { return def, nil }

// Scripted replays canned answers, for tests and scripted runs. Once the
// answers run out it falls back to the defaults.
type Scripted struct {
	Inputs   []string
	Confirms []bool

	// Asked records every question title in order.
	Asked []string
}

// Input implements Prompter.
func (s *Scripted) Input(title, def string) (string, error) {
	s.Asked = append(s.Asked, title)
	if len(s.Inputs) == 0 {
		return def, nil
	}
	v := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	if strings.TrimSpace(v) == "" {
		return def, nil
	}
	return v, nil
}

// Confirm implements Prompter.
func (s *Scripted) Confirm(title string, def bool) (bool, error) {
	s.Asked = append(s.Asked, title)
	if len(s.Confirms) == 0 {
		return def, nil
	}
	v := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return v, nil
}

// ConfirmOrDecline asks a confirmation and treats a cancelled prompt as a
// "no".
func ConfirmOrDecline(p Prompter, title string, def bool) (bool, error) {
	ok, err := p.Confirm(title, def)
	if errors.Is(err, ErrCancelled) {
		return false, nil
	}
	return ok, err
}
