// Package prompt asks the user questions in the terminal.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/conn-castle/toil/internal/messages"
)

var (
	// ErrNotInteractive means a prompt was needed but stdin/stdout is not a terminal.
	ErrNotInteractive = errors.New(messages.PromptRequiresTerminal)
	// ErrAborted means the user cancelled the prompt.
	ErrAborted = errors.New(messages.PromptAborted)
)

// UI defines the interaction methods.
type UI interface {
	Confirm(title string, value *bool) error
	Select(title string, options []string, current *string) error
	Input(title string, value *string) error
	SecretInput(title string, value *string) error
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI returns a UI gated on IsInteractive.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: IsInteractive}
}

func (ui *HuhUI) runForm(form *huh.Form) error {
	checker := ui.isTerminal
	if checker == nil {
		checker = IsInteractive
	}
	if !checker() {
		return ErrNotInteractive
	}
	form.WithOutput(os.Stderr)
	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(value),
	)))
}

// Select renders a single-choice prompt.
func (ui *HuhUI) Select(title string, options []string, current *string) error {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}
	return ui.runForm(huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(opts...).Value(current),
	)))
}

// Input renders a plain text input prompt.
func (ui *HuhUI) Input(title string, value *string) error {
	return ui.runForm(huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Value(value),
	)))
}

// SecretInput renders a masked input prompt.
func (ui *HuhUI) SecretInput(title string, value *string) error {
	return ui.runForm(huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Value(value).EchoMode(huh.EchoModePassword),
	)))
}

// Confirm asks a yes/no question through ui, starting from def.
func Confirm(ui UI, title string, def bool) (bool, error) {
	value := def
	if err := ui.Confirm(title, &value); err != nil {
		return false, err
	}
	return value, nil
}

// Choose asks the user to pick one of options, starting from the first.
func Choose(ui UI, title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New(messages.PromptNoOptions)
	}
	value := options[0]
	if err := ui.Select(title, options, &value); err != nil {
		return "", err
	}
	return value, nil
}
