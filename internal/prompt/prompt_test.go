package prompt

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRunForm(t *testing.T, fn func(*huh.Form) error) {
	t.Helper()
	prev := runFormFunc
	runFormFunc = fn
	t.Cleanup(func() { runFormFunc = prev })
}

func TestHuhUIRequiresTerminal(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}
	var ok bool
	require.ErrorIs(t, ui.Confirm("Sure?", &ok), ErrNotInteractive)
	var s string
	require.ErrorIs(t, ui.Select("Pick", []string{"a"}, &s), ErrNotInteractive)
	require.ErrorIs(t, ui.Input("Name", &s), ErrNotInteractive)
	require.ErrorIs(t, ui.SecretInput("Token", &s), ErrNotInteractive)
}

func TestHuhUIMapsAbort(t *testing.T) {
	stubRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })
	ui := &HuhUI{isTerminal: func() bool { return true }}
	var ok bool
	require.ErrorIs(t, ui.Confirm("Sure?", &ok), ErrAborted)
}

func TestHuhUIPassesOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	stubRunForm(t, func(*huh.Form) error { return boom })
	ui := &HuhUI{isTerminal: func() bool { return true }}
	var s string
	require.ErrorIs(t, ui.Input("Name", &s), boom)
}

func TestHuhUIRunsForm(t *testing.T) {
	calls := 0
	stubRunForm(t, func(form *huh.Form) error {
		calls++
		require.NotNil(t, form)
		return nil
	})
	ui := &HuhUI{isTerminal: func() bool { return true }}
	var s string
	require.NoError(t, ui.Select("Pick", []string{"fork", "clone"}, &s))
	assert.Equal(t, 1, calls)
}

type fakeUI struct {
	confirm bool
	choice  string
	err     error
}

func (f *fakeUI) Confirm(_ string, value *bool) error {
	*value = f.confirm
	return f.err
}

func (f *fakeUI) Select(_ string, _ []string, current *string) error {
	if f.choice != "" {
		*current = f.choice
	}
	return f.err
}

func (f *fakeUI) Input(string, *string) error       { return f.err }
func (f *fakeUI) SecretInput(string, *string) error { return f.err }

func TestConfirmHelper(t *testing.T) {
	ok, err := Confirm(&fakeUI{confirm: true}, "Remove?", false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Confirm(&fakeUI{err: ErrAborted}, "Remove?", true)
	require.ErrorIs(t, err, ErrAborted)
	assert.False(t, ok)
}

func TestChooseHelper(t *testing.T) {
	got, err := Choose(&fakeUI{}, "Fork or clone?", []string{"fork", "clone"})
	require.NoError(t, err)
	assert.Equal(t, "fork", got)

	got, err = Choose(&fakeUI{choice: "clone"}, "Fork or clone?", []string{"fork", "clone"})
	require.NoError(t, err)
	assert.Equal(t, "clone", got)

	_, err = Choose(&fakeUI{}, "Nothing", nil)
	require.Error(t, err)
}

func TestIsInteractiveRuns(t *testing.T) {
	// Test environments usually have no TTY; only check it does not panic.
	_ = IsInteractive()
}
