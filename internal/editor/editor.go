// Package editor opens a project directory in a directory-aware editor.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/proc"
)

// ErrNotConfigured means no editor binary was given.
var ErrNotConfigured = errors.New(messages.EditorNotConfigured)

// Launch runs `<bin> <path>`, e.g. `code ~/projects/toil`.
// bin may carry arguments ("code --new-window").
func Launch(ctx context.Context, runner proc.Runner, bin string, path string) error {
	fields := strings.Fields(bin)
	if len(fields) == 0 {
		return ErrNotConfigured
	}
	args := append(fields[1:], path)
	if err := runner.Run(ctx, proc.Command{Path: fields[0], Args: args}); err != nil {
		return fmt.Errorf(messages.EditorLaunchFmt, fields[0], err)
	}
	return nil
}
