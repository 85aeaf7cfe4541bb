// Package proc spawns external tools one child process at a time.
package proc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/conn-castle/toil/internal/messages"
)

// Output selects where a child process writes its standard streams.
type Output int

const (
	// OutputInherit passes the child's stdout/stderr through to the runner's writers.
	OutputInherit Output = iota
	// OutputDiscard drops both streams.
	OutputDiscard
)

// OutputFor maps a silent flag onto an Output mode.
func OutputFor(silent bool) Output {
	if silent {
		return OutputDiscard
	}
	return OutputInherit
}

// String returns the mode name.
func (o Output) String() string {
	if o == OutputDiscard {
		return "discard"
	}
	return "inherit"
}

// Command describes a single external invocation.
type Command struct {
	// Path is the binary name or path.
	Path string
	Args []string
	// Dir is the working directory; empty means the caller's cwd.
	Dir    string
	Output Output
}

// String renders the command line for error messages and debug logs.
func (c Command) String() string {
	parts := append([]string{c.Path}, c.Args...)
	return strings.Join(parts, " ")
}

// Runner spawns a child process and waits for it to finish.
type Runner interface {
	// Run executes cmd, returning a wrapped error on spawn failure or non-zero exit.
	Run(ctx context.Context, cmd Command) error
	// Capture executes cmd and returns its stdout. cmd.Output applies to stderr only.
	Capture(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner that passes output through to the process streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run spawns cmd and waits for it.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	c, err := r.build(ctx, cmd)
	if err != nil {
		return err
	}
	c.Stdout, c.Stderr = r.streams(cmd.Output)
	if err := c.Run(); err != nil {
		return fmt.Errorf(messages.ProcRunFailedFmt, cmd, err)
	}
	return nil
}

// Capture spawns cmd, waits for it, and returns everything it wrote to stdout.
func (r *ExecRunner) Capture(ctx context.Context, cmd Command) ([]byte, error) {
	c, err := r.build(ctx, cmd)
	if err != nil {
		return nil, err
	}
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	_, inherited := r.streams(cmd.Output)
	c.Stderr = io.MultiWriter(&stderr, inherited)
	if err := c.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf(messages.ProcCaptureFailedFmt, cmd, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

func (r *ExecRunner) build(ctx context.Context, cmd Command) (*exec.Cmd, error) {
	if strings.TrimSpace(cmd.Path) == "" {
		return nil, fmt.Errorf(messages.ProcCommandRequired)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...) //nolint:gosec // binaries come from user config
	c.Dir = cmd.Dir
	c.Stdin = os.Stdin
	return c, nil
}

// streams resolves the writers for an output mode.
func (r *ExecRunner) streams(mode Output) (io.Writer, io.Writer) {
	if mode == OutputDiscard {
		return io.Discard, io.Discard
	}
	stdout, stderr := r.Stdout, r.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdout, stderr
}
