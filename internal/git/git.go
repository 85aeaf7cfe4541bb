// Package git wraps the git binary.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/proc"
)

// ErrNotInstalled means git could not be found.
var ErrNotInstalled = errors.New(messages.GitNotInstalled)

// GitHubBaseURL prefixes upstream remotes.
const GitHubBaseURL = "https://github.com"

// Git runs git subcommands through a proc.Runner.
type Git struct {
	bin    string
	runner proc.Runner
}

// LookPathFunc matches exec.LookPath.
type LookPathFunc func(file string) (string, error)

// New locates bin (default "git") with lookPath and returns a Git using runner.
func New(bin string, lookPath LookPathFunc, runner proc.Runner) (*Git, error) {
	if strings.TrimSpace(bin) == "" {
		bin = "git"
	}
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(bin)
	if err != nil {
		return nil, fmt.Errorf(messages.GitNotInstalledFmt, ErrNotInstalled, bin)
	}
	if runner == nil {
		runner = proc.NewExecRunner()
	}
	return &Git{bin: path, runner: runner}, nil
}

// Bin returns the resolved git path.
func (g *Git) Bin() string {
	return g.bin
}

// Clone clones url into a new directory under dir.
func (g *Git) Clone(ctx context.Context, url string, dir string, silent bool) error {
	return g.run(ctx, dir, silent, "clone", url)
}

// Init creates an empty repo in dir.
func (g *Git) Init(ctx context.Context, dir string, silent bool) error {
	return g.run(ctx, dir, silent, "init")
}

// Add stages everything in dir.
func (g *Git) Add(ctx context.Context, dir string, silent bool) error {
	return g.run(ctx, dir, silent, "add", "-A")
}

// Commit records the staged state. An empty message uses the project creation default.
func (g *Git) Commit(ctx context.Context, dir string, message string, silent bool) error {
	if message == "" {
		message = messages.GitDefaultCommitMsg
	}
	return g.run(ctx, dir, silent, "commit", "-m", message)
}

// SetUpstream adds an "upstream" remote pointing at owner/repo on GitHub, e.g. for a cloned fork.
func (g *Git) SetUpstream(ctx context.Context, owner string, repo string, dir string, silent bool) error {
	url := fmt.Sprintf("%s/%s/%s.git", GitHubBaseURL, owner, repo)
	return g.run(ctx, dir, silent, "remote", "add", messages.GitUpstreamRemoteName, url)
}

// InitialCommit runs init, add, and commit in dir.
func (g *Git) InitialCommit(ctx context.Context, dir string, silent bool) error {
	if err := g.Init(ctx, dir, silent); err != nil {
		return err
	}
	if err := g.Add(ctx, dir, silent); err != nil {
		return err
	}
	return g.Commit(ctx, dir, "", silent)
}

func (g *Git) run(ctx context.Context, dir string, silent bool, args ...string) error {
	return g.runner.Run(ctx, proc.Command{Path: g.bin, Args: args, Dir: dir, Output: proc.OutputFor(silent)})
}
