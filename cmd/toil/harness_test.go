package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/toil/internal/config"
	"github.com/conn-castle/toil/internal/env"
	"github.com/conn-castle/toil/internal/github"
	"github.com/conn-castle/toil/internal/proc"
	"github.com/conn-castle/toil/internal/prompt"
	"github.com/conn-castle/toil/internal/testutil"
	"github.com/conn-castle/toil/internal/workspace"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeAPI is an in-memory GitHub account for the user "octocat".
type fakeAPI struct {
	mu      sync.Mutex
	exists  map[string]bool
	repos   []github.Repo
	forks   []github.Repo
	info    *github.Repo
	forked  []string
	err     error
	onForks func(owner string, repo string)
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{exists: map[string]bool{}}
}

func (f *fakeAPI) RepoNames(_ context.Context, _ int) ([]string, error) {
	names := make([]string, 0, len(f.repos))
	for _, r := range f.repos {
		names = append(names, r.Name)
	}
	return names, f.err
}

func (f *fakeAPI) Repos(context.Context, int) ([]github.Repo, error) {
	return f.repos, f.err
}

func (f *fakeAPI) Forks(context.Context, int) ([]github.Repo, error) {
	return f.forks, f.err
}

func (f *fakeAPI) RepoExists(_ context.Context, owner string, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exists[owner+"/"+name], f.err
}

func (f *fakeAPI) RepoInfo(context.Context, string) (*github.Repo, error) {
	return f.info, f.err
}

func (f *fakeAPI) CreateFork(_ context.Context, owner string, repo string) error {
	f.mu.Lock()
	f.forked = append(f.forked, owner+"/"+repo)
	f.mu.Unlock()
	if f.onForks != nil {
		f.onForks(owner, repo)
	}
	return f.err
}

func (f *fakeAPI) setExists(slug string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exists[slug] = true
}

// fakeUI answers prompts from canned values.
type fakeUI struct {
	confirm bool
	choice  string
	inputs  map[string]string
	err     error
	asked   []string
}

func (u *fakeUI) Confirm(title string, value *bool) error {
	u.asked = append(u.asked, title)
	*value = u.confirm
	return u.err
}

func (u *fakeUI) Select(title string, _ []string, current *string) error {
	u.asked = append(u.asked, title)
	if u.choice != "" {
		*current = u.choice
	}
	return u.err
}

func (u *fakeUI) Input(title string, value *string) error {
	u.asked = append(u.asked, title)
	if v, ok := u.inputs[title]; ok {
		*value = v
	}
	return u.err
}

func (u *fakeUI) SecretInput(title string, value *string) error {
	return u.Input(title, value)
}

// fakeEnvSystem resolves every tool to /usr/bin/<name>.
type fakeEnvSystem struct {
	env.RealSystem
	home string
}

func (s fakeEnvSystem) LookPath(file string) (string, error) {
	return "/usr/bin/" + file, nil
}

func (s fakeEnvSystem) UserHomeDir() (string, error) {
	return s.home, nil
}

type harness struct {
	t           *testing.T
	home        string
	projects    string
	configPath  string
	api         *fakeAPI
	ui          *fakeUI
	runner      *testutil.RecordingRunner
	interactive bool
	opened      []string
	slept       time.Duration
}

// newHarness replaces every seam and writes a config for octocat whose projects live in a temp dir.
func newHarness(t *testing.T) *harness {
	t.Helper()
	root := t.TempDir()
	h := &harness{
		t:          t,
		home:       filepath.Join(root, "home"),
		projects:   filepath.Join(root, "projects"),
		configPath: filepath.Join(root, ".toil.toml"),
		api:        newFakeAPI(),
		ui:         &fakeUI{},
		runner:     &testutil.RecordingRunner{},
	}
	require.NoError(t, os.MkdirAll(h.projects, 0o755))
	require.NoError(t, os.MkdirAll(h.home, 0o755))
	h.writeConfig("[toil]\nprojects_dir = \"" + filepath.ToSlash(h.projects) + "\"\nusername = \"octocat\"\ntoken = \"t0ken\"\neditor = \"none\"\n")

	origInteractive, origUI, origRunner, origAPI := isInteractive, newUI, newRunner, newGitHubAPI
	origLookPath, origBrowser, origSleep, origNow, origEnvSystem := lookPath, openBrowser, sleep, now, newEnvSystem
	origNoColor := color.NoColor
	t.Cleanup(func() {
		isInteractive, newUI, newRunner, newGitHubAPI = origInteractive, origUI, origRunner, origAPI
		lookPath, openBrowser, sleep, now, newEnvSystem = origLookPath, origBrowser, origSleep, origNow, origEnvSystem
		color.NoColor = origNoColor
	})
	color.NoColor = true
	isInteractive = func() bool { return h.interactive }
	newUI = func() prompt.UI { return h.ui }
	newRunner = func(io.Writer, io.Writer) proc.Runner { return h.runner }
	newGitHubAPI = func(*config.Config) githubAPI { return h.api }
	lookPath = func(file string) (string, error) { return "/usr/bin/" + file, nil }
	openBrowser = func(url string) error {
		h.opened = append(h.opened, url)
		return nil
	}
	sleep = func(d time.Duration) { h.slept += d }
	now = func() time.Time { return fixedNow }
	newEnvSystem = func() env.System { return fakeEnvSystem{home: h.home} }
	return h
}

func (h *harness) writeConfig(content string) {
	h.t.Helper()
	require.NoError(h.t, os.WriteFile(h.configPath, []byte(content), 0o600))
}

func (h *harness) project(name string) string {
	h.t.Helper()
	path := filepath.Join(h.projects, name)
	require.NoError(h.t, os.MkdirAll(path, 0o755))
	return path
}

// run executes toil with the harness config and returns stdout.
func (h *harness) run(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"toil", "--config", h.configPath}, args...), &stdout, &stderr)
	return stdout.String(), err
}

// commands renders every recorded command as "path args...".
func (h *harness) commands() []string {
	var out []string
	for _, c := range h.runner.Calls() {
		out = append(out, c.String())
	}
	return out
}

// createsVenvPython makes `python -m venv DIR` leave DIR/bin/python behind.
func createsVenvPython(t *testing.T, cmd proc.Command) error {
	t.Helper()
	if len(cmd.Args) != 3 || cmd.Args[1] != "venv" {
		return nil
	}
	bin := filepath.Join(cmd.Args[2], "bin")
	require.NoError(t, os.MkdirAll(bin, 0o755))
	return os.WriteFile(filepath.Join(bin, "python"), nil, 0o755)
}

func requireSilentExit(t *testing.T, err error, code int) {
	t.Helper()
	var silent *SilentExitError
	if !errors.As(err, &silent) {
		t.Fatalf("expected SilentExitError, got %v", err)
	}
	if silent.Code != code {
		t.Fatalf("expected exit code %d, got %d", code, silent.Code)
	}
}

func newTestWorkspace(h *harness) *workspace.Workspace {
	return workspace.New(h.projects)
}
