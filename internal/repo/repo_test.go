package repo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/toil/internal/config"
	"github.com/conn-castle/toil/internal/env"
	"github.com/conn-castle/toil/internal/github"
	"github.com/conn-castle/toil/internal/testutil"
)

type fakeAPI struct {
	exists bool
	info   *github.Repo
	err    error
	owner  string
}

func (f *fakeAPI) RepoExists(_ context.Context, owner string, _ string) (bool, error) {
	f.owner = owner
	return f.exists, f.err
}

func (f *fakeAPI) RepoInfo(context.Context, string) (*github.Repo, error) {
	return f.info, f.err
}

func TestURLs(t *testing.T) {
	r := Repo{Owner: "octocat", Name: "toil"}
	assert.Equal(t, "https://github.com/octocat/toil.git", r.CloneURL())
	assert.Equal(t, "https://github.com/octocat/toil", r.HTMLURL())
	assert.Equal(t, "https://github.com/octocat/toil/issues", r.IssuesURL())
	assert.Equal(t, "https://github.com/octocat/toil/pulls", r.PullsURL())
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	r := Repo{Owner: "o", Name: "n", LocalPath: dir}
	assert.True(t, r.ExistsLocal())
	r.LocalPath = filepath.Join(dir, "missing")
	assert.False(t, r.ExistsLocal())

	api := &fakeAPI{exists: true}
	ok, err := r.ExistsRemote(context.Background(), api)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "o", api.owner)
}

func TestInfoRemote(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	api := &fakeAPI{exists: true, info: &github.Repo{
		Name:        "toil",
		Description: "manage projects",
		CreatedAt:   now.Add(-48 * time.Hour),
		PushedAt:    now.Add(-3 * time.Hour),
		DiskUsageKB: 2048,
		License:     "MIT License",
		Language:    "Go",
	}}
	r := Repo{Owner: "octocat", Name: "toil", LocalPath: t.TempDir()}

	info, err := r.Info(context.Background(), api, now)
	require.NoError(t, err)
	assert.Equal(t, "manage projects", info.Description)
	assert.Equal(t, "2 days ago", info.Created)
	assert.Equal(t, "3 hours ago", info.Updated)
	assert.Equal(t, "2.1 MB", info.Size)
	assert.True(t, info.Local)
	assert.True(t, info.Remote)
}

func TestInfoNegativeDiskUsage(t *testing.T) {
	api := &fakeAPI{exists: true, info: &github.Repo{Name: "odd", DiskUsageKB: -5}}
	r := Repo{Owner: "octocat", Name: "odd", LocalPath: t.TempDir()}

	info, err := r.Info(context.Background(), api, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "0 B", info.Size)
}

func TestInfoLocalOnly(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	require.NoError(t, os.Chtimes(dir, now.Add(-time.Hour), now.Add(-time.Hour)))
	r := Repo{Owner: "octocat", Name: "local", LocalPath: dir}

	info, err := r.Info(context.Background(), &fakeAPI{}, now)
	require.NoError(t, err)
	assert.True(t, info.Local)
	assert.False(t, info.Remote)
	assert.Equal(t, "1 hour ago", info.Updated)
}

func TestInfoNowhere(t *testing.T) {
	r := Repo{Owner: "octocat", Name: "ghost", LocalPath: filepath.Join(t.TempDir(), "ghost")}
	_, err := r.Info(context.Background(), &fakeAPI{}, time.Now())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInfoAPIError(t *testing.T) {
	boom := errors.New("boom")
	r := Repo{Owner: "octocat", Name: "x", LocalPath: t.TempDir()}
	_, err := r.Info(context.Background(), &fakeAPI{err: boom}, time.Now())
	require.ErrorIs(t, err, boom)
}

// pathSystem resolves every tool under bin.
type pathSystem struct {
	env.RealSystem
	bin string
}

func (s pathSystem) LookPath(file string) (string, error) {
	return filepath.Join(s.bin, file), nil
}

func TestDispatchEnv(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "environment.yml", "name: sci\n")
	cfg := config.Default()
	cfg.CondaBin = "mamba"
	r := Repo{Owner: "octocat", Name: "sci-project", LocalPath: dir}

	e, err := r.DispatchEnv(env.Deps{Tools: cfg.Tools(), Runner: &testutil.RecordingRunner{}})
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, env.KindConda, e.Kind())
	assert.Equal(t, "sci-project", e.EnvironmentName())

	r.LocalPath = t.TempDir()
	e, err = r.DispatchEnv(env.Deps{})
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestDispatchEnvUsesInjectedSystem(t *testing.T) {
	dir := t.TempDir()
	testutil.Touch(t, dir, "setup.py")
	runner := &testutil.RecordingRunner{}
	r := Repo{Owner: "octocat", Name: "lib", LocalPath: dir}

	e, err := r.DispatchEnv(env.Deps{System: pathSystem{bin: "/opt/tools"}, Runner: runner})
	require.NoError(t, err)
	require.NotNil(t, e)
	require.NoError(t, e.Create(context.Background(), nil, true))

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/opt/tools/python3 -m venv "+filepath.Join(dir, ".venv"), calls[0].String())
}
