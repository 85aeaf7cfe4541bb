package starter

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/toil/internal/testutil"
)

func lookAll(file string) (string, error) { return "/usr/bin/" + file, nil }

func lookNone(string) (string, error) { return "", exec.ErrNotFound }

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("rust")
	require.NoError(t, err)
	assert.Equal(t, Rust, k)
	_, err = ParseKind("java")
	require.Error(t, err)
}

func TestPythonStarter(t *testing.T) {
	parent := t.TempDir()
	runner := &testutil.RecordingRunner{}
	require.NoError(t, Generate(context.Background(), Python, parent, "demo", Options{LookPath: lookNone, Runner: runner}))

	root := filepath.Join(parent, "demo")
	assert.Equal(t, "# demo\n", readFile(t, filepath.Join(root, "README.md")))
	assert.Contains(t, readFile(t, filepath.Join(root, "requirements.txt")), "Put your requirements here")
	assert.Contains(t, readFile(t, filepath.Join(root, "demo.py")), "def hello")
	assert.Empty(t, runner.Calls())
}

func TestGoStarter(t *testing.T) {
	parent := t.TempDir()
	runner := &testutil.RecordingRunner{}
	err := Generate(context.Background(), Go, parent, "svc", Options{Username: "octocat", LookPath: lookAll, Runner: runner})
	require.NoError(t, err)

	root := filepath.Join(parent, "svc")
	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/usr/bin/go mod init github.com/octocat/svc", calls[0].String())
	assert.Equal(t, root, calls[0].Dir)
	assert.Contains(t, readFile(t, filepath.Join(root, "main.go")), `fmt.Println("Hello World")`)
}

func TestRustStarter(t *testing.T) {
	parent := t.TempDir()
	runner := &testutil.RecordingRunner{}
	require.NoError(t, Generate(context.Background(), Rust, parent, "crab", Options{LookPath: lookAll, Runner: runner}))
	assert.Equal(t, "/usr/bin/cargo init --vcs none", runner.Calls()[0].String())
	assert.Equal(t, "# crab\n", readFile(t, filepath.Join(parent, "crab", "README.md")))
}

func TestStarterToolMissing(t *testing.T) {
	parent := t.TempDir()
	require.ErrorIs(t, Generate(context.Background(), Go, parent, "x", Options{LookPath: lookNone}), ErrGoNotInstalled)
	require.ErrorIs(t, Generate(context.Background(), Rust, parent, "x", Options{LookPath: lookNone}), ErrCargoNotInstalled)
	_, err := os.Stat(filepath.Join(parent, "x"))
	assert.True(t, os.IsNotExist(err))
}

func TestStarterRefusesExistingDir(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(parent, "taken"), 0o755))
	err := Generate(context.Background(), Python, parent, "taken", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCookiecutter(t *testing.T) {
	dir := t.TempDir()
	runner := &testutil.RecordingRunner{}
	require.NoError(t, Cookiecutter(context.Background(), "https://github.com/x/cookie", dir, Options{LookPath: lookAll, Runner: runner}))
	assert.Equal(t, "/usr/bin/cookiecutter https://github.com/x/cookie --output-dir "+dir, runner.Calls()[0].String())

	err := Cookiecutter(context.Background(), "u", dir, Options{LookPath: lookNone, Runner: runner})
	require.ErrorIs(t, err, ErrCookiecutterNotInstalled)
}
