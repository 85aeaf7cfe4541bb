package testutil

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/toil/internal/proc"
)

func TestWriteStubWithExit(t *testing.T) {
	for _, code := range []int{0, 3} {
		stub := WriteStubWithExit(t, t.TempDir(), "conda", code)
		err := exec.Command(stub).Run()
		if code == 0 {
			require.NoError(t, err)
			continue
		}
		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, code, exitErr.ExitCode())
	}
}

func TestWriteScriptIsExecutable(t *testing.T) {
	dir := t.TempDir()
	script := WriteScript(t, dir, "poetry", "echo \"$@\" > \"$(dirname \"$0\")/args\"\n")

	info, err := os.Stat(script)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	require.NoError(t, exec.Command(script, "add", "requests").Run())
	data, err := os.ReadFile(filepath.Join(dir, "args"))
	require.NoError(t, err)
	assert.Equal(t, "add requests\n", string(data))
}

func TestWriteFileAndTouchCreateParents(t *testing.T) {
	dir := t.TempDir()
	yml := WriteFile(t, dir, filepath.Join("proj", "environment.yml"), "name: proj\n")
	marker := Touch(t, dir, filepath.Join("other", "setup.py"))

	data, err := os.ReadFile(yml)
	require.NoError(t, err)
	assert.Equal(t, "name: proj\n", string(data))
	info, err := os.Stat(marker)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestRecordingRunner(t *testing.T) {
	r := &RecordingRunner{Hook: func(cmd proc.Command) ([]byte, error) {
		if cmd.Path == "fail" {
			return nil, errors.New("boom")
		}
		return []byte("out:" + cmd.Path), nil
	}}

	out, err := r.Capture(context.Background(), proc.Command{Path: "conda", Args: []string{"env", "list"}})
	require.NoError(t, err)
	assert.Equal(t, "out:conda", string(out))
	assert.EqualError(t, r.Run(context.Background(), proc.Command{Path: "fail"}), "boom")

	calls := r.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "conda env list", calls[0].String())
	assert.Equal(t, "fail", calls[1].Path)
}

func TestRecordingRunnerWithoutHook(t *testing.T) {
	r := &RecordingRunner{}
	out, err := r.Capture(context.Background(), proc.Command{Path: "git"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestWithWorkingDirRestores(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)
	target := t.TempDir()

	var inside string
	WithWorkingDir(t, target, func() {
		inside, err = os.Getwd()
		require.NoError(t, err)
	})

	wantInside, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	gotInside, err := filepath.EvalSymlinks(inside)
	require.NoError(t, err)
	assert.Equal(t, wantInside, gotInside)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
