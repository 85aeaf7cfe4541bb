package workspace

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/toil/internal/repo"
)

type fakeCloner struct {
	mu   sync.Mutex
	urls []string
	fail string
}

func (f *fakeCloner) Clone(_ context.Context, url string, dir string, silent bool) error {
	if !silent {
		return errors.New("expected silent clone")
	}
	if url == f.fail {
		return errors.New("clone failed")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	return os.MkdirAll(filepath.Join(dir, filepath.Base(url)), 0o755)
}

func TestLocal(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta", "alpha", ".hidden"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), nil, 0o644))

	names, err := New(dir).Local()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestLocalMissingDir(t *testing.T) {
	names, err := New(filepath.Join(t.TempDir(), "nope")).Local()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, name, "src"), 0o755))
	}
	w := New(dir)
	require.NoError(t, w.Remove(context.Background(), []string{"a", "c"}))

	names, err := w.Local()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names)
}

func TestClone(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "projects")
	w := New(dir)
	w.Concurrency = 2
	cloner := &fakeCloner{}
	repos := []repo.Repo{w.Repo("octocat", "one"), w.Repo("octocat", "two"), w.Repo("octocat", "three")}

	require.NoError(t, w.Clone(context.Background(), cloner, repos))
	sort.Strings(cloner.urls)
	assert.Equal(t, []string{
		"https://github.com/octocat/one.git",
		"https://github.com/octocat/three.git",
		"https://github.com/octocat/two.git",
	}, cloner.urls)
}

func TestCloneError(t *testing.T) {
	w := New(t.TempDir())
	cloner := &fakeCloner{fail: "https://github.com/octocat/bad.git"}
	err := w.Clone(context.Background(), cloner, []repo.Repo{w.Repo("octocat", "bad")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clone bad")
}

func TestDiffKeepSplit(t *testing.T) {
	assert.Equal(t, []string{"b", "d"}, Diff([]string{"a", "c"}, []string{"d", "a", "b", "c"}))
	assert.Nil(t, Diff([]string{"a"}, []string{"a"}))

	assert.Equal(t, []string{"b", "c"}, Keep([]string{"a", "b", "c"}, []string{"a"}))

	found, missing := Split([]string{"a", "x", "b"}, []string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, found)
	assert.Equal(t, []string{"x"}, missing)
}
