// Package workspace operates on the set of projects under the projects directory.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/repo"
)

// DefaultConcurrency caps concurrent clones and removals.
const DefaultConcurrency = 8

// Cloner clones a repository into a parent directory.
type Cloner interface {
	Clone(ctx context.Context, url string, dir string, silent bool) error
}

// Workspace is the projects directory.
type Workspace struct {
	Dir         string
	Concurrency int
}

// New returns a Workspace rooted at dir.
func New(dir string) *Workspace {
	return &Workspace{Dir: dir, Concurrency: DefaultConcurrency}
}

// Local returns the sorted names of non-hidden directories under Dir.
// A missing projects directory has no projects.
func (w *Workspace) Local() ([]string, error) {
	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.WorkspaceReadDirFmt, w.Dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)
	return names, nil
}

// Path returns where project name lives.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Repo returns the repo for project name owned by owner.
func (w *Workspace) Repo(owner string, name string) repo.Repo {
	return repo.Repo{Owner: owner, Name: name, LocalPath: w.Path(name)}
}

// Remove deletes the named projects concurrently.
func (w *Workspace) Remove(ctx context.Context, names []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.limit())
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := w.Path(name)
			if err := os.RemoveAll(path); err != nil {
				return fmt.Errorf(messages.WorkspaceRemoveFmt, path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Clone clones repos into Dir concurrently with output discarded.
func (w *Workspace) Clone(ctx context.Context, cloner Cloner, repos []repo.Repo) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf(messages.WorkspaceReadDirFmt, w.Dir, err)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.limit())
	for _, r := range repos {
		g.Go(func() error {
			if err := cloner.Clone(ctx, r.CloneURL(), w.Dir, true); err != nil {
				return fmt.Errorf(messages.WorkspaceCloneFmt, r.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (w *Workspace) limit() int {
	if w.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return w.Concurrency
}

// Diff returns the remote names missing from local, sorted.
func Diff(local []string, remote []string) []string {
	have := make(map[string]struct{}, len(local))
	for _, name := range local {
		have[name] = struct{}{}
	}
	var missing []string
	for _, name := range remote {
		if _, ok := have[name]; !ok {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)
	return missing
}

// Keep returns the names in all that are not in keep, preserving order.
func Keep(all []string, keep []string) []string {
	var out []string
	for _, name := range all {
		if !slices.Contains(keep, name) {
			out = append(out, name)
		}
	}
	return out
}

// Split partitions wanted into names present in have and names that are not.
func Split(wanted []string, have []string) (found []string, missing []string) {
	for _, name := range wanted {
		if slices.Contains(have, name) {
			found = append(found, name)
		} else {
			missing = append(missing, name)
		}
	}
	return found, missing
}
