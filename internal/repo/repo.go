// Package repo models a project that may exist locally, on GitHub, or both.
package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/conn-castle/toil/internal/env"
	"github.com/conn-castle/toil/internal/github"
	"github.com/conn-castle/toil/internal/messages"
)

// ErrNotFound means the repo exists neither locally nor on GitHub.
var ErrNotFound = errors.New(messages.RepoNotFound)

// API is the subset of the GitHub client a Repo needs.
type API interface {
	RepoExists(ctx context.Context, owner string, name string) (bool, error)
	RepoInfo(ctx context.Context, name string) (*github.Repo, error)
}

// Repo is a project identified by GitHub owner and name, with the path it has
// (or would have) on the local filesystem.
type Repo struct {
	Owner     string
	Name      string
	LocalPath string
}

// CloneURL is the URL passed to git clone.
func (r Repo) CloneURL() string {
	return r.HTMLURL() + ".git"
}

// HTMLURL is the repo homepage.
func (r Repo) HTMLURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", r.Owner, r.Name)
}

// IssuesURL is the repo issues page.
func (r Repo) IssuesURL() string {
	return r.HTMLURL() + "/issues"
}

// PullsURL is the repo pull requests page.
func (r Repo) PullsURL() string {
	return r.HTMLURL() + "/pulls"
}

// ExistsLocal reports whether LocalPath exists.
func (r Repo) ExistsLocal() bool {
	_, err := os.Stat(r.LocalPath)
	return err == nil
}

// ExistsRemote reports whether Owner/Name exists on GitHub.
func (r Repo) ExistsRemote(ctx context.Context, api API) (bool, error) {
	return api.RepoExists(ctx, r.Owner, r.Name)
}

// DispatchEnv detects the project's Python toolchain at LocalPath. A conda
// environment is named after the repo. It returns nil when no environment applies.
func (r Repo) DispatchEnv(deps env.Deps) (*env.Environment, error) {
	return env.Dispatch(r.LocalPath, r.Name, deps)
}

// Info is a human-readable summary of a repo.
type Info struct {
	Name        string
	Description string
	Created     string
	Updated     string
	Size        string
	License     string
	Language    string
	Local       bool
	Remote      bool
}

// Info summarises the repo, preferring GitHub metadata and falling back to the local directory.
// now anchors the relative times.
func (r Repo) Info(ctx context.Context, api API, now time.Time) (Info, error) {
	remote, err := r.ExistsRemote(ctx, api)
	if err != nil {
		return Info{}, err
	}
	local := r.ExistsLocal()

	switch {
	case remote:
		info := Info{Name: r.Name, Local: local, Remote: true}
		meta, err := api.RepoInfo(ctx, r.Name)
		if err != nil {
			return Info{}, err
		}
		if meta != nil {
			info.Description = meta.Description
			info.Created = relTime(meta.CreatedAt, now)
			info.Updated = relTime(meta.PushedAt, now)
			info.Size = humanize.Bytes(uint64(max(meta.DiskUsageKB, 0)) * 1024)
			info.License = meta.License
			info.Language = meta.Language
		}
		return info, nil
	case local:
		stat, err := os.Stat(r.LocalPath)
		if err != nil {
			return Info{}, fmt.Errorf(messages.RepoStatFmt, r.LocalPath, err)
		}
		return Info{Name: r.Name, Updated: relTime(stat.ModTime(), now), Local: true}, nil
	default:
		return Info{}, fmt.Errorf(messages.RepoNotFoundFmt, ErrNotFound, r.Name)
	}
}

func relTime(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
