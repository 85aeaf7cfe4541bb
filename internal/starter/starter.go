// Package starter generates minimal new-project skeletons.
package starter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/proc"
	"github.com/conn-castle/toil/internal/templates"
)

var (
	// ErrGoNotInstalled means the go toolchain is missing.
	ErrGoNotInstalled = errors.New(messages.StarterGoNotInstalled)
	// ErrCargoNotInstalled means cargo is missing.
	ErrCargoNotInstalled = errors.New(messages.StarterCargoNotInstalled)
	// ErrCookiecutterNotInstalled means cookiecutter is missing.
	ErrCookiecutterNotInstalled = errors.New(messages.StarterCookiecutterNotInstalled)
)

// Kind names a starter template.
type Kind string

const (
	Python Kind = "python"
	Go     Kind = "go"
	Rust   Kind = "rust"
)

// Kinds lists the supported starters.
func Kinds() []Kind {
	return []Kind{Python, Go, Rust}
}

// ParseKind validates a starter name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf(messages.StarterUnknownFmt, name)
}

// Options supplies the collaborators a starter needs.
type Options struct {
	// Username fills the go module path github.com/<username>/<name>.
	Username string
	LookPath func(file string) (string, error)
	Runner   proc.Runner
}

func (o Options) withDefaults() Options {
	if o.LookPath == nil {
		o.LookPath = exec.LookPath
	}
	if o.Runner == nil {
		o.Runner = proc.NewExecRunner()
	}
	return o
}

type templateData struct {
	Name string
}

// Generate creates <parent>/<name> from the starter kind.
func Generate(ctx context.Context, kind Kind, parent string, name string, opts Options) error {
	opts = opts.withDefaults()
	root := filepath.Join(parent, name)

	var tool string
	switch kind {
	case Go:
		path, err := opts.LookPath("go")
		if err != nil {
			return ErrGoNotInstalled
		}
		tool = path
	case Rust:
		path, err := opts.LookPath("cargo")
		if err != nil {
			return ErrCargoNotInstalled
		}
		tool = path
	case Python:
	default:
		return fmt.Errorf(messages.StarterUnknownFmt, string(kind))
	}

	if _, err := os.Stat(root); err == nil {
		return fmt.Errorf(messages.StarterProjectExistsFmt, root)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf(messages.StarterCreateDirFmt, root, err)
	}

	files := map[string]string{"README.md": "README.md.tmpl"}
	switch kind {
	case Python:
		files["requirements.txt"] = "requirements.txt.tmpl"
		files[name+".py"] = "module.py.tmpl"
	case Go:
		module := fmt.Sprintf("github.com/%s/%s", opts.Username, name)
		cmd := proc.Command{Path: tool, Args: []string{"mod", "init", module}, Dir: root}
		if err := opts.Runner.Run(ctx, cmd); err != nil {
			return err
		}
		files["main.go"] = "main.go.tmpl"
	case Rust:
		cmd := proc.Command{Path: tool, Args: []string{"init", "--vcs", "none"}, Dir: root}
		if err := opts.Runner.Run(ctx, cmd); err != nil {
			return err
		}
	}
	return writeTemplates(root, string(kind), files, templateData{Name: name})
}

func writeTemplates(root string, kind string, files map[string]string, data templateData) error {
	for dest, src := range files {
		content, err := templates.Render(filepath.ToSlash(filepath.Join("starters", kind, src)), data)
		if err != nil {
			return err
		}
		path := filepath.Join(root, dest)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf(messages.StarterWriteFileFmt, path, err)
		}
	}
	return nil
}

// Cookiecutter renders a cookiecutter template URL into dir.
func Cookiecutter(ctx context.Context, url string, dir string, opts Options) error {
	opts = opts.withDefaults()
	path, err := opts.LookPath("cookiecutter")
	if err != nil {
		return ErrCookiecutterNotInstalled
	}
	return opts.Runner.Run(ctx, proc.Command{Path: path, Args: []string{url, "--output-dir", dir}, Dir: dir})
}
