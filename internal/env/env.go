// Package env provisions Python environments for a project directory.
//
// The set of environment kinds is closed: a single Environment value carries its
// Kind and every operation switches on it. External tools are located through the
// injected Tools and System, and spawned one at a time through a proc.Runner.
// The package never logs or prints.
package env

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/proc"
)

// Kind identifies an environment toolchain.
type Kind int

const (
	// KindVenv is a plain .venv built with the standard library venv module.
	KindVenv Kind = iota + 1
	// KindRequirements is a .venv populated from requirements-dev.txt or requirements.txt.
	KindRequirements
	// KindConda is a named environment in the conda envs store.
	KindConda
	// KindPoetry is a project-local venv managed by poetry.
	KindPoetry
	// KindFlit is a .venv with the project installed by flit.
	KindFlit
)

// String returns the fixed tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindVenv:
		return "venv"
	case KindRequirements:
		return "requirements file"
	case KindConda:
		return "conda"
	case KindPoetry:
		return "poetry"
	case KindFlit:
		return "flit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

const (
	venvDirName         = ".venv"
	environmentFileName = "environment.yml"
	defaultPython       = "python3"
)

// Tools names the external binaries environments invoke.
// An empty field means the tool is not configured.
type Tools struct {
	// Python builds plain venvs. Defaults to python3.
	Python string
	Conda  string
	Poetry string
	Flit   string
	// CondaRoot overrides the probed conda installation directory.
	CondaRoot string
}

// Deps bundles the collaborators an Environment needs.
type Deps struct {
	Tools  Tools
	System System
	Runner proc.Runner
}

func (d Deps) withDefaults() Deps {
	if d.System == nil {
		d.System = RealSystem{}
	}
	if d.Runner == nil {
		d.Runner = proc.NewExecRunner()
	}
	if strings.TrimSpace(d.Tools.Python) == "" {
		d.Tools.Python = defaultPython
	}
	return d
}

// Environment is one provisioned (or provisionable) Python environment.
// Its executable path is derived from the project path and kind and cannot be set.
type Environment struct {
	kind      Kind
	root      string
	condaName string
	deps      Deps
}

func newEnvironment(kind Kind, root string, deps Deps) *Environment {
	return &Environment{kind: kind, root: absPath(root), deps: deps.withDefaults()}
}

// NewVenv returns a plain venv environment rooted at root.
func NewVenv(root string, deps Deps) *Environment {
	return newEnvironment(KindVenv, root, deps)
}

// NewRequirements returns a requirements-file environment rooted at root.
func NewRequirements(root string, deps Deps) *Environment {
	return newEnvironment(KindRequirements, root, deps)
}

// NewConda returns the conda environment named name for the project at root.
func NewConda(root string, name string, deps Deps) *Environment {
	e := newEnvironment(KindConda, root, deps)
	e.condaName = name
	return e
}

// NewPoetry returns a poetry environment rooted at root.
func NewPoetry(root string, deps Deps) *Environment {
	return newEnvironment(KindPoetry, root, deps)
}

// NewFlit returns a flit environment rooted at root.
func NewFlit(root string, deps Deps) *Environment {
	return newEnvironment(KindFlit, root, deps)
}

// Kind returns the environment kind.
func (e *Environment) Kind() Kind {
	return e.kind
}

// Name returns the fixed tag identifying the kind.
func (e *Environment) Name() string {
	return e.kind.String()
}

// ProjectPath returns the absolute project directory.
func (e *Environment) ProjectPath() string {
	return e.root
}

// EnvironmentName returns the conda environment name; empty for other kinds.
func (e *Environment) EnvironmentName() string {
	return e.condaName
}

// Executable returns the interpreter path inside the environment.
func (e *Environment) Executable() (string, error) {
	switch e.kind {
	case KindVenv, KindRequirements, KindPoetry, KindFlit:
		return e.venvPython(), nil
	case KindConda:
		return e.condaPython()
	default:
		return "", fmt.Errorf(messages.EnvUnknownKindFmt, int(e.kind))
	}
}

// Exists reports whether the environment is present on disk.
// A project directory that does not exist yet is simply false.
func (e *Environment) Exists() (bool, error) {
	switch e.kind {
	case KindVenv, KindRequirements, KindPoetry, KindFlit:
		return pathExists(e.deps.System, e.venvPython())
	case KindConda:
		return e.condaExists()
	default:
		return false, fmt.Errorf(messages.EnvUnknownKindFmt, int(e.kind))
	}
}

// Create builds a fresh environment and installs packages into it when given.
func (e *Environment) Create(ctx context.Context, packages []string, silent bool) error {
	switch e.kind {
	case KindVenv, KindRequirements, KindFlit:
		return e.createVenv(ctx, packages, silent)
	case KindConda:
		return e.createConda(ctx, packages, silent)
	case KindPoetry:
		return fmt.Errorf(messages.EnvPoetryCreateFmt, ErrNotImplemented)
	default:
		return fmt.Errorf(messages.EnvUnknownKindFmt, int(e.kind))
	}
}

// Install adds packages to an existing environment. An empty package list is a no-op.
// Package specifiers are passed to the underlying tool verbatim.
func (e *Environment) Install(ctx context.Context, packages []string, silent bool) error {
	if len(packages) == 0 {
		return nil
	}
	switch e.kind {
	case KindVenv, KindRequirements, KindFlit:
		return e.installVenv(ctx, packages, silent)
	case KindConda:
		return e.installConda(ctx, packages, silent)
	case KindPoetry:
		return e.installPoetry(ctx, packages, silent)
	default:
		return fmt.Errorf(messages.EnvUnknownKindFmt, int(e.kind))
	}
}

// InstallSelf installs the project at ProjectPath into its own environment,
// creating the environment first where the kind requires it.
func (e *Environment) InstallSelf(ctx context.Context, silent bool) error {
	switch e.kind {
	case KindVenv:
		return e.installSelfVenv(ctx, silent)
	case KindRequirements:
		return e.installSelfRequirements(ctx, silent)
	case KindConda:
		return CreateFromYML(ctx, e.root, e.deps, silent)
	case KindPoetry:
		return e.installSelfPoetry(ctx, silent)
	case KindFlit:
		return e.installSelfFlit(ctx, silent)
	default:
		return fmt.Errorf(messages.EnvUnknownKindFmt, int(e.kind))
	}
}

// ExportYML writes the conda environment's history export to <project>/environment.yml.
func (e *Environment) ExportYML(ctx context.Context) error {
	data, err := e.ExportedYML(ctx)
	if err != nil {
		return err
	}
	return e.WriteEnvironmentFile(data)
}

// EnvironmentFile returns <project>/environment.yml.
func (e *Environment) EnvironmentFile() string {
	return filepath.Join(e.root, environmentFileName)
}

// WriteEnvironmentFile replaces the project's environment.yml with data, e.g. a previewed export.
func (e *Environment) WriteEnvironmentFile(data []byte) error {
	path := e.EnvironmentFile()
	if err := e.deps.System.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.EnvWriteEnvironmentFileFmt, path, err)
	}
	return nil
}

// ReadEnvironmentFile returns the project's current environment.yml, or nil when there is none.
func (e *Environment) ReadEnvironmentFile() ([]byte, error) {
	path := e.EnvironmentFile()
	data, err := e.deps.System.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.EnvReadEnvironmentFileFmt, path, err)
	}
	return data, nil
}

// ExportedYML returns what ExportYML would write without touching the project.
func (e *Environment) ExportedYML(ctx context.Context) ([]byte, error) {
	if e.kind != KindConda {
		return nil, fmt.Errorf(messages.EnvExportUnsupportedFmt, ErrUnsupportedOperation, e.Name())
	}
	return e.exportConda(ctx)
}

func (e *Environment) run(ctx context.Context, silent bool, dir string, path string, args ...string) error {
	return e.deps.Runner.Run(ctx, proc.Command{Path: path, Args: args, Dir: dir, Output: proc.OutputFor(silent)})
}

// resolveTool locates bin on $PATH, failing with ErrToolNotInstalled before anything is spawned.
func resolveTool(sys System, label string, bin string) (string, error) {
	if strings.TrimSpace(bin) == "" {
		return "", fmt.Errorf(messages.EnvToolNotInstalledFmt, ErrToolNotInstalled, label)
	}
	path, err := sys.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf(messages.EnvToolNotFoundOnPathFmt, ErrToolNotInstalled, bin)
	}
	return path, nil
}

func absPath(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		return filepath.Clean(root)
	}
	return abs
}
