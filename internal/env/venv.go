package env

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/conn-castle/toil/internal/messages"
)

const (
	requirementsFile    = "requirements.txt"
	requirementsDevFile = "requirements-dev.txt"
)

// venvPython is <root>/.venv/bin/python for every kind that keeps its venv in the project.
func (e *Environment) venvPython() string {
	return filepath.Join(e.venvDir(), "bin", "python")
}

func (e *Environment) venvDir() string {
	return filepath.Join(e.root, venvDirName)
}

// createVenv runs `python -m venv` and installs packages as a separate step.
func (e *Environment) createVenv(ctx context.Context, packages []string, silent bool) error {
	python, err := resolveTool(e.deps.System, "python", e.deps.Tools.Python)
	if err != nil {
		return err
	}
	exists, err := e.Exists()
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf(messages.EnvVenvExistsFmt, ErrAlreadyExists, e.venvDir())
	}
	if err := e.run(ctx, silent, "", python, "-m", "venv", e.venvDir()); err != nil {
		return err
	}
	return e.Install(ctx, packages, silent)
}

func (e *Environment) installVenv(ctx context.Context, packages []string, silent bool) error {
	exists, err := e.Exists()
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf(messages.EnvVenvMissingFmt, ErrDoesNotExist, e.venvDir())
	}
	args := append([]string{"-m", "pip", "install"}, packages...)
	return e.run(ctx, silent, e.root, e.venvPython(), args...)
}

// ensureVenv creates the venv when it is missing.
func (e *Environment) ensureVenv(ctx context.Context, silent bool) error {
	exists, err := e.Exists()
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return e.createVenv(ctx, nil, silent)
}

// installSelfVenv relies on pip degrading `.[dev]` to `.` when no dev extra is declared.
func (e *Environment) installSelfVenv(ctx context.Context, silent bool) error {
	if err := e.ensureVenv(ctx, silent); err != nil {
		return err
	}
	return e.run(ctx, silent, e.root, e.venvPython(), "-m", "pip", "install", "-e", ".[dev]")
}

func (e *Environment) installSelfRequirements(ctx context.Context, silent bool) error {
	file, err := e.requirementsFile()
	if err != nil {
		return err
	}
	if err := e.ensureVenv(ctx, silent); err != nil {
		return err
	}
	return e.run(ctx, silent, e.root, e.venvPython(), "-m", "pip", "install", "-r", file)
}

// requirementsFile prefers requirements-dev.txt over requirements.txt.
func (e *Environment) requirementsFile() (string, error) {
	for _, name := range []string{requirementsDevFile, requirementsFile} {
		exists, err := pathExists(e.deps.System, filepath.Join(e.root, name))
		if err != nil {
			return "", err
		}
		if exists {
			return name, nil
		}
	}
	return "", fmt.Errorf(messages.EnvRequirementsFileMissingFmt, e.root)
}

func (e *Environment) installSelfFlit(ctx context.Context, silent bool) error {
	flit, err := resolveTool(e.deps.System, "flit", e.deps.Tools.Flit)
	if err != nil {
		return err
	}
	if err := e.ensureVenv(ctx, silent); err != nil {
		return err
	}
	return e.run(ctx, silent, e.root, flit, "install", "--deps", "develop", "--symlink", "--python", e.venvPython())
}
