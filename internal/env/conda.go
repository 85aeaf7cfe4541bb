package env

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/proc"
)

// condaInstallDirs are probed under the home directory in this order.
var condaInstallDirs = []string{"anaconda3", "miniconda3", "miniforge3", "mambaforge"}

// condaEnvsDir resolves the shared envs store of the conda installation.
func (e *Environment) condaEnvsDir() (string, error) {
	sys := e.deps.System
	if root := strings.TrimSpace(e.deps.Tools.CondaRoot); root != "" {
		ok, err := isDir(sys, root)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf(messages.EnvCondaRootMissingFmt, ErrUnsupportedCondaInstallation, root)
		}
		return filepath.Join(root, "envs"), nil
	}

	home, err := sys.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf(messages.EnvResolveHomeFmt, err)
	}
	checked := make([]string, 0, len(condaInstallDirs))
	for _, name := range condaInstallDirs {
		candidate := filepath.Join(home, name)
		ok, err := isDir(sys, candidate)
		if err != nil {
			return "", err
		}
		if ok {
			return filepath.Join(candidate, "envs"), nil
		}
		checked = append(checked, candidate)
	}
	return "", fmt.Errorf(messages.EnvCondaUnsupportedFmt, ErrUnsupportedCondaInstallation, strings.Join(checked, ", "))
}

func (e *Environment) condaPython() (string, error) {
	envs, err := e.condaEnvsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(envs, e.condaName, "bin", "python"), nil
}

func (e *Environment) condaExists() (bool, error) {
	envs, err := e.condaEnvsDir()
	if err != nil {
		return false, err
	}
	return isDir(e.deps.System, filepath.Join(envs, e.condaName))
}

func (e *Environment) createConda(ctx context.Context, packages []string, silent bool) error {
	conda, err := resolveTool(e.deps.System, "conda", e.deps.Tools.Conda)
	if err != nil {
		return err
	}
	exists, err := e.condaExists()
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf(messages.EnvCondaExistsFmt, ErrAlreadyExists, e.condaName)
	}
	args := append([]string{"create", "-y", "--name", e.condaName, "python=3"}, packages...)
	return e.run(ctx, silent, "", conda, args...)
}

func (e *Environment) installConda(ctx context.Context, packages []string, silent bool) error {
	conda, err := resolveTool(e.deps.System, "conda", e.deps.Tools.Conda)
	if err != nil {
		return err
	}
	exists, err := e.condaExists()
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf(messages.EnvCondaMissingInstallFmt, ErrDoesNotExist, e.condaName)
	}
	args := append([]string{"install", "-y", "--name", e.condaName}, packages...)
	return e.run(ctx, silent, "", conda, args...)
}

func (e *Environment) exportConda(ctx context.Context) ([]byte, error) {
	conda, err := resolveTool(e.deps.System, "conda", e.deps.Tools.Conda)
	if err != nil {
		return nil, err
	}
	exists, err := e.condaExists()
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf(messages.EnvCondaMissingExportFmt, ErrDoesNotExist, e.condaName)
	}
	out, err := e.deps.Runner.Capture(ctx, proc.Command{
		Path:   conda,
		Args:   []string{"env", "export", "--from-history", "--name", e.condaName},
		Output: proc.OutputDiscard,
	})
	if err != nil {
		return nil, fmt.Errorf(messages.EnvExportCommandFmt, e.condaName, err)
	}
	return out, nil
}

// EnvironmentFileName reads <projectPath>/environment.yml and returns its declared name.
func EnvironmentFileName(projectPath string, sys System) (string, error) {
	if sys == nil {
		sys = RealSystem{}
	}
	path := filepath.Join(absPath(projectPath), environmentFileName)
	data, err := sys.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf(messages.EnvReadEnvironmentFileFmt, path, err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf(messages.EnvParseEnvironmentFileFmt, ErrBadEnvironmentFile, path, err)
	}
	name, ok := doc["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return "", fmt.Errorf(messages.EnvEnvironmentFileNameFmt, ErrBadEnvironmentFile, path)
	}
	return name, nil
}

// CreateFromYML materializes the conda environment described by <projectPath>/environment.yml.
// It fails before spawning anything when conda is missing, the file has no string name,
// or an environment with that name already exists.
func CreateFromYML(ctx context.Context, projectPath string, deps Deps, silent bool) error {
	deps = deps.withDefaults()
	conda, err := resolveTool(deps.System, "conda", deps.Tools.Conda)
	if err != nil {
		return err
	}
	name, err := EnvironmentFileName(projectPath, deps.System)
	if err != nil {
		return err
	}
	e := NewConda(projectPath, name, deps)
	exists, err := e.condaExists()
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf(messages.EnvCondaExistsFmt, ErrAlreadyExists, name)
	}
	file := filepath.Join(e.root, environmentFileName)
	return e.run(ctx, silent, e.root, conda, "env", "create", "--file", file)
}
