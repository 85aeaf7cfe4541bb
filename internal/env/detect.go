package env

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/toil/internal/messages"
)

// Toolchain is the outcome of inspecting a project directory.
type Toolchain int

const (
	// ToolchainNone means no marker matched.
	ToolchainNone Toolchain = iota
	ToolchainConda
	ToolchainRequirements
	// ToolchainSetuptools covers setup.cfg, setup.py, the setuptools backend, and PEP 621 projects.
	ToolchainSetuptools
	ToolchainPoetry
	ToolchainFlit
	// ToolchainHatch is detected but has no environment kind.
	ToolchainHatch
)

// String returns a human readable toolchain name.
func (t Toolchain) String() string {
	switch t {
	case ToolchainConda:
		return "conda"
	case ToolchainRequirements:
		return "requirements file"
	case ToolchainSetuptools:
		return "setuptools"
	case ToolchainPoetry:
		return "poetry"
	case ToolchainFlit:
		return "flit"
	case ToolchainHatch:
		return messages.EnvToolchainHatchUnsupported
	default:
		return messages.EnvToolchainNone
	}
}

const (
	pyprojectFileName = "pyproject.toml"
	setupCfgFileName  = "setup.cfg"
	setupPyFileName   = "setup.py"

	backendSetuptools = "setuptools.build_meta"
	backendPoetry     = "poetry"
	backendFlit       = "flit_core.buildapi"
	backendHatch      = "hatchling.build"
)

// Markers records every signal found in a project directory.
type Markers struct {
	Conda        bool
	Requirements bool
	Setuptools   bool
	PEP621       bool
	Poetry       bool
	Flit         bool
	Hatch        bool
	// Backend is the lower-cased build-backend from pyproject.toml, if any.
	Backend string
}

// Toolchain applies the fixed precedence order to the markers.
func (m Markers) Toolchain() Toolchain {
	switch {
	case m.Conda:
		return ToolchainConda
	case m.Requirements:
		return ToolchainRequirements
	case m.Setuptools || m.PEP621:
		return ToolchainSetuptools
	case m.Poetry:
		return ToolchainPoetry
	case m.Flit:
		return ToolchainFlit
	case m.Hatch:
		return ToolchainHatch
	default:
		return ToolchainNone
	}
}

// decided reports whether a file marker already settles the toolchain, so
// pyproject.toml need not be read.
func (m Markers) decided() bool {
	return m.Conda || m.Requirements || m.Setuptools
}

// Inspect probes dir for marker files. A directory that does not exist yields no markers.
// pyproject.toml is only parsed when no higher-priority marker file matched.
func Inspect(dir string, sys System) (Markers, error) {
	if sys == nil {
		sys = RealSystem{}
	}
	var m Markers
	ok, err := isDir(sys, dir)
	if err != nil || !ok {
		return m, err
	}

	has := func(name string) bool {
		if err != nil {
			return false
		}
		var exists bool
		exists, err = pathExists(sys, filepath.Join(dir, name))
		return exists
	}
	m.Conda = has(environmentFileName)
	m.Requirements = has(requirementsFile) || has(requirementsDevFile)
	m.Setuptools = has(setupCfgFileName) || has(setupPyFileName)
	hasPyproject := has(pyprojectFileName)
	if err != nil {
		return Markers{}, err
	}
	if !hasPyproject || m.decided() {
		return m, nil
	}

	doc, err := readPyproject(sys, filepath.Join(dir, pyprojectFileName))
	if err != nil {
		return Markers{}, err
	}
	m.PEP621 = nonEmptyTable(doc["build-system"]) && nonEmptyTable(doc["project"])
	m.Backend = buildBackend(doc)
	if m.Backend != "" {
		m.Setuptools = m.Setuptools || strings.Contains(m.Backend, backendSetuptools)
		m.Poetry = strings.Contains(m.Backend, backendPoetry)
		m.Flit = strings.Contains(m.Backend, backendFlit)
		m.Hatch = strings.Contains(m.Backend, backendHatch)
	}
	return m, nil
}

// Detect returns the toolchain dir uses.
func Detect(dir string, sys System) (Toolchain, error) {
	m, err := Inspect(dir, sys)
	if err != nil {
		return ToolchainNone, err
	}
	return m.Toolchain(), nil
}

// Dispatch inspects dir and constructs the matching environment. name is the conda
// environment name used when the project is a conda project.
// It returns nil and no error when no environment can be determined, including hatch projects.
func Dispatch(dir string, name string, deps Deps) (*Environment, error) {
	toolchain, err := Detect(dir, deps.System)
	if err != nil {
		return nil, err
	}
	switch toolchain {
	case ToolchainConda:
		return NewConda(dir, name, deps), nil
	case ToolchainRequirements:
		return NewRequirements(dir, deps), nil
	case ToolchainSetuptools:
		return NewVenv(dir, deps), nil
	case ToolchainPoetry:
		return NewPoetry(dir, deps), nil
	case ToolchainFlit:
		return NewFlit(dir, deps), nil
	default:
		return nil, nil
	}
}

func readPyproject(sys System, path string) (map[string]any, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.EnvReadPyprojectFmt, path, err)
	}
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(messages.EnvParsePyprojectFmt, path, err)
	}
	return doc, nil
}

// buildBackend returns [build-system].build-backend lower-cased, or "" when absent or not a string.
func buildBackend(doc map[string]any) string {
	table, ok := doc["build-system"].(map[string]any)
	if !ok {
		return ""
	}
	backend, ok := table["build-backend"].(string)
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(backend))
}

func nonEmptyTable(v any) bool {
	table, ok := v.(map[string]any)
	return ok && len(table) > 0
}
