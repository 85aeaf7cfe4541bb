// Package config loads, validates, and edits the toil config file.
package config

import (
	"os"
	"strings"

	"github.com/conn-castle/toil/internal/env"
	"github.com/conn-castle/toil/internal/messages"
)

// TableName is the TOML table holding every toil setting.
const TableName = "toil"

// Config is the [toil] table of ~/.toil.toml.
type Config struct {
	ProjectsDir    string   `toml:"projects_dir" validate:"required"`
	Token          string   `toml:"token"`
	Username       string   `toml:"username" validate:"max=39"`
	Editor         string   `toml:"editor"`
	CondaBin       string   `toml:"conda_bin" validate:"nospace"`
	PoetryBin      string   `toml:"poetry_bin" validate:"nospace"`
	FlitBin        string   `toml:"flit_bin" validate:"nospace"`
	PythonBin      string   `toml:"python_bin" validate:"nospace"`
	CondaRoot      string   `toml:"conda_root"`
	CommonPackages []string `toml:"common_packages" validate:"dive,required,nospace"`
	Git            bool     `toml:"git"`
}

// document is the on-disk layout: everything lives under [toil].
type document struct {
	Toil Config `toml:"toil"`
}

// Default returns the config used for keys missing from the file.
func Default() Config {
	return Config{
		ProjectsDir: "~/" + messages.ConfigDefaultProjectsDirRel,
		Token:       os.Getenv(messages.ConfigGitHubTokenEnv),
		Editor:      os.Getenv(messages.ConfigEditorEnv),
		CondaBin:    "conda",
		PoetryBin:   "poetry",
		FlitBin:     "flit",
		PythonBin:   "python3",
		Git:         true,
	}
}

// Helper returns a placeholder config written by `toil config init` as a guide to fill in.
func Helper() Config {
	cfg := Default()
	cfg.Token = messages.ConfigHelperToken
	cfg.Username = messages.ConfigHelperUsername
	return cfg
}

// CanUseAPI reports whether the config has usable GitHub credentials.
func (c Config) CanUseAPI() bool {
	switch c.Username {
	case "", messages.ConfigHelperUsername:
		return false
	}
	switch c.Token {
	case "", messages.ConfigHelperToken:
		return false
	}
	return true
}

// SpecifiesEditor reports whether projects should be opened in an editor.
// The literal "none" (any case) disables opening.
func (c Config) SpecifiesEditor() bool {
	editor := strings.TrimSpace(c.Editor)
	return editor != "" && !strings.EqualFold(editor, messages.ConfigEditorNone)
}

// Tools maps the configured binaries onto environment tools.
func (c Config) Tools() env.Tools {
	return env.Tools{
		Python:    c.PythonBin,
		Conda:     c.CondaBin,
		Poetry:    c.PoetryBin,
		Flit:      c.FlitBin,
		CondaRoot: c.CondaRoot,
	}
}
