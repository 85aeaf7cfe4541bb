package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/toil/internal/messages"
)

// FileName is the config file name inside the home directory.
const FileName = ".toil.toml"

// ErrNotFound means the config file does not exist.
var ErrNotFound = errors.New(messages.ConfigNotFound)

// ErrConfigValidation wraps validation failures, as opposed to TOML syntax or filesystem errors.
var ErrConfigValidation = errors.New(messages.ConfigValidationFailed)

// DefaultPath returns $TOIL_CONFIG when set, otherwise ~/.toil.toml.
func DefaultPath() (string, error) {
	if path := os.Getenv(messages.ConfigPathEnv); path != "" {
		return homedir.Expand(path)
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, FileName), nil
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf(messages.ConfigNotFoundFmt, ErrNotFound, path)
		}
		return nil, fmt.Errorf(messages.ConfigReadFmt, path, err)
	}
	return Parse(data, path)
}

// LoadOrDefault is Load, falling back to Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		def := Default()
		if err := def.expandPaths(); err != nil {
			return nil, err
		}
		return &def, nil
	}
	return cfg, err
}

// Parse decodes config TOML data. Keys missing from the [toil] table keep their defaults.
// source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	doc := document{Toil: Default()}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	cfg := doc.Toil
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(messages.ConfigValidationFmt, ErrConfigValidation, source, err)
	}
	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decodeStrict re-decodes the data with unknown-field rejection.
func decodeStrict(data []byte) error {
	var doc document
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&doc)
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.ProjectsDir, &c.CondaRoot} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf(messages.ConfigExpandPathFmt, *p, err)
		}
		*p = expanded
	}
	return nil
}

// Write overwrites the config file at path with c.
func (c Config) Write(path string) error {
	data, err := toml.Marshal(document{Toil: c})
	if err != nil {
		return fmt.Errorf(messages.ConfigEncodeFmt, err)
	}
	return writeFile(path, data)
}

// Init writes the helper config to path, refusing to overwrite an existing file.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf(messages.ConfigAlreadyExistsFmt, path)
	}
	return Helper().Write(path)
}

// writeFile writes owner-only, since the file holds a token.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.ConfigCreateDirFmt, dir, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf(messages.ConfigWriteFmt, path, err)
	}
	return nil
}
