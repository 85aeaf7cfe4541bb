package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	tomlv1 "github.com/pelletier/go-toml"

	"github.com/conn-castle/toil/internal/messages"
)

// Set updates a single key in the config file at path, creating the file when missing.
// Other keys are left in place. The result must still load cleanly or nothing is written.
func Set(path string, key string, raw string) (*Config, error) {
	field, ok := LookupField(key)
	if !ok {
		return nil, fmt.Errorf(messages.ConfigUnknownKeyFmt, key)
	}
	value, err := convert(field, raw)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(messages.ConfigReadFmt, path, err)
	}
	tree, err := tomlv1.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, path, err)
	}
	tree.SetPath([]string{TableName, key}, value)

	out, err := tree.ToTomlString()
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigRenderFmt, err)
	}
	cfg, err := Parse([]byte(out), path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigSetFailedFmt, key, err)
	}
	if err := writeFile(path, []byte(out)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// convert turns a command-line value into the TOML type the field expects.
func convert(field FieldDef, raw string) (any, error) {
	switch field.Type {
	case FieldBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf(messages.ConfigInvalidBoolFmt, field.Key, raw)
		}
		return b, nil
	case FieldList:
		return splitList(raw), nil
	default:
		return raw, nil
	}
}

// splitList accepts "a,b c" and "[a, b]" forms.
func splitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, `"'`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
