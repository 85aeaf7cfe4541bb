package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/toil/internal/messages"
)

// FieldType classifies the kind of value a config field accepts.
type FieldType string

const (
	// FieldString accepts arbitrary string input.
	FieldString FieldType = "string"
	// FieldPath accepts a filesystem path; a leading ~ is expanded on load.
	FieldPath FieldType = "path"
	// FieldBool accepts true or false.
	FieldBool FieldType = "bool"
	// FieldList accepts a comma or whitespace separated list of strings.
	FieldList FieldType = "list"
)

// FieldDef describes a single config key.
type FieldDef struct {
	Key         string
	Type        FieldType
	Description string
	// Secret fields are masked by `config show`.
	Secret bool
}

// fields is the canonical ordered registry of config keys.
var fields = []FieldDef{
	{Key: "projects_dir", Type: FieldPath, Description: messages.ConfigDescProjectsDir},
	{Key: "token", Type: FieldString, Description: messages.ConfigDescToken, Secret: true},
	{Key: "username", Type: FieldString, Description: messages.ConfigDescUsername},
	{Key: "editor", Type: FieldString, Description: messages.ConfigDescEditor},
	{Key: "conda_bin", Type: FieldString, Description: messages.ConfigDescCondaBin},
	{Key: "poetry_bin", Type: FieldString, Description: messages.ConfigDescPoetryBin},
	{Key: "flit_bin", Type: FieldString, Description: messages.ConfigDescFlitBin},
	{Key: "python_bin", Type: FieldString, Description: messages.ConfigDescPythonBin},
	{Key: "conda_root", Type: FieldPath, Description: messages.ConfigDescCondaRoot},
	{Key: "common_packages", Type: FieldList, Description: messages.ConfigDescCommonPackages},
	{Key: "git", Type: FieldBool, Description: messages.ConfigDescGit},
}

// Fields returns a copy of the field registry in display order.
func Fields() []FieldDef {
	out := make([]FieldDef, len(fields))
	copy(out, fields)
	return out
}

// LookupField returns the definition for key.
func LookupField(key string) (FieldDef, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldDef{}, false
}

// KeyValue is one rendered config entry.
type KeyValue struct {
	Key   string
	Value string
}

// Pairs renders every key in registry order.
func (c Config) Pairs() []KeyValue {
	out := make([]KeyValue, 0, len(fields))
	for _, f := range fields {
		value, _ := c.Get(f.Key)
		out = append(out, KeyValue{Key: f.Key, Value: value})
	}
	return out
}

// Get renders the value of key.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "projects_dir":
		return c.ProjectsDir, nil
	case "token":
		return c.Token, nil
	case "username":
		return c.Username, nil
	case "editor":
		return c.Editor, nil
	case "conda_bin":
		return c.CondaBin, nil
	case "poetry_bin":
		return c.PoetryBin, nil
	case "flit_bin":
		return c.FlitBin, nil
	case "python_bin":
		return c.PythonBin, nil
	case "conda_root":
		return c.CondaRoot, nil
	case "common_packages":
		return "[" + strings.Join(c.CommonPackages, ", ") + "]", nil
	case "git":
		return fmt.Sprintf("%t", c.Git), nil
	default:
		return "", fmt.Errorf(messages.ConfigUnknownKeyFmt, key)
	}
}
