// Package templates exposes the embedded project starter templates.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"text/template"

	"github.com/conn-castle/toil/internal/messages"
)

//go:embed all:files
var files embed.FS

const root = "files"

// Read returns the raw content of an embedded template.
func Read(name string) ([]byte, error) {
	return fs.ReadFile(files, path.Join(root, name))
}

// Walk walks the embedded templates under dir. Paths passed to fn are relative to the template root.
func Walk(dir string, fn fs.WalkDirFunc) error {
	sub, err := fs.Sub(files, root)
	if err != nil {
		return err
	}
	return fs.WalkDir(sub, dir, fn)
}

// Render executes the named template with data.
func Render(name string, data any) ([]byte, error) {
	raw, err := Read(name)
	if err != nil {
		return nil, fmt.Errorf(messages.TemplatesReadFmt, name, err)
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf(messages.TemplatesParseFmt, name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf(messages.TemplatesRenderFmt, name, err)
	}
	return buf.Bytes(), nil
}
