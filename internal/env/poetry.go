package env

import "context"

// enforceLocalConfig pins poetry's venv inside the project without touching global settings.
func (e *Environment) enforceLocalConfig(ctx context.Context, poetry string, silent bool) error {
	return e.run(ctx, silent, e.root, poetry, "config", "virtualenvs.in-project", "true", "--local")
}

// installPoetry does not check Exists: `poetry add` creates the venv on demand.
func (e *Environment) installPoetry(ctx context.Context, packages []string, silent bool) error {
	poetry, err := resolveTool(e.deps.System, "poetry", e.deps.Tools.Poetry)
	if err != nil {
		return err
	}
	if err := e.enforceLocalConfig(ctx, poetry, silent); err != nil {
		return err
	}
	return e.run(ctx, silent, e.root, poetry, append([]string{"add"}, packages...)...)
}

func (e *Environment) installSelfPoetry(ctx context.Context, silent bool) error {
	poetry, err := resolveTool(e.deps.System, "poetry", e.deps.Tools.Poetry)
	if err != nil {
		return err
	}
	if err := e.enforceLocalConfig(ctx, poetry, silent); err != nil {
		return err
	}
	return e.run(ctx, silent, e.root, poetry, "install")
}
