package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/conn-castle/toil/internal/config"
	"github.com/conn-castle/toil/internal/env"
	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/printer"
)

// envFlags select the project and environment an env subcommand acts on.
type envFlags struct {
	project string
	kind    string
	silent  bool
}

// envTarget is a resolved project directory.
type envTarget struct {
	cfg  *config.Config
	dir  string
	name string
}

func newEnvCmd(a *app) *cobra.Command {
	flags := &envFlags{}
	cmd := &cobra.Command{
		Use:   messages.EnvUse,
		Short: messages.EnvShort,
		Long:  messages.EnvLong,
	}
	cmd.PersistentFlags().StringVarP(&flags.project, "project", "p", "", messages.EnvFlagProject)
	cmd.PersistentFlags().StringVarP(&flags.kind, "kind", "k", "", messages.EnvFlagKind)
	cmd.PersistentFlags().BoolVarP(&flags.silent, "silent", "s", false, messages.FlagSilent)

	cmd.AddCommand(
		newEnvDetectCmd(a, flags),
		newEnvCreateCmd(a, flags),
		newEnvInstallCmd(a, flags),
		newEnvInstallSelfCmd(a, flags),
		newEnvExportCmd(a, flags),
	)
	return cmd
}

// target resolves --project under the projects directory, or the working directory.
// A missing config file falls back to defaults.
func (a *app) target(flags *envFlags) (envTarget, error) {
	path, err := a.path()
	if err != nil {
		return envTarget{}, err
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return envTarget{}, err
	}
	if flags.project != "" {
		return envTarget{cfg: cfg, dir: filepath.Join(cfg.ProjectsDir, flags.project), name: flags.project}, nil
	}
	dir, err := getwd()
	if err != nil {
		return envTarget{}, err
	}
	return envTarget{cfg: cfg, dir: dir, name: filepath.Base(dir)}, nil
}

// environment builds the environment named by --kind, or detects it.
func (a *app) environment(t envTarget, kind string) (*env.Environment, error) {
	deps := a.envDeps(t.cfg)
	switch kind {
	case "":
		e, err := env.Dispatch(t.dir, t.name, deps)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return nil, fmt.Errorf(messages.EnvNoneDetectedFmt, t.dir)
		}
		return e, nil
	case "venv":
		return env.NewVenv(t.dir, deps), nil
	case "requirements":
		return env.NewRequirements(t.dir, deps), nil
	case "conda":
		return env.NewConda(t.dir, t.name, deps), nil
	case "poetry":
		return env.NewPoetry(t.dir, deps), nil
	case "flit":
		return env.NewFlit(t.dir, deps), nil
	default:
		return nil, fmt.Errorf(messages.EnvUnknownKindFlag, kind)
	}
}

// withEnvironment resolves the target and environment, then runs fn.
func (a *app) withEnvironment(flags *envFlags, fn func(t envTarget, e *env.Environment) error) error {
	t, err := a.target(flags)
	if err != nil {
		return err
	}
	e, err := a.environment(t, flags.kind)
	if err != nil {
		return err
	}
	return fn(t, e)
}

func newEnvDetectCmd(a *app, flags *envFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.EnvDetectUse,
		Short: messages.EnvDetectShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.target(flags)
			if err != nil {
				return err
			}
			deps := a.envDeps(t.cfg)
			markers, err := env.Inspect(t.dir, deps.System)
			if err != nil {
				return err
			}
			rows := []printer.Row{
				{Key: messages.EnvKeyProject, Value: t.dir},
				{Key: messages.EnvKeyToolchain, Value: markers.Toolchain().String()},
			}
			if markers.Backend != "" {
				rows = append(rows, printer.Row{Key: messages.EnvKeyBackend, Value: markers.Backend})
			}
			e, err := env.Dispatch(t.dir, t.name, deps)
			if err != nil {
				return err
			}
			if e != nil {
				rows = append(rows, printer.Row{Key: messages.EnvKeyEnvironment, Value: e.Name()})
				if exe, err := e.Executable(); err == nil {
					rows = append(rows, printer.Row{Key: messages.EnvKeyExecutable, Value: exe})
				}
				if exists, err := e.Exists(); err == nil {
					rows = append(rows, printer.Row{Key: messages.EnvKeyExists, Value: strconv.FormatBool(exists)})
				}
			}
			a.out.Table(rows)
			return nil
		},
	}
}

func newEnvCreateCmd(a *app, flags *envFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.EnvCreateUse,
		Short: messages.EnvCreateShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEnvironment(flags, func(t envTarget, e *env.Environment) error {
				if err := e.Create(cmd.Context(), args, flags.silent); err != nil {
					return err
				}
				a.out.Goodf(messages.EnvCreatedFmt, e.Name(), t.name)
				return nil
			})
		},
	}
}

func newEnvInstallCmd(a *app, flags *envFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.EnvInstallUse,
		Short: messages.EnvInstallShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEnvironment(flags, func(t envTarget, e *env.Environment) error {
				if err := e.Install(cmd.Context(), args, flags.silent); err != nil {
					return err
				}
				a.out.Goodf(messages.EnvInstalledFmt, len(args), t.name)
				return nil
			})
		},
	}
}

func newEnvInstallSelfCmd(a *app, flags *envFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.EnvInstallSelfUse,
		Short: messages.EnvInstallSelfShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEnvironment(flags, func(t envTarget, e *env.Environment) error {
				if err := e.InstallSelf(cmd.Context(), flags.silent); err != nil {
					return err
				}
				a.out.Goodf(messages.EnvInstalledSelfFmt, t.name, e.Name())
				return nil
			})
		},
	}
}

func newEnvExportCmd(a *app, flags *envFlags) *cobra.Command {
	var force bool
	var diffLines int

	cmd := &cobra.Command{
		Use:   messages.EnvExportUse,
		Short: messages.EnvExportShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEnvironment(flags, func(t envTarget, e *env.Environment) error {
				return a.exportEnvironment(cmd.Context(), e, force, diffLines)
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, messages.FlagForce)
	cmd.Flags().IntVar(&diffLines, "diff-lines", defaultDiffMaxLines, messages.EnvFlagDiffLines)
	return cmd
}

// exportEnvironment previews the export against the current environment.yml and
// writes it once confirmed.
func (a *app) exportEnvironment(ctx context.Context, e *env.Environment, force bool, diffLines int) error {
	exported, err := e.ExportedYML(ctx)
	if err != nil {
		return err
	}
	path := e.EnvironmentFile()
	current, err := e.ReadEnvironmentFile()
	if err != nil {
		return err
	}
	name := filepath.Base(path)
	diff, _ := renderTruncatedUnifiedDiff(name+" (current)", name+" (exported)", string(current), string(exported), diffLines)
	if diff == "" {
		a.out.Goodf(messages.EnvExportUpToDateFmt, path)
		return nil
	}
	a.out.Text(diff)
	if err := a.confirm(fmt.Sprintf(messages.EnvExportConfirmFmt, path), force); err != nil {
		return err
	}
	if err := e.WriteEnvironmentFile(exported); err != nil {
		return err
	}
	a.out.Goodf(messages.EnvExportWrittenFmt, path)
	return nil
}
