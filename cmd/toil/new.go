package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/toil/internal/config"
	"github.com/conn-castle/toil/internal/env"
	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/repo"
	"github.com/conn-castle/toil/internal/starter"
)

type newOptions struct {
	cookie  string
	starter string
	venv    string
	noGit   bool
}

func newNewCmd(a *app) *cobra.Command {
	var opts newOptions

	cmd := &cobra.Command{
		Use:   messages.NewUse,
		Short: messages.NewShort,
		Long:  messages.NewLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cookie != "" && opts.starter != "" {
				return errors.New(messages.NewCookieStarterBoth)
			}
			switch opts.venv {
			case "", messages.NewVenvKindVenv, messages.NewVenvKindConda:
			default:
				return fmt.Errorf(messages.NewUnknownVenvFmt, opts.venv)
			}
			var kind starter.Kind
			if opts.starter != "" {
				var err error
				if kind, err = starter.ParseKind(opts.starter); err != nil {
					return err
				}
			}
			cfg, api, err := a.requireAPI()
			if err != nil {
				return err
			}
			return a.createProject(cmd.Context(), cfg, api, args[0], args[1:], kind, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.cookie, "cookie", "c", "", messages.NewFlagCookie)
	cmd.Flags().StringVarP(&opts.starter, "starter", "s", "", messages.NewFlagStarter)
	cmd.Flags().StringVarP(&opts.venv, "venv", "v", "", messages.NewFlagVenv)
	cmd.Flags().BoolVarP(&opts.noGit, "no-git", "n", false, messages.NewFlagNoGit)
	return cmd
}

func (a *app) createProject(ctx context.Context, cfg *config.Config, api githubAPI, name string, packages []string, kind starter.Kind, opts newOptions) error {
	r := a.workspace(cfg).Repo(cfg.Username, name)
	if r.ExistsLocal() {
		return fmt.Errorf(messages.NewExistsLocalFmt, name, r.LocalPath)
	}
	remote, err := r.ExistsRemote(ctx, api)
	if err != nil {
		return err
	}
	if remote {
		a.out.Warnf(messages.NewExistsRemoteFmt, name)
		a.out.Note(fmt.Sprintf(messages.NewExistsRemoteNote, name))
		return &SilentExitError{Code: 1}
	}
	if opts.venv == "" && len(packages) > 0 {
		a.out.Warn(messages.NewPackagesNoVenv)
	}

	starterOpts := starter.Options{Username: cfg.Username, LookPath: lookPath, Runner: a.runner}
	if opts.cookie != "" {
		// The template decides the project directory name, so git and environments are left to it.
		a.out.Infof(messages.NewCookieFmt, name, opts.cookie)
		if err := os.MkdirAll(cfg.ProjectsDir, 0o755); err != nil {
			return fmt.Errorf(messages.NewCreateDirFmt, cfg.ProjectsDir, err)
		}
		return starter.Cookiecutter(ctx, opts.cookie, cfg.ProjectsDir, starterOpts)
	}

	if kind != "" {
		a.out.Infof(messages.NewStarterFmt, kind, name)
		if err := starter.Generate(ctx, kind, cfg.ProjectsDir, name, starterOpts); err != nil {
			return err
		}
	} else {
		a.out.Infof(messages.NewCreatingFmt, name)
		if err := os.MkdirAll(r.LocalPath, 0o755); err != nil {
			return fmt.Errorf(messages.NewCreateDirFmt, r.LocalPath, err)
		}
	}

	if cfg.Git && !opts.noGit {
		a.out.Info(messages.NewGitInit)
		g, err := a.git()
		if err != nil {
			return err
		}
		if kind != "" {
			err = g.InitialCommit(ctx, r.LocalPath, true)
		} else {
			err = g.Init(ctx, r.LocalPath, true)
		}
		if err != nil {
			return err
		}
	}

	if err := a.createEnv(ctx, cfg, r, opts.venv, packages); err != nil {
		return err
	}
	a.out.Goodf(messages.NewCreatedFmt, r.LocalPath)
	return a.openEditor(ctx, cfg, name, r.LocalPath)
}

// createEnv builds the requested environment with the common packages plus packages.
// Conda environments are exported to environment.yml afterwards.
func (a *app) createEnv(ctx context.Context, cfg *config.Config, r repo.Repo, kind string, packages []string) error {
	all := append(append([]string{}, cfg.CommonPackages...), packages...)
	deps := a.envDeps(cfg)
	switch kind {
	case messages.NewVenvKindVenv:
		a.out.Infof(messages.NewVenvFmt, r.Name)
		return env.NewVenv(r.LocalPath, deps).Create(ctx, all, true)
	case messages.NewVenvKindConda:
		e := env.NewConda(r.LocalPath, r.Name, deps)
		a.out.Infof(messages.NewCondaFmt, r.Name)
		a.out.Note(messages.CheckoutCondaSlow)
		if err := e.Create(ctx, all, true); err != nil {
			return err
		}
		if err := e.ExportYML(ctx); err != nil {
			return err
		}
		a.out.Goodf(messages.NewExportedFmt, e.EnvironmentFile())
		return nil
	default:
		return nil
	}
}
