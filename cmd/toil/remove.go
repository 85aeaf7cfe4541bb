package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/toil/internal/config"
	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/workspace"
)

func newRemoveCmd(a *app) *cobra.Command {
	var force, all bool

	cmd := &cobra.Command{
		Use:   messages.RemoveUse,
		Short: messages.RemoveShort,
		Long:  messages.RemoveLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			local, err := localProjects(a.workspace(cfg))
			if err != nil {
				return err
			}
			if len(args) == 0 && !all {
				return errors.New(messages.RemoveNeedsTarget)
			}
			targets := local
			if !all {
				if err := requireLocal(cfg, args, local); err != nil {
					return err
				}
				targets = args
			}
			title := messages.ConfirmDeleteAll
			if !all {
				title = fmt.Sprintf(messages.ConfirmDeleteFmt, describeNames(targets))
			}
			if err := a.confirm(title, force); err != nil {
				return err
			}
			return a.deleteProjects(cmd.Context(), a.workspace(cfg), targets)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, messages.FlagForce)
	cmd.Flags().BoolVarP(&all, "all", "a", false, messages.RemoveFlagAll)
	return cmd
}

func newKeepCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   messages.KeepUse,
		Short: messages.KeepShort,
		Long:  messages.KeepLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			ws := a.workspace(cfg)
			local, err := localProjects(ws)
			if err != nil {
				return err
			}
			if err := requireLocal(cfg, args, local); err != nil {
				return err
			}
			targets := workspace.Keep(local, args)
			if len(targets) == 0 {
				return nil
			}
			if err := a.confirm(fmt.Sprintf(messages.ConfirmDeleteFmt, describeNames(targets)), force); err != nil {
				return err
			}
			return a.deleteProjects(cmd.Context(), ws, targets)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, messages.FlagForce)
	return cmd
}

// localProjects lists the workspace, failing when it is empty.
func localProjects(ws *workspace.Workspace) ([]string, error) {
	local, err := ws.Local()
	if err != nil {
		return nil, err
	}
	if len(local) == 0 {
		return nil, errors.New(messages.NoLocalProjects)
	}
	return local, nil
}

func requireLocal(cfg *config.Config, names []string, local []string) error {
	if _, missing := workspace.Split(names, local); len(missing) > 0 {
		return fmt.Errorf(messages.LocalNotFoundFmt, missing[0], cfg.ProjectsDir)
	}
	return nil
}

func (a *app) deleteProjects(ctx context.Context, ws *workspace.Workspace, names []string) error {
	if err := ws.Remove(ctx, names); err != nil {
		return err
	}
	for _, name := range names {
		a.out.Goodf(messages.DeletedFmt, name)
	}
	return nil
}
