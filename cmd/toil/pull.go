package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/repo"
	"github.com/conn-castle/toil/internal/workspace"
)

func newPullCmd(a *app) *cobra.Command {
	var force, all bool

	cmd := &cobra.Command{
		Use:   messages.PullUse,
		Short: messages.PullShort,
		Long:  messages.PullLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return errors.New(messages.PullNeedsTarget)
			}
			cfg, api, err := a.requireAPI()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			ws := a.workspace(cfg)
			local, err := ws.Local()
			if err != nil {
				return err
			}
			remote, err := api.RepoNames(ctx, 0)
			if err != nil {
				return err
			}
			if len(remote) == 0 {
				return errors.New(messages.PullNoRemoteProjects)
			}
			wanted := remote
			if !all {
				if _, missing := workspace.Split(args, remote); len(missing) > 0 {
					return fmt.Errorf(messages.PullRemoteMissingFmt, missing[0])
				}
				wanted = args
			}
			diff := workspace.Diff(local, wanted)
			if len(diff) == 0 {
				a.out.Good(messages.InSync)
				return nil
			}
			if err := a.confirm(fmt.Sprintf(messages.PullConfirmFmt, describeNames(diff)), force); err != nil {
				return err
			}

			g, err := a.git()
			if err != nil {
				return err
			}
			repos := make([]repo.Repo, 0, len(diff))
			for _, name := range diff {
				repos = append(repos, ws.Repo(cfg.Username, name))
			}
			if err := ws.Clone(ctx, g, repos); err != nil {
				return err
			}
			for _, name := range diff {
				a.out.Goodf(messages.PullClonedFmt, name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, messages.FlagForce)
	cmd.Flags().BoolVarP(&all, "all", "a", false, messages.PullFlagAll)
	return cmd
}
