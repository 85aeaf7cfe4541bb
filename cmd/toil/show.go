package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/conn-castle/toil/internal/github"
	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/workspace"
)

const defaultShowLimit = 15

func newShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ShowUse,
		Short: messages.ShowShort,
	}
	cmd.AddCommand(
		newShowLocalCmd(a),
		newShowRemoteCmd(a),
		newShowForksCmd(a),
		newShowDiffCmd(a),
	)
	return cmd
}

func newShowLocalCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   messages.ShowLocalUse,
		Short: messages.ShowLocalShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			ws := a.workspace(cfg)
			names, err := ws.Local()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return errors.New(messages.ShowNoLocal)
			}
			slices.SortFunc(names, func(x, y string) int {
				return strings.Compare(strings.ToLower(x), strings.ToLower(y))
			})
			shown := names[:min(max(limit, 0), len(names))]
			rows := make([][]string, 0, len(shown))
			for _, name := range shown {
				info, err := os.Stat(ws.Path(name))
				if err != nil {
					return fmt.Errorf(messages.ShowStatProjectFmt, name, err)
				}
				rows = append(rows, []string{name, relTime(info.ModTime())})
			}
			a.out.Title(messages.ShowLocalTitle)
			a.out.Subtle(fmt.Sprintf(messages.ShowCountFmt, len(shown), len(names), messages.ShowNounLocal))
			a.out.Grid([]string{messages.ShowColName, messages.ShowColModified}, rows)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", defaultShowLimit, messages.FlagLimit)
	return cmd
}

func newShowRemoteCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   messages.ShowRemoteUse,
		Short: messages.ShowRemoteShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, api, err := a.requireAPI()
			if err != nil {
				return err
			}
			repos, err := api.Repos(cmd.Context(), 0)
			if err != nil {
				return err
			}
			if len(repos) == 0 {
				return errors.New(messages.ShowNoRemote)
			}
			a.printRepos(messages.ShowRemoteTitle, messages.ShowNounRemote, repos, limit, false)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", defaultShowLimit, messages.FlagLimit)
	return cmd
}

func newShowForksCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   messages.ShowForksUse,
		Short: messages.ShowForksShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, api, err := a.requireAPI()
			if err != nil {
				return err
			}
			forks, err := api.Forks(cmd.Context(), 0)
			if err != nil {
				return err
			}
			if len(forks) == 0 {
				return errors.New(messages.ShowNoForks)
			}
			a.printRepos(messages.ShowForksTitle, messages.ShowNounForks, forks, limit, true)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", defaultShowLimit, messages.FlagLimit)
	return cmd
}

func newShowDiffCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   messages.ShowDiffUse,
		Short: messages.ShowDiffShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, api, err := a.requireAPI()
			if err != nil {
				return err
			}
			local, err := a.workspace(cfg).Local()
			if err != nil {
				return err
			}
			repos, err := api.Repos(cmd.Context(), 0)
			if err != nil {
				return err
			}
			if len(repos) == 0 {
				return errors.New(messages.ShowNoRemote)
			}
			names := make([]string, 0, len(repos))
			for _, r := range repos {
				names = append(names, r.Name)
			}
			missing := workspace.Diff(local, names)
			if len(missing) == 0 {
				a.out.Good(messages.InSync)
				return nil
			}
			var diff []github.Repo
			for _, r := range repos {
				if slices.Contains(missing, r.Name) {
					diff = append(diff, r)
				}
			}
			a.printRepos(messages.ShowDiffTitle, messages.ShowNounDiff, diff, limit, false)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", defaultShowLimit, messages.FlagLimit)
	return cmd
}

// printRepos renders up to limit repos as a table. Forks get a parent column.
func (a *app) printRepos(title string, noun string, repos []github.Repo, limit int, forks bool) {
	shown := repos[:min(max(limit, 0), len(repos))]
	headers := []string{messages.ShowColName, messages.ShowColSize, messages.ShowColCreated, messages.ShowColModified}
	if forks {
		headers = []string{messages.ShowColName, messages.ShowColSize, messages.ShowColForked, messages.ShowColModified, messages.ShowColParent}
	}
	rows := make([][]string, 0, len(shown))
	for _, r := range shown {
		row := []string{r.Name, humanize.Bytes(uint64(r.DiskUsageKB) * 1024), relTime(r.CreatedAt), relTime(r.PushedAt)}
		if forks {
			row = append(row, r.Parent)
		}
		rows = append(rows, row)
	}
	a.out.Title(title)
	a.out.Subtle(fmt.Sprintf(messages.ShowCountFmt, len(shown), len(repos), noun))
	a.out.Grid(headers, rows)
}

func relTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now(), "ago", "from now")
}
