package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/toil/internal/messages"
)

func newGHCmd(a *app) *cobra.Command {
	var issues, prs bool

	cmd := &cobra.Command{
		Use:   messages.GHUse,
		Short: messages.GHShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, api, err := a.requireAPI()
			if err != nil {
				return err
			}
			project := args[0]
			r := a.workspace(cfg).Repo(cfg.Username, project)
			exists, err := r.ExistsRemote(cmd.Context(), api)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf(messages.GHNotFoundFmt, project)
			}
			url := r.HTMLURL()
			switch {
			case issues:
				a.out.Infof(messages.GHIssuesFmt, project)
				url = r.IssuesURL()
			case prs:
				a.out.Infof(messages.GHPullsFmt, project)
				url = r.PullsURL()
			default:
				a.out.Infof(messages.GHOpeningFmt, project)
			}
			return a.open(url)
		},
	}
	cmd.Flags().BoolVarP(&issues, "issues", "i", false, messages.GHFlagIssues)
	cmd.Flags().BoolVarP(&prs, "prs", "p", false, messages.GHFlagPRs)
	cmd.MarkFlagsMutuallyExclusive("issues", "prs")
	return cmd
}

func newDocsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DocsUse,
		Short: messages.DocsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.out.Info(messages.DocsOpening)
			return a.open(messages.RootDocsURL)
		},
	}
}

func (a *app) open(url string) error {
	a.logger.Debug("open browser", "url", url)
	if err := openBrowser(url); err != nil {
		return fmt.Errorf(messages.GHOpenFailedFmt, url, err)
	}
	return nil
}
