package main

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/conn-castle/toil/internal/config"
	"github.com/conn-castle/toil/internal/env"
	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/prompt"
	"github.com/conn-castle/toil/internal/repo"
)

var (
	userRepoPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)
	projectPattern  = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// forkWait is how long checkout waits for GitHub to create a fork.
var forkWait = 3 * time.Second

func newCheckoutCmd(a *app) *cobra.Command {
	var venv bool

	cmd := &cobra.Command{
		Use:   messages.CheckoutUse,
		Short: messages.CheckoutShort,
		Long:  messages.CheckoutLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, api, err := a.requireAPI()
			if err != nil {
				return err
			}
			c := &checkout{app: a, cfg: cfg, api: api, venv: venv}
			return c.run(cmd.Context(), args[0])
		},
	}
	cmd.Flags().BoolVarP(&venv, "venv", "v", false, messages.CheckoutFlagVenv)
	return cmd
}

type checkout struct {
	*app
	cfg  *config.Config
	api  githubAPI
	venv bool
}

func (c *checkout) run(ctx context.Context, project string) error {
	ws := c.workspace(c.cfg)
	switch {
	case userRepoPattern.MatchString(project):
		owner, name, _ := strings.Cut(project, "/")
		if owner == c.cfg.Username {
			c.out.Warn(messages.CheckoutOwnRepoSlash)
			return &SilentExitError{Code: 1}
		}
		if err := c.forkOrClone(ctx, owner, name); err != nil {
			return err
		}
		c.out.Good(messages.CheckoutDone)
		return nil
	case projectPattern.MatchString(project):
		r := ws.Repo(c.cfg.Username, project)
		if r.ExistsLocal() {
			return c.local(ctx, r)
		}
		remote, err := r.ExistsRemote(ctx, c.api)
		if err != nil {
			return err
		}
		if remote {
			return c.remote(ctx, r)
		}
		c.out.Note(fmt.Sprintf(messages.CheckoutNewHintFmt, project))
		return fmt.Errorf(messages.CheckoutNotFoundFmt, project)
	default:
		return fmt.Errorf(messages.CheckoutInvalidPatternFmt, project)
	}
}

func (c *checkout) local(ctx context.Context, r repo.Repo) error {
	c.out.Infof(messages.CheckoutLocalFmt, r.Name, r.LocalPath)
	if c.venv {
		c.out.Note(messages.CheckoutVenvIgnoredLocal)
	}
	return c.openEditor(ctx, c.cfg, r.Name, r.LocalPath)
}

func (c *checkout) remote(ctx context.Context, r repo.Repo) error {
	c.out.Infof(messages.CheckoutRemoteFmt, r.Owner, r.Name)
	g, err := c.git()
	if err != nil {
		return err
	}
	if err := g.Clone(ctx, r.CloneURL(), c.cfg.ProjectsDir, false); err != nil {
		return err
	}
	if err := c.provision(ctx, r); err != nil {
		return err
	}
	return c.openEditor(ctx, c.cfg, r.Name, r.LocalPath)
}

// forkOrClone handles someone else's owner/name: fork it into the user's account
// and clone the fork, or clone the original.
func (c *checkout) forkOrClone(ctx context.Context, owner string, name string) error {
	ws := c.workspace(c.cfg)
	original := ws.Repo(owner, name)
	fork := ws.Repo(c.cfg.Username, name)

	exists, err := original.ExistsRemote(ctx, c.api)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf(messages.CheckoutUpstreamMissFmt, owner, name)
	}
	c.out.Infof(messages.CheckoutBelongsFmt, owner, name, owner)

	if !isInteractive() {
		return prompt.ErrNotInteractive
	}
	choice, err := prompt.Choose(c.ui, messages.CheckoutForkOrClonePrompt, []string{messages.CheckoutChoiceFork, messages.CheckoutChoiceClone})
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			c.out.Warn(messages.Aborted)
			return &SilentExitError{Code: 1}
		}
		return err
	}
	if choice == messages.CheckoutChoiceClone {
		return c.remote(ctx, original)
	}

	forked, err := fork.ExistsRemote(ctx, c.api)
	if err != nil {
		return err
	}
	if forked {
		c.out.Warnf(messages.CheckoutAlreadyForkedFmt, owner, name)
		c.out.Note(fmt.Sprintf(messages.CheckoutForkedHintFmt, name))
		return &SilentExitError{Code: 1}
	}

	c.out.Infof(messages.CheckoutForkingFmt, owner, name)
	if err := c.api.CreateFork(ctx, owner, name); err != nil {
		return err
	}
	sleep(forkWait)
	ready, err := fork.ExistsRemote(ctx, c.api)
	if err != nil {
		return err
	}
	if !ready {
		c.out.Warn(messages.CheckoutForkNotReady)
		c.out.Note(messages.CheckoutForkNotReadyNote)
		return &SilentExitError{Code: 1}
	}

	c.out.Infof(messages.CheckoutCloningForkFmt, c.cfg.Username, name)
	g, err := c.git()
	if err != nil {
		return err
	}
	if err := g.Clone(ctx, fork.CloneURL(), c.cfg.ProjectsDir, false); err != nil {
		return err
	}
	c.out.Info(messages.CheckoutSettingUpstream)
	if err := g.SetUpstream(ctx, owner, name, fork.LocalPath, false); err != nil {
		return err
	}
	if err := c.provision(ctx, fork); err != nil {
		return err
	}
	return c.openEditor(ctx, c.cfg, fork.Name, fork.LocalPath)
}

// provision installs a freshly cloned project into its detected environment when --venv is set.
func (c *checkout) provision(ctx context.Context, r repo.Repo) error {
	if !c.venv {
		return nil
	}
	e, err := r.DispatchEnv(c.envDeps(c.cfg))
	if err != nil {
		return err
	}
	if e == nil {
		c.out.Warn(messages.CheckoutEnvUndetected)
		return nil
	}
	c.out.Infof(messages.CheckoutEnvCreatingFmt, e.Name())
	if e.Kind() == env.KindConda {
		c.out.Note(messages.CheckoutCondaSlow)
	}
	err = e.InstallSelf(ctx, true)
	if errors.Is(err, env.ErrAlreadyExists) {
		c.out.Warn(messages.CheckoutEnvExists)
		return nil
	}
	return err
}
