package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/conn-castle/toil/internal/config"
	"github.com/conn-castle/toil/internal/editor"
	"github.com/conn-castle/toil/internal/env"
	"github.com/conn-castle/toil/internal/git"
	"github.com/conn-castle/toil/internal/github"
	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/printer"
	"github.com/conn-castle/toil/internal/proc"
	"github.com/conn-castle/toil/internal/prompt"
	"github.com/conn-castle/toil/internal/workspace"
)

// Seams for tests.
var (
	getwd         = os.Getwd
	lookPath      = exec.LookPath
	isInteractive = prompt.IsInteractive
	newUI         = func() prompt.UI { return prompt.NewHuhUI() }
	newRunner     = func(stdout io.Writer, stderr io.Writer) proc.Runner {
		return &proc.ExecRunner{Stdout: stdout, Stderr: stderr}
	}
	newGitHubAPI = func(cfg *config.Config) githubAPI {
		return github.NewClient(cfg.Username, cfg.Token, github.WithUserAgent(messages.RootUse+"/"+Version))
	}
	newEnvSystem = func() env.System { return env.RealSystem{} }
	openBrowser  = browser.OpenURL
	sleep        = time.Sleep
	now          = time.Now
)

// githubAPI is the part of the GitHub client the commands use.
type githubAPI interface {
	RepoNames(ctx context.Context, limit int) ([]string, error)
	Repos(ctx context.Context, limit int) ([]github.Repo, error)
	Forks(ctx context.Context, limit int) ([]github.Repo, error)
	RepoExists(ctx context.Context, owner string, name string) (bool, error)
	RepoInfo(ctx context.Context, name string) (*github.Repo, error)
	CreateFork(ctx context.Context, owner string, repo string) error
}

// app holds the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	debug      bool

	out    *printer.Printer
	logger *slog.Logger
	runner proc.Runner
	ui     prompt.UI
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.init(cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", messages.RootFlagConfig)
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, messages.RootFlagDebug)

	cmd.AddCommand(
		newCheckoutCmd(a),
		newNewCmd(a),
		newRemoveCmd(a),
		newKeepCmd(a),
		newPullCmd(a),
		newShowCmd(a),
		newInfoCmd(a),
		newGHCmd(a),
		newDocsCmd(a),
		newConfigCmd(a),
		newEnvCmd(a),
		newDoctorCmd(a),
	)
	return cmd
}

func (a *app) init(stdout io.Writer, stderr io.Writer) {
	a.out = printer.New(stdout)
	level := slog.LevelWarn
	if a.debug {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	a.runner = &loggingRunner{next: newRunner(stdout, stderr), logger: a.logger}
	a.ui = newUI()
}

// path resolves --config, falling back to the default location.
func (a *app) path() (string, error) {
	if strings.TrimSpace(a.configPath) != "" {
		return homedir.Expand(a.configPath)
	}
	return config.DefaultPath()
}

// loadConfig loads the config file. A missing file starts the setup flow and
// then ends the invocation successfully.
func (a *app) loadConfig() (*config.Config, error) {
	path, err := a.path()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if errors.Is(err, config.ErrNotFound) {
		a.out.Warn(messages.SetupNoConfig)
		if err := a.setup(path); err != nil {
			return nil, err
		}
		return nil, &SilentExitError{Code: 0}
	}
	if err != nil {
		return nil, err
	}
	a.logger.Debug("config loaded", "path", path)
	return cfg, nil
}

// requireAPI loads the config and a GitHub client, failing when credentials are not set.
func (a *app) requireAPI() (*config.Config, githubAPI, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if !cfg.CanUseAPI() {
		return nil, nil, errors.New(messages.SetupCredentialsRequired)
	}
	return cfg, newGitHubAPI(cfg), nil
}

// setup writes a config to path, interactively when possible and the user agrees.
func (a *app) setup(path string) error {
	interactive := false
	if isInteractive() {
		var err error
		interactive, err = prompt.Confirm(a.ui, messages.SetupInteractivePrompt, false)
		if err != nil {
			return err
		}
	}
	if !interactive {
		if err := config.Helper().Write(path); err != nil {
			return err
		}
		a.out.Goodf(messages.SetupHelperWrittenFmt, path)
		a.out.Note(messages.SetupHelperNote)
		return nil
	}

	cfg := config.Default()
	if err := a.ui.Input(messages.SetupProjectsDirPrompt, &cfg.ProjectsDir); err != nil {
		return err
	}
	if err := a.ui.SecretInput(messages.SetupTokenPrompt, &cfg.Token); err != nil {
		return err
	}
	if err := a.ui.Input(messages.SetupUsernamePrompt, &cfg.Username); err != nil {
		return err
	}
	useEditor, err := prompt.Confirm(a.ui, messages.SetupUseEditorPrompt, cfg.SpecifiesEditor())
	if err != nil {
		return err
	}
	if useEditor {
		if err := a.ui.Input(messages.SetupEditorPrompt, &cfg.Editor); err != nil {
			return err
		}
	} else {
		cfg.Editor = messages.ConfigEditorNone
	}
	if cfg.Git, err = prompt.Confirm(a.ui, messages.SetupGitPrompt, true); err != nil {
		return err
	}
	if cfg.CondaBin, err = prompt.Choose(a.ui, messages.SetupCondaBinPrompt, []string{"conda", "mamba"}); err != nil {
		return err
	}
	if err := cfg.Write(path); err != nil {
		return err
	}
	if _, err := config.Load(path); err != nil {
		return err
	}
	a.out.Goodf(messages.SetupCreatedFmt, path)
	return nil
}

// confirm asks title unless force is set. Declining ends the invocation with exit code 1.
func (a *app) confirm(title string, force bool) error {
	if force {
		return nil
	}
	if !isInteractive() {
		return prompt.ErrNotInteractive
	}
	ok, err := prompt.Confirm(a.ui, title, false)
	if err != nil && !errors.Is(err, prompt.ErrAborted) {
		return err
	}
	if !ok {
		a.out.Warn(messages.Aborted)
		return &SilentExitError{Code: 1}
	}
	return nil
}

func (a *app) git() (*git.Git, error) {
	return git.New("", lookPath, a.runner)
}

func (a *app) envDeps(cfg *config.Config) env.Deps {
	return env.Deps{Tools: cfg.Tools(), System: newEnvSystem(), Runner: a.runner}
}

func (a *app) workspace(cfg *config.Config) *workspace.Workspace {
	return workspace.New(cfg.ProjectsDir)
}

// openEditor opens path in the configured editor, if any.
func (a *app) openEditor(ctx context.Context, cfg *config.Config, name string, path string) error {
	if !cfg.SpecifiesEditor() {
		a.out.Subtle(fmt.Sprintf(messages.CheckoutLocationFmt, path))
		return nil
	}
	a.out.Infof(messages.CheckoutOpeningFmt, name, cfg.Editor)
	return editor.Launch(ctx, a.runner, cfg.Editor, path)
}

// describeNames renders a short list of project names, or a count for long lists.
func describeNames(names []string) string {
	if len(names) <= 3 {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf(messages.ConfirmManyProjectsFmt, len(names))
}

// loggingRunner logs each command at debug level before delegating.
type loggingRunner struct {
	next   proc.Runner
	logger *slog.Logger
}

func (r *loggingRunner) Run(ctx context.Context, cmd proc.Command) error {
	r.log(ctx, messages.DebugRunMsg, cmd)
	return r.next.Run(ctx, cmd)
}

func (r *loggingRunner) Capture(ctx context.Context, cmd proc.Command) ([]byte, error) {
	r.log(ctx, messages.DebugCaptureMsg, cmd)
	return r.next.Capture(ctx, cmd)
}

func (r *loggingRunner) log(ctx context.Context, msg string, cmd proc.Command) {
	r.logger.DebugContext(ctx, msg, "cmd", cmd.String(), "dir", cmd.Dir, "output", cmd.Output.String())
}
