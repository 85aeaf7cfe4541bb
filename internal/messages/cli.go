package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse         = "toil"
	// RootShort is the short description for the root command.
	RootShort       = "Helpful CLI to automate the development workflow"
	RootLong        = "toil manages your development projects locally and on GitHub, and provisions their Python environments."
	RootVersionFlag = "Print version and exit"
	RootFlagConfig  = "Path to the toil config file (default ~/.toil.toml or $TOIL_CONFIG)"
	RootFlagDebug   = "Log every spawned command to stderr"
	RootDocsURL     = "https://github.com/conn-castle/toil#readme"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// DebugRunMsg is the slog message for a spawned command.
	DebugRunMsg     = "run"
	DebugCaptureMsg = "capture"

	// SetupNoConfig warns that the config file is missing.
	SetupNoConfig            = "No toil config file detected!"
	SetupInteractivePrompt   = "Interactively configure toil?"
	SetupHelperWrittenFmt    = "I made a default file for you at %s"
	SetupHelperNote          = "Fill in your GitHub username and token with `toil config set`."
	SetupProjectsDirPrompt   = "Where do you keep your projects?"
	SetupTokenPrompt         = "GitHub personal access token?"
	SetupUsernamePrompt      = "What's your GitHub username?"
	SetupUseEditorPrompt     = "Auto open projects in an editor?"
	SetupEditorPrompt        = "Name of the editor binary to use?"
	SetupGitPrompt           = "Make git repos when creating new projects?"
	SetupCondaBinPrompt      = "Use conda or mamba for conda environments?"
	SetupCreatedFmt          = "Config created at %s"
	SetupCredentialsRequired = "you must set your GitHub username and personal access token to use API features (see `toil config explain`)"

	// FlagForce is the shared --force description.
	FlagForce  = "Skip the confirmation prompt"
	FlagLimit  = "Maximum number of projects to list"
	FlagSilent = "Discard output from the spawned tools"

	// Aborted is printed when the user declines a confirmation.
	Aborted                = "Aborted"
	ConfirmDeleteFmt       = "This will delete %s from your local filesystem. Are you sure?"
	ConfirmDeleteAll       = "This will delete ALL of your projects. Are you sure?"
	ConfirmManyProjectsFmt = "%d projects"
	DeletedFmt             = "Deleted %s"
	LocalNotFoundFmt       = "%q not found under %s. Was it a typo?"
	NoLocalProjects        = "you don't have any local projects"
	InSync                 = "Your local and remote projects are in sync!"

	// CheckoutUse is the checkout command usage.
	CheckoutUse               = "checkout PROJECT"
	CheckoutShort             = "Checkout an existing development project"
	CheckoutLong              = "Open a local project, clone one of your GitHub projects, or fork/clone someone else's (owner/repo).\n\nWith --venv, toil detects the project's Python toolchain after cloning and installs the project into a fresh environment."
	CheckoutFlagVenv          = "Auto-create a virtual environment for projects cloned from GitHub"
	CheckoutInvalidPatternFmt = "%q did not match a valid pattern; valid patterns are \"user/repo\" or \"repo\""
	CheckoutOwnRepoSlash      = "You don't need the '/' when checking out a repo you own"
	CheckoutNotFoundFmt       = "%q not found locally or on GitHub"
	CheckoutNewHintFmt        = "Use `toil new %s` to create it."
	CheckoutLocalFmt          = "%s available locally at %s"
	CheckoutVenvIgnoredLocal  = "The --venv flag is ignored for local projects."
	CheckoutOpeningFmt        = "Opening %s with %s"
	CheckoutRemoteFmt         = "%s/%s found on GitHub. Cloning..."
	CheckoutUpstreamMissFmt   = "%s/%s not found on GitHub. Was it a typo?"
	CheckoutBelongsFmt        = "%s/%s belongs to %s"
	CheckoutForkOrClonePrompt = "Fork project or clone the original?"
	CheckoutChoiceFork        = "fork"
	CheckoutChoiceClone       = "clone"
	CheckoutAlreadyForkedFmt  = "Looks like you've already forked %s/%s"
	CheckoutForkedHintFmt     = "Use `toil checkout %s` to pull down your fork."
	CheckoutForkingFmt        = "Forking %s/%s"
	CheckoutForkNotReady      = "Fork not available yet."
	CheckoutForkNotReadyNote  = "Forking happens asynchronously so this is normal. Give it a few more seconds and try checking it out again."
	CheckoutCloningForkFmt    = "Cloning your fork: %s/%s"
	CheckoutSettingUpstream   = "Setting 'upstream' to original repo."
	CheckoutDone              = "Done!"
	CheckoutEnvUndetected     = "Unable to auto-detect required environment. Skipping."
	CheckoutEnvCreatingFmt    = "Auto creating virtual environment using: %s"
	CheckoutCondaSlow         = "Conda environments can take a few minutes to create."
	CheckoutEnvExists         = "Environment already exists. Skipping."
	CheckoutLocationFmt       = "Project is at %s"

	// NewUse is the new command usage.
	NewUse               = "new PROJECT [PACKAGES...]"
	NewShort             = "Create a new development project"
	NewLong              = "Create a new project in the projects directory, optionally from a cookiecutter template or a language starter, with a git repo and a Python environment.\n\nPackages are installed into the new environment along with the configured common_packages."
	NewFlagCookie        = "URL of a cookiecutter template to create the project from"
	NewFlagStarter       = "Language starter to create the project from (python, go, rust)"
	NewFlagVenv          = "Create a Python environment for the project (venv, conda)"
	NewFlagNoGit         = "Don't initialise a git repo"
	NewExistsLocalFmt    = "%s already exists locally at %s"
	NewExistsRemoteFmt   = "%s already exists on GitHub"
	NewExistsRemoteNote  = "Use `toil checkout %s` to get it."
	NewCookieStarterBoth = "--cookie and --starter are mutually exclusive"
	NewUnknownVenvFmt    = "unknown environment %q (supported: venv, conda)"
	NewPackagesNoVenv    = "Packages were given without --venv; they will not be installed."
	NewCreatingFmt       = "Creating project: %s"
	NewCookieFmt         = "Creating %s from cookiecutter: %s"
	NewStarterFmt        = "Generating %s starter for %s"
	NewCreateDirFmt      = "create %s: %w"
	NewGitInit           = "Initialising empty git repo"
	NewVenvFmt           = "Creating virtual environment for %s"
	NewCondaFmt          = "Creating conda environment %s"
	NewExportedFmt       = "Exported conda environment to %s"
	NewCreatedFmt        = "Created %s"
	NewVenvKindVenv      = "venv"
	NewVenvKindConda     = "conda"

	// RemoveUse is the remove command usage.
	RemoveUse         = "remove [PROJECTS...]"
	RemoveShort       = "Remove projects from your local filesystem"
	RemoveLong        = "Delete the named local projects, or all of them with --all. Projects on GitHub are never touched."
	RemoveFlagAll     = "Delete all of your local projects"
	RemoveNeedsTarget = "if not using the '--all' flag, you must specify projects to remove"

	// KeepUse is the keep command usage.
	KeepUse   = "keep PROJECTS..."
	KeepShort = "Remove all but the specified projects"
	KeepLong  = "Delete every local project except the ones named. Projects on GitHub are never touched."

	// PullUse is the pull command usage.
	PullUse              = "pull [PROJECTS...]"
	PullShort            = "Pull down your remote projects"
	PullLong             = "Clone the named GitHub projects, or all of them with --all, skipping any that already exist locally."
	PullFlagAll          = "Pull down all your projects"
	PullNeedsTarget      = "if not using the '--all' flag, you must specify projects to pull"
	PullNoRemoteProjects = "you don't have any remote projects to pull"
	PullRemoteMissingFmt = "%q not found on GitHub. Was it a typo?"
	PullConfirmFmt       = "This will pull down %s. Are you sure?"
	PullClonedFmt        = "Cloned %s"

	// ShowUse is the show command name.
	ShowUse            = "show"
	ShowShort          = "View your local/remote projects"
	ShowLocalUse       = "local"
	ShowLocalShort     = "Show your local projects"
	ShowRemoteUse      = "remote"
	ShowRemoteShort    = "Show your remote projects"
	ShowForksUse       = "forks"
	ShowForksShort     = "Show your forked projects"
	ShowDiffUse        = "diff"
	ShowDiffShort      = "Show the difference between local and remote projects"
	ShowLocalTitle     = "Local Projects"
	ShowRemoteTitle    = "Remote Projects"
	ShowForksTitle     = "Forked Projects"
	ShowDiffTitle      = "Diff: Remote - Local"
	ShowCountFmt       = "Showing %d out of %d %s"
	ShowNoLocal        = "you don't have any local projects yet"
	ShowNoRemote       = "you don't have any projects on GitHub yet"
	ShowNoForks        = "you don't have any forks yet"
	ShowColName        = "Name"
	ShowColSize        = "Size"
	ShowColCreated     = "Created"
	ShowColModified    = "Modified"
	ShowColForked      = "Forked"
	ShowColParent      = "Parent"
	ShowNounLocal      = "local projects"
	ShowNounRemote     = "remote projects"
	ShowNounForks      = "forked projects"
	ShowNounDiff       = "projects"
	ShowStatProjectFmt = "stat %s: %w"

	// InfoUse is the info command usage.
	InfoUse        = "info PROJECT"
	InfoShort      = "Get useful information about a project"
	InfoTitleFmt   = "Info for %s:"
	InfoKeyName    = "Name"
	InfoKeyDesc    = "Description"
	InfoKeyCreated = "Created"
	InfoKeyUpdated = "Updated"
	InfoKeySize    = "Size"
	InfoKeyLicense = "License"
	InfoKeyLang    = "Language"
	InfoKeyRemote  = "Remote"
	InfoKeyLocal   = "Local"

	// GHUse is the gh command usage.
	GHUse           = "gh PROJECT"
	GHShort         = "Open one of your projects on GitHub"
	GHFlagIssues    = "Go to the issues page"
	GHFlagPRs       = "Go to the pull requests page"
	GHNotFoundFmt   = "could not find %q on GitHub. Was it a typo?"
	GHOpeningFmt    = "Opening %s on GitHub"
	GHIssuesFmt     = "Opening %s's issues on GitHub"
	GHPullsFmt      = "Opening %s's pull requests on GitHub"
	GHOpenFailedFmt = "open %s: %w"
	DocsUse         = "docs"
	DocsShort       = "Open the toil documentation in your browser"
	DocsOpening     = "Opening toil's documentation in your browser"

	// ConfigUse is the config command name.
	ConfigUse          = "config"
	ConfigShort        = "Interact with toil's configuration"
	ConfigShowUse      = "show"
	ConfigShowShort    = "Show the currently loaded config"
	ConfigGetUse       = "get KEY"
	ConfigGetShort     = "Get the currently set value for a config key"
	ConfigSetUse       = "set KEY VALUE"
	ConfigSetShort     = "Set a config key, preserving the rest of the file"
	ConfigSetDoneFmt   = "Set %s = %s"
	ConfigInitUse      = "init"
	ConfigInitShort    = "Create the config file"
	ConfigExplainUse   = "explain"
	ConfigExplainShort = "Print a list and description of toil config keys"
	ConfigExplainRow   = "  %-16s %-7s %s\n"
	ConfigSecretMask   = "********"

	// EnvUse is the env command name.
	EnvUse               = "env"
	EnvShort             = "Manage the Python environment of a local project"
	EnvLong              = "Detect, create, and install into a project's Python environment. Without --project, the current directory is used."
	EnvFlagProject       = "Name of a project under the projects directory"
	EnvFlagKind          = "Environment kind to use instead of detecting it (venv, requirements, conda, poetry, flit)"
	EnvDetectUse         = "detect"
	EnvDetectShort       = "Show which Python toolchain the project uses"
	EnvCreateUse         = "create [PACKAGES...]"
	EnvCreateShort       = "Create the project's environment"
	EnvInstallUse        = "install PACKAGES..."
	EnvInstallShort      = "Install packages into the project's environment"
	EnvInstallSelfUse    = "install-self"
	EnvInstallSelfShort  = "Install the project into its own environment"
	EnvExportUse         = "export"
	EnvExportShort       = "Export the conda environment to environment.yml"
	EnvFlagDiffLines     = "Maximum number of diff lines to preview"
	EnvNoneDetectedFmt   = "unable to detect a Python environment for %s"
	EnvUnknownKindFlag   = "unknown environment kind %q (supported: venv, requirements, conda, poetry, flit)"
	EnvKeyProject        = "Project"
	EnvKeyToolchain      = "Toolchain"
	EnvKeyEnvironment    = "Environment"
	EnvKeyExecutable     = "Executable"
	EnvKeyExists         = "Exists"
	EnvKeyBackend        = "Build backend"
	EnvCreatedFmt        = "Created %s environment for %s"
	EnvInstalledFmt      = "Installed %d package(s) into %s"
	EnvInstalledSelfFmt  = "Installed %s into its %s environment"
	EnvExportUpToDateFmt = "%s is up to date"
	EnvExportConfirmFmt  = "Write %s?"
	EnvExportWrittenFmt  = "Wrote %s"
	EnvDiffTruncatedFmt  = "... (truncated to %d lines; rerun with --diff-lines <n> to see more)"
)
