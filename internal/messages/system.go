package messages

// System messages for process, git, GitHub, and filesystem plumbing.
const (
	// ProcCommandRequired indicates a command was built without a binary path.
	ProcCommandRequired  = "command path is required"
	ProcRunFailedFmt     = "run %s: %w"
	ProcCaptureFailedFmt = "run %s: %w: %s"

	// GitNotInstalled indicates git is missing from $PATH.
	GitNotInstalled       = "git not installed"
	GitNotInstalledFmt    = "%w: %s"
	GitDefaultCommitMsg   = "Initial Commit (Automated at Project Creation)"
	GitUpstreamRemoteName = "upstream"

	// GitHubCreateRequestFmt formats GitHub request construction failures.
	GitHubCreateRequestFmt   = "create github request: %w"
	GitHubEncodeRequestFmt   = "encode github request: %w"
	GitHubRequestFailedFmt   = "github request %s: %w"
	GitHubDecodeResponseFmt  = "decode github response: %w"
	GitHubBadGraphQLFmt      = "bad graphql response: %s"
	GitHubStatusFmt          = "github api returned %s"
	GitHubRateLimitFmt       = "github api rate limit exceeded (%s, remaining=%s)"
	GitHubCredentialsMissing = "github username and token are required"
	GitHubParseTimeFmt       = "parse github timestamp %q: %w"
	GitHubUserNotFoundFmt    = "user %s not found"
	GitHubNoData             = "response has no data"

	// EditorLaunchFmt formats editor launch failures.
	EditorLaunchFmt     = "launch editor %s: %w"
	EditorNotConfigured = "no editor configured"

	// StarterGoNotInstalled indicates the go toolchain is missing.
	StarterGoNotInstalled           = "go not installed"
	StarterCargoNotInstalled        = "cargo not installed"
	StarterCookiecutterNotInstalled = "cookiecutter not installed"
	StarterProjectExistsFmt         = "project directory %s already exists"
	StarterCreateDirFmt             = "create %s: %w"
	StarterWriteFileFmt             = "write %s: %w"
	StarterUnknownFmt               = "unknown starter %q (supported: python, go, rust)"

	// WorkspaceReadDirFmt formats projects directory read failures.
	WorkspaceReadDirFmt = "read projects directory %s: %w"
	WorkspaceRemoveFmt  = "remove %s: %w"
	WorkspaceCloneFmt   = "clone %s: %w"
)

// Prompt messages.
const (
	PromptRequiresTerminal = "this command needs an interactive terminal; pass --force or run it in a terminal"
	PromptAborted          = "aborted"
	PromptNoOptions        = "no options to choose from"
)

// Template messages.
const (
	TemplatesReadFmt   = "read template %s: %w"
	TemplatesParseFmt  = "parse template %s: %w"
	TemplatesRenderFmt = "render template %s: %w"
)

// Repo messages.
const (
	RepoNotFound    = "repo not found"
	RepoNotFoundFmt = "%w: %q does not exist locally or on GitHub"
	RepoStatFmt     = "stat %s: %w"
)
