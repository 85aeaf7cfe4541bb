package messages

// Config messages for loading, validating, and editing ~/.toil.toml.
const (
	// ConfigNotFound is the sentinel text for a missing config file.
	ConfigNotFound              = "config file not found"
	ConfigNotFoundFmt           = "%w: %s (run `toil config init` to create one)"
	ConfigReadFmt               = "read config %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt   = "%s: unrecognized keys: %w"
	ConfigValidationFailed      = "config validation failed"
	ConfigValidationFmt         = "%w: %s: %s"
	ConfigEncodeFmt             = "encode config: %w"
	ConfigWriteFmt              = "write config %s: %w"
	ConfigCreateDirFmt          = "create config dir %s: %w"
	ConfigAlreadyExistsFmt      = "config file %s already exists"
	ConfigUnknownKeyFmt         = "%q is not a valid toil config key"
	ConfigInvalidBoolFmt        = "%s expects true or false, got %q"
	ConfigSetFailedFmt          = "set %s: %w"
	ConfigRenderFmt             = "render config: %w"
	ConfigResolveHomeFmt        = "resolve home dir: %w"
	ConfigExpandPathFmt         = "expand %s: %w"
	ConfigFieldRequiredFmt      = "%s is required"
	ConfigFieldNoSpaceFmt       = "%s must not contain whitespace"
	ConfigFieldNoSpaceItemFmt   = "%s entries must be non-empty and contain no whitespace"
	ConfigFieldMaxFmt           = "%s must be at most %s characters"
	ConfigFieldInvalidFmt       = "%s failed validation: %s"
	ConfigHelperToken           = "Put your GitHub personal access token here"
	ConfigHelperUsername        = "This your GitHub username"
	ConfigDescProjectsDir       = "Directory holding your development projects (e.g. ~/Development)."
	ConfigDescToken             = "GitHub personal access token with repo read access. Falls back to $GITHUB_TOKEN."
	ConfigDescUsername          = "Your GitHub username."
	ConfigDescEditor            = "Editor binary used to open projects. Empty uses $EDITOR; \"none\" disables opening."
	ConfigDescCondaBin          = "Conda-compatible binary used for conda environments (conda, mamba, micromamba)."
	ConfigDescPoetryBin         = "Poetry binary used for poetry projects."
	ConfigDescFlitBin           = "Flit binary used for flit projects."
	ConfigDescPythonBin         = "Python interpreter used to build plain virtual environments."
	ConfigDescCondaRoot         = "Conda installation root. Empty probes ~/anaconda3, ~/miniconda3, ~/miniforge3, ~/mambaforge."
	ConfigDescCommonPackages    = "Packages injected into every environment toil creates (linters, formatters)."
	ConfigDescGit               = "Initialise a git repo when creating a new project. Disable per use with --no-git."
	ConfigExplainHeader         = "toil config keys (table [toil] in %s):"
	ConfigShowKeyValueFmt       = "%s: %s"
	ConfigEditorNone            = "none"
	ConfigGitHubTokenEnv        = "GITHUB_TOKEN"
	ConfigEditorEnv             = "EDITOR"
	ConfigPathEnv               = "TOIL_CONFIG"
	ConfigDefaultProjectsDirRel = "Development"
)
