package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check your config, credentials, and the external tools toil relies on"

	DoctorHealthCheckFmt = "🏥 Checking toil health using %s...\n"

	DoctorCheckNameConfig      = "Config"
	DoctorCheckNameCredentials = "Credentials"
	DoctorCheckNameProjects    = "Projects"
	DoctorCheckNameTools       = "Tools"
	DoctorCheckNameEditor      = "Editor"
	DoctorCheckNameUpdate      = "Update"

	DoctorConfigLoadFailedFmt    = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend    = "Fix the file by hand or recreate it with `toil config init`."
	DoctorConfigMissingFmt       = "No config file at %s"
	DoctorConfigMissingRecommend = "Run `toil config init` to create one."
	DoctorConfigLoaded           = "Configuration loaded successfully"

	DoctorCredentialsMissing   = "GitHub username or token not set; API commands are unavailable"
	DoctorCredentialsRecommend = "Run `toil config set username <name>` and `toil config set token <token>`."
	DoctorCredentialsFoundFmt  = "GitHub credentials set for %s"

	DoctorProjectsMissingFmt       = "Projects directory %s does not exist"
	DoctorProjectsMissingRecommend = "Create it, or point projects_dir somewhere else with `toil config set projects_dir <path>`."
	DoctorProjectsNotDirFmt        = "%s exists but is not a directory"
	DoctorProjectsFoundFmt         = "Projects directory %s (%d projects)"

	DoctorToolFoundFmt             = "%s found at %s"
	DoctorToolMissingFmt           = "%s (%s) not found on $PATH"
	DoctorToolRequiredRecommend    = "toil cannot clone or create projects without it. Install it and make sure it is on $PATH."
	DoctorToolOptionalRecommendFmt = "Only needed for %s. Install it, or point toil at it with `toil config set %s <binary>`."
	DoctorToolUnconfiguredFmt      = "%s is not configured"
	DoctorToolInstallRecommendFmt  = "Only needed for %s."

	DoctorEditorDisabled  = "Editor disabled; projects will not be opened automatically"
	DoctorEditorRecommend = "Install the editor or change it with `toil config set editor <binary>`."

	DoctorUpdateSkippedFmt            = "Update check skipped because %s is set"
	DoctorUpdateSkippedRecommendFmt   = "Unset %s to check for updates."
	DoctorUpdateRateLimited           = "Update check skipped due to GitHub API rate limit (HTTP 403/429)"
	DoctorUpdateFailedFmt             = "Failed to check for updates: %v"
	DoctorUpdateFailedRecommend       = "Verify network access and try again."
	DoctorUpdateDevBuildFmt           = "Running dev build; latest release is %s"
	DoctorUpdateDevBuildRecommendFmt  = "Install a release build from %s."
	DoctorUpdateAvailableFmt          = "Update available: %s (current %s)"
	DoctorUpdateAvailableRecommendFmt = "Download the latest release from %s."
	DoctorUpToDateFmt                 = "toil is up to date (%s)"

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-12s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "          "

	DoctorSuccessSummary = "✅ All checks passed! toil is ready."
	DoctorFailureSummary = "❌ Some checks failed. Please address the issues above."
	DoctorFailureError   = "doctor checks failed"
)
