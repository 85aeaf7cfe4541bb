package messages

// Environment messages for the python environment layer.
const (
	// EnvToolNotInstalled is the sentinel text for a missing external binary.
	EnvToolNotInstalled        = "tool not installed"
	EnvAlreadyExists           = "environment already exists"
	EnvDoesNotExist            = "environment does not exist"
	EnvBadEnvironmentFile      = "bad environment file"
	EnvUnsupportedCondaInstall = "unsupported conda installation"
	EnvNotImplemented          = "not implemented"
	EnvUnsupportedOperation    = "unsupported operation"
	EnvToolNotInstalledFmt     = "%w: %s (install it or set its path in the toil config)"
	EnvToolNotFoundOnPathFmt   = "%w: %s not found on $PATH"
	EnvVenvExistsFmt           = "%w: virtual environment at %s"
	EnvVenvMissingFmt          = "%w: virtual environment at %s; create it first"
	EnvCondaExistsFmt          = "%w: conda env %q"
	EnvCondaMissingInstallFmt  = "%w: conda env %q; create it first before installing packages"
	EnvCondaMissingExportFmt   = "%w: conda env %q; create it first before exporting the environment file"
	EnvCondaUnsupportedFmt     = "%w: could not detect the conda installation (checked %s)"
	EnvCondaRootMissingFmt     = "%w: configured conda root %s is not a directory"
	EnvPoetryCreateFmt         = "%w: poetry couples environment creation with dependency resolution; use install or install-self"
	EnvExportUnsupportedFmt    = "%w: %s environments cannot export an environment.yml"
	EnvUnknownKindFmt          = "unknown environment kind %d"
	EnvReadEnvironmentFileFmt  = "read %s: %w"
	EnvParseEnvironmentFileFmt = "%w: parse %s: %v"
	EnvEnvironmentFileNameFmt  = "%w: %s has an invalid format; cannot determine a string value for key `name`"
	EnvWriteEnvironmentFileFmt = "write %s: %w"
	EnvExportCommandFmt        = "export conda env %q: %w"
	EnvReadPyprojectFmt        = "read %s: %w"
	EnvParsePyprojectFmt       = "parse %s: %w"
	EnvCheckPathFmt            = "check %s: %w"
	EnvResolveHomeFmt          = "resolve home dir: %w"

	EnvRequirementsFileMissingFmt = "no requirements.txt or requirements-dev.txt in %s"

	// EnvToolchainHatchUnsupported describes the hatch detection outcome.
	EnvToolchainHatchUnsupported = "hatch (detected, no environment support)"
	EnvToolchainNone             = "none"
)
