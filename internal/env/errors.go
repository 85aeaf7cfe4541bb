package env

import (
	"errors"

	"github.com/conn-castle/toil/internal/messages"
)

// Sentinel errors returned by environment operations. Callers match them with errors.Is.
var (
	// ErrToolNotInstalled means the external binary an operation needs is unset or missing from $PATH.
	ErrToolNotInstalled = errors.New(messages.EnvToolNotInstalled)
	// ErrAlreadyExists is returned by Create when the environment is already present.
	ErrAlreadyExists = errors.New(messages.EnvAlreadyExists)
	// ErrDoesNotExist is returned by Install and ExportYML before the environment was created.
	ErrDoesNotExist = errors.New(messages.EnvDoesNotExist)
	// ErrBadEnvironmentFile means environment.yml has no usable string name.
	ErrBadEnvironmentFile = errors.New(messages.EnvBadEnvironmentFile)
	// ErrUnsupportedCondaInstallation means no known conda root directory exists.
	ErrUnsupportedCondaInstallation = errors.New(messages.EnvUnsupportedCondaInstall)
	// ErrNotImplemented is returned for operations a kind deliberately does not offer (poetry create).
	ErrNotImplemented = errors.New(messages.EnvNotImplemented)
	// ErrUnsupportedOperation is returned for conda-only operations on other kinds.
	ErrUnsupportedOperation = errors.New(messages.EnvUnsupportedOperation)
)
