package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/conn-castle/toil/internal/config"
	"github.com/conn-castle/toil/internal/github"
	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/update"
	"github.com/conn-castle/toil/internal/workspace"
)

// LookPathFunc resolves a binary on $PATH.
type LookPathFunc func(file string) (string, error)

// CheckFunc reports how the running version compares to the latest release.
type CheckFunc func(ctx context.Context, currentVersion string) (update.CheckResult, error)

// CheckConfig loads the config at path. The config is nil when loading failed.
func CheckConfig(path string) ([]Result, *config.Config) {
	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, config.ErrNotFound):
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigMissingFmt, path),
			Recommendation: messages.DoctorConfigMissingRecommend,
		}}, nil
	case err != nil:
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   messages.DoctorConfigLoaded,
	}}, cfg
}

// CheckCredentials warns when API-backed commands cannot run.
func CheckCredentials(cfg *config.Config) []Result {
	if !cfg.CanUseAPI() {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameCredentials,
			Message:        messages.DoctorCredentialsMissing,
			Recommendation: messages.DoctorCredentialsRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameCredentials,
		Message:   fmt.Sprintf(messages.DoctorCredentialsFoundFmt, cfg.Username),
	}}
}

// CheckProjectsDir verifies projects_dir is a readable directory.
func CheckProjectsDir(cfg *config.Config) []Result {
	info, err := os.Stat(cfg.ProjectsDir)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameProjects,
			Message:        fmt.Sprintf(messages.DoctorProjectsMissingFmt, cfg.ProjectsDir),
			Recommendation: messages.DoctorProjectsMissingRecommend,
		}}
	}
	if !info.IsDir() {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameProjects,
			Message:        fmt.Sprintf(messages.DoctorProjectsNotDirFmt, cfg.ProjectsDir),
			Recommendation: messages.DoctorProjectsMissingRecommend,
		}}
	}
	local, err := workspace.New(cfg.ProjectsDir).Local()
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameProjects,
			Message:        err.Error(),
			Recommendation: messages.DoctorProjectsMissingRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameProjects,
		Message:   fmt.Sprintf(messages.DoctorProjectsFoundFmt, cfg.ProjectsDir, len(local)),
	}}
}

type tool struct {
	label    string
	bin      string
	key      string
	purpose  string
	required bool
}

func tools(cfg *config.Config) []tool {
	return []tool{
		{label: "git", bin: "git", required: true},
		{label: "python", bin: cfg.PythonBin, key: "python_bin", purpose: "venv environments"},
		{label: "conda", bin: cfg.CondaBin, key: "conda_bin", purpose: "conda environments"},
		{label: "poetry", bin: cfg.PoetryBin, key: "poetry_bin", purpose: "poetry projects"},
		{label: "flit", bin: cfg.FlitBin, key: "flit_bin", purpose: "flit projects"},
		{label: "cookiecutter", bin: "cookiecutter", purpose: "`toil new --cookie`"},
		{label: "go", bin: "go", purpose: "the go starter"},
		{label: "cargo", bin: "cargo", purpose: "the rust starter"},
	}
}

// CheckTools resolves every external binary toil may spawn.
// Only git is required; the rest produce warnings.
func CheckTools(cfg *config.Config, lookPath LookPathFunc) []Result {
	var results []Result
	for _, t := range tools(cfg) {
		bin := strings.TrimSpace(t.bin)
		if bin == "" {
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameTools,
				Message:        fmt.Sprintf(messages.DoctorToolUnconfiguredFmt, t.key),
				Recommendation: fmt.Sprintf(messages.DoctorToolOptionalRecommendFmt, t.purpose, t.key),
			})
			continue
		}
		path, err := lookPath(bin)
		if err == nil {
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameTools,
				Message:   fmt.Sprintf(messages.DoctorToolFoundFmt, t.label, path),
			})
			continue
		}
		r := Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameTools,
			Message:   fmt.Sprintf(messages.DoctorToolMissingFmt, t.label, bin),
		}
		switch {
		case t.required:
			r.Status = StatusFail
			r.Recommendation = messages.DoctorToolRequiredRecommend
		case t.key == "":
			r.Recommendation = fmt.Sprintf(messages.DoctorToolInstallRecommendFmt, t.purpose)
		default:
			r.Recommendation = fmt.Sprintf(messages.DoctorToolOptionalRecommendFmt, t.purpose, t.key)
		}
		results = append(results, r)
	}
	return results
}

// CheckEditor verifies the configured editor can be launched.
func CheckEditor(cfg *config.Config, lookPath LookPathFunc) []Result {
	if !cfg.SpecifiesEditor() {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameEditor,
			Message:   messages.DoctorEditorDisabled,
		}}
	}
	bin := strings.Fields(cfg.Editor)[0]
	path, err := lookPath(bin)
	if err != nil {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameEditor,
			Message:        fmt.Sprintf(messages.DoctorToolMissingFmt, messages.DoctorCheckNameEditor, bin),
			Recommendation: messages.DoctorEditorRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameEditor,
		Message:   fmt.Sprintf(messages.DoctorToolFoundFmt, bin, path),
	}}
}

// CheckUpdate compares version with the latest release. Failures only warn.
// The check is skipped when update.EnvNoNetwork is set.
func CheckUpdate(ctx context.Context, version string, check CheckFunc) Result {
	r := Result{CheckName: messages.DoctorCheckNameUpdate, Status: StatusWarn}
	if strings.TrimSpace(os.Getenv(update.EnvNoNetwork)) != "" {
		r.Message = fmt.Sprintf(messages.DoctorUpdateSkippedFmt, update.EnvNoNetwork)
		r.Recommendation = fmt.Sprintf(messages.DoctorUpdateSkippedRecommendFmt, update.EnvNoNetwork)
		return r
	}
	result, err := check(ctx, version)
	switch {
	case err != nil && github.IsRateLimitError(err):
		r.Message = messages.DoctorUpdateRateLimited
	case err != nil:
		r.Message = fmt.Sprintf(messages.DoctorUpdateFailedFmt, err)
		r.Recommendation = messages.DoctorUpdateFailedRecommend
	case result.CurrentIsDev:
		r.Message = fmt.Sprintf(messages.DoctorUpdateDevBuildFmt, result.Latest)
		r.Recommendation = fmt.Sprintf(messages.DoctorUpdateDevBuildRecommendFmt, update.ReleasesURL)
	case result.Outdated:
		r.Message = fmt.Sprintf(messages.DoctorUpdateAvailableFmt, result.Latest, result.Current)
		r.Recommendation = fmt.Sprintf(messages.DoctorUpdateAvailableRecommendFmt, update.ReleasesURL)
	default:
		r.Status = StatusOK
		r.Message = fmt.Sprintf(messages.DoctorUpToDateFmt, result.Current)
	}
	return r
}
