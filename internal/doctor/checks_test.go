package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/toil/internal/config"
	"github.com/conn-castle/toil/internal/github"
	"github.com/conn-castle/toil/internal/update"
)

func lookPathOnly(found ...string) LookPathFunc {
	return func(file string) (string, error) {
		for _, f := range found {
			if f == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("not found")
	}
}

func statuses(results []Result) map[string]Status {
	out := map[string]Status{}
	for _, r := range results {
		out[r.Message] = r.Status
	}
	return out
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.toml")
	results, cfg := CheckConfig(missing)
	require.Nil(t, cfg)
	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Contains(t, results[0].Recommendation, "toil config init")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[toil]\nnope = 1\n"), 0o600))
	results, cfg = CheckConfig(bad)
	require.Nil(t, cfg)
	assert.Contains(t, results[0].Message, "Failed to load configuration")

	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte("[toil]\nprojects_dir = \""+dir+"\"\n"), 0o600))
	results, cfg = CheckConfig(good)
	require.NotNil(t, cfg)
	assert.Equal(t, StatusOK, results[0].Status)
	assert.False(t, Failed(results))
}

func TestCheckCredentials(t *testing.T) {
	assert.Equal(t, StatusWarn, CheckCredentials(&config.Config{})[0].Status)
	helper := config.Helper()
	assert.Equal(t, StatusWarn, CheckCredentials(&helper)[0].Status)

	results := CheckCredentials(&config.Config{Username: "octocat", Token: "t0ken"})
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Contains(t, results[0].Message, "octocat")
}

func TestCheckProjectsDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "one"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".hidden"), 0o755))

	results := CheckProjectsDir(&config.Config{ProjectsDir: dir})
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Contains(t, results[0].Message, "(1 projects)")

	results = CheckProjectsDir(&config.Config{ProjectsDir: filepath.Join(dir, "nope")})
	assert.True(t, Failed(results))

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	results = CheckProjectsDir(&config.Config{ProjectsDir: file})
	assert.True(t, Failed(results))
	assert.Contains(t, results[0].Message, "not a directory")
}

func TestCheckTools(t *testing.T) {
	cfg := config.Default()
	results := CheckTools(&cfg, lookPathOnly("git", "python3", "conda"))
	got := statuses(results)
	assert.Equal(t, StatusOK, got["git found at /usr/bin/git"])
	assert.Equal(t, StatusOK, got["python found at /usr/bin/python3"])
	assert.Equal(t, StatusWarn, got["poetry (poetry) not found on $PATH"])
	assert.Equal(t, StatusWarn, got["cookiecutter (cookiecutter) not found on $PATH"])
	assert.False(t, Failed(results))

	cfg.FlitBin = ""
	results = CheckTools(&cfg, lookPathOnly())
	got = statuses(results)
	assert.Equal(t, StatusFail, got["git (git) not found on $PATH"])
	assert.Equal(t, StatusWarn, got["flit_bin is not configured"])
	assert.True(t, Failed(results))
}

func TestCheckEditor(t *testing.T) {
	results := CheckEditor(&config.Config{Editor: "none"}, lookPathOnly())
	assert.Equal(t, StatusOK, results[0].Status)

	results = CheckEditor(&config.Config{Editor: "code --new-window"}, lookPathOnly("code"))
	assert.Equal(t, "code found at /usr/bin/code", results[0].Message)

	results = CheckEditor(&config.Config{Editor: "subl"}, lookPathOnly())
	assert.Equal(t, StatusWarn, results[0].Status)
}

func TestCheckUpdate(t *testing.T) {
	t.Setenv(update.EnvNoNetwork, "")
	ctx := context.Background()
	tests := []struct {
		name    string
		result  update.CheckResult
		err     error
		status  Status
		message string
	}{
		{name: "up to date", result: update.CheckResult{Current: "1.0.0", Latest: "1.0.0"}, status: StatusOK, message: "toil is up to date (1.0.0)"},
		{name: "outdated", result: update.CheckResult{Current: "1.0.0", Latest: "1.1.0", Outdated: true}, status: StatusWarn, message: "Update available: 1.1.0 (current 1.0.0)"},
		{name: "dev", result: update.CheckResult{Current: "dev", Latest: "1.1.0", CurrentIsDev: true}, status: StatusWarn, message: "Running dev build; latest release is 1.1.0"},
		{name: "rate limited", err: &github.RateLimitError{StatusCode: 429}, status: StatusWarn, message: "Update check skipped due to GitHub API rate limit (HTTP 403/429)"},
		{name: "failed", err: errors.New("offline"), status: StatusWarn, message: "Failed to check for updates: offline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckUpdate(ctx, "1.0.0", func(context.Context, string) (update.CheckResult, error) {
				return tt.result, tt.err
			})
			assert.Equal(t, tt.status, r.Status)
			assert.Equal(t, tt.message, r.Message)
		})
	}
}

func TestCheckUpdateSkippedOffline(t *testing.T) {
	t.Setenv(update.EnvNoNetwork, "1")
	r := CheckUpdate(context.Background(), "1.0.0", func(context.Context, string) (update.CheckResult, error) {
		t.Fatal("check must not run")
		return update.CheckResult{}, nil
	})
	assert.Equal(t, StatusWarn, r.Status)
	assert.Contains(t, r.Message, update.EnvNoNetwork)
}
