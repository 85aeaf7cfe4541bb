package main

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/toil/internal/update"
)

func withUpdateCheck(t *testing.T, result update.CheckResult, err error) {
	t.Helper()
	t.Setenv(update.EnvNoNetwork, "")
	orig := checkForUpdate
	t.Cleanup(func() { checkForUpdate = orig })
	checkForUpdate = func(context.Context, string) (update.CheckResult, error) {
		return result, err
	}
}

func TestDoctorAllGood(t *testing.T) {
	h := newHarness(t)
	h.project("one")
	withUpdateCheck(t, update.CheckResult{Current: "1.0.0", Latest: "1.0.0"}, nil)

	out, err := h.run("doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "Checking toil health using "+h.configPath)
	assert.Contains(t, out, "[OK]   Config")
	assert.Contains(t, out, "GitHub credentials set for octocat")
	assert.Contains(t, out, "(1 projects)")
	assert.Contains(t, out, "git found at /usr/bin/git")
	assert.Contains(t, out, "Editor disabled")
	assert.Contains(t, out, "toil is up to date (1.0.0)")
	assert.Contains(t, out, "All checks passed")
}

func TestDoctorFailsWithoutGit(t *testing.T) {
	h := newHarness(t)
	withUpdateCheck(t, update.CheckResult{}, errors.New("offline"))
	lookPath = func(file string) (string, error) {
		if file == "git" {
			return "", errors.New("not found")
		}
		return "/usr/bin/" + file, nil
	}

	out, err := h.run("doctor")
	require.EqualError(t, err, "doctor checks failed")
	assert.Contains(t, out, "[FAIL] Tools")
	assert.Contains(t, out, "git (git) not found on $PATH")
	assert.Contains(t, out, "[WARN] Update")
	assert.Contains(t, out, "Verify network access")
}

func TestDoctorMissingConfigDoesNotRunSetup(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.Remove(h.configPath))
	t.Setenv(update.EnvNoNetwork, "1")

	out, err := h.run("doctor")
	require.Error(t, err)
	assert.Contains(t, out, "No config file at "+h.configPath)
	assert.NotContains(t, out, "Tools")
	assert.NoFileExists(t, h.configPath)
}
