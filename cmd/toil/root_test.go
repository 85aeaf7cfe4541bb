package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/toil/internal/testutil"
)

func TestDebugLogsCommands(t *testing.T) {
	h := newHarness(t)
	dir := h.project("app")
	testutil.Touch(t, dir, "setup.py")

	var stdout, stderr bytes.Buffer
	err := execute([]string{"toil", "--config", h.configPath, "--debug", "env", "install-self", "-p", "app", "-s"}, &stdout, &stderr)
	require.NoError(t, err)
	logs := stderr.String()
	assert.Contains(t, logs, "level=DEBUG msg=run")
	assert.Contains(t, logs, "-m pip install -e .[dev]")
	assert.Contains(t, logs, "output=discard")
}

func TestNoDebugLogsByDefault(t *testing.T) {
	h := newHarness(t)
	dir := h.project("app")
	testutil.Touch(t, dir, "setup.py")

	var stdout, stderr bytes.Buffer
	err := execute([]string{"toil", "--config", h.configPath, "env", "install-self", "-p", "app"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, stderr.String())
}

func TestDescribeNames(t *testing.T) {
	assert.Equal(t, "a", describeNames([]string{"a"}))
	assert.Equal(t, "a, b, c", describeNames([]string{"a", "b", "c"}))
	assert.Equal(t, "4 projects", describeNames([]string{"a", "b", "c", "d"}))
}

func TestRootListsCommands(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("--help")
	require.NoError(t, err)
	for _, name := range []string{"checkout", "new", "remove", "keep", "pull", "show", "info", "gh", "docs", "config", "env"} {
		assert.Contains(t, out, name)
	}
}
