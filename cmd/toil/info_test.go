package main

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/toil/internal/github"
	"github.com/conn-castle/toil/internal/repo"
)

func TestInfoRemote(t *testing.T) {
	h := newHarness(t)
	h.api.setExists("octocat/toil")
	h.api.info = &github.Repo{
		Name:        "toil",
		Description: "Project management",
		CreatedAt:   fixedNow.Add(-48 * time.Hour),
		PushedAt:    fixedNow.Add(-3 * time.Hour),
		DiskUsageKB: 2048,
		License:     "MIT License",
		Language:    "Go",
	}

	out, err := h.run("info", "toil")
	require.NoError(t, err)
	assert.Contains(t, out, "Info for toil:")
	assert.Contains(t, out, "Description:  Project management")
	assert.Contains(t, out, "Created:  2 days ago")
	assert.Contains(t, out, "Size:  2.1 MB")
	assert.Contains(t, out, "License:  MIT License")
	assert.Contains(t, out, "Remote:  true")
	assert.Contains(t, out, "Local:  false")
}

func TestInfoLocalOnly(t *testing.T) {
	h := newHarness(t)
	path := h.project("scratch")
	stamp := fixedNow.Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	out, err := h.run("info", "scratch")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated:  1 hour ago")
	assert.Contains(t, out, "Remote:  false")
	assert.Contains(t, out, "Local:  true")
	assert.NotContains(t, out, "Description:")
}

func TestInfoNotFound(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("info", "ghost")
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestInfoAPIError(t *testing.T) {
	h := newHarness(t)
	h.api.err = errors.New("rate limited")
	_, err := h.run("info", "toil")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}
