// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/conn-castle/toil/internal/proc"
)

// WriteStubWithExit writes an executable shell stub named name that exits with exitCode.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteScript writes an executable /bin/sh script with the given body and returns its path.
func WriteScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Touch creates an empty file at dir/name, creating parent directories.
func Touch(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteFile(t, dir, name, "")
}

// RecordingRunner is a proc.Runner that records commands instead of spawning them.
type RecordingRunner struct {
	mu    sync.Mutex
	calls []proc.Command
	// Hook, when set, runs for every command. Its bytes are returned by Capture.
	Hook func(cmd proc.Command) ([]byte, error)
}

// Run records cmd and invokes Hook.
func (r *RecordingRunner) Run(_ context.Context, cmd proc.Command) error {
	_, err := r.record(cmd)
	return err
}

// Capture records cmd and returns Hook's output.
func (r *RecordingRunner) Capture(_ context.Context, cmd proc.Command) ([]byte, error) {
	return r.record(cmd)
}

// Calls returns a copy of the recorded commands.
func (r *RecordingRunner) Calls() []proc.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]proc.Command(nil), r.calls...)
}

func (r *RecordingRunner) record(cmd proc.Command) ([]byte, error) {
	r.mu.Lock()
	r.calls = append(r.calls, cmd)
	hook := r.Hook
	r.mu.Unlock()
	if hook == nil {
		return nil, nil
	}
	return hook(cmd)
}

// WithWorkingDir runs fn inside dir and restores the previous working directory.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
