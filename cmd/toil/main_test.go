package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"toil", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"toil", "unknown"}, &out, &out)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"toil", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"toil", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainSilentExit(t *testing.T) {
	orig := executeFunc
	defer func() { executeFunc = orig }()
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return &SilentExitError{Code: 3}
	}

	var out bytes.Buffer
	code := -1
	runMain([]string{"toil"}, &out, &out, func(c int) { code = c })
	if code != 3 {
		t.Fatalf("expected exit 3, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRunMainPropagatesChildExitCode(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	childErr := exec.Command(sh, "-c", "exit 7").Run()
	var exitErr *exec.ExitError
	if !errors.As(childErr, &exitErr) {
		t.Fatalf("expected exit error, got %v", childErr)
	}

	orig := executeFunc
	defer func() { executeFunc = orig }()
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return errors.Join(errors.New("pip failed"), childErr)
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"toil"}, &out, &out, func(c int) { code = c })
	if code != 7 {
		t.Fatalf("expected exit 7, got %d", code)
	}
	if !strings.Contains(out.String(), "pip failed") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"toil", "--version"}
	main()
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = origVersion, origCommit, origBuild }()

	Version, Commit, BuildDate = "v1.2.3", "unknown", "unknown"
	if got := versionString(); got != "v1.2.3" {
		t.Fatalf("versionString() = %q", got)
	}
	Commit, BuildDate = "abc123", "2024-01-01"
	if got := versionString(); got != "v1.2.3 (commit abc123, built 2024-01-01)" {
		t.Fatalf("versionString() = %q", got)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantQuiet bool
	}{
		{name: "plain error", err: errors.New("boom"), wantCode: 1},
		{name: "silent", err: &SilentExitError{Code: 0}, wantCode: 0, wantQuiet: true},
		{name: "wrapped silent", err: fmt.Errorf("setup: %w", &SilentExitError{Code: 2}), wantCode: 2, wantQuiet: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, quiet := exitCode(tt.err)
			if code != tt.wantCode || quiet != tt.wantQuiet {
				t.Fatalf("exitCode(%v) = %d, %v; want %d, %v", tt.err, code, quiet, tt.wantCode, tt.wantQuiet)
			}
		})
	}
}
