// Package e2e provides the test harness for running sfkit commands
// end to end: an isolated environment, a disposable content pack, and
// output capture.
package e2e

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/cli"
)

// Result contains the outcome of running a CLI command.
type Result struct {
	// Stdout contains the captured standard output.
	Stdout string
	// Err is the error returned by the CLI command, if any.
	Err error
	// ExitCode is the inferred exit code (0 for success, 1 for error).
	ExitCode int
}

// Success returns true if the command completed without error.
func (r *Result) Success() bool {
	return r.Err == nil
}

// Harness runs sfkit commands against a throwaway home directory, a
// fixture content pack, and an empty project.
type Harness struct {
	t          *testing.T
	homeDir    string
	packDir    string
	projectDir string
}

// NewHarness creates an isolated test environment. The configuration
// and cache paths point inside a temp home, SFKIT_PACK_SOURCE points at
// a standard fixture pack, and SFKIT_PROJECT_DIR points at an agent
// directory that does not exist yet.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	homeDir := t.TempDir()
	h := &Harness{
		t:          t,
		homeDir:    homeDir,
		packDir:    filepath.Join(homeDir, "pack", "content"),
		projectDir: filepath.Join(homeDir, "project", ".agent"),
	}

	h.SetEnv("HOME", homeDir)
	h.SetEnv("XDG_CONFIG_HOME", filepath.Join(homeDir, "config"))
	h.SetEnv("XDG_CACHE_HOME", filepath.Join(homeDir, "cache"))
	h.SetEnv("SFKIT_PACK_SOURCE", h.packDir)
	h.SetEnv("SFKIT_PROJECT_DIR", h.projectDir)

	h.writeDefaultPack()

	return h
}

// SetEnv sets an environment variable for commands run through this
// harness. The previous value is restored after the test completes.
func (h *Harness) SetEnv(key, value string) {
	h.t.Helper()
	h.t.Setenv(key, value)
}

// HomeDir returns the isolated home directory for this test harness.
func (h *Harness) HomeDir() string {
	return h.homeDir
}

// PackDir returns the content root of the fixture pack.
func (h *Harness) PackDir() string {
	return h.packDir
}

// ProjectDir returns the agent directory commands install into.
func (h *Harness) ProjectDir() string {
	return h.projectDir
}

// writeDefaultPack lays out the standard fixture pack: two skill
// categories, one agent, and one workflow.
func (h *Harness) writeDefaultPack() {
	h.t.Helper()
	pack := h.PackFixture()

	pack.WriteFile("pack.yaml", "name: fixture-pack\nversion: 1.2.3\ndescription: Fixture content for end to end tests.\n")
	pack.WriteDoc("skills/apex/batch-apex.md", "batch-apex", "Batch Apex patterns", "# Batch Apex\n\nChunk work into scopes.\n")
	pack.WriteDoc("skills/apex/queueable-apex.md", "queueable-apex", "Queueable Apex patterns", "# Queueable Apex\n\nChain async jobs.\n")
	pack.WriteDoc("skills/triggers/trigger-frameworks.md", "trigger-frameworks", "Trigger handler pattern", "# Trigger Frameworks\n\nOne trigger per object.\n")
	pack.WriteDoc("agents/apex-reviewer.md", "apex-reviewer", "Reviews Apex changes", "# Apex Reviewer\n\nChecks bulkification.\n")
	pack.WriteDoc("workflows/code-review.md", "code-review", "Review flow", "# Code Review\n\nReview in passes.\n")
}

// Run executes a CLI command with the given arguments and captures
// stdout.
func (h *Harness) Run(args ...string) *Result {
	h.t.Helper()

	if len(args) == 0 || args[0] != "sfkit" {
		args = append([]string{"sfkit"}, args...)
	}

	oldStdout := os.Stdout
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		h.t.Fatalf("failed to create stdout pipe: %v", err)
	}
	os.Stdout = stdoutW

	// Drain the pipe while the command runs; a command that prints more
	// than the pipe buffer would otherwise block.
	var stdoutBuf bytes.Buffer
	var copyErr error
	copyDone := make(chan struct{})
	go func() {
		defer close(copyDone)
		_, copyErr = io.Copy(&stdoutBuf, stdoutR)
	}()

	cmdErr := cli.Run(context.Background(), args)

	if err := stdoutW.Close(); err != nil {
		h.t.Fatalf("failed to close stdout pipe writer: %v", err)
	}
	os.Stdout = oldStdout

	<-copyDone
	if copyErr != nil {
		h.t.Fatalf("failed to read captured stdout: %v", copyErr)
	}

	exitCode := 0
	if cmdErr != nil {
		exitCode = 1
	}

	return &Result{
		Stdout:   stdoutBuf.String(),
		Err:      cmdErr,
		ExitCode: exitCode,
	}
}
