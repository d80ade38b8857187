package e2e

import (
	"os"
	"strings"
	"testing"
)

// Assertions over a command Result and the files it leaves behind.
// Disposition checks (success, error) are fatal so a test does not
// keep asserting against output that never happened; content checks
// report and continue.

// AssertSuccess fails the test when the command returned an error.
func AssertSuccess(t *testing.T, r *Result) {
	t.Helper()
	if !r.Success() {
		t.Fatalf("command failed: %v\nstdout:\n%s", r.Err, r.Stdout)
	}
}

// AssertError fails the test when the command succeeded.
func AssertError(t *testing.T, r *Result) {
	t.Helper()
	if r.Success() {
		t.Fatalf("command succeeded, want an error\nstdout:\n%s", r.Stdout)
	}
}

// AssertExitCode fails the test when the exit code differs from want.
func AssertExitCode(t *testing.T, r *Result, want int) {
	t.Helper()
	if r.ExitCode != want {
		t.Errorf("exit code = %d, want %d (err: %v)\nstdout:\n%s", r.ExitCode, want, r.Err, r.Stdout)
	}
}

// AssertOutputContains fails the test when stdout lacks the substring.
func AssertOutputContains(t *testing.T, r *Result, substr string) {
	t.Helper()
	if !strings.Contains(r.Stdout, substr) {
		t.Errorf("stdout missing %q\nstdout:\n%s", substr, r.Stdout)
	}
}

// AssertOutputNotContains fails the test when stdout has the substring.
func AssertOutputNotContains(t *testing.T, r *Result, substr string) {
	t.Helper()
	if strings.Contains(r.Stdout, substr) {
		t.Errorf("stdout unexpectedly contains %q\nstdout:\n%s", substr, r.Stdout)
	}
}

// AssertErrorContains fails the test unless the command returned an
// error whose message has the substring.
func AssertErrorContains(t *testing.T, r *Result, substr string) {
	t.Helper()
	if r.Success() {
		t.Fatalf("command succeeded, want an error containing %q", substr)
	}
	if got := r.Err.Error(); !strings.Contains(got, substr) {
		t.Errorf("error = %q, want it to contain %q", got, substr)
	}
}

// AssertFileExists fails the test when path cannot be stat'd.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

// AssertFileNotExists fails the test when path is present.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected %s to be absent", path)
	}
}

// AssertFileContains fails the test when the file lacks the substring.
func AssertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	// #nosec G304 - path is provided by test code
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("%s missing %q\ncontent:\n%s", path, substr, data)
	}
}
