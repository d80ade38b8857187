//nolint:revive // var-naming - package name is meaningful
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories first.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// WriteDoc writes a markdown document with the YAML frontmatter shape
// pack content and installed items share. An empty description is left
// out of the frontmatter block.
func WriteDoc(t *testing.T, path, name, description string) {
	t.Helper()
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "name: %s\n", name)
	if description != "" {
		fmt.Fprintf(&b, "description: %s\n", description)
	}
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s\n", name)
	WriteFile(t, path, b.String())
}
