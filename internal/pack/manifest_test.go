package pack

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/util"
)

func TestReadManifest(t *testing.T) {
	t.Run("valid manifest", func(t *testing.T) {
		root := t.TempDir()
		util.WriteFile(t, filepath.Join(root, ManifestName),
			"name: salesforce-agent-kit\nversion: 0.3.0\ndescription: Curated Salesforce development skills\n")

		m, err := ReadManifest(root)
		if err != nil {
			t.Fatalf("ReadManifest() error: %v", err)
		}
		if m.Name != "salesforce-agent-kit" {
			t.Errorf("Name = %q, want %q", m.Name, "salesforce-agent-kit")
		}
		if m.Version != "0.3.0" {
			t.Errorf("Version = %q, want %q", m.Version, "0.3.0")
		}
		if m.Description == "" {
			t.Error("Description is empty")
		}
	})

	t.Run("missing manifest", func(t *testing.T) {
		_, err := ReadManifest(t.TempDir())
		if err == nil {
			t.Fatal("expected error for missing manifest")
		}
		if !strings.Contains(err.Error(), "read pack manifest") {
			t.Errorf("error %q does not mention reading the manifest", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		root := t.TempDir()
		util.WriteFile(t, filepath.Join(root, ManifestName), "name: [unclosed\n")

		_, err := ReadManifest(root)
		if err == nil {
			t.Fatal("expected error for invalid YAML")
		}
		if !strings.Contains(err.Error(), "parse pack manifest") {
			t.Errorf("error %q does not mention parsing the manifest", err)
		}
	})
}
