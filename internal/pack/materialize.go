package pack

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/logging"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/util"
)

// Materialize writes an embedded content tree beneath dir, creating
// directories as needed. Existing files are overwritten, so repeated
// calls converge on the embedded state.
func Materialize(src fs.FS, dir string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		dest := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(dest, 0o750); err != nil {
				return fmt.Errorf("create directory %q: %w", dest, err)
			}
			return nil
		}

		data, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("read embedded file %q: %w", path, err)
		}

		// #nosec G306 - pack content is plain documentation
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("write %q: %w", dest, err)
		}
		return nil
	})
}

// EnsureEmbedded materializes the embedded pack into the user cache,
// keyed by pack version, and returns the resulting content root.
// A version that was already materialized is reused as-is.
func EnsureEmbedded(src fs.FS) (string, error) {
	data, err := fs.ReadFile(src, ManifestName)
	if err != nil {
		return "", fmt.Errorf("read embedded manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return "", fmt.Errorf("parse embedded manifest: %w", err)
	}

	version := m.Version
	if version == "" {
		version = "dev"
	}

	root := filepath.Join(util.CachePath(), "content-"+version)
	if IsContentRoot(root) {
		return root, nil
	}

	if err := Materialize(src, root); err != nil {
		return "", fmt.Errorf("materialize embedded pack: %w", err)
	}

	logging.Debug("materialized embedded pack",
		logging.Path(root),
	)
	return root, nil
}
