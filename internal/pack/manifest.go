package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest identifies a content pack. It travels with the content so
// any resolved root can report what it holds.
type Manifest struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// ReadManifest loads the pack manifest from a content root.
func ReadManifest(contentRoot string) (*Manifest, error) {
	path := filepath.Join(contentRoot, ManifestName)

	// #nosec G304 - path derives from the resolved content root
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack manifest %q: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse pack manifest %q: %w", path, err)
	}
	return &m, nil
}
