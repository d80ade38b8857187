package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Meta holds the descriptive fields read from a document's YAML
// frontmatter.
type Meta struct {
	Name        string
	Description string
	ModifiedAt  time.Time
}

// ReadMeta parses the frontmatter of a markdown document. Documents
// without a usable name field are named after the file.
func ReadMeta(path string) (Meta, error) {
	// #nosec G304 -- path comes from catalog enumeration
	data, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, fmt.Errorf("read document %q: %w", path, err)
	}

	var meta Meta
	if block, ok := splitFrontmatter(data); ok {
		fields, err := parseFrontmatter(block)
		if err != nil {
			return Meta{}, fmt.Errorf("parse frontmatter in %q: %w", path, err)
		}
		meta.Name = stringField(fields, "name")
		meta.Description = stringField(fields, "description")
	}
	if meta.Name == "" {
		meta.Name = strings.TrimSuffix(filepath.Base(path), markdownExt)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Meta{}, fmt.Errorf("stat document %q: %w", path, err)
	}
	meta.ModifiedAt = info.ModTime()

	return meta, nil
}
