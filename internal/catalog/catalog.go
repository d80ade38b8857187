// Package catalog enumerates the documents available under a content
// root or installed under a project's agent directory. Both trees share
// the same layout, so one reader serves both sides.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/logging"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/model"
)

const markdownExt = ".md"

// Entry is a single markdown document found under a kind directory.
type Entry struct {
	Name string
	Path string
}

// Category groups the skill documents that share a topic directory,
// such as apex or triggers.
type Category struct {
	Name  string
	Path  string
	Items []Entry
}

// Catalog reads the items under a single root directory.
type Catalog struct {
	root string
}

// New returns a Catalog over root. The root does not have to exist;
// enumerating a missing tree yields empty results rather than errors.
func New(root string) *Catalog {
	return &Catalog{root: root}
}

// Root returns the directory this catalog reads from.
func (c *Catalog) Root() string { return c.root }

// Categories lists the skill categories under the root along with the
// documents inside each, in directory order. Files directly under the
// skills directory are ignored.
func (c *Catalog) Categories() ([]Category, error) {
	dir := filepath.Join(c.root, model.KindSkill.Dir())
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("skills directory not found", logging.Path(dir))
			return []Category{}, nil
		}
		return nil, fmt.Errorf("read skills directory %q: %w", dir, err)
	}

	categories := make([]Category, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		cat := Category{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		}
		items, err := listDocuments(cat.Path)
		if err != nil {
			return nil, err
		}
		cat.Items = items
		categories = append(categories, cat)
	}

	logging.Debug("enumerated skill categories",
		logging.Path(dir),
		logging.Count(len(categories)),
	)
	return categories, nil
}

// Entries lists the documents under a flat kind directory such as
// agents or workflows. Skills are categorized and must be read through
// Categories instead.
func (c *Catalog) Entries(kind model.Kind) ([]Entry, error) {
	if kind.Categorized() {
		return nil, fmt.Errorf("kind %q is categorized; use Categories", kind)
	}

	dir := filepath.Join(c.root, kind.Dir())
	docs, err := listDocuments(dir)
	if err != nil {
		return nil, err
	}

	logging.Debug("enumerated documents",
		logging.Kind(string(kind)),
		logging.Path(dir),
		logging.Count(len(docs)),
	)
	return docs, nil
}

// HasCategory reports whether a skill category directory exists under
// the root.
func (c *Catalog) HasCategory(name string) bool {
	info, err := os.Stat(filepath.Join(c.root, model.KindSkill.Dir(), name))
	return err == nil && info.IsDir()
}

// HasEntry reports whether a document of the given flat kind exists
// under the root.
func (c *Catalog) HasEntry(kind model.Kind, name string) bool {
	info, err := os.Stat(filepath.Join(c.root, kind.Dir(), name+markdownExt))
	return err == nil && !info.IsDir()
}

// listDocuments returns the markdown documents directly inside dir,
// named without their extension. A missing directory yields an empty
// slice.
func listDocuments(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}

	docs := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), markdownExt) {
			continue
		}
		docs = append(docs, Entry{
			Name: strings.TrimSuffix(entry.Name(), markdownExt),
			Path: filepath.Join(dir, entry.Name()),
		})
	}
	return docs, nil
}
