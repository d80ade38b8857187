package sync

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/catalog"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/logging"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/model"
)

const markdownExt = ".md"

// Options configures install and removal behavior.
type Options struct {
	// Force replaces items that already exist in the target.
	Force bool

	// DryRun previews outcomes without making actual changes.
	DryRun bool

	// OnItem, when set, is called after each item of a bulk operation
	// with the outcome decided for it.
	OnItem func(name string, outcome Outcome)
}

// Engine copies items from a content root into a project's agent
// directory. Skill categories move as whole directories; agents and
// workflows move as single documents.
type Engine struct {
	source string
	target string
	cat    *catalog.Catalog
}

// New creates an Engine reading from the content root at source and
// writing to the agent directory at target.
func New(source, target string) *Engine {
	return &Engine{
		source: source,
		target: target,
		cat:    catalog.New(source),
	}
}

// InstallCategory copies one skill category directory into the target.
func (e *Engine) InstallCategory(name string, opts Options) (Outcome, error) {
	if err := model.ValidateName(name); err != nil {
		return OutcomeSkippedNoSource, err
	}

	src := filepath.Join(e.source, model.KindSkill.Dir(), name)
	dst := filepath.Join(e.target, model.KindSkill.Dir(), name)

	outcome, err := e.install(src, dst, true, opts)
	if err != nil {
		return outcome, fmt.Errorf("failed to install skill category %q: %w", name, err)
	}

	logging.Debug("install decided",
		logging.Kind(string(model.KindSkill)),
		logging.Item(name),
		slog.String("outcome", outcome.String()),
	)
	return outcome, nil
}

// InstallItem copies one agent or workflow document into the target.
// Skills are categorized and install through InstallCategory instead.
func (e *Engine) InstallItem(kind model.Kind, name string, opts Options) (Outcome, error) {
	if kind.Categorized() {
		return OutcomeSkippedNoSource, fmt.Errorf("kind %q is categorized; use InstallCategory", kind)
	}
	if err := model.ValidateName(name); err != nil {
		return OutcomeSkippedNoSource, err
	}

	src := filepath.Join(e.source, kind.Dir(), name+markdownExt)
	dst := filepath.Join(e.target, kind.Dir(), name+markdownExt)

	outcome, err := e.install(src, dst, false, opts)
	if err != nil {
		return outcome, fmt.Errorf("failed to install %s %q: %w", kind, name, err)
	}

	logging.Debug("install decided",
		logging.Kind(string(kind)),
		logging.Item(name),
		slog.String("outcome", outcome.String()),
	)
	return outcome, nil
}

// InstallAllCategories copies every skill category in the pack,
// returning what was copied and what was already present. On error the
// partial result is returned alongside it.
func (e *Engine) InstallAllCategories(opts Options) (*Result, error) {
	defer logging.Timer("install skill categories")()

	result := &Result{DryRun: opts.DryRun}

	categories, err := e.cat.Categories()
	if err != nil {
		return result, fmt.Errorf("failed to enumerate skill categories: %w", err)
	}

	if err := e.ensureKindDir(model.KindSkill, opts); err != nil {
		return result, err
	}

	for _, cat := range categories {
		dst := filepath.Join(e.target, model.KindSkill.Dir(), cat.Name)
		outcome, err := e.install(cat.Path, dst, true, opts)
		if err != nil {
			return result, fmt.Errorf("failed to install skill category %q: %w", cat.Name, err)
		}
		result.record(cat.Name, outcome)
		if opts.OnItem != nil {
			opts.OnItem(cat.Name, outcome)
		}
	}

	logging.Debug("installed skill categories",
		logging.Count(result.Total()),
		slog.Bool("dry_run", opts.DryRun),
	)
	return result, nil
}

// InstallAllItems copies every document of a flat kind in the pack.
func (e *Engine) InstallAllItems(kind model.Kind, opts Options) (*Result, error) {
	result := &Result{DryRun: opts.DryRun}

	entries, err := e.cat.Entries(kind)
	if err != nil {
		return result, fmt.Errorf("failed to enumerate %s documents: %w", kind, err)
	}

	if err := e.ensureKindDir(kind, opts); err != nil {
		return result, err
	}

	for _, entry := range entries {
		dst := filepath.Join(e.target, kind.Dir(), entry.Name+markdownExt)
		outcome, err := e.install(entry.Path, dst, false, opts)
		if err != nil {
			return result, fmt.Errorf("failed to install %s %q: %w", kind, entry.Name, err)
		}
		result.record(entry.Name, outcome)
		if opts.OnItem != nil {
			opts.OnItem(entry.Name, outcome)
		}
	}

	logging.Debug("installed documents",
		logging.Kind(string(kind)),
		logging.Count(result.Total()),
		slog.Bool("dry_run", opts.DryRun),
	)
	return result, nil
}

// InstallAll copies the entire pack: every skill category plus every
// agent and workflow document.
func (e *Engine) InstallAll(opts Options) (*Result, error) {
	defer logging.Timer("install all")()

	result := &Result{DryRun: opts.DryRun}

	catResult, err := e.InstallAllCategories(opts)
	result.merge(catResult)
	if err != nil {
		return result, err
	}

	for _, kind := range []model.Kind{model.KindAgent, model.KindWorkflow} {
		kindResult, err := e.InstallAllItems(kind, opts)
		result.merge(kindResult)
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// CountAll returns the number of installable units in the pack: one per
// skill category, one per flat-kind document.
func (e *Engine) CountAll() (int, error) {
	categories, err := e.cat.Categories()
	if err != nil {
		return 0, fmt.Errorf("failed to enumerate skill categories: %w", err)
	}
	total := len(categories)

	for _, kind := range []model.Kind{model.KindAgent, model.KindWorkflow} {
		entries, err := e.cat.Entries(kind)
		if err != nil {
			return 0, fmt.Errorf("failed to enumerate %s documents: %w", kind, err)
		}
		total += len(entries)
	}
	return total, nil
}

// RemoveCategory deletes an installed skill category from the target.
// It reports whether the category was present.
func (e *Engine) RemoveCategory(name string, opts Options) (bool, error) {
	if err := model.ValidateName(name); err != nil {
		return false, err
	}
	return e.remove(filepath.Join(e.target, model.KindSkill.Dir(), name), opts)
}

// RemoveItem deletes an installed agent or workflow document from the
// target. It reports whether the document was present.
func (e *Engine) RemoveItem(kind model.Kind, name string, opts Options) (bool, error) {
	if kind.Categorized() {
		return false, fmt.Errorf("kind %q is categorized; use RemoveCategory", kind)
	}
	if err := model.ValidateName(name); err != nil {
		return false, err
	}
	return e.remove(filepath.Join(e.target, kind.Dir(), name+markdownExt), opts)
}

// install decides the outcome for one source/destination pair and
// performs the copy unless the options say otherwise. A missing or
// mis-shaped source is an outcome, not an error.
func (e *Engine) install(src, dst string, dir bool, opts Options) (Outcome, error) {
	info, err := os.Stat(src)
	if err != nil || info.IsDir() != dir {
		return OutcomeSkippedNoSource, nil
	}

	if _, err := os.Lstat(dst); err == nil {
		if !opts.Force {
			return OutcomeSkippedExists, nil
		}
	} else if !os.IsNotExist(err) {
		return OutcomeSkippedNoSource, fmt.Errorf("failed to stat %q: %w", dst, err)
	}

	if opts.DryRun {
		return OutcomeCopied, nil
	}

	// Under force an existing destination is removed first so stale
	// files inside a replaced category do not survive the copy.
	if opts.Force {
		if err := removeExisting(dst); err != nil {
			return OutcomeSkippedNoSource, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return OutcomeSkippedNoSource, fmt.Errorf("failed to create target directory %q: %w", filepath.Dir(dst), err)
	}

	if dir {
		if err := copyDir(src, dst); err != nil {
			return OutcomeSkippedNoSource, err
		}
	} else {
		if err := copyFile(src, dst); err != nil {
			return OutcomeSkippedNoSource, err
		}
	}
	return OutcomeCopied, nil
}

// ensureKindDir creates the kind directory under the target so the
// agent tree has its full skeleton even when the pack is sparse.
func (e *Engine) ensureKindDir(kind model.Kind, opts Options) error {
	if opts.DryRun {
		return nil
	}
	dir := filepath.Join(e.target, kind.Dir())
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create target directory %q: %w", dir, err)
	}
	return nil
}

// remove deletes path if present. A path that disappears between the
// check and the delete still counts as removed.
func (e *Engine) remove(path string, opts Options) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if opts.DryRun {
		return true, nil
	}

	if err := os.RemoveAll(path); err != nil {
		return false, fmt.Errorf("failed to remove %q: %w", path, err)
	}

	logging.Debug("removed installed item", logging.Path(path))
	return true, nil
}
