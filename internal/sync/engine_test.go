package sync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/model"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/util"
)

// writePackFixture builds a content root with two skill categories, two
// agents, and one workflow, returning its path.
func writePackFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	util.WriteDoc(t, filepath.Join(root, "skills", "apex", "batch-apex.md"),
		"batch-apex", "Batch Apex design patterns")
	util.WriteDoc(t, filepath.Join(root, "skills", "apex", "queueable-apex.md"),
		"queueable-apex", "")
	util.WriteDoc(t, filepath.Join(root, "skills", "triggers", "trigger-frameworks.md"),
		"trigger-frameworks", "")
	util.WriteDoc(t, filepath.Join(root, "agents", "apex-reviewer.md"),
		"apex-reviewer", "Reviews Apex changes")
	util.WriteDoc(t, filepath.Join(root, "agents", "test-coach.md"),
		"test-coach", "")
	util.WriteDoc(t, filepath.Join(root, "workflows", "code-review.md"),
		"code-review", "")

	return root
}

// newTestEngine returns an engine over a fixture pack and a fresh
// target directory.
func newTestEngine(t *testing.T) (*Engine, string, string) {
	t.Helper()
	source := writePackFixture(t)
	target := filepath.Join(t.TempDir(), ".agent")
	return New(source, target), source, target
}

func TestInstallCategory(t *testing.T) {
	t.Run("fresh install copies", func(t *testing.T) {
		e, source, target := newTestEngine(t)

		outcome, err := e.InstallCategory("apex", Options{})
		if err != nil {
			t.Fatalf("InstallCategory() error: %v", err)
		}
		if outcome != OutcomeCopied {
			t.Fatalf("outcome = %s, want copied", outcome)
		}
		if !outcome.Applied() {
			t.Error("Applied() = false for copied outcome")
		}

		for _, doc := range []string{"batch-apex.md", "queueable-apex.md"} {
			srcPath := filepath.Join(source, "skills", "apex", doc)
			dstPath := filepath.Join(target, "skills", "apex", doc)
			assertSameContent(t, srcPath, dstPath)
		}
	})

	t.Run("existing category skipped without force", func(t *testing.T) {
		e, _, target := newTestEngine(t)

		marker := filepath.Join(target, "skills", "apex", "local-edits.md")
		util.WriteFile(t, marker, "local content\n")

		outcome, err := e.InstallCategory("apex", Options{})
		if err != nil {
			t.Fatalf("InstallCategory() error: %v", err)
		}
		if outcome != OutcomeSkippedExists {
			t.Fatalf("outcome = %s, want skipped-exists", outcome)
		}
		if outcome.Applied() {
			t.Error("Applied() = true for skipped outcome")
		}

		// Nothing was copied and local files survived.
		// #nosec G304 - marker is constructed from test temp directory
		data, err := os.ReadFile(marker)
		if err != nil || string(data) != "local content\n" {
			t.Errorf("local file changed: %q, %v", data, err)
		}
		if _, err := os.Stat(filepath.Join(target, "skills", "apex", "batch-apex.md")); !os.IsNotExist(err) {
			t.Error("skip still copied source documents")
		}
	})

	t.Run("force replaces cleanly", func(t *testing.T) {
		e, source, target := newTestEngine(t)

		// Stale state: an extra file plus a diverged copy of a pack file.
		util.WriteFile(t, filepath.Join(target, "skills", "apex", "stale.md"), "stale\n")
		util.WriteFile(t, filepath.Join(target, "skills", "apex", "batch-apex.md"), "diverged\n")

		outcome, err := e.InstallCategory("apex", Options{Force: true})
		if err != nil {
			t.Fatalf("InstallCategory() error: %v", err)
		}
		if outcome != OutcomeCopied {
			t.Fatalf("outcome = %s, want copied", outcome)
		}

		if _, err := os.Stat(filepath.Join(target, "skills", "apex", "stale.md")); !os.IsNotExist(err) {
			t.Error("stale file survived a forced install")
		}
		assertSameContent(t,
			filepath.Join(source, "skills", "apex", "batch-apex.md"),
			filepath.Join(target, "skills", "apex", "batch-apex.md"))
	})

	t.Run("missing category is an outcome", func(t *testing.T) {
		e, _, target := newTestEngine(t)

		outcome, err := e.InstallCategory("visualforce", Options{})
		if err != nil {
			t.Fatalf("InstallCategory() error: %v", err)
		}
		if outcome != OutcomeSkippedNoSource {
			t.Fatalf("outcome = %s, want skipped-no-source", outcome)
		}
		if _, err := os.Stat(filepath.Join(target, "skills", "visualforce")); !os.IsNotExist(err) {
			t.Error("missing category left traces in the target")
		}
	})

	t.Run("invalid name rejected", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		if _, err := e.InstallCategory("../escape", Options{}); err == nil {
			t.Error("expected error for name with path separator")
		}
	})

	t.Run("dry run leaves target untouched", func(t *testing.T) {
		e, _, target := newTestEngine(t)

		outcome, err := e.InstallCategory("apex", Options{DryRun: true})
		if err != nil {
			t.Fatalf("InstallCategory() error: %v", err)
		}
		if outcome != OutcomeCopied {
			t.Fatalf("outcome = %s, want copied", outcome)
		}
		if _, err := os.Stat(target); !os.IsNotExist(err) {
			t.Error("dry run created the target directory")
		}
	})
}

func TestInstallItem(t *testing.T) {
	t.Run("fresh install copies", func(t *testing.T) {
		e, source, target := newTestEngine(t)

		outcome, err := e.InstallItem(model.KindAgent, "apex-reviewer", Options{})
		if err != nil {
			t.Fatalf("InstallItem() error: %v", err)
		}
		if outcome != OutcomeCopied {
			t.Fatalf("outcome = %s, want copied", outcome)
		}
		assertSameContent(t,
			filepath.Join(source, "agents", "apex-reviewer.md"),
			filepath.Join(target, "agents", "apex-reviewer.md"))
	})

	t.Run("existing document skipped without force", func(t *testing.T) {
		e, _, target := newTestEngine(t)

		dst := filepath.Join(target, "agents", "apex-reviewer.md")
		util.WriteFile(t, dst, "local agent\n")

		outcome, err := e.InstallItem(model.KindAgent, "apex-reviewer", Options{})
		if err != nil {
			t.Fatalf("InstallItem() error: %v", err)
		}
		if outcome != OutcomeSkippedExists {
			t.Fatalf("outcome = %s, want skipped-exists", outcome)
		}

		// #nosec G304 - dst is constructed from test temp directory
		data, _ := os.ReadFile(dst)
		if string(data) != "local agent\n" {
			t.Errorf("skip modified the existing document: %q", data)
		}
	})

	t.Run("force replaces document", func(t *testing.T) {
		e, source, target := newTestEngine(t)

		dst := filepath.Join(target, "agents", "apex-reviewer.md")
		util.WriteFile(t, dst, "local agent\n")

		outcome, err := e.InstallItem(model.KindAgent, "apex-reviewer", Options{Force: true})
		if err != nil {
			t.Fatalf("InstallItem() error: %v", err)
		}
		if outcome != OutcomeCopied {
			t.Fatalf("outcome = %s, want copied", outcome)
		}
		assertSameContent(t, filepath.Join(source, "agents", "apex-reviewer.md"), dst)
	})

	t.Run("missing document is an outcome", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		outcome, err := e.InstallItem(model.KindWorkflow, "release-train", Options{})
		if err != nil {
			t.Fatalf("InstallItem() error: %v", err)
		}
		if outcome != OutcomeSkippedNoSource {
			t.Errorf("outcome = %s, want skipped-no-source", outcome)
		}
	})

	t.Run("directory where a document belongs is no source", func(t *testing.T) {
		e, source, _ := newTestEngine(t)

		if err := os.MkdirAll(filepath.Join(source, "agents", "odd.md"), 0o750); err != nil {
			t.Fatal(err)
		}
		outcome, err := e.InstallItem(model.KindAgent, "odd", Options{})
		if err != nil {
			t.Fatalf("InstallItem() error: %v", err)
		}
		if outcome != OutcomeSkippedNoSource {
			t.Errorf("outcome = %s, want skipped-no-source", outcome)
		}
	})

	t.Run("categorized kind rejected", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		if _, err := e.InstallItem(model.KindSkill, "apex", Options{}); err == nil {
			t.Error("expected error for categorized kind")
		}
	})
}

func TestInstallAllCategories(t *testing.T) {
	t.Run("fresh install copies everything", func(t *testing.T) {
		e, _, target := newTestEngine(t)

		result, err := e.InstallAllCategories(Options{})
		if err != nil {
			t.Fatalf("InstallAllCategories() error: %v", err)
		}
		assertNames(t, "Copied", result.Copied, "apex", "triggers")
		assertNames(t, "Skipped", result.Skipped)

		if _, err := os.Stat(filepath.Join(target, "skills", "triggers", "trigger-frameworks.md")); err != nil {
			t.Errorf("expected installed document: %v", err)
		}
	})

	t.Run("existing categories are skipped", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		if _, err := e.InstallCategory("apex", Options{}); err != nil {
			t.Fatalf("seeding apex: %v", err)
		}

		result, err := e.InstallAllCategories(Options{})
		if err != nil {
			t.Fatalf("InstallAllCategories() error: %v", err)
		}
		assertNames(t, "Copied", result.Copied, "triggers")
		assertNames(t, "Skipped", result.Skipped, "apex")
	})

	t.Run("dry run reports without writing", func(t *testing.T) {
		e, _, target := newTestEngine(t)

		result, err := e.InstallAllCategories(Options{DryRun: true})
		if err != nil {
			t.Fatalf("InstallAllCategories() error: %v", err)
		}
		if !result.DryRun {
			t.Error("result not marked as dry run")
		}
		assertNames(t, "Copied", result.Copied, "apex", "triggers")
		if _, err := os.Stat(target); !os.IsNotExist(err) {
			t.Error("dry run created the target directory")
		}
	})

	t.Run("callback sees every item", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		seen := map[string]Outcome{}
		opts := Options{OnItem: func(name string, outcome Outcome) {
			seen[name] = outcome
		}}
		if _, err := e.InstallAllCategories(opts); err != nil {
			t.Fatalf("InstallAllCategories() error: %v", err)
		}
		if len(seen) != 2 {
			t.Fatalf("callback saw %d items, want 2", len(seen))
		}
		if seen["apex"] != OutcomeCopied || seen["triggers"] != OutcomeCopied {
			t.Errorf("callback outcomes = %v", seen)
		}
	})

	t.Run("empty pack still creates the skills dir", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), ".agent")
		e := New(t.TempDir(), target)

		result, err := e.InstallAllCategories(Options{})
		if err != nil {
			t.Fatalf("InstallAllCategories() error: %v", err)
		}
		if result.Total() != 0 {
			t.Errorf("Total() = %d, want 0", result.Total())
		}
		info, err := os.Stat(filepath.Join(target, "skills"))
		if err != nil || !info.IsDir() {
			t.Errorf("skills dir missing after install: %v", err)
		}
	})
}

func TestInstallAllItems(t *testing.T) {
	t.Run("copies every document of the kind", func(t *testing.T) {
		e, _, target := newTestEngine(t)

		result, err := e.InstallAllItems(model.KindAgent, Options{})
		if err != nil {
			t.Fatalf("InstallAllItems() error: %v", err)
		}
		assertNames(t, "Copied", result.Copied, "apex-reviewer", "test-coach")

		if _, err := os.Stat(filepath.Join(target, "agents", "test-coach.md")); err != nil {
			t.Errorf("expected installed document: %v", err)
		}
	})

	t.Run("categorized kind rejected", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		if _, err := e.InstallAllItems(model.KindSkill, Options{}); err == nil {
			t.Error("expected error for categorized kind")
		}
	})
}

func TestInstallAll(t *testing.T) {
	e, _, target := newTestEngine(t)

	result, err := e.InstallAll(Options{})
	if err != nil {
		t.Fatalf("InstallAll() error: %v", err)
	}
	assertNames(t, "Copied", result.Copied,
		"apex", "triggers", "apex-reviewer", "test-coach", "code-review")
	assertNames(t, "Skipped", result.Skipped)

	for _, path := range []string{
		"skills/apex/batch-apex.md",
		"skills/triggers/trigger-frameworks.md",
		"agents/apex-reviewer.md",
		"agents/test-coach.md",
		"workflows/code-review.md",
	} {
		if _, err := os.Stat(filepath.Join(target, filepath.FromSlash(path))); err != nil {
			t.Errorf("expected %s after full install: %v", path, err)
		}
	}

	// Re-running without force skips everything.
	again, err := e.InstallAll(Options{})
	if err != nil {
		t.Fatalf("second InstallAll() error: %v", err)
	}
	assertNames(t, "Copied", again.Copied)
	assertNames(t, "Skipped", again.Skipped,
		"apex", "triggers", "apex-reviewer", "test-coach", "code-review")
}

func TestCountAll(t *testing.T) {
	e, _, _ := newTestEngine(t)

	got, err := e.CountAll()
	if err != nil {
		t.Fatalf("CountAll() error: %v", err)
	}
	if got != 5 {
		t.Errorf("CountAll() = %d, want 5", got)
	}
}

func TestRemoveCategory(t *testing.T) {
	t.Run("removes installed category", func(t *testing.T) {
		e, _, target := newTestEngine(t)

		if _, err := e.InstallCategory("apex", Options{}); err != nil {
			t.Fatalf("seeding apex: %v", err)
		}

		found, err := e.RemoveCategory("apex", Options{})
		if err != nil {
			t.Fatalf("RemoveCategory() error: %v", err)
		}
		if !found {
			t.Error("found = false for installed category")
		}
		if _, err := os.Stat(filepath.Join(target, "skills", "apex")); !os.IsNotExist(err) {
			t.Error("category still present after removal")
		}
	})

	t.Run("absent category reports not found", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		found, err := e.RemoveCategory("apex", Options{})
		if err != nil {
			t.Fatalf("RemoveCategory() error: %v", err)
		}
		if found {
			t.Error("found = true for absent category")
		}
	})

	t.Run("dry run keeps the category", func(t *testing.T) {
		e, _, target := newTestEngine(t)

		if _, err := e.InstallCategory("apex", Options{}); err != nil {
			t.Fatalf("seeding apex: %v", err)
		}

		found, err := e.RemoveCategory("apex", Options{DryRun: true})
		if err != nil {
			t.Fatalf("RemoveCategory() error: %v", err)
		}
		if !found {
			t.Error("found = false for installed category")
		}
		if _, err := os.Stat(filepath.Join(target, "skills", "apex")); err != nil {
			t.Error("dry run removed the category")
		}
	})

	t.Run("invalid name rejected", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		if _, err := e.RemoveCategory("../escape", Options{}); err == nil {
			t.Error("expected error for name with path separator")
		}
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("removes installed document", func(t *testing.T) {
		e, _, target := newTestEngine(t)

		if _, err := e.InstallItem(model.KindAgent, "apex-reviewer", Options{}); err != nil {
			t.Fatalf("seeding agent: %v", err)
		}

		found, err := e.RemoveItem(model.KindAgent, "apex-reviewer", Options{})
		if err != nil {
			t.Fatalf("RemoveItem() error: %v", err)
		}
		if !found {
			t.Error("found = false for installed document")
		}
		if _, err := os.Stat(filepath.Join(target, "agents", "apex-reviewer.md")); !os.IsNotExist(err) {
			t.Error("document still present after removal")
		}
	})

	t.Run("absent document reports not found", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		found, err := e.RemoveItem(model.KindWorkflow, "code-review", Options{})
		if err != nil {
			t.Fatalf("RemoveItem() error: %v", err)
		}
		if found {
			t.Error("found = true for absent document")
		}
	})

	t.Run("categorized kind rejected", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		if _, err := e.RemoveItem(model.KindSkill, "apex", Options{}); err == nil {
			t.Error("expected error for categorized kind")
		}
	})
}

// assertSameContent fails unless both files hold identical bytes.
func assertSameContent(t *testing.T, src, dst string) {
	t.Helper()
	// #nosec G304 - paths constructed from test temp directories
	want, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("failed to read source %s: %v", src, err)
	}
	// #nosec G304 - paths constructed from test temp directories
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("failed to read destination %s: %v", dst, err)
	}
	if string(got) != string(want) {
		t.Errorf("content mismatch for %s: got %q, want %q", dst, got, want)
	}
}

// assertNames fails unless the slice holds exactly the given names in order.
func assertNames(t *testing.T, label string, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %q, want %q", label, i, got[i], want[i])
		}
	}
}
