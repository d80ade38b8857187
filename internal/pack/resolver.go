// Package pack locates the content pack that ships with the sfkit
// binary. Release archives place the binary under bin/ next to a
// content/ directory, so resolution starts from the executable's own
// location rather than the working directory.
package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/logging"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/model"
)

const (
	// ManifestName is the pack manifest file kept inside the content root.
	ManifestName = "pack.yaml"

	contentDirName = "content"

	// maxUpwardHops bounds the upward search from the executable's directory.
	maxUpwardHops = 5
)

// IsContentRoot reports whether dir is a usable content root: a
// directory holding a skills/ subtree and the pack manifest.
func IsContentRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, model.KindSkill.Dir()))
	if err != nil || !info.IsDir() {
		return false
	}
	minfo, err := os.Stat(filepath.Join(dir, ManifestName))
	if err != nil || minfo.IsDir() {
		return false
	}
	return true
}

// Locate resolves the bundled content root relative to the running
// executable. The returned path is not guaranteed to exist: when every
// probe fails the first candidate is returned unchanged and callers
// decide how to handle the missing pack.
func Locate() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return LocateFrom(filepath.Dir(exe)), nil
}

// LocateFrom applies the content root search starting from the
// directory holding the sfkit binary. The first candidate assumes the
// bin/<binary> layout used by release archives; when its probe fails
// the search walks upward one level at a time, bounded, and finally
// falls back to the first candidate.
func LocateFrom(exeDir string) string {
	first := contentRootAt(filepath.Dir(exeDir))
	if IsContentRoot(first) {
		return first
	}

	dir := exeDir
	for i := 0; i < maxUpwardHops; i++ {
		candidate := contentRootAt(dir)
		if IsContentRoot(candidate) {
			logging.Debug("content root found by upward search",
				logging.Path(candidate),
				logging.Count(i),
			)
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	logging.Debug("content root probes failed, using first candidate",
		logging.Path(first),
	)
	return first
}

func contentRootAt(pkgDir string) string {
	return filepath.Join(pkgDir, contentDirName)
}
