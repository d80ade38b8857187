package model

import (
	"fmt"
	"regexp"
	"strings"
)

// namePattern matches category and item names: letters, digits,
// hyphens, underscores, and interior dots. Path separators are
// excluded so names can never escape their kind directory.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-][a-zA-Z0-9._-]*$`)

const maxNameLength = 64

// ValidateName checks a user-supplied category or item name before it
// is joined onto a filesystem path.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name %q exceeds %d characters", name, maxNameLength)
	}
	if strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("name %q must not contain path separators", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("name %q must not contain path traversal sequences", name)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("name %q contains invalid characters (allowed: letters, digits, '-', '_', '.')", name)
	}
	return nil
}
