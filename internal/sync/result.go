package sync

import (
	"fmt"
	"strings"
)

// Result contains the complete outcome of a bulk install.
type Result struct {
	// Copied holds the names written to the target.
	Copied []string

	// Skipped holds the names left alone because the target already had
	// them and force was not set.
	Skipped []string

	// DryRun indicates if this was a dry run (no changes made).
	DryRun bool
}

// record files a bulk outcome under the right bucket. Bulk operations
// enumerate the pack, so an outcome without a source never occurs and
// is not recorded.
func (r *Result) record(name string, outcome Outcome) {
	switch outcome {
	case OutcomeCopied:
		r.Copied = append(r.Copied, name)
	case OutcomeSkippedExists:
		r.Skipped = append(r.Skipped, name)
	}
}

// merge appends another result's items to this one.
func (r *Result) merge(other *Result) {
	if other == nil {
		return
	}
	r.Copied = append(r.Copied, other.Copied...)
	r.Skipped = append(r.Skipped, other.Skipped...)
}

// Total returns the number of items processed.
func (r *Result) Total() int {
	return len(r.Copied) + len(r.Skipped)
}

// Summary returns a human-readable summary of the install result.
func (r *Result) Summary() string {
	var sb strings.Builder

	if r.DryRun {
		sb.WriteString("Dry run - no changes made\n")
	}

	sb.WriteString(fmt.Sprintf("  Copied:  %d\n", len(r.Copied)))
	sb.WriteString(fmt.Sprintf("  Skipped: %d\n", len(r.Skipped)))

	return sb.String()
}
