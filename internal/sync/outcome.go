package sync

// Outcome classifies the result of installing a single catalog item.
type Outcome int

const (
	// OutcomeSkippedNoSource indicates the pack has no item by that name.
	OutcomeSkippedNoSource Outcome = iota

	// OutcomeSkippedExists indicates the target already had the item and
	// force was not set.
	OutcomeSkippedExists

	// OutcomeCopied indicates the item was written to the target.
	OutcomeCopied
)

// Applied reports whether the install wrote the item to the target.
func (o Outcome) Applied() bool {
	return o == OutcomeCopied
}

// String returns a human-readable string for Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeSkippedExists:
		return "skipped-exists"
	case OutcomeSkippedNoSource:
		return "skipped-no-source"
	default:
		return "unknown"
	}
}
