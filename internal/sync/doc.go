// Package sync installs catalog items from a content root into a
// project's agent directory and removes them again. Skill categories
// move as whole directories; agents and workflows move as single
// markdown documents.
//
// # Outcomes
//
// Install operations report one of three outcomes per item:
//   - OutcomeCopied: the item was written (or would be, on a dry run)
//   - OutcomeSkippedExists: the target already had the item and Force
//     was not set
//   - OutcomeSkippedNoSource: the pack has no such item
//
// A missing source is an outcome rather than an error so callers decide
// how loud to be about it. Bulk installs enumerate the pack, so
// OutcomeSkippedNoSource never occurs there.
//
// # Bulk installs
//
// InstallAll and its per-kind variants return a Result naming what was
// copied and what was skipped. Progress can be observed through
// Options.OnItem:
//
//	opts := sync.Options{
//	    OnItem: func(name string, outcome sync.Outcome) {
//	        fmt.Printf("%s: %s\n", name, outcome)
//	    },
//	}
//
// On error the partial Result is returned alongside it, so callers can
// still report what happened before the failure.
//
// # Force and dry runs
//
// Force replaces existing items; a replaced skill category is removed
// before the copy so stale documents inside it do not survive. DryRun
// reports the outcomes an operation would produce without touching the
// target tree.
package sync
