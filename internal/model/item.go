package model

import "time"

// Item represents a single piece of installable content: a skill
// category for the skill kind, or a markdown document for flat kinds.
type Item struct {
	Name        string    `json:"name"`
	Kind        Kind      `json:"kind"`
	Description string    `json:"description,omitempty"`
	Path        string    `json:"path"`
	Installed   bool      `json:"installed"`
	ModifiedAt  time.Time `json:"modified_at,omitzero"`
}

// Spec returns the kind-qualified identifier shown to users,
// e.g. "skills/apex" or "agents/apex-reviewer".
func (i Item) Spec() string {
	return i.Kind.Dir() + "/" + i.Name
}
