package model

import "fmt"

// Kind represents a supported content kind
type Kind string

const (
	KindSkill    Kind = "skill"
	KindAgent    Kind = "agent"
	KindWorkflow Kind = "workflow"
)

// IsValid returns true if the kind is recognized
func (k Kind) IsValid() bool {
	switch k {
	case KindSkill, KindAgent, KindWorkflow:
		return true
	default:
		return false
	}
}

// Categorized returns true if the kind is organized into category
// directories rather than flat markdown files. Only skills are
// categorized; agents and workflows live as single files.
func (k Kind) Categorized() bool {
	return k == KindSkill
}

// Dir returns the directory name used for this kind under a content root.
func (k Kind) Dir() string {
	switch k {
	case KindSkill:
		return "skills"
	case KindAgent:
		return "agents"
	case KindWorkflow:
		return "workflows"
	default:
		return string(k)
	}
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// AllKinds returns all supported kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindSkill, KindAgent, KindWorkflow}
}

// ParseKind converts a user-supplied string into a Kind.
// Both singular and plural forms are accepted.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "skill", "skills":
		return KindSkill, nil
	case "agent", "agents":
		return KindAgent, nil
	case "workflow", "workflows":
		return KindWorkflow, nil
	default:
		return "", fmt.Errorf("unknown kind %q (expected skill, agent, or workflow)", s)
	}
}
