// Package resource defines the kinds of installable resources and the
// metadata formats used to describe them in a catalog.
package resource

import (
	"fmt"
	"strings"
)

// Kind identifies a category of installable resource.
type Kind string

const (
	// KindSkill is a directory of instructional files for an assistant.
	KindSkill Kind = "skill"

	// KindRule is a single markdown document.
	KindRule Kind = "rule"

	// KindBoth selects skills and rules together. It is a selection
	// value only and never names a physical catalog category.
	KindBoth Kind = "both"
)

// RuleExt is the file extension of rule documents in the catalog.
const RuleExt = ".md"

// ParseKind validates a user-supplied kind string.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSkill, KindRule, KindBoth:
		return k, nil
	default:
		return "", fmt.Errorf("unknown resource kind %q; available: skill, rule, both", s)
	}
}

// Includes reports whether the selection covers the given concrete kind.
func (k Kind) Includes(concrete Kind) bool {
	return k == KindBoth || k == concrete
}

// Subdir returns the assistant-relative directory name for a concrete
// kind ("skills" or "rules").
func (k Kind) Subdir() string {
	if k == KindRule {
		return "rules"
	}
	return "skills"
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindSkill:
		return "Skill"
	case KindRule:
		return "Rule"
	default:
		return "Skill + Rule"
	}
}
