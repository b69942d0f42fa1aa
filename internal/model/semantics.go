package model

import (
	"errors"
	"fmt"
	"strings"
)

// Semantics names an extension-based semantics.
type Semantics string

const (
	// SemanticsConflictFree lists sets with no internal attack.
	SemanticsConflictFree Semantics = "conflict-free"
	// SemanticsNaive lists maximal conflict-free sets.
	SemanticsNaive Semantics = "naive"
	// SemanticsSelfDefending lists sets contained in their own defense.
	SemanticsSelfDefending Semantics = "self-defending"
	// SemanticsAdmissible lists conflict-free self-defending sets.
	SemanticsAdmissible Semantics = "admissible"
	// SemanticsFixedPoint lists fixed points of the defense function.
	SemanticsFixedPoint Semantics = "fixed-point"
	// SemanticsComplete lists admissible fixed points of the defense function.
	SemanticsComplete Semantics = "complete"
	// SemanticsPreferred lists maximal admissible sets.
	SemanticsPreferred Semantics = "preferred"
	// SemanticsStable lists sets that attack everything outside themselves.
	SemanticsStable Semantics = "stable"
	// SemanticsGrounded is the least complete extension.
	SemanticsGrounded Semantics = "grounded"
	// SemanticsSemiStable lists complete extensions with maximal range.
	SemanticsSemiStable Semantics = "semi-stable"
	// SemanticsStage lists conflict-free sets with maximal range.
	SemanticsStage Semantics = "stage"
	// SemanticsIdeal is the largest admissible set inside every preferred extension.
	SemanticsIdeal Semantics = "ideal"
	// SemanticsEager is the largest admissible set inside every semi-stable extension.
	SemanticsEager Semantics = "eager"
)

// ErrUnknownSemantics is returned when a semantics name is not recognised.
var ErrUnknownSemantics = errors.New("unknown semantics")

var allSemantics = []Semantics{
	SemanticsConflictFree,
	SemanticsNaive,
	SemanticsSelfDefending,
	SemanticsAdmissible,
	SemanticsFixedPoint,
	SemanticsComplete,
	SemanticsPreferred,
	SemanticsStable,
	SemanticsGrounded,
	SemanticsSemiStable,
	SemanticsStage,
	SemanticsIdeal,
	SemanticsEager,
}

// AllSemantics returns every supported semantics in a stable order.
func AllSemantics() []Semantics {
	out := make([]Semantics, len(allSemantics))
	copy(out, allSemantics)

	return out
}

// SingleValued reports whether the semantics always yields exactly one set.
func (s Semantics) SingleValued() bool {
	switch s {
	case SemanticsGrounded, SemanticsIdeal, SemanticsEager:
		return true
	default:
		return false
	}
}

// ParseSemantics resolves a semantics name, case-insensitively. A few common
// abbreviations from the literature are accepted too.
func ParseSemantics(name string) (Semantics, error) {
	value := strings.ToLower(strings.TrimSpace(name))

	switch value {
	case "cf":
		return SemanticsConflictFree, nil
	case "sd":
		return SemanticsSelfDefending, nil
	case "adm":
		return SemanticsAdmissible, nil
	case "fp":
		return SemanticsFixedPoint, nil
	case "comp", "co":
		return SemanticsComplete, nil
	case "pref", "pr":
		return SemanticsPreferred, nil
	case "stab", "st":
		return SemanticsStable, nil
	case "grd", "gr":
		return SemanticsGrounded, nil
	case "sst", "semistable":
		return SemanticsSemiStable, nil
	case "stg":
		return SemanticsStage, nil
	}

	for _, s := range allSemantics {
		if string(s) == value {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownSemantics, name)
}
