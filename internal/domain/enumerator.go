package domain

import (
	"context"

	m "argue.dev/pkg/argue/internal/model"
)

// Enumerator produces the candidate subsets that the semantics engine
// classifies. The default implementation is the exhaustive power set, whose
// cost is exponential in the number of arguments; frameworks beyond roughly a
// dozen arguments get slow and memory hungry.
type Enumerator interface {
	Subsets(ctx context.Context, universe m.ArgumentSet) ([]m.ArgumentSet, error)
}

// preallocateLimit bounds the universe size for which the full power set is
// allocated up front.
const preallocateLimit = 20

type powersetEnumerator struct{}

// NewPowersetEnumerator returns the exhaustive power-set Enumerator.
func NewPowersetEnumerator() Enumerator {
	return powersetEnumerator{}
}

func (powersetEnumerator) Subsets(ctx context.Context, universe m.ArgumentSet) ([]m.ArgumentSet, error) {
	return powerset(ctx, universe)
}

// Powerset returns all 2^|universe| subsets of universe, each exactly once,
// including the empty set and universe itself.
func Powerset(universe m.ArgumentSet) []m.ArgumentSet {
	subsets, _ := powerset(context.Background(), universe)
	return subsets
}

// powerset starts from {∅} and, for each element in turn, appends that
// element to a copy of every subset built so far, doubling the collection.
func powerset(ctx context.Context, universe m.ArgumentSet) ([]m.ArgumentSet, error) {
	capacity := 1
	if universe.Len() <= preallocateLimit {
		capacity = 1 << universe.Len()
	}

	subsets := make([]m.ArgumentSet, 1, capacity)
	subsets[0] = m.NewArgumentSet()

	for _, element := range universe.Members() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, subset := range subsets[:len(subsets):len(subsets)] {
			subsets = append(subsets, subset.With(element))
		}
	}

	return subsets, nil
}

// MaxSets returns the sets in list that have no strict superset in list.
// Equal sets do not eliminate each other.
func MaxSets(list []m.ArgumentSet) []m.ArgumentSet {
	return extremal(list, func(candidate, other m.ArgumentSet) bool {
		return candidate.ProperSubsetOf(other)
	})
}

// MinSets returns the sets in list that have no strict subset in list.
func MinSets(list []m.ArgumentSet) []m.ArgumentSet {
	return extremal(list, func(candidate, other m.ArgumentSet) bool {
		return other.ProperSubsetOf(candidate)
	})
}

// extremal keeps candidates that no other element dominates.
func extremal(list []m.ArgumentSet, dominated func(candidate, other m.ArgumentSet) bool) []m.ArgumentSet {
	out := make([]m.ArgumentSet, 0, len(list))

	for i, candidate := range list {
		keep := true

		for j, other := range list {
			if i != j && dominated(candidate, other) {
				keep = false
				break
			}
		}

		if keep {
			out = append(out, candidate)
		}
	}

	return out
}
