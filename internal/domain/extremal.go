package domain

import (
	"context"
	"fmt"

	m "argue.dev/pkg/argue/internal/model"
)

// SemiStableExtensions lists the complete extensions whose range is maximal
// with respect to set inclusion among complete extensions.
func (e *Engine) SemiStableExtensions(ctx context.Context) ([]m.ArgumentSet, error) {
	complete, err := e.CompleteExtensions(ctx)
	if err != nil {
		return nil, err
	}

	return e.maximalRange(complete), nil
}

// StageExtensions lists the conflict-free sets whose range is maximal with
// respect to set inclusion among conflict-free sets.
func (e *Engine) StageExtensions(ctx context.Context) ([]m.ArgumentSet, error) {
	cf, err := e.ConflictFreeSets(ctx)
	if err != nil {
		return nil, err
	}

	return e.maximalRange(cf), nil
}

// IsSemiStable reports whether subset is a semi-stable extension.
func (e *Engine) IsSemiStable(ctx context.Context, subset m.ArgumentSet) (bool, error) {
	return e.member(ctx, subset, e.SemiStableExtensions)
}

// IsStage reports whether subset is a stage extension.
func (e *Engine) IsStage(ctx context.Context, subset m.ArgumentSet) (bool, error) {
	return e.member(ctx, subset, e.StageExtensions)
}

// Ideal returns the ideal extension: the unique maximal admissible set
// contained in every preferred extension.
func (e *Engine) Ideal(ctx context.Context) (m.ArgumentSet, error) {
	preferred, err := e.PreferredExtensions(ctx)
	if err != nil {
		return m.ArgumentSet{}, err
	}

	return e.skepticalAdmissible(ctx, "ideal extension", preferred)
}

// Eager returns the eager extension: the unique maximal admissible set
// contained in every semi-stable extension.
func (e *Engine) Eager(ctx context.Context) (m.ArgumentSet, error) {
	semiStable, err := e.SemiStableExtensions(ctx)
	if err != nil {
		return m.ArgumentSet{}, err
	}

	return e.skepticalAdmissible(ctx, "eager extension", semiStable)
}

// skepticalAdmissible returns the maximal admissible subset of the
// intersection of extensions, which must exist and be unique.
func (e *Engine) skepticalAdmissible(ctx context.Context, what string, extensions []m.ArgumentSet) (m.ArgumentSet, error) {
	bound, ok := m.IntersectAll(extensions)
	if !ok {
		return m.ArgumentSet{}, fmt.Errorf("%w: %s over an empty list of extensions", ErrDegenerateTheorem, what)
	}

	admissible, err := e.AdmissibleSets(ctx)
	if err != nil {
		return m.ArgumentSet{}, err
	}

	var within []m.ArgumentSet

	for _, s := range admissible {
		if s.SubsetOf(bound) {
			within = append(within, s)
		}
	}

	return unique(what, MaxSets(within))
}

// maximalRange keeps the candidates whose range no other candidate's range
// strictly contains.
func (e *Engine) maximalRange(candidates []m.ArgumentSet) []m.ArgumentSet {
	ranges := make([]m.ArgumentSet, len(candidates))
	for i, s := range candidates {
		ranges[i] = e.fw.rangeOf(s)
	}

	var out []m.ArgumentSet

	for i, s := range candidates {
		dominated := false

		for j := range candidates {
			if i != j && ranges[i].ProperSubsetOf(ranges[j]) {
				dominated = true
				break
			}
		}

		if !dominated {
			out = append(out, s)
		}
	}

	return out
}
