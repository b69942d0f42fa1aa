package domain

import (
	"context"
	"fmt"
	"log/slog"

	m "argue.dev/pkg/argue/internal/model"
)

// Engine derives extension-based semantics for one framework from the set
// operators and an Enumerator. It holds no mutable state; every method is a
// pure query, and listings enumerate candidate subsets once per call.
type Engine struct {
	fw           *Framework
	enumerator   Enumerator
	maxArguments int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithEnumerator replaces the default power-set enumerator.
func WithEnumerator(enumerator Enumerator) EngineOption {
	return func(e *Engine) {
		e.enumerator = enumerator
	}
}

// WithMaxArguments makes powerset-consuming operations refuse frameworks with
// more than limit arguments. Zero or a negative limit disables the check.
func WithMaxArguments(limit int) EngineOption {
	return func(e *Engine) {
		e.maxArguments = limit
	}
}

// NewEngine creates an Engine for fw.
func NewEngine(fw *Framework, opts ...EngineOption) *Engine {
	e := &Engine{
		fw:         fw,
		enumerator: NewPowersetEnumerator(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Framework returns the framework the engine analyses.
func (e *Engine) Framework() *Framework {
	return e.fw
}

// ConflictFreeSets lists every conflict-free set.
func (e *Engine) ConflictFreeSets(ctx context.Context) ([]m.ArgumentSet, error) {
	subsets, err := e.subsets(ctx)
	if err != nil {
		return nil, err
	}

	return e.filter(ctx, subsets, e.fw.conflictFree)
}

// NaiveExtensions lists the maximal conflict-free sets.
func (e *Engine) NaiveExtensions(ctx context.Context) ([]m.ArgumentSet, error) {
	cf, err := e.ConflictFreeSets(ctx)
	if err != nil {
		return nil, err
	}

	return MaxSets(cf), nil
}

// SelfDefendingSets lists every S with S ⊆ d(S).
func (e *Engine) SelfDefendingSets(ctx context.Context) ([]m.ArgumentSet, error) {
	subsets, err := e.subsets(ctx)
	if err != nil {
		return nil, err
	}

	return e.filter(ctx, subsets, e.selfDefending)
}

// AdmissibleSets lists every conflict-free, self-defending set.
func (e *Engine) AdmissibleSets(ctx context.Context) ([]m.ArgumentSet, error) {
	subsets, err := e.subsets(ctx)
	if err != nil {
		return nil, err
	}

	return e.filter(ctx, subsets, e.admissible)
}

// FixedPoints lists every S with d(S) = S.
func (e *Engine) FixedPoints(ctx context.Context) ([]m.ArgumentSet, error) {
	subsets, err := e.subsets(ctx)
	if err != nil {
		return nil, err
	}

	return e.filter(ctx, subsets, e.fixedPoint)
}

// LeastFixedPoint returns the least fixed point of the defense function.
func (e *Engine) LeastFixedPoint(ctx context.Context) (m.ArgumentSet, error) {
	fixed, err := e.FixedPoints(ctx)
	if err != nil {
		return m.ArgumentSet{}, err
	}

	return unique("least fixed point", MinSets(fixed))
}

// CompleteExtensions lists every admissible fixed point of d.
func (e *Engine) CompleteExtensions(ctx context.Context) ([]m.ArgumentSet, error) {
	subsets, err := e.subsets(ctx)
	if err != nil {
		return nil, err
	}

	return e.filter(ctx, subsets, e.complete)
}

// PreferredExtensions lists the maximal admissible sets.
func (e *Engine) PreferredExtensions(ctx context.Context) ([]m.ArgumentSet, error) {
	adm, err := e.AdmissibleSets(ctx)
	if err != nil {
		return nil, err
	}

	return MaxSets(adm), nil
}

// StableExtensions lists every S with S = n(S).
func (e *Engine) StableExtensions(ctx context.Context) ([]m.ArgumentSet, error) {
	subsets, err := e.subsets(ctx)
	if err != nil {
		return nil, err
	}

	return e.filter(ctx, subsets, e.stable)
}

// StableExists reports whether the framework has a stable extension. Every
// other semantics always has an extension on a finite framework.
func (e *Engine) StableExists(ctx context.Context) (bool, error) {
	stable, err := e.StableExtensions(ctx)
	if err != nil {
		return false, err
	}

	return len(stable) > 0, nil
}

// Grounded returns the grounded extension, the least complete extension.
func (e *Engine) Grounded(ctx context.Context) (m.ArgumentSet, error) {
	complete, err := e.CompleteExtensions(ctx)
	if err != nil {
		return m.ArgumentSet{}, err
	}

	return unique("grounded extension", MinSets(complete))
}

// IterateDefence returns the sequence start, d(start), d(d(start)), ...
// ending just before the first value that already occurs in it. The defense
// function is monotone on a finite lattice, so from the empty set the
// sequence has at most |arguments|+1 elements and ends at the grounded
// extension.
func (e *Engine) IterateDefence(start m.ArgumentSet) ([]m.ArgumentSet, error) {
	if err := e.fw.validateSet(start); err != nil {
		return nil, err
	}

	sequence := []m.ArgumentSet{start}
	seen := map[string]bool{start.Key(): true}

	for range e.fw.NumArguments() {
		next := e.fw.defense(sequence[len(sequence)-1])
		if seen[next.Key()] {
			break
		}

		seen[next.Key()] = true
		sequence = append(sequence, next)
	}

	return sequence, nil
}

// Coherent reports whether every preferred extension is stable.
func (e *Engine) Coherent(ctx context.Context) (bool, error) {
	preferred, err := e.PreferredExtensions(ctx)
	if err != nil {
		return false, err
	}

	for _, s := range preferred {
		if !e.stable(s) {
			return false, nil
		}
	}

	return true, nil
}

// RelativelyGrounded reports whether the intersection of all preferred
// extensions equals the grounded extension.
func (e *Engine) RelativelyGrounded(ctx context.Context) (bool, error) {
	preferred, err := e.PreferredExtensions(ctx)
	if err != nil {
		return false, err
	}

	skeptical, ok := m.IntersectAll(preferred)
	if !ok {
		return false, fmt.Errorf("%w: no preferred extension", ErrDegenerateTheorem)
	}

	grounded, err := e.Grounded(ctx)
	if err != nil {
		return false, err
	}

	return skeptical.Equal(grounded), nil
}

// IsConflictFree reports whether subset is conflict-free.
func (e *Engine) IsConflictFree(subset m.ArgumentSet) (bool, error) {
	return e.fw.ConflictFree(subset)
}

// IsAdmissible reports whether subset is admissible.
func (e *Engine) IsAdmissible(subset m.ArgumentSet) (bool, error) {
	if err := e.fw.validateSet(subset); err != nil {
		return false, err
	}

	return e.admissible(subset), nil
}

// IsComplete reports whether subset is a complete extension.
func (e *Engine) IsComplete(subset m.ArgumentSet) (bool, error) {
	if err := e.fw.validateSet(subset); err != nil {
		return false, err
	}

	return e.complete(subset), nil
}

// IsStable reports whether subset is a stable extension.
func (e *Engine) IsStable(subset m.ArgumentSet) (bool, error) {
	if err := e.fw.validateSet(subset); err != nil {
		return false, err
	}

	return e.stable(subset), nil
}

// IsNaive reports whether subset is a naive extension.
func (e *Engine) IsNaive(ctx context.Context, subset m.ArgumentSet) (bool, error) {
	return e.member(ctx, subset, e.NaiveExtensions)
}

// IsPreferred reports whether subset is a preferred extension.
func (e *Engine) IsPreferred(ctx context.Context, subset m.ArgumentSet) (bool, error) {
	return e.member(ctx, subset, e.PreferredExtensions)
}

// Extensions dispatches to the listing for sem. Single-valued semantics
// return a one-element list.
func (e *Engine) Extensions(ctx context.Context, sem m.Semantics) ([]m.ArgumentSet, error) {
	single := func(fn func(context.Context) (m.ArgumentSet, error)) ([]m.ArgumentSet, error) {
		s, err := fn(ctx)
		if err != nil {
			return nil, err
		}

		return []m.ArgumentSet{s}, nil
	}

	switch sem {
	case m.SemanticsConflictFree:
		return e.ConflictFreeSets(ctx)
	case m.SemanticsNaive:
		return e.NaiveExtensions(ctx)
	case m.SemanticsSelfDefending:
		return e.SelfDefendingSets(ctx)
	case m.SemanticsAdmissible:
		return e.AdmissibleSets(ctx)
	case m.SemanticsFixedPoint:
		return e.FixedPoints(ctx)
	case m.SemanticsComplete:
		return e.CompleteExtensions(ctx)
	case m.SemanticsPreferred:
		return e.PreferredExtensions(ctx)
	case m.SemanticsStable:
		return e.StableExtensions(ctx)
	case m.SemanticsGrounded:
		return single(e.Grounded)
	case m.SemanticsSemiStable:
		return e.SemiStableExtensions(ctx)
	case m.SemanticsStage:
		return e.StageExtensions(ctx)
	case m.SemanticsIdeal:
		return single(e.Ideal)
	case m.SemanticsEager:
		return single(e.Eager)
	}

	return nil, fmt.Errorf("%w: %q", m.ErrUnknownSemantics, sem)
}

func (e *Engine) selfDefending(s m.ArgumentSet) bool {
	return s.SubsetOf(e.fw.defense(s))
}

func (e *Engine) admissible(s m.ArgumentSet) bool {
	return e.fw.conflictFree(s) && e.selfDefending(s)
}

func (e *Engine) fixedPoint(s m.ArgumentSet) bool {
	return e.fw.defense(s).Equal(s)
}

func (e *Engine) complete(s m.ArgumentSet) bool {
	return e.fw.conflictFree(s) && e.fixedPoint(s)
}

func (e *Engine) stable(s m.ArgumentSet) bool {
	return e.fw.neutrality(s).Equal(s)
}

// subsets enumerates the candidate subsets, enforcing the size ceiling.
func (e *Engine) subsets(ctx context.Context) ([]m.ArgumentSet, error) {
	if e.maxArguments > 0 && e.fw.NumArguments() > e.maxArguments {
		return nil, fmt.Errorf("%w: %d arguments, limit is %d", ErrTooManyArguments, e.fw.NumArguments(), e.maxArguments)
	}

	subsets, err := e.enumerator.Subsets(ctx, e.fw.Arguments())
	if err != nil {
		return nil, fmt.Errorf("enumerate subsets: %w", err)
	}

	slog.Debug("enumerated subsets", "arguments", e.fw.NumArguments(), "subsets", len(subsets))

	return subsets, nil
}

// filterCheckEvery is how many candidates are classified between context checks.
const filterCheckEvery = 256

func (e *Engine) filter(ctx context.Context, subsets []m.ArgumentSet, keep func(m.ArgumentSet) bool) ([]m.ArgumentSet, error) {
	var out []m.ArgumentSet

	for i, s := range subsets {
		if i%filterCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if keep(s) {
			out = append(out, s)
		}
	}

	return out, nil
}

func (e *Engine) member(ctx context.Context, subset m.ArgumentSet, list func(context.Context) ([]m.ArgumentSet, error)) (bool, error) {
	if err := e.fw.validateSet(subset); err != nil {
		return false, err
	}

	sets, err := list(ctx)
	if err != nil {
		return false, err
	}

	return containsSet(sets, subset), nil
}

func containsSet(sets []m.ArgumentSet, target m.ArgumentSet) bool {
	for _, s := range sets {
		if s.Equal(target) {
			return true
		}
	}

	return false
}

// unique returns the only element of candidates, or ErrDegenerateTheorem.
func unique(what string, candidates []m.ArgumentSet) (m.ArgumentSet, error) {
	if len(candidates) != 1 {
		slog.Error("theorem violation", "result", what, "candidates", len(candidates))
		return m.ArgumentSet{}, fmt.Errorf("%w: %s has %d candidates, want exactly 1", ErrDegenerateTheorem, what, len(candidates))
	}

	return candidates[0], nil
}
