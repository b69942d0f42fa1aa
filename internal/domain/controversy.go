package domain

import (
	"context"

	m "argue.dev/pkg/argue/internal/model"
)

// parities records which edge-count parities the simple paths between two
// arguments reach. Zero-length paths count for neither.
type parities struct {
	odd, even bool
}

func (p *parities) add(path []m.Argument) {
	edges := len(path) - 1

	switch {
	case edges == 0:
	case edges%2 == 1:
		p.odd = true
	default:
		p.even = true
	}
}

// pathParities walks the simple paths from a1 to a2 until enough reports
// that the parities seen so far settle the question.
func (e *Engine) pathParities(ctx context.Context, a1, a2 m.Argument, enough func(parities) bool) (parities, error) {
	var seen parities

	err := e.fw.walkSimplePaths(ctx, a1, a2, func(path []m.Argument) bool {
		seen.add(path)
		return !enough(seen)
	})

	return seen, err
}

// IndirectlyAttacks reports whether a simple path of odd length leads from
// a1 to a2.
func (e *Engine) IndirectlyAttacks(ctx context.Context, a1, a2 m.Argument) (bool, error) {
	seen, err := e.pathParities(ctx, a1, a2, func(p parities) bool { return p.odd })
	if err != nil {
		return false, err
	}

	return seen.odd, nil
}

// IndirectlyDefends reports whether a1 is a2, or a simple path of even,
// non-zero length leads from a1 to a2.
func (e *Engine) IndirectlyDefends(ctx context.Context, a1, a2 m.Argument) (bool, error) {
	seen, err := e.pathParities(ctx, a1, a2, func(p parities) bool { return p.even })
	if err != nil {
		return false, err
	}

	return a1 == a2 || seen.even, nil
}

// Controversial reports whether a1 both indirectly attacks and indirectly
// defends a2.
func (e *Engine) Controversial(ctx context.Context, a1, a2 m.Argument) (bool, error) {
	seen, err := e.pathParities(ctx, a1, a2, func(p parities) bool { return p.odd && p.even })
	if err != nil {
		return false, err
	}

	return controversial(a1, a2, seen), nil
}

// ControversialArgument reports whether a is controversial with respect to
// some argument.
func (e *Engine) ControversialArgument(ctx context.Context, a m.Argument) (bool, error) {
	if err := e.fw.validateArgument(a); err != nil {
		return false, err
	}

	for _, other := range e.fw.order {
		ok, err := e.Controversial(ctx, a, other)
		if err != nil || ok {
			return ok, err
		}
	}

	return false, nil
}

// ControversialFramework reports whether any argument is controversial.
func (e *Engine) ControversialFramework(ctx context.Context) (bool, error) {
	for _, a := range e.fw.order {
		ok, err := e.ControversialArgument(ctx, a)
		if err != nil || ok {
			return ok, err
		}
	}

	return false, nil
}

// LimitedControversial reports whether the attack graph has no simple cycle
// of odd length. On finite frameworks this suffices for limited
// controversiality.
func (e *Engine) LimitedControversial(ctx context.Context) (bool, error) {
	oddCycle := false

	err := e.fw.walkSimpleCycles(ctx, func(cycle []m.Argument) bool {
		oddCycle = len(cycle)%2 == 1
		return !oddCycle
	})
	if err != nil {
		return false, err
	}

	return !oddCycle, nil
}

// Relation bundles the indirect relations from a1 to a2 with the simple
// paths that witness them.
func (e *Engine) Relation(ctx context.Context, a1, a2 m.Argument) (m.Relation, error) {
	paths, err := e.fw.SimplePaths(ctx, a1, a2)
	if err != nil {
		return m.Relation{}, err
	}

	var seen parities
	for _, path := range paths {
		seen.add(path)
	}

	fromIsControversial, err := e.ControversialArgument(ctx, a1)
	if err != nil {
		return m.Relation{}, err
	}

	return m.Relation{
		From:                a1,
		To:                  a2,
		Paths:               paths,
		IndirectlyAttacks:   seen.odd,
		IndirectlyDefends:   a1 == a2 || seen.even,
		Controversial:       controversial(a1, a2, seen),
		FromIsControversial: fromIsControversial,
	}, nil
}

func controversial(a1, a2 m.Argument, seen parities) bool {
	return seen.odd && (a1 == a2 || seen.even)
}
