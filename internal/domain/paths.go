package domain

import (
	"context"
	"slices"

	m "argue.dev/pkg/argue/internal/model"
)

// walkCheckEvery is how many depth-first steps run between context checks.
const walkCheckEvery = 1024

// pathWalk carries the cancellation state of one depth-first enumeration.
// Path and cycle counts grow factorially with the framework, so every walk
// polls the context and stops as soon as it is done or the visitor is
// satisfied.
type pathWalk struct {
	ctx     context.Context
	steps   int
	stopped bool
	err     error
}

func newPathWalk(ctx context.Context) *pathWalk {
	w := &pathWalk{ctx: ctx}
	if err := ctx.Err(); err != nil {
		w.stopped, w.err = true, err
	}

	return w
}

// step reports whether the walk may continue.
func (w *pathWalk) step() bool {
	if w.stopped {
		return false
	}

	w.steps++
	if w.steps%walkCheckEvery == 0 {
		if err := w.ctx.Err(); err != nil {
			w.stopped, w.err = true, err
		}
	}

	return !w.stopped
}

// emit hands a result to visit; visit returns false once it has seen enough.
func (w *pathWalk) emit(visit func([]m.Argument) bool, found []m.Argument) {
	if !visit(found) {
		w.stopped = true
	}
}

// SimpleCycles returns every simple directed cycle exactly once, as the
// sequence of arguments visited. Each cycle starts at its least argument.
// Self-attacks are cycles of length one.
func (fw *Framework) SimpleCycles(ctx context.Context) ([][]m.Argument, error) {
	var cycles [][]m.Argument

	err := fw.walkSimpleCycles(ctx, func(cycle []m.Argument) bool {
		cycles = append(cycles, cycle)
		return true
	})
	if err != nil {
		return nil, err
	}

	return cycles, nil
}

func (fw *Framework) walkSimpleCycles(ctx context.Context, visit func([]m.Argument) bool) error {
	index := make(map[m.Argument]int, len(fw.order))
	for i, arg := range fw.order {
		index[arg] = i
	}

	w := newPathWalk(ctx)

	for _, start := range fw.order {
		if w.stopped {
			break
		}

		onPath := map[m.Argument]bool{start: true}
		path := []m.Argument{start}

		var walk func(current m.Argument)
		walk = func(current m.Argument) {
			for _, next := range fw.successors[current].Members() {
				if !w.step() {
					return
				}

				switch {
				case next == start:
					w.emit(visit, slices.Clone(path))
				case index[next] > index[start] && !onPath[next]:
					onPath[next] = true
					path = append(path, next)

					walk(next)

					path = path[:len(path)-1]
					onPath[next] = false
				}
			}
		}

		walk(start)
	}

	return w.err
}

// Cyclic reports whether the attack graph has at least one cycle.
func (fw *Framework) Cyclic() bool {
	const (
		unvisited = iota
		active
		done
	)

	state := make(map[m.Argument]int, len(fw.order))

	var visit func(a m.Argument) bool
	visit = func(a m.Argument) bool {
		state[a] = active

		for _, next := range fw.successors[a].Members() {
			switch state[next] {
			case active:
				return true
			case unvisited:
				if visit(next) {
					return true
				}
			}
		}

		state[a] = done

		return false
	}

	for _, a := range fw.order {
		if state[a] == unvisited && visit(a) {
			return true
		}
	}

	return false
}

// SimplePaths returns every simple directed path from a1 to a2 as the
// sequence of arguments visited. When a1 == a2 the only simple path is the
// zero-length path [a1]; otherwise every path has at least one attack.
func (fw *Framework) SimplePaths(ctx context.Context, a1, a2 m.Argument) ([][]m.Argument, error) {
	var paths [][]m.Argument

	err := fw.walkSimplePaths(ctx, a1, a2, func(path []m.Argument) bool {
		paths = append(paths, path)
		return true
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

func (fw *Framework) walkSimplePaths(ctx context.Context, a1, a2 m.Argument, visit func([]m.Argument) bool) error {
	if err := fw.validateArgument(a1); err != nil {
		return err
	}

	if err := fw.validateArgument(a2); err != nil {
		return err
	}

	w := newPathWalk(ctx)
	if w.stopped {
		return w.err
	}

	if a1 == a2 {
		w.emit(visit, []m.Argument{a1})
		return nil
	}

	onPath := map[m.Argument]bool{a1: true}
	path := []m.Argument{a1}

	var walk func(current m.Argument)
	walk = func(current m.Argument) {
		for _, next := range fw.successors[current].Members() {
			if !w.step() {
				return
			}

			if onPath[next] {
				continue
			}

			if next == a2 {
				found := slices.Clone(path)
				w.emit(visit, append(found, next))

				continue
			}

			onPath[next] = true
			path = append(path, next)

			walk(next)

			path = path[:len(path)-1]
			onPath[next] = false
		}
	}

	walk(a1)

	return w.err
}
