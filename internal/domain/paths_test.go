package domain

import (
	"context"
	"fmt"
	"testing"
	"time"

	m "argue.dev/pkg/argue/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleCycles(t *testing.T) {
	tests := []struct {
		name    string
		attacks string
		want    [][]m.Argument
	}{
		{"acyclic chain", "a>b b>c", nil},
		{"two-cycle", "a>b b>a", [][]m.Argument{{"a", "b"}}},
		{"self-attack", "a>a", [][]m.Argument{{"a"}}},
		{"two-cycle with self-attack", "a>b b>a b>b", [][]m.Argument{{"a", "b"}, {"b"}}},
		{"three-cycle", "a>b b>c c>a", [][]m.Argument{{"a", "b", "c"}}},
		{
			"overlapping cycles",
			"a>b b>a b>c c>b",
			[][]m.Argument{{"a", "b"}, {"b", "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fw := af(t, tt.attacks)

			cycles, err := fw.SimpleCycles(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, cycles)
			assert.Equal(t, tt.want != nil, fw.Cyclic())
		})
	}
}

func TestSimplePaths(t *testing.T) {
	fw := af(t, "a>b a>c c>b b>d")

	paths, err := fw.SimplePaths(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, [][]m.Argument{{"a", "b"}, {"a", "c", "b"}}, paths)

	paths, err = fw.SimplePaths(context.Background(), "a", "d")
	require.NoError(t, err)
	assert.Equal(t, [][]m.Argument{{"a", "b", "d"}, {"a", "c", "b", "d"}}, paths)

	paths, err = fw.SimplePaths(context.Background(), "d", "a")
	require.NoError(t, err)
	assert.Empty(t, paths)

	t.Run("identity is the zero-length path", func(t *testing.T) {
		paths, err := fw.SimplePaths(context.Background(), "a", "a")
		require.NoError(t, err)
		assert.Equal(t, [][]m.Argument{{"a"}}, paths)
	})

	t.Run("cycles are not revisited", func(t *testing.T) {
		fw := af(t, "a>b b>a b>c")
		paths, err := fw.SimplePaths(context.Background(), "a", "c")
		require.NoError(t, err)
		assert.Equal(t, [][]m.Argument{{"a", "b", "c"}}, paths)
	})

	t.Run("unknown endpoints", func(t *testing.T) {
		_, err := fw.SimplePaths(context.Background(), "a", "z")
		require.ErrorIs(t, err, ErrUnknownArgument)

		_, err = fw.SimplePaths(context.Background(), "z", "a")
		require.ErrorIs(t, err, ErrUnknownArgument)
	})
}

func TestCyclic(t *testing.T) {
	tests := []struct {
		name    string
		attacks string
		extra   []string
		want    bool
	}{
		{"no attacks", "", []string{"a", "b"}, false},
		{"diamond", "a>b a>c b>d c>d", nil, false},
		{"long chain", "a>b b>c c>d d>e", nil, false},
		{"back edge", "a>b b>c c>d d>b", nil, true},
		{"self-attack off the start", "a>b b>b", nil, true},
		{"cycle in second component", "a>b c>d d>c", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, af(t, tt.attacks, tt.extra...).Cyclic())
		})
	}
}

// bipartite builds the complete bipartite framework on sides of size n where
// every cross pair attacks both ways: it has factorially many simple cycles
// and paths, all of even length between arguments on the same side.
func bipartite(t *testing.T, n int) *Framework {
	t.Helper()

	var attacks []m.Attack

	for i := range n {
		for j := range n {
			left := m.Argument(fmt.Sprintf("l%02d", i))
			right := m.Argument(fmt.Sprintf("r%02d", j))
			attacks = append(attacks, m.Attack{From: left, To: right}, m.Attack{From: right, To: left})
		}
	}

	fw, err := FromAttacks(attacks...)
	require.NoError(t, err)

	return fw
}

func TestPathWalks_StopAtDeadline(t *testing.T) {
	fw := bipartite(t, 8)

	assert.True(t, fw.Cyclic())

	t.Run("cycles", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := fw.SimpleCycles(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("paths", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := fw.SimplePaths(ctx, "l00", "r00")
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("already cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fw.SimpleCycles(ctx)
		require.ErrorIs(t, err, context.Canceled)

		_, err = fw.SimplePaths(ctx, "l00", "l00")
		require.ErrorIs(t, err, context.Canceled)
	})
}
