package domain

import (
	"context"
	"testing"
	"time"

	m "argue.dev/pkg/argue/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertHolds(t *testing.T, want bool, check func(context.Context) (bool, error)) {
	t.Helper()

	got, err := check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestIndirectRelations(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(af(t, "a>b b>c c>d"))

	tests := []struct {
		from, to         m.Argument
		attacks, defends bool
	}{
		{"a", "b", true, false},
		{"a", "c", false, true},
		{"a", "d", true, false},
		{"a", "a", false, true},
		{"d", "a", false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			attacks, err := engine.IndirectlyAttacks(ctx, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.attacks, attacks)

			defends, err := engine.IndirectlyDefends(ctx, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.defends, defends)

			controversial, err := engine.Controversial(ctx, tt.from, tt.to)
			require.NoError(t, err)
			assert.False(t, controversial)
		})
	}

	t.Run("unknown arguments", func(t *testing.T) {
		_, err := engine.IndirectlyAttacks(ctx, "a", "z")
		require.ErrorIs(t, err, ErrUnknownArgument)

		_, err = engine.IndirectlyDefends(ctx, "z", "a")
		require.ErrorIs(t, err, ErrUnknownArgument)

		_, err = engine.Controversial(ctx, "z", "z")
		require.ErrorIs(t, err, ErrUnknownArgument)

		_, err = engine.ControversialArgument(ctx, "z")
		require.ErrorIs(t, err, ErrUnknownArgument)

		_, err = engine.Relation(ctx, "a", "z")
		require.ErrorIs(t, err, ErrUnknownArgument)
	})
}

func TestControversy(t *testing.T) {
	ctx := context.Background()
	// a attacks b directly and defends it through c.
	engine := NewEngine(af(t, "a>b a>c c>b"))

	controversial, err := engine.Controversial(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, controversial)

	ok, err := engine.ControversialArgument(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = engine.ControversialArgument(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)

	assertHolds(t, true, engine.ControversialFramework)
	assertHolds(t, true, engine.LimitedControversial)

	relation, err := engine.Relation(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, m.Relation{
		From:                "a",
		To:                  "b",
		Paths:               [][]m.Argument{{"a", "b"}, {"a", "c", "b"}},
		IndirectlyAttacks:   true,
		IndirectlyDefends:   true,
		Controversial:       true,
		FromIsControversial: true,
	}, relation)
}

func TestControversy_Cycles(t *testing.T) {
	ctx := context.Background()
	t.Run("odd cycle is not limited controversial", func(t *testing.T) {
		engine := NewEngine(af(t, "a>b b>c c>a"))
		assertHolds(t, false, engine.LimitedControversial)
		assertHolds(t, false, engine.ControversialFramework)
	})

	t.Run("self-attack is an odd cycle", func(t *testing.T) {
		assertHolds(t, false, NewEngine(af(t, "a>a")).LimitedControversial)
	})

	t.Run("even cycle is limited controversial", func(t *testing.T) {
		engine := NewEngine(af(t, "a>b b>c c>d d>a"))
		assertHolds(t, true, engine.LimitedControversial)
		assertHolds(t, false, engine.ControversialFramework)
	})

	t.Run("identity does not make an argument controversial", func(t *testing.T) {
		engine := NewEngine(af(t, "a>b b>a"))

		relation, err := engine.Relation(ctx, "a", "a")
		require.NoError(t, err)
		assert.Equal(t, [][]m.Argument{{"a"}}, relation.Paths)
		assert.False(t, relation.IndirectlyAttacks)
		assert.True(t, relation.IndirectlyDefends)
		assert.False(t, relation.Controversial)
	})
}

func TestControversy_StopsAtDeadline(t *testing.T) {
	// Arguments on the same side are joined only by even paths, so proving
	// that none is controversial means walking every path.
	engine := NewEngine(bipartite(t, 8))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := engine.ControversialFramework(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)

	_, err = engine.Relation(ctx, "l00", "r00")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestControversy_StopsAtFirstWitness(t *testing.T) {
	// a, b and c form an odd cycle, and a reaches c along paths of both parities.
	engine := NewEngine(af(t, "a>b b>c c>a a>c"))

	assertHolds(t, false, engine.LimitedControversial)
	assertHolds(t, true, engine.ControversialFramework)
}
