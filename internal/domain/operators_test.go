package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperators_SimpleReinstatement(t *testing.T) {
	fw := af(t, "c>b b>a")

	forward, err := fw.Forward(set("c"))
	require.NoError(t, err)
	assert.True(t, forward.Equal(set("b")))

	backward, err := fw.Backward(set("a"))
	require.NoError(t, err)
	assert.True(t, backward.Equal(set("b")))

	neutral, err := fw.Neutrality(set("c"))
	require.NoError(t, err)
	assert.True(t, neutral.Equal(set("a", "c")))

	defended, err := fw.Defense(set())
	require.NoError(t, err)
	assert.True(t, defended.Equal(set("c")))

	defended, err = fw.Defense(set("c"))
	require.NoError(t, err)
	assert.True(t, defended.Equal(set("a", "c")))

	rng, err := fw.Range(set("c"))
	require.NoError(t, err)
	assert.True(t, rng.Equal(set("b", "c")))

	assert.True(t, fw.UnattackedSet().Equal(set("c")))
	assert.True(t, fw.SelfAttackingSet().IsEmpty())
}

func TestOperators_AttackQueries(t *testing.T) {
	fw := af(t, "c>b b>a a>a")

	ok, err := fw.AttacksArgument(set("c"), "b")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fw.AttacksArgument(set("c"), "a")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fw.AttacksSet(set("c"), set("a", "b"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fw.AttacksSet(set("a"), set("b", "c"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fw.Unattacked("c")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fw.SelfAttacking("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, fw.SelfAttackingSet().Equal(set("a")))

	ok, err = fw.ConflictFree(set("a"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fw.ConflictFree(set("a", "c"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fw.ConflictFree(set("b"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOperators_RejectForeignInput(t *testing.T) {
	fw := af(t, "a>b")
	foreign := set("a", "z")

	_, err := fw.Forward(foreign)
	require.ErrorIs(t, err, ErrInvalidArgumentSet)

	_, err = fw.Backward(foreign)
	require.ErrorIs(t, err, ErrInvalidArgumentSet)

	_, err = fw.Neutrality(foreign)
	require.ErrorIs(t, err, ErrInvalidArgumentSet)

	_, err = fw.Defense(foreign)
	require.ErrorIs(t, err, ErrInvalidArgumentSet)

	_, err = fw.Range(foreign)
	require.ErrorIs(t, err, ErrInvalidArgumentSet)

	_, err = fw.ConflictFree(foreign)
	require.ErrorIs(t, err, ErrInvalidArgumentSet)

	_, err = fw.AttacksSet(set("a"), foreign)
	require.ErrorIs(t, err, ErrInvalidArgumentSet)

	_, err = fw.AttacksArgument(set("a"), "z")
	require.ErrorIs(t, err, ErrUnknownArgument)

	_, err = fw.Unattacked("z")
	require.ErrorIs(t, err, ErrUnknownArgument)

	_, err = fw.SelfAttacking("z")
	require.ErrorIs(t, err, ErrUnknownArgument)
}

func TestOperators_GradedVariantsGeneralize(t *testing.T) {
	fw := af(t, "a>b b>a b>c c>d d>c e>d")

	for _, s := range Powerset(fw.Arguments()) {
		neutral, err := fw.Neutrality(s)
		require.NoError(t, err)

		graded, err := fw.GradedNeutrality(s, 1)
		require.NoError(t, err)
		assert.True(t, neutral.Equal(graded), "neutrality of %s", s)

		defended, err := fw.Defense(s)
		require.NoError(t, err)

		gradedDefense, err := fw.GradedDefense(s, 1, 1)
		require.NoError(t, err)
		assert.True(t, defended.Equal(gradedDefense), "defense of %s", s)
	}
}

func TestOperators_GradedThresholds(t *testing.T) {
	// d has two attackers.
	fw := af(t, "b>d c>d a>b")

	neutral, err := fw.GradedNeutrality(set("b", "c"), 2)
	require.NoError(t, err)
	assert.False(t, neutral.Contains("d"))
	assert.True(t, neutral.Contains("a"))

	neutral, err = fw.GradedNeutrality(set("b"), 2)
	require.NoError(t, err)
	assert.True(t, neutral.Contains("d"))

	// With attackThreshold 2, d tolerates one undefeated attacker.
	defended, err := fw.GradedDefense(set("a"), 2, 1)
	require.NoError(t, err)
	assert.True(t, defended.Contains("d"))

	defended, err = fw.GradedDefense(set("a"), 1, 1)
	require.NoError(t, err)
	assert.False(t, defended.Contains("d"))
}

func TestOperators_DefenseIsMonotone(t *testing.T) {
	fw := af(t, "a>b b>c c>a c>d d>e e>d")

	subsets := Powerset(fw.Arguments())
	for _, s := range subsets {
		ds := fw.defense(s)

		for _, other := range subsets {
			if s.SubsetOf(other) {
				assert.True(t, ds.SubsetOf(fw.defense(other)), "d(%s) ⊄ d(%s)", s, other)
			}
		}
	}
}

func TestOperators_StableSetsAreNeutralityFixedPoints(t *testing.T) {
	fw := af(t, "a>b b>a b>c")

	for _, s := range Powerset(fw.Arguments()) {
		n := fw.neutrality(s)
		if !n.Equal(s) {
			continue
		}

		assert.True(t, fw.neutrality(n).Equal(n), "n(n(%s))", s)
	}

}
