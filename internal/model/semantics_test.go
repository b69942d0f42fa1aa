package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemantics(t *testing.T) {
	tests := []struct {
		input string
		want  Semantics
	}{
		{"preferred", SemanticsPreferred},
		{" Stable ", SemanticsStable},
		{"cf", SemanticsConflictFree},
		{"sd", SemanticsSelfDefending},
		{"adm", SemanticsAdmissible},
		{"fp", SemanticsFixedPoint},
		{"co", SemanticsComplete},
		{"pr", SemanticsPreferred},
		{"gr", SemanticsGrounded},
		{"semistable", SemanticsSemiStable},
		{"stg", SemanticsStage},
		{"ideal", SemanticsIdeal},
		{"EAGER", SemanticsEager},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSemantics(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSemantics_Unknown(t *testing.T) {
	_, err := ParseSemantics("dialectical")
	require.ErrorIs(t, err, ErrUnknownSemantics)
}

func TestAllSemantics(t *testing.T) {
	all := AllSemantics()
	require.Len(t, all, 13)

	all[0] = "mutated"
	assert.Equal(t, SemanticsConflictFree, AllSemantics()[0])

	for _, sem := range AllSemantics() {
		parsed, err := ParseSemantics(string(sem))
		require.NoError(t, err)
		assert.Equal(t, sem, parsed)
	}
}

func TestSemantics_SingleValued(t *testing.T) {
	single := map[Semantics]bool{
		SemanticsGrounded: true,
		SemanticsIdeal:    true,
		SemanticsEager:    true,
	}

	for _, sem := range AllSemantics() {
		assert.Equal(t, single[sem], sem.SingleValued(), "%s", sem)
	}
}
