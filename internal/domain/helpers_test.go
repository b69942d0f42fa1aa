package domain

import (
	"strings"
	"testing"

	m "argue.dev/pkg/argue/internal/model"
	"github.com/stretchr/testify/require"
)

// af builds a framework from "x>y" attack strings; extra lists isolated
// arguments.
func af(t *testing.T, attacks string, extra ...string) *Framework {
	t.Helper()

	spec := m.FrameworkSpec{Name: t.Name()}
	for _, a := range extra {
		spec.Arguments = append(spec.Arguments, m.Argument(a))
	}

	for _, field := range strings.Fields(attacks) {
		from, to, ok := strings.Cut(field, ">")
		require.True(t, ok, "bad attack %q", field)
		spec.Attacks = append(spec.Attacks, []m.Argument{m.Argument(from), m.Argument(to)})
	}

	fw, err := FromSpec(spec)
	require.NoError(t, err)

	return fw
}

func set(args ...string) m.ArgumentSet {
	members := make([]m.Argument, len(args))
	for i, a := range args {
		members[i] = m.Argument(a)
	}

	return m.NewArgumentSet(members...)
}

// sets renders a listing canonically, for order-insensitive comparison.
func sets(list []m.ArgumentSet) []string {
	return m.FormatSets(list)
}
