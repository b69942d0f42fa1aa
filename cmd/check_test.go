package cmd

import (
	"bytes"
	"testing"

	"argue.dev/pkg/argue/internal/domain"
	domainmocks "argue.dev/pkg/argue/internal/domain/mocks"
	m "argue.dev/pkg/argue/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_AllByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return len(args.Examples) == 0 && len(args.Semantics) == 0
	})).Return(nil)

	cmd.SetArgs([]string{"check"})
	require.NoError(t, cmd.Execute())
}

func TestCheckCmd_SelectsExamplesAndSemantics(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return assert.ObjectsAreEqual([]string{"odd-cycle", "dung-3"}, args.Examples) &&
			assert.ObjectsAreEqual([]m.Semantics{m.SemanticsStable, m.SemanticsIdeal}, args.Semantics)
	})).Return(nil)

	cmd.SetArgs([]string{"check", "odd-cycle", "dung-3", "-s", "st,ideal"})
	require.NoError(t, cmd.Execute())
}

func TestCheckCmd_MismatchIsReturned(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Check", mock.Anything, mock.Anything).Return(domain.ErrExpectationMismatch)

	cmd.SetArgs([]string{"check"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrExpectationMismatch)
}

func TestParseSemanticsList(t *testing.T) {
	got, err := parseSemanticsList([]string{"adm", "complete"})
	require.NoError(t, err)
	assert.Equal(t, []m.Semantics{m.SemanticsAdmissible, m.SemanticsComplete}, got)

	_, err = parseSemanticsList([]string{"nope"})
	require.ErrorIs(t, err, m.ErrUnknownSemantics)
}
