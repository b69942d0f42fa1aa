package cmd

import (
	"bytes"
	"testing"

	domainmocks "argue.dev/pkg/argue/internal/domain/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExamplesCmd_DelegatesToWorkflow(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newExamplesCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Examples", mock.Anything).Return(nil)

	cmd.SetArgs([]string{"examples"})
	require.NoError(t, cmd.Execute())
}

func TestExamplesCmd_PositionalArgsAreRejected(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newExamplesCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"examples", "extra"})
	require.Error(t, cmd.Execute())
}
