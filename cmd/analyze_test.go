package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"argue.dev/pkg/argue/internal/domain"
	domainmocks "argue.dev/pkg/argue/internal/domain/mocks"
	m "argue.dev/pkg/argue/internal/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmd_FilesAndDefaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newAnalyzeCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return len(args.Frameworks.Paths) == 2 &&
			args.Frameworks.Paths[0] == m.Path("a.yaml") &&
			args.Frameworks.Paths[1] == m.Path("b.yaml") &&
			len(args.Frameworks.Examples) == 0 &&
			!args.Frameworks.AllExamples &&
			args.Reports == m.Path(".argue-reports") &&
			args.Save &&
			args.Engine.MaxArguments == 16 &&
			args.Engine.Timeout == 0
	})).Return(nil)

	cmd.SetArgs([]string{"analyze", "a.yaml", "b.yaml"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestAnalyzeCmd_ExamplesAndRootFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newAnalyzeCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return len(args.Frameworks.Paths) == 0 &&
			len(args.Frameworks.Examples) == 2 &&
			args.Frameworks.Examples[0] == "nixon-diamond" &&
			args.Frameworks.Examples[1] == "odd-cycle" &&
			!args.Save &&
			args.Reports == m.Path("out") &&
			args.Engine.MaxArguments == 8 &&
			args.Engine.Timeout == 5*time.Second
	})).Return(nil)

	cmd.SetArgs([]string{
		"analyze", "-e", "nixon-diamond", "--example", "odd-cycle",
		"--no-save", "-o", "out", "--max-arguments", "8", "--timeout", "5",
	})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestAnalyzeCmd_AllExamples(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newAnalyzeCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return args.Frameworks.AllExamples
	})).Return(nil)

	cmd.SetArgs([]string{"analyse", "--all"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestAnalyzeCmd_WorkflowErrorIsReturned(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newAnalyzeCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Analyze", mock.Anything, mock.Anything).Return(domain.ErrNoFramework)

	cmd.SetArgs([]string{"analyze"})
	err := cmd.Execute()
	require.True(t, errors.Is(err, domain.ErrNoFramework))
}
