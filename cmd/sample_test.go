package cmd

import (
	"bytes"
	"testing"

	"argue.dev/pkg/argue/internal/domain"
	domainmocks "argue.dev/pkg/argue/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSampleCmd_HelpShowsDefaults(t *testing.T) {
	// sampleCmd is built before any init runs.
	defaults := map[string]string{
		upperFlagName:       "10",
		runsFlagName:        "10",
		probabilityFlagName: "0.5",
		parallelFlagName:    "4",
		seedFlagName:        "1",
	}

	for name, want := range defaults {
		flag := sampleCmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, want, flag.DefValue, name)
	}

	usage := sampleCmd.Flags().FlagUsages()
	assert.Contains(t, usage, "largest size sampled (default 10)")
	assert.Contains(t, usage, "attack probability of random frameworks (default 0.5)")
}

func TestSampleCmd_DefaultsToAdmissible(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newSampleCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Sample", mock.Anything, mock.MatchedBy(func(args domain.SampleRunArgs) bool {
		return args.Kind == domain.SampleAdmissible &&
			args.Upper == defaultSampleUpper &&
			args.Runs == defaultSampleRuns &&
			args.Probability == defaultSampleProbability &&
			args.Parallel == defaultSampleParallel &&
			args.Seed == defaultSampleSeed
	})).Return(nil)

	cmd.SetArgs([]string{"sample"})
	require.NoError(t, cmd.Execute())
}

func TestSampleCmd_FlagsArePassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newSampleCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Sample", mock.Anything, mock.MatchedBy(func(args domain.SampleRunArgs) bool {
		return args.Kind == domain.SamplePowerset &&
			args.Upper == 6 &&
			args.Runs == 3 &&
			args.Probability == 0.25 &&
			args.Parallel == 2 &&
			args.Seed == 42
	})).Return(nil)

	cmd.SetArgs([]string{"sample", "powerset", "-n", "6", "-r", "3", "--probability", "0.25", "-p", "2", "--seed", "42"})
	require.NoError(t, cmd.Execute())
}

func TestSampleCmd_UnknownKind(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newSampleCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"sample", "grounded"})
	require.Error(t, cmd.Execute())
}
