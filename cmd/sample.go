package cmd

import (
	"fmt"

	"argue.dev/pkg/argue/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sampleUpperFlag int
var sampleRunsFlag int
var sampleProbabilityFlag float64
var sampleParallelFlag int
var sampleSeedFlag uint64

// sampleCmd represents the sample command.
var sampleCmd = newSampleCmd()

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample [powerset|admissible]",
		Short: "Measure how exhaustive enumeration scales",
		Long: `Time the exhaustive engine on growing inputs.

  powerset     builds the power set of 0..upper elements
  admissible   enumerates the admissible sets of random frameworks of
               0..upper arguments, averaging --runs frameworks per size
               (the default)

Random frameworks attack every ordered pair of distinct arguments with
--probability and are reproducible for a given --seed.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.SamplePowerset), string(domain.SampleAdmissible)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.SampleAdmissible
			if len(args) == 1 {
				kind = domain.SampleKind(args[0])
			}

			if kind != domain.SamplePowerset && kind != domain.SampleAdmissible {
				return fmt.Errorf("unknown sample kind %q (want powerset or admissible)", args[0])
			}

			return workflow.Sample(cmd.Context(), domain.SampleRunArgs{
				Kind: kind,
				SampleArgs: domain.SampleArgs{
					Upper:       viper.GetInt(sampleUpperKey),
					Runs:        viper.GetInt(sampleRunsKey),
					Probability: viper.GetFloat64(sampleProbabilityKey),
					Parallel:    viper.GetInt(sampleParallelKey),
					Seed:        viper.GetUint64(sampleSeedKey),
				},
			})
		},
	}

	configureSampleFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

// configureSampleFlags runs during package variable initialisation, before
// the viper defaults exist, so flag defaults come from the constants. Config
// and env values still apply through the bound keys.
func configureSampleFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&sampleUpperFlag, upperFlagName, "n", defaultSampleUpper, "largest size sampled")
	bindFlagToConfig(cmd.Flags().Lookup(upperFlagName), sampleUpperKey)
	cmd.Flags().IntVarP(&sampleRunsFlag, runsFlagName, "r", defaultSampleRuns, "random frameworks averaged per size")
	bindFlagToConfig(cmd.Flags().Lookup(runsFlagName), sampleRunsKey)
	cmd.Flags().Float64Var(&sampleProbabilityFlag, probabilityFlagName, defaultSampleProbability, "attack probability of random frameworks")
	bindFlagToConfig(cmd.Flags().Lookup(probabilityFlagName), sampleProbabilityKey)
	cmd.Flags().IntVarP(&sampleParallelFlag, parallelFlagName, "p", defaultSampleParallel, "number of concurrent runs")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), sampleParallelKey)
	cmd.Flags().Uint64Var(&sampleSeedFlag, seedFlagName, defaultSampleSeed, "seed for random frameworks")
	bindFlagToConfig(cmd.Flags().Lookup(seedFlagName), sampleSeedKey)
}
