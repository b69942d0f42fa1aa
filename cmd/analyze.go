package cmd

import (
	"argue.dev/pkg/argue/internal/domain"
	m "argue.dev/pkg/argue/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const analyzeLongDescription = `Run the full report battery on each framework: sizes, unattacked and
self-attacking arguments, cycles, controversy, every semantics and the
coherence checks. Reports are written to the output directory unless
--no-save is given.

` + frameworkFilesHelp

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	var frameworks frameworkFlags

	cmd := &cobra.Command{
		Use:     "analyze [files...]",
		Aliases: []string{"analyse"},
		Short:   "Run every report on the given frameworks",
		Long:    analyzeLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Analyze(cmd.Context(), domain.AnalyzeArgs{
				Frameworks: frameworks.ref(args),
				Engine:     engineConfig(),
				Reports:    m.Path(viper.GetString(outputFlagName)),
				Save:       !viper.GetBool(noSaveFlagName),
			})
		},
	}

	frameworks.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
