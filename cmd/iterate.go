package cmd

import (
	"argue.dev/pkg/argue/internal/domain"
	m "argue.dev/pkg/argue/internal/model"
	"github.com/spf13/cobra"
)

// iterateCmd represents the iterate command.
var iterateCmd = newIterateCmd()

func newIterateCmd() *cobra.Command {
	var (
		frameworks frameworkFlags
		start      []string
	)

	cmd := &cobra.Command{
		Use:   "iterate [files...]",
		Short: "Iterate the defense function from a starting set",
		Long: `Apply the defense function repeatedly, starting from --start (the empty set
by default), until a set repeats. From the empty set the sequence ends at the
grounded extension.

` + frameworkFilesHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Iterate(cmd.Context(), domain.IterateArgs{
				Frameworks: frameworks.ref(args),
				Start:      parseArguments(start),
			})
		},
	}

	frameworks.register(cmd)
	cmd.Flags().StringSliceVar(&start, "start", nil, "comma-separated starting arguments")

	return cmd
}

func init() {
	rootCmd.AddCommand(iterateCmd)
}

func parseArguments(values []string) []m.Argument {
	out := make([]m.Argument, 0, len(values))
	for _, value := range values {
		out = append(out, m.Argument(value))
	}

	return out
}
