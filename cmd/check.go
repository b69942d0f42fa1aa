package cmd

import (
	"argue.dev/pkg/argue/internal/domain"
	m "argue.dev/pkg/argue/internal/model"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	var semantics []string

	cmd := &cobra.Command{
		Use:   "check [examples...]",
		Short: "Compare computed extensions with published answers",
		Long: `Recompute every published answer of the built-in examples (all of them when
none are named) and print a diff for each mismatch. Exits non-zero when any
answer differs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := parseSemanticsList(semantics)
			if err != nil {
				return err
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Examples:  args,
				Semantics: selected,
				Engine:    engineConfig(),
			})
		},
	}

	cmd.Flags().StringSliceVarP(&semantics, "semantics", "s", nil, "only check these semantics (comma-separated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func parseSemanticsList(names []string) ([]m.Semantics, error) {
	out := make([]m.Semantics, 0, len(names))

	for _, name := range names {
		sem, err := m.ParseSemantics(name)
		if err != nil {
			return nil, err
		}

		out = append(out, sem)
	}

	return out, nil
}
