package cmd

import (
	"argue.dev/pkg/argue/internal/domain"
	m "argue.dev/pkg/argue/internal/model"
	"github.com/spf13/cobra"
)

// relateCmd represents the relate command.
var relateCmd = newRelateCmd()

func newRelateCmd() *cobra.Command {
	var frameworks frameworkFlags

	cmd := &cobra.Command{
		Use:   "relate <from> <to> [files...]",
		Short: "Show how one argument indirectly attacks or defends another",
		Long: `Show the simple paths from one argument to another, whether the first
indirectly attacks (odd path) or indirectly defends (even path) the second,
and whether it is controversial with respect to it. Path enumeration grows
factorially with the framework, so --timeout bounds it per framework.

` + frameworkFilesHelp,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Relate(cmd.Context(), domain.RelateArgs{
				Frameworks: frameworks.ref(args[2:]),
				Engine:     engineConfig(),
				From:       m.Argument(args[0]),
				To:         m.Argument(args[1]),
			})
		},
	}

	frameworks.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(relateCmd)
}
