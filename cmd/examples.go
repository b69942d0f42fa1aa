package cmd

import (
	"github.com/spf13/cobra"
)

// examplesCmd represents the examples command.
var examplesCmd = newExamplesCmd()

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List the built-in example frameworks",
		Long:  "List the worked examples from the argumentation literature that ship with argue.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Examples(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}
