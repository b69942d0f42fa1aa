package cmd

import (
	"strings"

	"argue.dev/pkg/argue/internal/domain"
	m "argue.dev/pkg/argue/internal/model"
	"github.com/spf13/cobra"
)

// extensionsCmd represents the extensions command.
var extensionsCmd = newExtensionsCmd()

func newExtensionsCmd() *cobra.Command {
	var frameworks frameworkFlags

	cmd := &cobra.Command{
		Use:   "extensions <semantics> [files...]",
		Short: "List the extensions of one semantics",
		Long: `List the extensions of one semantics for each framework.

Semantics: ` + semanticsNames() + `.
The usual abbreviations (cf, adm, co, pr, st, gr, sst, stg) are accepted.

` + frameworkFilesHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sem, err := m.ParseSemantics(args[0])
			if err != nil {
				return err
			}

			return workflow.Extensions(cmd.Context(), domain.ExtensionsArgs{
				Frameworks: frameworks.ref(args[1:]),
				Engine:     engineConfig(),
				Semantics:  sem,
			})
		},
	}

	frameworks.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(extensionsCmd)
}

func semanticsNames() string {
	all := m.AllSemantics()
	names := make([]string, 0, len(all))

	for _, sem := range all {
		names = append(names, string(sem))
	}

	return strings.Join(names, ", ")
}
