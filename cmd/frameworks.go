package cmd

import (
	"argue.dev/pkg/argue/internal/domain"
	"github.com/spf13/cobra"
)

const (
	exampleFlagName = "example"
	allFlagName     = "all"
)

// frameworkFlags selects catalog examples next to the positional files.
type frameworkFlags struct {
	examples []string
	all      bool
}

func (f *frameworkFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.examples, exampleFlagName, "e", nil, "built-in example to analyse (can be repeated, see 'argue examples')")
	cmd.Flags().BoolVar(&f.all, allFlagName, false, "analyse every built-in example")
}

func (f *frameworkFlags) ref(files []string) domain.FrameworkRef {
	return domain.FrameworkRef{
		Paths:       parsePaths(files),
		Examples:    f.examples,
		AllExamples: f.all,
	}
}
