package controller

import (
	"context"
	"fmt"

	m "argue.dev/pkg/argue/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI by printing plain tables to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(context.Context) {}

// DisplayReport prints the battery results for one framework.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n\n%s\n", report.Label, renderReport(report))

	return nil
}

// DisplayExtensions prints the extensions of one semantics.
func (s *SimpleUI) DisplayExtensions(ctx context.Context, label string, sem m.Semantics, sets []m.ArgumentSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s: %s extensions\n\n%s", label, sem, renderExtensions(sem, sets))

	return nil
}

// DisplaySequence prints a defense iteration.
func (s *SimpleUI) DisplaySequence(ctx context.Context, label string, sequence []m.ArgumentSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s: defense iteration\n\n%s", label, renderSequence(sequence))

	return nil
}

// DisplayRelation prints the indirect relations between two arguments.
func (s *SimpleUI) DisplayRelation(ctx context.Context, label string, relation m.Relation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s: %s and %s\n\n%s", label, relation.From, relation.To, renderRelation(relation))

	return nil
}

// DisplayCatalog lists the built-in examples.
func (s *SimpleUI) DisplayCatalog(ctx context.Context, entries []m.CatalogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderCatalog(entries))

	return nil
}

// DisplayCheck prints the comparison with published answers.
func (s *SimpleUI) DisplayCheck(ctx context.Context, results []m.CheckResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderCheck(results))

	return nil
}

// DisplaySamples prints scalability timings.
func (s *SimpleUI) DisplaySamples(ctx context.Context, title string, samples []m.Sample) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n\n%s", title, renderSamples(samples))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
