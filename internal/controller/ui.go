// Package controller provides output adapters for displaying analysis results.
package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	m "argue.dev/pkg/argue/internal/model"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Mode selects the UI implementation.
type Mode string

// Available Mode values.
const (
	ModeAuto   Mode = "auto"
	ModeSimple Mode = "simple"
	ModeTUI    Mode = "tui"
)

// ParseMode resolves a ui.mode setting; the empty string means ModeAuto.
func ParseMode(value string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeSimple, ModeTUI:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown ui mode %q (want auto, simple or tui)", value)
	}
}

// UI defines how workflows present their results.
// Implementations can use different output methods (plain tables, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	DisplayReport(ctx context.Context, report m.Report) error
	DisplayExtensions(ctx context.Context, label string, sem m.Semantics, sets []m.ArgumentSet) error
	DisplaySequence(ctx context.Context, label string, sequence []m.ArgumentSet) error
	DisplayRelation(ctx context.Context, label string, relation m.Relation) error
	DisplayCatalog(ctx context.Context, entries []m.CatalogEntry) error
	DisplayCheck(ctx context.Context, results []m.CheckResult) error
	DisplaySamples(ctx context.Context, title string, samples []m.Sample) error
}

// NewUI picks the UI for mode. ModeAuto uses the TUI only on a terminal.
func NewUI(cmd *cobra.Command, mode Mode, isTTY bool) UI {
	if mode == ModeTUI || (mode == ModeAuto && isTTY) {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
