package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	m "argue.dev/pkg/argue/internal/model"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 2)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	footerStyle   = lipgloss.NewStyle().Faint(true)
)

// pagerChrome is the number of lines the pager reserves for its title and
// footer.
const pagerChrome = 5

// TUI implements UI with lipgloss styling. Output taller than the terminal
// opens in a Bubble Tea pager.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (t *TUI) Close(context.Context) {}

// DisplayReport shows the battery results for one framework.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subtitle := fmt.Sprintf("%d arguments, %d attacks", len(report.Arguments), len(report.Attacks))

	return t.show(report.Label, subtitle, renderReport(report))
}

// DisplayExtensions shows the extensions of one semantics.
func (t *TUI) DisplayExtensions(ctx context.Context, label string, sem m.Semantics, sets []m.ArgumentSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.show(label, fmt.Sprintf("%s extensions", sem), renderExtensions(sem, sets))
}

// DisplaySequence shows a defense iteration.
func (t *TUI) DisplaySequence(ctx context.Context, label string, sequence []m.ArgumentSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.show(label, "defense iteration", renderSequence(sequence))
}

// DisplayRelation shows the indirect relations between two arguments.
func (t *TUI) DisplayRelation(ctx context.Context, label string, relation m.Relation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.show(label, fmt.Sprintf("%s and %s", relation.From, relation.To), renderRelation(relation))
}

// DisplayCatalog lists the built-in examples.
func (t *TUI) DisplayCatalog(ctx context.Context, entries []m.CatalogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.show("Worked examples", "", renderCatalog(entries))
}

// DisplayCheck shows the comparison with published answers.
func (t *TUI) DisplayCheck(ctx context.Context, results []m.CheckResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.show("Published answers", "", renderCheck(results))
}

// DisplaySamples shows scalability timings.
func (t *TUI) DisplaySamples(ctx context.Context, title string, samples []m.Sample) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.show(title, "", renderSamples(samples))
}

func (t *TUI) show(title, subtitle, body string) error {
	header := titleStyle.Render(title)
	if subtitle != "" {
		header += "\n" + subtitleStyle.Render(subtitle)
	}

	width, height := t.terminalSize()
	if height == 0 || strings.Count(body, "\n")+pagerChrome <= height {
		_, err := fmt.Fprintf(t.output, "%s\n\n%s\n", header, body)
		return err
	}

	program := tea.NewProgram(newPagerModel(header, body, width, height), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

// terminalSize returns zero sizes when output is not a terminal.
func (t *TUI) terminalSize() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok || !IsTTY(f) {
		return 0, 0
	}

	width, height, err := term.GetSize(f.Fd())
	if err != nil {
		return 0, 0
	}

	return width, height
}

// pagerModel is a scrollable view over pre-rendered output.
type pagerModel struct {
	header   string
	viewport viewport.Model
}

func newPagerModel(header, body string, width, height int) pagerModel {
	vp := viewport.New(width, max(1, height-lipgloss.Height(header)-2))
	vp.SetContent(body)

	return pagerModel{
		header:   header,
		viewport: vp,
	}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.viewport.Width = msg.Width
		p.viewport.Height = max(1, msg.Height-lipgloss.Height(p.header)-2)

		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		case "g", "home":
			p.viewport.GotoTop()
			return p, nil
		case "G", "end":
			p.viewport.GotoBottom()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	footer := footerStyle.Render(fmt.Sprintf("%3.0f%%  ↑/k up  ↓/j down  g top  G bottom  q quit", p.viewport.ScrollPercent()*100))

	return p.header + "\n" + p.viewport.View() + "\n" + footer
}
