package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	m "argue.dev/pkg/argue/internal/model"
	"github.com/olekukonko/tablewriter"
)

const emptyListLabel = "(none)"

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func renderReport(report m.Report) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Property", "Value", "Time"})

	for _, entry := range report.Entries {
		value := entry.Value
		if entry.Error != "" {
			value = "error: " + entry.Error
		}

		table.Append([]string{entry.Label, value, formatElapsed(entry.Elapsed)})
	}

	table.SetFooter([]string{"", fmt.Sprintf("%d failed", len(report.Failed())), formatElapsed(totalElapsed(report))})
	table.Render()

	return buf.String()
}

func renderExtensions(sem m.Semantics, sets []m.ArgumentSet) string {
	rendered := m.FormatSets(sets)
	if len(rendered) == 0 {
		return fmt.Sprintf("No %s extension.\n", sem)
	}

	var buf bytes.Buffer

	table := newTable(&buf, []string{"#", string(sem)})
	for i, s := range rendered {
		table.Append([]string{strconv.Itoa(i + 1), s})
	}

	table.Render()

	return buf.String()
}

func renderSequence(sequence []m.ArgumentSet) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Step", "Set"})
	for i, s := range sequence {
		table.Append([]string{strconv.Itoa(i), s.String()})
	}

	table.Render()

	return buf.String()
}

func renderRelation(relation m.Relation) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Relation", "Holds"})
	table.Append([]string{fmt.Sprintf("%s indirectly attacks %s", relation.From, relation.To), strconv.FormatBool(relation.IndirectlyAttacks)})
	table.Append([]string{fmt.Sprintf("%s indirectly defends %s", relation.From, relation.To), strconv.FormatBool(relation.IndirectlyDefends)})
	table.Append([]string{fmt.Sprintf("%s controversial w.r.t. %s", relation.From, relation.To), strconv.FormatBool(relation.Controversial)})
	table.Append([]string{fmt.Sprintf("%s controversial", relation.From), strconv.FormatBool(relation.FromIsControversial)})
	table.Render()

	buf.WriteString("\nAttack paths:\n")

	if len(relation.Paths) == 0 {
		buf.WriteString("  " + emptyListLabel + "\n")
	}

	for _, path := range relation.Paths {
		names := make([]string, len(path))
		for i, a := range path {
			names[i] = string(a)
		}

		fmt.Fprintf(&buf, "  %s (length %d)\n", strings.Join(names, " -> "), len(path)-1)
	}

	return buf.String()
}

func renderCatalog(entries []m.CatalogEntry) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Name", "Attacks", "Source"})
	for _, entry := range entries {
		attacks := make([]string, len(entry.Attacks))
		for i, pair := range entry.Attacks {
			names := make([]string, len(pair))
			for j, a := range pair {
				names[j] = string(a)
			}

			attacks[i] = strings.Join(names, "->")
		}

		table.Append([]string{entry.Name, strings.Join(attacks, " "), entry.Source})
	}

	table.SetFooter([]string{fmt.Sprintf("%d examples", len(entries)), "", ""})
	table.Render()

	return buf.String()
}

func renderCheck(results []m.CheckResult) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Example", "Semantics", "Result"})

	failed := 0

	for _, result := range results {
		status := "ok"

		switch {
		case result.Error != "":
			status = "error: " + result.Error
			failed++
		case !result.Passed:
			status = "MISMATCH"
			failed++
		}

		table.Append([]string{result.Example, string(result.Semantics), status})
	}

	table.SetFooter([]string{fmt.Sprintf("%d checks", len(results)), "", fmt.Sprintf("%d failed", failed)})
	table.Render()

	for _, result := range results {
		if result.Passed || result.Error != "" {
			continue
		}

		fmt.Fprintf(&buf, "\n%s / %s:\n%s", result.Example, result.Semantics, UnifiedDiff(result.Expected, result.Actual))
	}

	return buf.String()
}

func renderSamples(samples []m.Sample) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Size", "Runs", "Mean"})
	for _, sample := range samples {
		table.Append([]string{strconv.Itoa(sample.Size), strconv.Itoa(sample.Runs), formatElapsed(sample.Mean)})
	}

	table.Render()

	return buf.String()
}

func formatElapsed(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

func totalElapsed(report m.Report) time.Duration {
	var total time.Duration
	for _, entry := range report.Entries {
		total += entry.Elapsed
	}

	return total
}
