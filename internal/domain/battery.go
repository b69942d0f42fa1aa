package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	m "argue.dev/pkg/argue/internal/model"
)

type batteryStep struct {
	label string
	run   func(ctx context.Context, e *Engine) (string, error)
}

// battery is the fixed sequence of properties reported for every framework.
var battery = []batteryStep{
	{"Empty", func(_ context.Context, e *Engine) (string, error) {
		return strconv.FormatBool(e.fw.Empty()), nil
	}},
	{"Trivial", func(_ context.Context, e *Engine) (string, error) {
		return strconv.FormatBool(e.fw.Trivial()), nil
	}},
	{"Number of arguments", func(_ context.Context, e *Engine) (string, error) {
		return strconv.Itoa(e.fw.NumArguments()), nil
	}},
	{"Number of attacks", func(_ context.Context, e *Engine) (string, error) {
		return strconv.Itoa(e.fw.NumAttacks()), nil
	}},
	{"Arguments", func(_ context.Context, e *Engine) (string, error) {
		return e.fw.Arguments().String(), nil
	}},
	{"Attacks", func(_ context.Context, e *Engine) (string, error) {
		return formatAttacks(e.fw.Attacks()), nil
	}},
	{"Unattacked arguments", func(_ context.Context, e *Engine) (string, error) {
		return e.fw.UnattackedSet().String(), nil
	}},
	{"Self-attacking arguments", func(_ context.Context, e *Engine) (string, error) {
		return e.fw.SelfAttackingSet().String(), nil
	}},
	{"Cyclic", func(_ context.Context, e *Engine) (string, error) {
		return strconv.FormatBool(e.fw.Cyclic()), nil
	}},
	{"Cycles", func(ctx context.Context, e *Engine) (string, error) {
		cycles, err := e.fw.SimpleCycles(ctx)
		if err != nil {
			return "", err
		}

		return FormatPaths(cycles), nil
	}},
	{"Controversial", predicate((*Engine).ControversialFramework)},
	{"Limited controversial", predicate((*Engine).LimitedControversial)},
	{"Conflict-free sets", listing((*Engine).ConflictFreeSets)},
	{"Naive extensions", listing((*Engine).NaiveExtensions)},
	{"Self-defending sets", listing((*Engine).SelfDefendingSets)},
	{"Admissible sets", listing((*Engine).AdmissibleSets)},
	{"Complete extensions", listing((*Engine).CompleteExtensions)},
	{"Preferred extensions", listing((*Engine).PreferredExtensions)},
	{"Stable extension exists", predicate((*Engine).StableExists)},
	{"Stable extensions", listing((*Engine).StableExtensions)},
	{"Grounded extension", single((*Engine).Grounded)},
	{"Coherent", predicate((*Engine).Coherent)},
	{"Relatively grounded", predicate((*Engine).RelativelyGrounded)},
	{"Semi-stable extensions", listing((*Engine).SemiStableExtensions)},
	{"Stage extensions", listing((*Engine).StageExtensions)},
	{"Ideal extension", single((*Engine).Ideal)},
	{"Eager extension", single((*Engine).Eager)},
}

// RunBattery computes the report for the engine's framework. A failing step
// records its error and the battery moves on; a cancelled context aborts it.
func RunBattery(ctx context.Context, label string, engine *Engine) (m.Report, error) {
	report := m.Report{
		Label:     label,
		Arguments: engine.fw.ArgumentList(),
		Attacks:   engine.fw.Attacks(),
		CreatedAt: time.Now(),
		Entries:   make([]m.ReportEntry, 0, len(battery)),
	}

	slog.Info("running battery", "label", label, "arguments", engine.fw.NumArguments(), "attacks", engine.fw.NumAttacks())

	for _, step := range battery {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("battery %q aborted at %q: %w", label, step.label, err)
		}

		start := time.Now()
		value, err := step.run(ctx, engine)
		entry := m.ReportEntry{
			Label:   step.label,
			Value:   value,
			Elapsed: time.Since(start),
		}

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, fmt.Errorf("battery %q aborted at %q: %w", label, step.label, ctxErr)
			}

			slog.Warn("battery step failed", "label", label, "step", step.label, "error", err)
			entry.Error = err.Error()
		}

		report.Entries = append(report.Entries, entry)
	}

	return report, nil
}

// FormatPaths renders argument sequences as "[a b c]" joined by spaces.
func FormatPaths(paths [][]m.Argument) string {
	parts := make([]string, len(paths))
	for i, path := range paths {
		names := make([]string, len(path))
		for j, a := range path {
			names[j] = string(a)
		}

		parts[i] = "[" + strings.Join(names, " ") + "]"
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// FormatExtensions renders a list of sets in canonical order.
func FormatExtensions(sets []m.ArgumentSet) string {
	return "[" + strings.Join(m.FormatSets(sets), " ") + "]"
}

func formatAttacks(attacks []m.Attack) string {
	parts := make([]string, len(attacks))
	for i, attack := range attacks {
		parts[i] = attack.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func listing(fn func(*Engine, context.Context) ([]m.ArgumentSet, error)) func(context.Context, *Engine) (string, error) {
	return func(ctx context.Context, e *Engine) (string, error) {
		sets, err := fn(e, ctx)
		if err != nil {
			return "", err
		}

		return FormatExtensions(sets), nil
	}
}

func single(fn func(*Engine, context.Context) (m.ArgumentSet, error)) func(context.Context, *Engine) (string, error) {
	return func(ctx context.Context, e *Engine) (string, error) {
		s, err := fn(e, ctx)
		if err != nil {
			return "", err
		}

		return s.String(), nil
	}
}

func predicate(fn func(*Engine, context.Context) (bool, error)) func(context.Context, *Engine) (string, error) {
	return func(ctx context.Context, e *Engine) (string, error) {
		ok, err := fn(e, ctx)
		if err != nil {
			return "", err
		}

		return strconv.FormatBool(ok), nil
	}
}
