package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"argue.dev/pkg/argue/internal/adapter"
	"argue.dev/pkg/argue/internal/controller"
	m "argue.dev/pkg/argue/internal/model"
)

// FrameworkRef selects the frameworks a command works on: files on disk,
// named catalog examples, or the whole catalog.
type FrameworkRef struct {
	Paths       []m.Path
	Examples    []string
	AllExamples bool
}

// AnalyzeArgs contains the arguments for running the report battery.
type AnalyzeArgs struct {
	Frameworks FrameworkRef
	Engine     EngineConfig
	Reports    m.Path
	Save       bool
}

// ExtensionsArgs contains the arguments for listing one semantics.
type ExtensionsArgs struct {
	Frameworks FrameworkRef
	Engine     EngineConfig
	Semantics  m.Semantics
}

// IterateArgs contains the arguments for iterating the defense function.
type IterateArgs struct {
	Frameworks FrameworkRef
	Start      []m.Argument
}

// RelateArgs contains the arguments for relating two arguments.
type RelateArgs struct {
	Frameworks FrameworkRef
	Engine     EngineConfig
	From       m.Argument
	To         m.Argument
}

// CheckArgs selects the catalog examples and semantics to verify. Empty
// selections mean everything.
type CheckArgs struct {
	Examples  []string
	Semantics []m.Semantics
	Engine    EngineConfig
}

// SampleKind selects what a scalability run measures.
type SampleKind string

// Available SampleKind values.
const (
	SamplePowerset   SampleKind = "powerset"
	SampleAdmissible SampleKind = "admissible"
)

// SampleRunArgs contains the arguments for a scalability run.
type SampleRunArgs struct {
	Kind SampleKind
	SampleArgs
}

// ViewArgs contains the arguments for displaying saved reports.
type ViewArgs struct {
	Reports m.Path
}

// EngineConfig bounds the work a single query may do.
type EngineConfig struct {
	// MaxArguments is the largest framework enumerated exhaustively; 0
	// disables the limit.
	MaxArguments int
	// Timeout caps each framework's analysis; 0 disables it.
	Timeout time.Duration
}

// Workflow defines the use cases the CLI exposes.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
	Extensions(ctx context.Context, args ExtensionsArgs) error
	Iterate(ctx context.Context, args IterateArgs) error
	Relate(ctx context.Context, args RelateArgs) error
	Check(ctx context.Context, args CheckArgs) error
	Examples(ctx context.Context) error
	Sample(ctx context.Context, args SampleRunArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.FrameworkSource
	adapter.Catalog
	adapter.ReportStore
	controller.UI
	Sampler
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	source adapter.FrameworkSource,
	catalog adapter.Catalog,
	store adapter.ReportStore,
	ui controller.UI,
	sampler Sampler,
) Workflow {
	return &workflow{
		FrameworkSource: source,
		Catalog:         catalog,
		ReportStore:     store,
		UI:              ui,
		Sampler:         sampler,
	}
}

// labeled is a framework together with the name it is reported under.
type labeled struct {
	label string
	fw    *Framework
}

func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	frameworks, err := w.resolve(args.Frameworks)
	if err != nil {
		return err
	}

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start UI: %w", err)
	}
	defer w.Close(ctx)

	reports := make([]m.Report, 0, len(frameworks))

	for _, item := range frameworks {
		report, err := w.runBattery(ctx, item, args.Engine)
		if err != nil {
			return err
		}

		if err := w.DisplayReport(ctx, report); err != nil {
			return fmt.Errorf("display report: %w", err)
		}

		reports = append(reports, report)
	}

	if !args.Save {
		return nil
	}

	if err := w.SaveReports(args.Reports, reports); err != nil {
		return fmt.Errorf("save reports: %w", err)
	}

	slog.Info("saved reports", "dir", args.Reports, "count", len(reports))

	return nil
}

func (w *workflow) runBattery(ctx context.Context, item labeled, config EngineConfig) (m.Report, error) {
	ctx, cancel := withTimeout(ctx, config)
	defer cancel()

	return RunBattery(ctx, item.label, newConfiguredEngine(item.fw, config))
}

func (w *workflow) Extensions(ctx context.Context, args ExtensionsArgs) error {
	frameworks, err := w.resolve(args.Frameworks)
	if err != nil {
		return err
	}

	for _, item := range frameworks {
		sets, err := extensions(ctx, item.fw, args.Semantics, args.Engine)
		if err != nil {
			return fmt.Errorf("%s: %w", item.label, err)
		}

		if err := w.DisplayExtensions(ctx, item.label, args.Semantics, sets); err != nil {
			return fmt.Errorf("display extensions: %w", err)
		}
	}

	return nil
}

func extensions(ctx context.Context, fw *Framework, sem m.Semantics, config EngineConfig) ([]m.ArgumentSet, error) {
	ctx, cancel := withTimeout(ctx, config)
	defer cancel()

	return newConfiguredEngine(fw, config).Extensions(ctx, sem)
}

func (w *workflow) Iterate(ctx context.Context, args IterateArgs) error {
	frameworks, err := w.resolve(args.Frameworks)
	if err != nil {
		return err
	}

	start := m.NewArgumentSet(args.Start...)

	for _, item := range frameworks {
		sequence, err := NewEngine(item.fw).IterateDefence(start)
		if err != nil {
			return fmt.Errorf("%s: %w", item.label, err)
		}

		if err := w.DisplaySequence(ctx, item.label, sequence); err != nil {
			return fmt.Errorf("display sequence: %w", err)
		}
	}

	return nil
}

func (w *workflow) Relate(ctx context.Context, args RelateArgs) error {
	frameworks, err := w.resolve(args.Frameworks)
	if err != nil {
		return err
	}

	for _, item := range frameworks {
		relation, err := relate(ctx, item.fw, args)
		if err != nil {
			return fmt.Errorf("%s: %w", item.label, err)
		}

		if err := w.DisplayRelation(ctx, item.label, relation); err != nil {
			return fmt.Errorf("display relation: %w", err)
		}
	}

	return nil
}

func relate(ctx context.Context, fw *Framework, args RelateArgs) (m.Relation, error) {
	ctx, cancel := withTimeout(ctx, args.Engine)
	defer cancel()

	return NewEngine(fw).Relation(ctx, args.From, args.To)
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	entries, err := w.checkedEntries(args.Examples)
	if err != nil {
		return err
	}

	var results []m.CheckResult

	for _, entry := range entries {
		entryResults, err := checkEntry(ctx, entry, args.Semantics, args.Engine)
		if err != nil {
			return err
		}

		results = append(results, entryResults...)
	}

	if err := w.DisplayCheck(ctx, results); err != nil {
		return fmt.Errorf("display check: %w", err)
	}

	failed := 0

	for _, result := range results {
		if !result.Passed {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d checks failed", ErrExpectationMismatch, failed, len(results))
	}

	return nil
}

func (w *workflow) checkedEntries(names []string) ([]m.CatalogEntry, error) {
	if len(names) == 0 {
		return w.Entries(), nil
	}

	entries := make([]m.CatalogEntry, 0, len(names))

	for _, name := range names {
		entry, err := w.Lookup(name)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// checkEntry recomputes every published answer of entry, restricted to only
// when that is non-empty. Query failures become failed results; only
// cancellation aborts.
func checkEntry(ctx context.Context, entry m.CatalogEntry, only []m.Semantics, config EngineConfig) ([]m.CheckResult, error) {
	fw, err := FromSpec(entry.FrameworkSpec)
	if err != nil {
		return nil, fmt.Errorf("catalog entry %q: %w", entry.Name, err)
	}

	var results []m.CheckResult

	for _, sem := range m.AllSemantics() {
		expected, ok := entry.ExpectedSets(sem)
		if !ok || (len(only) > 0 && !slices.Contains(only, sem)) {
			continue
		}

		result := m.CheckResult{
			Example:   entry.Name,
			Semantics: sem,
			Expected:  m.FormatSets(expected),
		}

		actual, err := extensions(ctx, fw, sem, config)

		switch {
		case err != nil && ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			result.Error = err.Error()
		default:
			result.Actual = m.FormatSets(actual)
			result.Passed = slices.Equal(result.Expected, result.Actual)
		}

		if !result.Passed {
			slog.Warn("published answer mismatch", "example", entry.Name, "semantics", sem, "error", result.Error)
		}

		results = append(results, result)
	}

	return results, nil
}

func (w *workflow) Examples(ctx context.Context) error {
	return w.DisplayCatalog(ctx, w.Entries())
}

func (w *workflow) Sample(ctx context.Context, args SampleRunArgs) error {
	var (
		samples []m.Sample
		title   string
		err     error
	)

	switch args.Kind {
	case SamplePowerset:
		title = fmt.Sprintf("Power set construction, sizes 0-%d", args.Upper)
		samples, err = w.PowersetTimings(ctx, args.Upper)
	case SampleAdmissible, "":
		title = fmt.Sprintf("Admissible sets of random frameworks, sizes 0-%d, p=%g, %d runs", args.Upper, args.Probability, args.Runs)
		samples, err = w.AdmissibleTimings(ctx, args.SampleArgs)
	default:
		return fmt.Errorf("unknown sample kind %q", args.Kind)
	}

	if err != nil {
		return fmt.Errorf("sample: %w", err)
	}

	return w.DisplaySamples(ctx, title, samples)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if len(reports) == 0 {
		return fmt.Errorf("no reports found in %s", args.Reports)
	}

	for _, report := range reports {
		if err := w.DisplayReport(ctx, report); err != nil {
			return fmt.Errorf("display report: %w", err)
		}
	}

	return nil
}

// resolve loads every framework ref names, in the order given: files first,
// then examples.
func (w *workflow) resolve(ref FrameworkRef) ([]labeled, error) {
	var out []labeled

	for _, path := range ref.Paths {
		specs, err := w.Load(path)
		if err != nil {
			return nil, err
		}

		for _, spec := range specs {
			fw, err := FromSpec(spec)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}

			out = append(out, labeled{label: spec.Name, fw: fw})
		}
	}

	entries, err := w.checkedEntries(ref.Examples)
	if err != nil {
		return nil, err
	}

	if len(ref.Examples) == 0 && !ref.AllExamples {
		entries = nil
	}

	for _, entry := range entries {
		fw, err := FromSpec(entry.FrameworkSpec)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", entry.Name, err)
		}

		out = append(out, labeled{label: entry.Name, fw: fw})
	}

	if len(out) == 0 {
		return nil, ErrNoFramework
	}

	return out, nil
}

func newConfiguredEngine(fw *Framework, config EngineConfig) *Engine {
	return NewEngine(fw, WithMaxArguments(config.MaxArguments))
}

func withTimeout(ctx context.Context, config EngineConfig) (context.Context, context.CancelFunc) {
	if config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, config.Timeout)
}
