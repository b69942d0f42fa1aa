package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strconv"
	"time"

	m "argue.dev/pkg/argue/internal/model"
	"argue.dev/pkg/argue/pkg"
	"golang.org/x/sync/errgroup"
)

// SampleArgs configures a scalability run.
type SampleArgs struct {
	// Upper is the largest framework size sampled; sizes run from 0.
	Upper int
	// Runs is the number of random frameworks averaged per size.
	Runs int
	// Probability is the chance that any ordered pair of distinct
	// arguments is an attack.
	Probability float64
	// Parallel bounds the number of concurrent runs; 0 means unbounded.
	Parallel int
	Seed     uint64
}

// Sampler measures how the exhaustive engine scales with framework size.
type Sampler interface {
	PowersetTimings(ctx context.Context, upper int) ([]m.Sample, error)
	AdmissibleTimings(ctx context.Context, args SampleArgs) ([]m.Sample, error)
}

type sampler struct {
	spillDir string
}

// NewSampler creates a Sampler that spills raw timings under spillDir; an
// empty spillDir uses the system temp directory.
func NewSampler(spillDir string) Sampler {
	return &sampler{spillDir: spillDir}
}

// RandomFramework draws a directed Erdős–Rényi framework over the arguments
// "0" to "n-1": every ordered pair of distinct arguments is an attack with
// probability p.
func RandomFramework(rng *rand.Rand, n int, p float64) (*Framework, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative framework size %d", n)
	}

	if p < 0 || p > 1 {
		return nil, fmt.Errorf("attack probability %v outside [0, 1]", p)
	}

	arguments := make([]m.Argument, n)
	for i := range n {
		arguments[i] = m.Argument(strconv.Itoa(i))
	}

	var attacks []m.Attack

	for _, from := range arguments {
		for _, to := range arguments {
			if from != to && rng.Float64() < p {
				attacks = append(attacks, m.Attack{From: from, To: to})
			}
		}
	}

	return NewFramework(arguments, attacks)
}

// PowersetTimings times one power-set construction per size from 0 to upper.
func (s *sampler) PowersetTimings(ctx context.Context, upper int) ([]m.Sample, error) {
	if upper < 0 {
		return nil, fmt.Errorf("negative upper size %d", upper)
	}

	samples := make([]m.Sample, 0, upper+1)

	for size := range upper + 1 {
		arguments := make([]m.Argument, size)
		for i := range size {
			arguments[i] = m.Argument(strconv.Itoa(i))
		}

		start := time.Now()
		if _, err := powerset(ctx, m.NewArgumentSet(arguments...)); err != nil {
			return nil, fmt.Errorf("powerset of size %d: %w", size, err)
		}

		elapsed := time.Since(start)
		slog.Debug("timed powerset", "size", size, "elapsed", elapsed)

		samples = append(samples, m.Sample{Size: size, Runs: 1, Mean: elapsed})
	}

	return samples, nil
}

// AdmissibleTimings averages, per size, the time to list the admissible sets
// of args.Runs random frameworks. Runs execute on a bounded worker pool and
// their raw timings go through a file spill before aggregation.
func (s *sampler) AdmissibleTimings(ctx context.Context, args SampleArgs) ([]m.Sample, error) {
	if args.Upper < 0 || args.Runs <= 0 {
		return nil, fmt.Errorf("invalid sample size: upper %d, runs %d", args.Upper, args.Runs)
	}

	spill, err := pkg.NewFileSpill[m.Timing](s.spillDir)
	if err != nil {
		return nil, fmt.Errorf("create timing spill: %w", err)
	}

	defer func() {
		if err := spill.Remove(); err != nil {
			slog.Warn("failed to remove timing spill", "path", spill.Path(), "error", err)
		}
	}()

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for size := range args.Upper + 1 {
		for run := range args.Runs {
			group.Go(func() error {
				rng := rand.New(rand.NewPCG(args.Seed, uint64(size)<<32|uint64(run)))

				fw, err := RandomFramework(rng, size, args.Probability)
				if err != nil {
					return err
				}

				start := time.Now()
				if _, err := NewEngine(fw).AdmissibleSets(groupCtx); err != nil {
					return fmt.Errorf("size %d run %d: %w", size, run, err)
				}

				return spill.Append(m.Timing{Size: size, Run: run, Elapsed: time.Since(start)})
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	totals := make(map[int]time.Duration, args.Upper+1)
	counts := make(map[int]int, args.Upper+1)

	err = spill.Range(func(_ uint64, t m.Timing) error {
		totals[t.Size] += t.Elapsed
		counts[t.Size]++

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate timings: %w", err)
	}

	samples := make([]m.Sample, 0, len(totals))
	for size, total := range totals {
		samples = append(samples, m.Sample{
			Size: size,
			Runs: counts[size],
			Mean: total / time.Duration(counts[size]),
		})
	}

	slices.SortFunc(samples, func(a, b m.Sample) int { return a.Size - b.Size })

	slog.Info("sampled admissible timings", "sizes", len(samples), "runs", args.Runs, "probability", args.Probability)

	return samples, nil
}
