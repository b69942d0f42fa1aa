package model

import "time"

// ReportEntry is one line of an analysis report: a property of the framework,
// its rendered value and the time it took to compute.
type ReportEntry struct {
	Label   string        `yaml:"label"`
	Value   string        `yaml:"value"`
	Elapsed time.Duration `yaml:"elapsed"`
	Error   string        `yaml:"error,omitempty"`
}

// Report is the output of running the analysis battery on one framework.
type Report struct {
	Label     string        `yaml:"label"`
	Arguments []Argument    `yaml:"arguments"`
	Attacks   []Attack      `yaml:"attacks"`
	CreatedAt time.Time     `yaml:"created_at"`
	Entries   []ReportEntry `yaml:"entries"`
}

// Failed returns the entries that recorded an error.
func (r Report) Failed() []ReportEntry {
	var failed []ReportEntry

	for _, entry := range r.Entries {
		if entry.Error != "" {
			failed = append(failed, entry)
		}
	}

	return failed
}

// Sample is one scalability datapoint: the mean time to run an operation on
// frameworks (or sets) of a given size.
type Sample struct {
	Size int
	Runs int
	Mean time.Duration
}

// Timing is a single raw measurement, aggregated into Samples.
type Timing struct {
	Size    int
	Run     int
	Elapsed time.Duration
}

// CheckResult records the comparison of a computed answer with a published one.
type CheckResult struct {
	Example   string
	Semantics Semantics
	Expected  []string
	Actual    []string
	Passed    bool
	Error     string
}

// Relation describes how one argument bears on another through chains of
// attacks.
type Relation struct {
	From                Argument
	To                  Argument
	Paths               [][]Argument
	IndirectlyAttacks   bool
	IndirectlyDefends   bool
	Controversial       bool
	FromIsControversial bool
}
