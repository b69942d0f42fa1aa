package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	m "argue.dev/pkg/argue/internal/model"
	"gopkg.in/yaml.v3"
)

const reportExt = ".yaml"

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ReportStore persists analysis reports as one YAML file per report.
type ReportStore interface {
	SaveReports(dir m.Path, reports []m.Report) error
	LoadReports(dir m.Path) ([]m.Report, error)
}

// LocalReportStore keeps reports in a directory on the local filesystem.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReports writes each report to dir, creating it if needed. A report
// replaces any earlier report with the same label. Distinct labels that
// sanitise to the same file name are kept apart with a numeric suffix.
func (s *LocalReportStore) SaveReports(dir m.Path, reports []m.Report) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	owners := make(map[string]string, len(reports))

	for _, report := range reports {
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal report %q: %w", report.Label, err)
		}

		name := uniqueReportFileName(owners, report.Label)
		path := filepath.Join(string(dir), name)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("write report %q: %w", report.Label, err)
		}

		slog.Debug("saved report", "label", report.Label, "path", path)
	}

	return nil
}

// LoadReports reads every report in dir, ordered by file name.
func (s *LocalReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read report directory: %w", err)
	}

	var names []string

	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == reportExt {
			names = append(names, entry.Name())
		}
	}

	slices.Sort(names)

	reports := make([]m.Report, 0, len(names))

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(string(dir), name))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", name, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("parse report %s: %w", name, err)
		}

		reports = append(reports, report)
	}

	return reports, nil
}

// ReportFileName maps a report label to a portable file name.
func ReportFileName(label string) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(label, "-"), "-.")
	if name == "" {
		name = "report"
	}

	return name + reportExt
}

// uniqueReportFileName picks the file name for label within one save,
// recording it in owners. A label keeps the name it was given earlier.
func uniqueReportFileName(owners map[string]string, label string) string {
	base := strings.TrimSuffix(ReportFileName(label), reportExt)
	name := base + reportExt

	for i := 2; ; i++ {
		owner, taken := owners[name]
		if !taken || owner == label {
			break
		}

		name = fmt.Sprintf("%s-%d%s", base, i, reportExt)
	}

	owners[name] = label

	return name
}
