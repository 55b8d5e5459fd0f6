// Package reporting turns a run result into its output surfaces: the
// colored console table, the plain-text summary file, and the HTML
// report.
package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/chartprobe/chartprobe/runner"
	"github.com/chartprobe/chartprobe/types"
)

// ReportCategory is one category row with its case records.
type ReportCategory struct {
	Category types.Category
	Verdict  types.Verdict
	Stats    types.Stats
	Records  []types.OutcomeRecord
}

// ReportOp is one operation row with its category children.
type ReportOp struct {
	Name       string
	Verdict    types.Verdict
	Stats      types.Stats
	Categories []ReportCategory
}

// ReportData contains the structured data every report format renders
// from. Operations are sorted by name, categories in canonical order,
// records in execution order.
type ReportData struct {
	RunID     string
	Timestamp time.Time
	Duration  time.Duration

	Stats        types.Stats
	Verdict      types.Verdict
	PassRateText string

	Operations []ReportOp

	FailedCases   []types.OutcomeRecord
	SkippedCases  []types.OutcomeRecord
	TimedOutNames []string
}

// ReportBuilder constructs ReportData from a run result.
type ReportBuilder struct {
	includeCases bool
}

// NewReportBuilder creates a builder. Case rows are included by default.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{includeCases: true}
}

// WithCases controls whether individual case records are carried into
// the report or only the aggregated rows.
func (rb *ReportBuilder) WithCases(enabled bool) *ReportBuilder {
	rb.includeCases = enabled
	return rb
}

// Build flattens the result hierarchy. Inconsistent counters anywhere
// in the hierarchy are a bug in the runner and reported as an error.
func (rb *ReportBuilder) Build(result *runner.RunnerResult) (*ReportData, error) {
	if result == nil {
		return nil, fmt.Errorf("no run result")
	}
	if !result.Stats.Consistent() {
		return nil, fmt.Errorf("run counters inconsistent: %+v", result.Stats)
	}

	data := &ReportData{
		RunID:        result.RunID,
		Timestamp:    result.Started,
		Duration:     result.Duration,
		Stats:        result.Stats,
		Verdict:      result.Verdict(),
		PassRateText: fmt.Sprintf("%.1f%%", result.Stats.PassRate()),
	}

	names := make([]string, 0, len(result.Ops))
	for name := range result.Ops {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		op := result.Ops[name]
		if !op.Stats.Consistent() {
			return nil, fmt.Errorf("operation %q counters inconsistent: %+v", name, op.Stats)
		}
		reportOp := ReportOp{
			Name:    name,
			Verdict: op.Verdict(),
			Stats:   op.Stats,
		}
		for _, category := range types.Categories {
			cat, ok := op.Categories[category]
			if !ok {
				continue
			}
			if !cat.Stats.Consistent() {
				return nil, fmt.Errorf("category %s/%s counters inconsistent: %+v", name, category, cat.Stats)
			}
			reportCat := ReportCategory{
				Category: category,
				Verdict:  cat.Verdict(),
				Stats:    cat.Stats,
			}
			for _, rec := range cat.Records {
				if rb.includeCases {
					reportCat.Records = append(reportCat.Records, rec)
				}
				switch rec.Status {
				case types.CaseStatusFail, types.CaseStatusError:
					data.FailedCases = append(data.FailedCases, rec)
				case types.CaseStatusSkip:
					data.SkippedCases = append(data.SkippedCases, rec)
				}
				if rec.TimedOut {
					data.TimedOutNames = append(data.TimedOutNames, rec.Op+"/"+string(rec.Category)+"/"+rec.Name)
				}
			}
			reportOp.Categories = append(reportOp.Categories, reportCat)
		}
		data.Operations = append(data.Operations, reportOp)
	}

	return data, nil
}

// formatDuration renders a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Truncate(time.Millisecond).String()
}
