package runner

import (
	"time"

	"github.com/chartprobe/chartprobe/types"
)

// CategoryResult groups the outcomes of one category under one operation.
type CategoryResult struct {
	Category types.Category
	Records  []types.OutcomeRecord
	Stats    types.Stats
}

// Verdict derives the category verdict from its counters.
func (c *CategoryResult) Verdict() types.Verdict {
	return types.DetermineVerdict(c.Stats)
}

// OpResult groups the per-category results of one operation.
type OpResult struct {
	Op         string
	Categories map[types.Category]*CategoryResult
	Stats      types.Stats
}

// Verdict derives the operation verdict from its counters.
func (o *OpResult) Verdict() types.Verdict {
	return types.DetermineVerdict(o.Stats)
}

// RunnerResult is the aggregated outcome of one run: the full
// operation → category → case hierarchy plus run-level counters.
type RunnerResult struct {
	RunID    string
	Ops      map[string]*OpResult
	Stats    types.Stats
	Duration time.Duration
	Started  time.Time
}

// Verdict derives the run verdict from its counters.
func (r *RunnerResult) Verdict() types.Verdict {
	return types.DetermineVerdict(r.Stats)
}

// resultManager folds outcome records into the hierarchy. It is not
// goroutine-safe; the collector goroutine owns it.
type resultManager struct {
	result *RunnerResult
}

func newResultManager(runID string, started time.Time) *resultManager {
	return &resultManager{result: &RunnerResult{
		RunID:   runID,
		Ops:     make(map[string]*OpResult),
		Started: started,
	}}
}

func (m *resultManager) add(rec types.OutcomeRecord) {
	op, ok := m.result.Ops[rec.Op]
	if !ok {
		op = &OpResult{
			Op:         rec.Op,
			Categories: make(map[types.Category]*CategoryResult),
		}
		m.result.Ops[rec.Op] = op
	}
	cat, ok := op.Categories[rec.Category]
	if !ok {
		cat = &CategoryResult{Category: rec.Category}
		op.Categories[rec.Category] = cat
	}

	cat.Records = append(cat.Records, rec)
	cat.Stats.Record(rec.Status, rec.TimedOut)
	op.Stats.Record(rec.Status, rec.TimedOut)
	m.result.Stats.Record(rec.Status, rec.TimedOut)
}

func (m *resultManager) finish() *RunnerResult {
	m.result.Duration = time.Since(m.result.Started)
	return m.result
}
