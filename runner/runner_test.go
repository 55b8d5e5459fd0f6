package runner

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

type nopSurface struct{}

func (nopSurface) Close() error { return nil }

func nopFactory() (probe.Surface, error) {
	return nopSurface{}, nil
}

var stubOps = map[string]probe.TargetOp{
	"draw": func(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
		return &probe.Drawing{}, nil
	},
	"reject": func(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
		return nil, probe.InvalidArgument("reject", "bad input")
	},
	"explode": func(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
		panic("boom")
	},
	"slow": func(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
		time.Sleep(20 * time.Millisecond)
		return &probe.Drawing{}, nil
	},
}

func stubLookup(name string) (probe.TargetOp, bool) {
	op, ok := stubOps[name]
	return op, ok
}

func newTestRunner(t *testing.T, cfg Config) *Runner {
	t.Helper()
	if cfg.Lookup == nil {
		cfg.Lookup = stubLookup
	}
	if cfg.Factory == nil {
		cfg.Factory = nopFactory
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
		cfg.Log.SetLevel(logrus.ErrorLevel)
	}
	r, err := NewRunner(cfg)
	require.NoError(t, err)
	return r
}

func passCase(name string) probe.Case {
	return probe.Case{
		Op:       "draw",
		Category: types.CategoryBasic,
		Name:     name,
		Args:     probe.Args{},
		Expect:   probe.ExpectSuccess(probe.ExpectNoPrimitives()),
	}
}

func TestNewRunnerValidation(t *testing.T) {
	_, err := NewRunner(Config{Factory: nopFactory})
	assert.Error(t, err)

	_, err = NewRunner(Config{Lookup: stubLookup})
	assert.Error(t, err)
}

func TestRunAggregatesOutcomes(t *testing.T) {
	cases := []probe.Case{
		passCase("ok"),
		{
			Op:       "reject",
			Category: types.CategoryBasic,
			Name:     "expected_rejection",
			Args:     probe.Args{},
			Expect:   probe.ExpectError(probe.KindInvalidArgument),
		},
		{
			Op:       "reject",
			Category: types.CategoryFuzz,
			Name:     "surprise_rejection",
			Args:     probe.Args{},
			Expect:   probe.ExpectSuccess(probe.ExpectNoPrimitives()),
		},
		{
			Op:       "explode",
			Category: types.CategorySpecial,
			Name:     "panics",
			Args:     probe.Args{},
			Expect:   probe.ExpectSuccess(probe.ExpectNoPrimitives()),
		},
		probe.Skipped("draw", types.CategoryBasic, "not_today", "backend under review"),
	}

	r := newTestRunner(t, Config{})
	result, err := r.Run(context.Background(), cases)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 5, result.Stats.Total)
	assert.Equal(t, 2, result.Stats.Passed)
	assert.Equal(t, 1, result.Stats.Failed)
	assert.Equal(t, 1, result.Stats.Skipped)
	assert.Equal(t, 1, result.Stats.Errored)
	assert.True(t, result.Stats.Consistent())
	assert.Equal(t, types.VerdictFail, result.Verdict())

	draw := result.Ops["draw"]
	require.NotNil(t, draw)
	assert.Equal(t, 2, draw.Stats.Total)
	assert.Equal(t, types.VerdictPassWithSkips, draw.Verdict())

	basic := draw.Categories[types.CategoryBasic]
	require.NotNil(t, basic)
	require.Len(t, basic.Records, 2)
	assert.Equal(t, "backend under review", basic.Records[1].SkipReason)

	reject := result.Ops["reject"]
	require.NotNil(t, reject)
	assert.Equal(t, types.VerdictFail, reject.Verdict())
	assert.Equal(t, types.VerdictPass, reject.Categories[types.CategoryBasic].Verdict())
}

func TestRunUnknownOperationErrors(t *testing.T) {
	r := newTestRunner(t, Config{})
	result, err := r.Run(context.Background(), []probe.Case{{
		Op:       "sparkline",
		Category: types.CategoryBasic,
		Name:     "missing_binding",
		Args:     probe.Args{},
		Expect:   probe.ExpectSuccess(probe.ExpectNoPrimitives()),
	}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.Errored)
	rec := result.Ops["sparkline"].Categories[types.CategoryBasic].Records[0]
	assert.Equal(t, types.CaseStatusError, rec.Status)
	assert.Contains(t, rec.Error.Error(), "no binding registered")
}

func TestRunSkippedCaseNeverInvokesTarget(t *testing.T) {
	invoked := false
	lookup := func(name string) (probe.TargetOp, bool) {
		return func(s probe.Surface, args probe.Args) (*probe.Drawing, error) {
			invoked = true
			return &probe.Drawing{}, nil
		}, true
	}

	r := newTestRunner(t, Config{Lookup: lookup})
	result, err := r.Run(context.Background(), []probe.Case{
		probe.Skipped("draw", types.CategoryBasic, "skipped", "manifest skip"),
	})
	require.NoError(t, err)

	assert.False(t, invoked)
	assert.Equal(t, 1, result.Stats.Skipped)
}

func TestRunPerfBudget(t *testing.T) {
	r := newTestRunner(t, Config{PerfBudget: time.Millisecond})

	result, err := r.Run(context.Background(), []probe.Case{
		{
			Op:       "slow",
			Category: types.CategoryPerformance,
			Name:     "over_budget",
			Args:     probe.Args{},
			Expect:   probe.ExpectSuccess(probe.ExpectNoPrimitives()),
		},
		{
			Op:       "slow",
			Category: types.CategoryBasic,
			Name:     "budget_does_not_apply",
			Args:     probe.Args{},
			Expect:   probe.ExpectSuccess(probe.ExpectNoPrimitives()),
		},
	})
	require.NoError(t, err)

	perf := result.Ops["slow"].Categories[types.CategoryPerformance].Records[0]
	assert.Equal(t, types.CaseStatusFail, perf.Status)
	assert.True(t, perf.TimedOut)
	assert.Contains(t, perf.Error.Error(), "budget")

	basic := result.Ops["slow"].Categories[types.CategoryBasic].Records[0]
	assert.Equal(t, types.CaseStatusPass, basic.Status)
	assert.False(t, basic.TimedOut)
	assert.Equal(t, 1, result.Stats.Timeouts)
}

func TestRunParallelPreservesOrder(t *testing.T) {
	var cases []probe.Case
	for i := 0; i < 40; i++ {
		cases = append(cases, passCase(fmt.Sprintf("case_%02d", i)))
	}

	r := newTestRunner(t, Config{Concurrency: 8})
	result, err := r.Run(context.Background(), cases)
	require.NoError(t, err)

	assert.Equal(t, 40, result.Stats.Total)
	assert.Equal(t, 40, result.Stats.Passed)

	records := result.Ops["draw"].Categories[types.CategoryBasic].Records
	require.Len(t, records, 40)
	for i, rec := range records {
		assert.Equal(t, fmt.Sprintf("case_%02d", i), rec.Name)
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	cases := []probe.Case{
		passCase("a"),
		{
			Op:       "reject",
			Category: types.CategoryBasic,
			Name:     "b",
			Args:     probe.Args{},
			Expect:   probe.ExpectError(probe.KindInvalidArgument),
		},
		{
			Op:       "explode",
			Category: types.CategorySpecial,
			Name:     "c",
			Args:     probe.Args{},
			Expect:   probe.ExpectSuccess(probe.ExpectNoPrimitives()),
		},
	}

	seq := newTestRunner(t, Config{})
	par := newTestRunner(t, Config{Concurrency: 4})

	seqResult, err := seq.Run(context.Background(), cases)
	require.NoError(t, err)
	parResult, err := par.Run(context.Background(), cases)
	require.NoError(t, err)

	assert.Equal(t, seqResult.Stats, parResult.Stats)
	assert.Equal(t, seqResult.Verdict(), parResult.Verdict())
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestRunner(t, Config{})
	result, err := r.Run(ctx, []probe.Case{passCase("never_runs")})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Stats.Total)
}

func TestResultManagerAccounting(t *testing.T) {
	m := newResultManager("run", time.Now())
	m.add(types.OutcomeRecord{Op: "bar", Category: types.CategoryBasic, Status: types.CaseStatusPass})
	m.add(types.OutcomeRecord{Op: "bar", Category: types.CategoryFuzz, Status: types.CaseStatusFail})
	m.add(types.OutcomeRecord{Op: "pie", Category: types.CategoryBasic, Status: types.CaseStatusSkip})

	result := m.finish()
	assert.Equal(t, "run", result.RunID)
	assert.True(t, result.Stats.Consistent())
	assert.Equal(t, 3, result.Stats.Total)
	require.Len(t, result.Ops, 2)

	bar := result.Ops["bar"]
	assert.True(t, bar.Stats.Consistent())
	assert.Equal(t, types.VerdictFail, bar.Verdict())
	assert.Equal(t, types.VerdictPass, bar.Categories[types.CategoryBasic].Verdict())
	assert.Equal(t, types.VerdictPassWithSkips, result.Ops["pie"].Verdict())
}
