// Package runner executes probe cases against their target bindings
// and aggregates the outcomes into the operation → category hierarchy.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/chartprobe/chartprobe/probe"
	"github.com/chartprobe/chartprobe/types"
)

// Config contains runner configuration.
type Config struct {
	Log *logrus.Logger

	// Lookup resolves an operation name to its binding.
	Lookup func(name string) (probe.TargetOp, bool)

	// Factory produces the fresh surface each invocation runs on.
	Factory probe.SurfaceFactory

	// PerfBudget is the wall-clock budget applied to each
	// performance-category case. Zero disables the budget.
	PerfBudget time.Duration

	// Concurrency is the worker count. Values below 2 run sequentially.
	Concurrency int
}

// Runner executes cases and collects their outcome records.
type Runner struct {
	config Config
	log    *logrus.Logger
	tracer trace.Tracer
}

// NewRunner creates a runner.
func NewRunner(cfg Config) (*Runner, error) {
	if cfg.Lookup == nil {
		return nil, fmt.Errorf("no operation lookup provided")
	}
	if cfg.Factory == nil {
		return nil, fmt.Errorf("no surface factory provided")
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
		cfg.Log.Error("No logger provided, using default")
	}

	return &Runner{
		config: cfg,
		log:    cfg.Log,
		tracer: otel.Tracer("case runner"),
	}, nil
}

// Run executes every case and returns the aggregated result. The order
// of records within a category follows the input order even when the
// parallel pool is active.
func (r *Runner) Run(ctx context.Context, cases []probe.Case) (*RunnerResult, error) {
	runID := uuid.New().String()
	ctx, span := r.tracer.Start(ctx, fmt.Sprintf("run %s", runID))
	defer span.End()

	r.log.WithFields(logrus.Fields{
		"run_id":      runID,
		"cases":       len(cases),
		"concurrency": r.config.Concurrency,
	}).Info("Starting run")

	manager := newResultManager(runID, time.Now())

	records, err := r.execute(ctx, cases)
	for _, rec := range records {
		manager.add(rec)
	}
	result := manager.finish()

	r.log.WithFields(logrus.Fields{
		"run_id":   runID,
		"total":    result.Stats.Total,
		"passed":   result.Stats.Passed,
		"failed":   result.Stats.Failed,
		"skipped":  result.Stats.Skipped,
		"errored":  result.Stats.Errored,
		"duration": result.Duration,
	}).Info("Run complete")

	return result, err
}

func (r *Runner) execute(ctx context.Context, cases []probe.Case) ([]types.OutcomeRecord, error) {
	if r.config.Concurrency > 1 {
		pool := newParallelExecutor(r, r.config.Concurrency)
		return pool.execute(ctx, cases)
	}

	records := make([]types.OutcomeRecord, 0, len(cases))
	for _, c := range cases {
		select {
		case <-ctx.Done():
			return records, ctx.Err()
		default:
		}
		records = append(records, r.runCase(ctx, c))
	}
	return records, nil
}

// runCase invokes one binding and evaluates the outcome. Pre-marked
// skips never reach the target.
func (r *Runner) runCase(ctx context.Context, c probe.Case) types.OutcomeRecord {
	_, span := r.tracer.Start(ctx, fmt.Sprintf("case %s", c.FullName()))
	defer span.End()

	if c.SkipReason != "" {
		return probe.Evaluate(c, probe.Invocation{})
	}

	op, ok := r.config.Lookup(c.Op)
	if !ok {
		return types.OutcomeRecord{
			Op:       c.Op,
			Category: c.Category,
			Name:     c.Name,
			Status:   types.CaseStatusError,
			Error:    fmt.Errorf("no binding registered for operation %q", c.Op),
			Input:    c.Args.String(),
		}
	}

	start := time.Now()
	inv := probe.Invoke(op, r.config.Factory, c.Args)
	elapsed := time.Since(start)

	rec := probe.Evaluate(c, inv)
	rec.Duration = elapsed

	if over := r.overBudget(c, elapsed); over && rec.Status == types.CaseStatusPass {
		rec.Status = types.CaseStatusFail
		rec.TimedOut = true
		rec.Error = fmt.Errorf("completed in %v, budget is %v", elapsed, r.config.PerfBudget)
	}

	entry := r.log.WithFields(logrus.Fields{
		"case":     c.FullName(),
		"status":   rec.Status,
		"duration": elapsed,
	})
	if rec.Error != nil {
		entry = entry.WithField("error", rec.Error)
	}
	entry.Debug("Case finished")

	return rec
}

func (r *Runner) overBudget(c probe.Case, elapsed time.Duration) bool {
	return c.Category == types.CategoryPerformance &&
		r.config.PerfBudget > 0 &&
		elapsed > r.config.PerfBudget
}
