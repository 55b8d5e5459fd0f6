package chartprobe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chartprobe/chartprobe/charts"
	"github.com/chartprobe/chartprobe/exitcodes"
	"github.com/chartprobe/chartprobe/metrics"
	"github.com/chartprobe/chartprobe/registry"
	"github.com/chartprobe/chartprobe/reporting"
	"github.com/chartprobe/chartprobe/runner"
	"github.com/chartprobe/chartprobe/suites"
	"github.com/chartprobe/chartprobe/types"
)

// Prober runs the probe suites against the chart bindings, on a
// schedule or once.
type Prober struct {
	ctx      context.Context
	config   *Config
	version  string
	registry *registry.Registry
	runner   *runner.Runner
	seed     int64
	result   *runner.RunnerResult

	running atomic.Bool
	done    chan struct{}
	wg      sync.WaitGroup

	shutdownCallback func(error) // Callback to signal application shutdown
}

func New(ctx context.Context, config *Config, version string, shutdownCallback func(error)) (*Prober, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}

	config.Log.WithFields(logrus.Fields{
		"manifest":    config.ManifestFile,
		"outputDir":   config.OutputDir,
		"runInterval": config.RunInterval,
		"runOnce":     config.RunOnce,
		"concurrency": config.Concurrency,
	}).Debug("Creating prober with config")

	reg, err := registry.NewRegistry(registry.Config{
		Log:          config.Log,
		ManifestFile: config.ManifestFile,
		KnownOps:     suites.Operations(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create registry: %w", err)
	}

	manifest := reg.Manifest()

	seed := config.Seed
	if seed == 0 {
		seed = manifest.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	perfBudget := config.PerfBudget
	if perfBudget == 0 {
		perfBudget = manifest.PerfBudget.Std()
	}

	caseRunner, err := runner.NewRunner(runner.Config{
		Log:         config.Log,
		Lookup:      charts.Lookup,
		Factory:     charts.Factory(),
		PerfBudget:  perfBudget,
		Concurrency: config.Concurrency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	config.Log.WithFields(logrus.Fields{
		"seed":       seed,
		"perfBudget": perfBudget,
	}).Info("Created registry and case runner")

	return &Prober{
		ctx:              ctx,
		config:           config,
		version:          version,
		registry:         reg,
		runner:           caseRunner,
		seed:             seed,
		done:             make(chan struct{}),
		shutdownCallback: shutdownCallback,
	}, nil
}

// Start runs the probes immediately and, unless in run-once mode,
// keeps re-running them at the configured interval.
func (p *Prober) Start(ctx context.Context) error {
	// Panics escaping the run loop must surface as runtime errors.
	defer func() {
		if r := recover(); r != nil {
			p.config.Log.WithField("error", r).Error("Runtime error occurred")
			os.Exit(exitcodes.RuntimeErr)
		}
	}()

	p.ctx = ctx
	p.done = make(chan struct{})
	p.running.Store(true)

	if p.config.RunOnce {
		p.config.Log.Info("Starting chartprobe in run-once mode")
	} else {
		p.config.Log.WithField("interval", p.config.RunInterval).Info("Starting chartprobe in continuous mode")
	}

	if err := p.runProbes(); err != nil {
		p.config.Log.WithField("error", err).Error("Runtime error running probes")
		return NewRuntimeError(err)
	}

	if p.config.RunOnce {
		p.config.Log.Info("Probes completed, exiting (run-once mode)")

		if p.result != nil && p.result.Verdict() == types.VerdictFail {
			p.config.Log.Warn("Run-once probe run completed with failures, returning exit code 1")
			return NewCaseFailureError(fmt.Sprintf("%d of %d cases failed",
				p.result.Stats.Failed+p.result.Stats.Errored, p.result.Stats.Total))
		}

		go func() {
			p.shutdownCallback(nil)
		}()
		return nil
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.config.Log.WithField("interval", p.config.RunInterval).Debug("Starting periodic probe runner goroutine")

		for {
			select {
			case <-time.After(p.config.RunInterval):
				if !p.running.Load() {
					p.config.Log.Debug("Service stopped, exiting periodic probe runner")
					return
				}

				p.config.Log.Info("Running periodic probes")
				if err := p.runProbes(); err != nil {
					p.config.Log.WithField("error", err).Error("Error running periodic probes")
				}

			case <-p.done:
				p.config.Log.Debug("Done signal received, stopping periodic probe runner")
				return

			case <-ctx.Done():
				p.config.Log.Debug("Context canceled, stopping periodic probe runner")
				p.running.Store(false)
				return
			}
		}
	}()
	p.config.Log.Debug("chartprobe started successfully")
	return nil
}

// runProbes executes one full run and writes every report surface.
func (p *Prober) runProbes() error {
	cases, err := suites.Collect(p.registry.Manifest(), p.seed)
	if err != nil {
		metrics.RecordErrorDetails("failed to collect cases", err)
		return fmt.Errorf("failed to collect cases: %w", err)
	}

	result, err := p.runner.Run(p.ctx, cases)
	if err != nil {
		metrics.RecordErrorDetails("probe run failed", err)
		return fmt.Errorf("probe run failed: %w", err)
	}
	p.result = result

	p.publishMetrics(result)

	if err := p.writeReports(result); err != nil {
		return err
	}

	p.config.Log.WithFields(logrus.Fields{
		"run_id":  result.RunID,
		"verdict": result.Verdict(),
	}).Info("Probe run completed")
	return nil
}

func (p *Prober) publishMetrics(result *runner.RunnerResult) {
	for _, op := range result.Ops {
		for _, cat := range op.Categories {
			for _, rec := range cat.Records {
				metrics.RecordCase(result.RunID, rec)
			}
		}
	}
	metrics.RecordRun(result.RunID, result.Verdict(), result.Stats, result.Duration)
}

func (p *Prober) writeReports(result *runner.RunnerResult) error {
	data, err := reporting.NewReportBuilder().Build(result)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	formatter := reporting.NewConsoleFormatter(
		fmt.Sprintf("Chart Probe Results (%s)", result.Duration.Truncate(time.Millisecond)),
		p.config.ShowCases,
	)
	if err := formatter.Print(data); err != nil {
		return fmt.Errorf("failed to print results: %w", err)
	}

	summaryPath, err := reporting.NewTextSummarySink(p.config.OutputDir, true).Complete(data)
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	p.config.Log.WithField("path", summaryPath).Info("Wrote text summary")

	if p.config.HTMLReport {
		sink, err := reporting.NewHTMLSink(p.config.OutputDir, "")
		if err != nil {
			return fmt.Errorf("failed to create HTML sink: %w", err)
		}
		reportPath, err := sink.Complete(data)
		if err != nil {
			return fmt.Errorf("failed to write HTML report: %w", err)
		}
		p.config.Log.WithField("path", reportPath).Info("Wrote HTML report")
	}

	return nil
}

// Stop stops the chartprobe service.
func (p *Prober) Stop(ctx context.Context) error {
	p.config.Log.Info("Stopping chartprobe")

	if !p.running.Load() {
		p.config.Log.Debug("Service already stopped, nothing to do")
		return nil
	}

	// Update running state first to prevent new probe runs
	p.running.Store(false)

	p.config.Log.Debug("Sending done signal to goroutines")
	close(p.done)
	p.wg.Wait()

	p.config.Log.Info("chartprobe stopped successfully")
	return nil
}

// Stopped returns true if the chartprobe service is stopped.
func (p *Prober) Stopped() bool {
	return !p.running.Load()
}

// Result returns the outcome of the most recent run.
func (p *Prober) Result() *runner.RunnerResult {
	return p.result
}
