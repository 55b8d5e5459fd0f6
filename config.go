// Package chartprobe wires the registry, the case suites, the runner
// and the reporting sinks into the probing service.
package chartprobe

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/chartprobe/chartprobe/flags"
)

// Config holds the application configuration
type Config struct {
	ManifestFile string
	OutputDir    string
	RunInterval  time.Duration // Interval between probe runs
	RunOnce      bool          // Indicates if the service should exit after one run
	Seed         int64         // Generator seed; overrides the manifest when non-zero
	Concurrency  int           // Number of concurrent case workers (values below 2 run sequentially)
	PerfBudget   time.Duration // Budget per performance case; overrides the manifest when non-zero
	ShowCases    bool          // Show individual case rows in the console table
	HTMLReport   bool          // Write an HTML report next to the text summary
	Log          *logrus.Logger
}

// NewConfig creates a new Config from cli context
func NewConfig(ctx *cli.Context, log *logrus.Logger) (*Config, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	manifestFile := ctx.String(flags.Manifest.Name)
	if manifestFile != "" {
		var err error
		manifestFile, err = filepath.Abs(manifestFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve absolute path for manifest '%s': %w", ctx.String(flags.Manifest.Name), err)
		}
	}

	outputDir := ctx.String(flags.OutputDir.Name)
	if outputDir == "" {
		outputDir = "results"
	}
	outputDir, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for output directory '%s': %w", ctx.String(flags.OutputDir.Name), err)
	}

	concurrency := ctx.Int(flags.Concurrency.Name)
	if concurrency < 0 {
		return nil, fmt.Errorf("concurrency must not be negative, got %d", concurrency)
	}

	runInterval := ctx.Duration(flags.RunInterval.Name)
	runOnce := runInterval == 0

	return &Config{
		ManifestFile: manifestFile,
		OutputDir:    outputDir,
		RunInterval:  runInterval,
		RunOnce:      runOnce,
		Seed:         ctx.Int64(flags.Seed.Name),
		Concurrency:  concurrency,
		PerfBudget:   ctx.Duration(flags.PerfBudget.Name),
		ShowCases:    ctx.Bool(flags.ShowCases.Name),
		HTMLReport:   ctx.Bool(flags.HTMLReport.Name),
		Log:          log,
	}, nil
}
