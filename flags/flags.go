// Package flags defines the CLI surface of chartprobe.
package flags

import (
	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "CHARTPROBE"

func prefixEnvVars(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	Manifest = &cli.StringFlag{
		Name:    "manifest",
		Value:   "",
		EnvVars: prefixEnvVars("MANIFEST"),
		Usage:   "Path to manifest file (eg. 'manifest.yaml'). Omit to probe every operation.",
	}
	OutputDir = &cli.StringFlag{
		Name:    "output-dir",
		Value:   "results",
		EnvVars: prefixEnvVars("OUTPUT_DIR"),
		Usage:   "Directory to store run summaries and reports",
	}
	RunInterval = &cli.DurationFlag{
		Name:    "run-interval",
		Value:   0,
		EnvVars: prefixEnvVars("RUN_INTERVAL"),
		Usage:   "Interval between probe runs (e.g. '1h', '30m'). Set to 0 or omit for run-once mode.",
	}
	Seed = &cli.Int64Flag{
		Name:    "seed",
		Value:   0,
		EnvVars: prefixEnvVars("SEED"),
		Usage:   "Seed for fuzz and property generators. Overrides the manifest; 0 picks from the clock.",
	}
	Concurrency = &cli.IntFlag{
		Name:    "concurrency",
		Value:   0,
		EnvVars: prefixEnvVars("CONCURRENCY"),
		Usage:   "Number of concurrent case workers. Values below 2 run sequentially.",
	}
	PerfBudget = &cli.DurationFlag{
		Name:    "perf-budget",
		Value:   0,
		EnvVars: prefixEnvVars("PERF_BUDGET"),
		Usage:   "Wall-clock budget per performance case. Overrides the manifest; 0 disables the budget.",
	}
	ShowCases = &cli.BoolFlag{
		Name:    "show-cases",
		Value:   false,
		EnvVars: prefixEnvVars("SHOW_CASES"),
		Usage:   "Show individual case rows in the console table",
	}
	HTMLReport = &cli.BoolFlag{
		Name:    "html-report",
		Value:   true,
		EnvVars: prefixEnvVars("HTML_REPORT"),
		Usage:   "Write an HTML report next to the text summary",
	}
	LogLevel = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
		Usage:   "Log level (trace, debug, info, warn, error)",
	}
)

var Flags = []cli.Flag{
	Manifest,
	OutputDir,
	RunInterval,
	Seed,
	Concurrency,
	PerfBudget,
	ShowCases,
	HTMLReport,
	LogLevel,
}
