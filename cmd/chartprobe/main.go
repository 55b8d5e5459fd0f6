package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/honeycombio/otel-config-go/otelconfig"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	chartprobe "github.com/chartprobe/chartprobe"
	"github.com/chartprobe/chartprobe/exitcodes"
	"github.com/chartprobe/chartprobe/flags"
	"github.com/chartprobe/chartprobe/service"
)

var (
	Version   = "v0.1.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	log := logrus.New()

	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "chartprobe"
	app.Usage = "Chart Rendering Probe Service"
	app.Description = "chartprobe verifies chart rendering operations against their bindings"
	app.Flags = flags.Flags
	app.Action = run
	app.ExitErrHandler = func(c *cli.Context, err error) {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			cli.HandleExitCoder(exitErr)
		} else if err != nil {
			if chartprobe.IsRuntimeError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
			} else if chartprobe.IsCaseFailureError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.CaseFailure))
			} else {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.CaseFailure))
			}
		}
	}

	// Start telemetry
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(app.Name),
		otelconfig.WithServiceVersion(app.Version),
	)
	if err != nil {
		log.WithField("message", err).Fatal("Failed to setup open telemetry")
	}
	defer otelShutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start sidecar servers
	svc := service.New(log)
	svc.Start(ctx)
	defer svc.Shutdown()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.WithField("message", err).Fatal("Application failed")
	}
}

func run(ctx *cli.Context) error {
	log := logrus.New()
	level, err := logrus.ParseLevel(ctx.String(flags.LogLevel.Name))
	if err != nil {
		return chartprobe.NewRuntimeError(fmt.Errorf("invalid log level: %w", err))
	}
	log.SetLevel(level)

	cfg, err := chartprobe.NewConfig(ctx, log)
	if err != nil {
		return chartprobe.NewRuntimeError(fmt.Errorf("failed to create config: %w", err))
	}

	runCtx, cancel := context.WithCancelCause(ctx.Context)
	defer cancel(nil)

	prober, err := chartprobe.New(runCtx, cfg, Version, cancel)
	if err != nil {
		return chartprobe.NewRuntimeError(fmt.Errorf("failed to create prober: %w", err))
	}

	if err := prober.Start(runCtx); err != nil {
		return err
	}

	if !cfg.RunOnce {
		<-runCtx.Done()
		if err := prober.Stop(context.Background()); err != nil {
			return chartprobe.NewRuntimeError(fmt.Errorf("failed to stop prober: %w", err))
		}
	}
	return nil
}
