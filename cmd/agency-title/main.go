package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/agency-title/internal/action"
	"github.com/eugenenazirov/agency-title/internal/application"
	"github.com/eugenenazirov/agency-title/internal/config"
	"github.com/eugenenazirov/agency-title/internal/logging"
)

type cliOptions struct {
	overrides config.CLIOverrides
	inputs    action.MapInputs
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := runArgs(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// runArgs parses args and runs the step. A usage error still marks the step
// failed.
func runArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "agency-title: error: %v\n", err)
		reportStartupFailure(stdout, fmt.Errorf("parse arguments: %w", err))
		return 1
	}
	return run(ctx, opts, stdout)
}

func parseArgs(args []string) (cliOptions, error) {
	kingpinApp := kingpin.New("agency-title", "Agency Title - generates a job title and metadata for an automated pipeline task")
	settingsFile := kingpinApp.Flag("settings", "Path to YAML settings file").String()
	workspace := kingpinApp.Flag("workspace", "Directory containing agency-config.json (default: $GITHUB_WORKSPACE or current directory)").String()
	outputFile := kingpinApp.Flag("output-file", "File receiving step outputs (default: $GITHUB_OUTPUT)").String()
	logLevel := kingpinApp.Flag("log-level", "Minimum log level: debug, info, warn or error").String()

	var bundledSet bool
	bundled := kingpinApp.Flag("bundled-config", "Bundled agency configuration used when the workspace has none (empty disables)").IsSetByUser(&bundledSet).String()
	disableAnnotations := kingpinApp.Flag("disable-annotations", "Do not mirror log entries as workflow commands on stdout").Bool()

	var jobTypeSet, environmentSet, changesSet bool
	jobType := kingpinApp.Flag(application.InputJobType, "Job type key (overrides INPUT_JOB-TYPE)").IsSetByUser(&jobTypeSet).String()
	environment := kingpinApp.Flag(application.InputTargetEnvironment, "Target environment (overrides INPUT_TARGET-ENVIRONMENT)").IsSetByUser(&environmentSet).String()
	changes := kingpinApp.Flag(application.InputHasInterestingChanges, "true, false or unknown (overrides INPUT_HAS-INTERESTING-CHANGES)").IsSetByUser(&changesSet).String()

	if _, err := kingpinApp.Parse(args); err != nil {
		return cliOptions{}, err
	}

	opts := cliOptions{
		overrides: config.CLIOverrides{
			SettingsFile: *settingsFile,
			Workspace:    workspace,
			OutputFile:   outputFile,
			LogLevel:     logLevel,
		},
		inputs: action.MapInputs{},
	}

	if bundledSet {
		opts.overrides.BundledConfig = bundled
	}
	if *disableAnnotations {
		annotations := false
		opts.overrides.Annotations = &annotations
	}

	if jobTypeSet {
		opts.inputs[application.InputJobType] = *jobType
	}
	if environmentSet {
		opts.inputs[application.InputTargetEnvironment] = *environment
	}
	if changesSet {
		opts.inputs[application.InputHasInterestingChanges] = *changes
	}

	return opts, nil
}

func run(ctx context.Context, opts cliOptions, stdout io.Writer) int {
	cfg, err := config.Load(&opts.overrides)
	if err != nil {
		reportStartupFailure(stdout, fmt.Errorf("load configuration: %w", err))
		return 1
	}

	logOpts := []logging.Option{logging.WithLevel(cfg.LogLevel)}
	if cfg.Annotations {
		logOpts = append(logOpts, logging.WithAnnotations(stdout))
	}
	logger, err := logging.New(logOpts...)
	if err != nil {
		reportStartupFailure(stdout, fmt.Errorf("initialize logger: %w", err))
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	inputs := action.Chain{opts.inputs, action.NewEnvInputs()}
	app := application.New(cfg, inputs, stdout, logger)
	if err := app.Run(ctx); err != nil {
		logger.Debug("run finished with error", zap.Error(err))
		return 1
	}
	return 0
}

// reportStartupFailure marks the step failed before a logger exists.
func reportStartupFailure(stdout io.Writer, err error) {
	sink := action.NewSink(os.Getenv("GITHUB_OUTPUT"), stdout)
	_ = sink.SetOutput(action.OutputStatus, action.StatusError)
	action.NewCommands(stdout).Error("Action failed: " + err.Error())
}
