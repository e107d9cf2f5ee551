package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/agency-title/internal/action"
	"github.com/eugenenazirov/agency-title/internal/agency"
	"github.com/eugenenazirov/agency-title/internal/config"
	"github.com/eugenenazirov/agency-title/internal/title"
)

// Input names read by the step.
const (
	InputJobType               = "job-type"
	InputTargetEnvironment     = "target-environment"
	InputHasInterestingChanges = "has-interesting-changes"
)

// ErrUnexpected wraps panics recovered while generating the title.
var ErrUnexpected = errors.New("unexpected failure")

// App encapsulates the application dependencies of a single run.
type App struct {
	cfg      config.Config
	inputs   action.Inputs
	sink     action.Sink
	resolver *agency.Resolver
	builder  *title.Builder
	logger   *zap.Logger
}

// Option configures App behaviour.
type Option func(*App)

// WithSink overrides the output sink, primarily for tests.
func WithSink(sink action.Sink) Option {
	return func(a *App) {
		a.sink = sink
	}
}

// WithResolver overrides the configuration resolver.
func WithResolver(resolver *agency.Resolver) Option {
	return func(a *App) {
		a.resolver = resolver
	}
}

// New initializes the application from the provided configuration. Outputs
// go to cfg.OutputFile, or to stdout as set-output commands when unset.
func New(cfg config.Config, inputs action.Inputs, stdout io.Writer, logger *zap.Logger, opts ...Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{
		cfg:      cfg,
		inputs:   inputs,
		sink:     action.NewSink(cfg.OutputFile, stdout),
		resolver: agency.NewResolver(logger),
		builder:  title.NewBuilder(logger),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Run generates the job title and metadata and writes the step outputs. On
// failure it sets status=error, reports the failure and returns the error.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrUnexpected, rec)
		}
		if err != nil {
			a.fail(err)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	req, err := a.readRequest()
	if err != nil {
		return err
	}

	cfg, source := a.resolver.Resolve(a.cfg.Workspace, a.cfg.BundledConfig)
	a.logger.Debug("agency configuration resolved",
		zap.String("source", string(source)),
		zap.Int("job_types", len(cfg.JobTypes)),
	)

	meta := a.builder.Build(req, cfg)
	return a.writeOutputs(meta)
}

func (a *App) readRequest() (title.Request, error) {
	jobType, err := action.GetInput(a.inputs, InputJobType, true)
	if err != nil {
		return title.Request{}, err
	}
	return title.Request{
		JobType:               jobType,
		TargetEnvironment:     action.GetInputOr(a.inputs, InputTargetEnvironment, title.Unknown),
		HasInterestingChanges: action.GetInputOr(a.inputs, InputHasInterestingChanges, title.Unknown),
	}, nil
}

func (a *App) writeOutputs(meta title.Metadata) error {
	outputs := []struct {
		name  string
		value string
	}{
		{action.OutputJobTitle, meta.Title},
		{action.OutputSkillLevel, meta.SkillLevel},
		{action.OutputDurationEstimate, meta.DurationEstimate},
		{action.OutputShortDescription, meta.ShortDescription},
		{action.OutputStatus, action.StatusSuccess},
	}
	for _, out := range outputs {
		if err := a.sink.SetOutput(out.name, out.value); err != nil {
			return fmt.Errorf("set output %s: %w", out.name, err)
		}
	}
	return nil
}

func (a *App) fail(err error) {
	if setErr := a.sink.SetOutput(action.OutputStatus, action.StatusError); setErr != nil {
		a.logger.Warn("failed to set status output", zap.Error(setErr))
	}
	a.logger.Error("Action failed: " + err.Error())
}
