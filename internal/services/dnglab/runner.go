package dnglab

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dngconv/internal/logging"
	"dngconv/internal/services"
)

// Batch is the result of one run over a selection.
type Batch struct {
	Availability Availability
	// Outcomes holds one entry per attempted input, in input order.
	Outcomes []Outcome
	// Cancelled is set when ctx ended before the availability check
	// finished or between two files.
	Cancelled bool
}

// Attempted reports whether the converter was launched at all.
func (b Batch) Attempted() bool {
	return b.Availability.Available
}

// Runner executes dnglab once per input file, strictly one after another.
type Runner struct {
	locator AvailabilityChecker
	exec    Executor
	logger  *slog.Logger
	clock   func() time.Time
}

// Option configures the runner.
type Option func(*Runner)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(r *Runner) {
		if exec != nil {
			r.exec = exec
		}
	}
}

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock overrides time.Now for duration measurement.
func WithClock(clock func() time.Time) Option {
	return func(r *Runner) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// NewRunner constructs a Runner that consults locator before every run.
func NewRunner(locator AvailabilityChecker, opts ...Option) *Runner {
	r := &Runner{
		locator: locator,
		exec:    commandExecutor{},
		logger:  logging.NewNop(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.NewComponentLogger(r.logger, "dnglab")
	return r
}

// Run converts inputs into outputDir.
//
// Availability is checked once up front; when dnglab cannot be launched no
// file is attempted and the batch carries no outcomes. A ctx cancelled before
// or during that check yields a cancelled batch, never an unavailable one.
// Otherwise every input gets exactly one attempt and a failure never stops
// the files after it.
// Cancelling ctx stops the run between files; a file already handed to
// dnglab always runs to completion.
func (r *Runner) Run(ctx context.Context, inputs []string, outputDir string, opts Options) Batch {
	logger := logging.WithContext(ctx, r.logger)

	if ctx.Err() != nil {
		logger.Info("conversion run cancelled before start", logging.Int("remaining", len(inputs)))
		return Batch{Cancelled: true}
	}
	availability := r.locator.Check(ctx)
	if ctx.Err() != nil {
		// A version query cut short by cancellation says nothing about the install.
		logger.Info("conversion run cancelled during availability check", logging.Int("remaining", len(inputs)))
		return Batch{Cancelled: true}
	}
	batch := Batch{Availability: availability}
	if !availability.Available {
		err := availability.Err()
		logging.WarnWithContext(logger, "dnglab unavailable; skipping conversion run", services.EventType(err),
			logging.Error(err),
			logging.String("command", availability.Command),
			logging.Int("files", len(inputs)),
			logging.String(logging.FieldErrorHint, "install dnglab or set dnglab.binary in the config file"),
			logging.String(logging.FieldImpact, "no files were converted"),
		)
		return batch
	}

	invocations := BuildInvocations(opts, inputs, outputDir)
	batch.Outcomes = make([]Outcome, 0, len(invocations))
	execCtx := context.WithoutCancel(ctx)
	for idx, inv := range invocations {
		if ctx.Err() != nil {
			batch.Cancelled = true
			logger.Info("conversion run cancelled",
				logging.Int("completed", idx),
				logging.Int("remaining", len(invocations)-idx),
			)
			break
		}

		fileLogger := logger.With(
			logging.String(logging.FieldInput, inv.Input),
			logging.Int(logging.FieldFileIndex, idx+1),
			logging.Int(logging.FieldFileCount, len(invocations)),
		)
		fileLogger.Info("Executing command",
			logging.String("command", availability.Command+" "+strings.Join(inv.Args, " ")),
		)

		started := r.clock()
		res, err := r.exec.Run(execCtx, availability.Command, inv.Args)
		outcome := classify(inv, res, err)
		outcome.Duration = r.clock().Sub(started)
		r.logOutcome(fileLogger, outcome)
		batch.Outcomes = append(batch.Outcomes, outcome)
	}
	return batch
}

func (r *Runner) logOutcome(logger *slog.Logger, outcome Outcome) {
	if outcome.Succeeded() {
		logger.Info("conversion finished", logging.Duration("duration", outcome.Duration))
		return
	}
	attrs := []logging.Attr{
		logging.Error(outcome.Error()),
		logging.Duration("duration", outcome.Duration),
	}
	switch outcome.Kind {
	case OutcomeToolReportedError:
		attrs = append(attrs,
			logging.Int("exit_code", outcome.ExitCode),
			logging.Int("signal", outcome.Signal),
			logging.String("stderr", strings.TrimSpace(outcome.Stderr)),
			logging.String(logging.FieldErrorHint, "check the file is a supported camera raw and the output folder is writable"),
		)
	case OutcomeToolNotFound:
		attrs = append(attrs, logging.String(logging.FieldErrorHint, "is dnglab installed and in your PATH?"))
	}
	logging.ErrorWithContext(logger, "conversion failed", services.EventType(outcome.Error()), attrs...)
}
