package workflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"dngconv/internal/logging"
	"dngconv/internal/services/dnglab"
)

var (
	// ErrNotReady is returned when Convert is triggered without inputs or an
	// output folder.
	ErrNotReady = errors.New("select input files and an output folder first")
	// ErrRunInProgress is returned when another run holds the run lock.
	ErrRunInProgress = errors.New("a conversion run is already in progress")
)

// Convert runs dnglab over the current selection with opts, which the caller
// reads from the presentation layer at trigger time.
//
// The selection is copied once at the start; picks made while the run is in
// flight apply to the next run. Cancelling ctx stops the run between files.
func (m *Manager) Convert(ctx context.Context, opts dnglab.Options) (RunReport, error) {
	if !m.running.CompareAndSwap(false, true) {
		return RunReport{}, ErrRunInProgress
	}
	defer m.running.Store(false)

	snap := m.selection.Snapshot()
	if !snap.Ready {
		return RunReport{}, ErrNotReady
	}

	unlock, err := m.acquireRunLock()
	if err != nil {
		return RunReport{}, err
	}
	defer unlock()

	report := RunReport{
		ID:      uuid.NewString(),
		Started: m.clock(),
		Inputs:  snap.Inputs,
		Output:  snap.Output,
		Options: opts,
	}
	ctx = logging.WithRunID(ctx, report.ID)
	logger := logging.WithContext(ctx, m.logger)
	logger.Info("conversion run started",
		logging.Int(logging.FieldFileCount, len(snap.Inputs)),
		logging.String("output", snap.Output),
		logging.String("compression", string(opts.Compression)),
		logging.String("crop", string(opts.Crop)),
		logging.Bool("embed_raw", opts.EmbedRaw),
		logging.Bool("override", opts.Overwrite),
		logging.Bool("recursive", opts.Recursive),
	)

	if p := m.livePresenter(); p != nil {
		p.SetConvertEnabled(false)
	}
	defer func() {
		if p := m.livePresenter(); p != nil {
			p.SetConvertEnabled(m.selection.Ready())
		}
	}()

	batch := m.runner.Run(ctx, snap.Inputs, snap.Output, opts)
	report.Finished = m.clock()
	report.Availability = batch.Availability
	report.Outcomes = batch.Outcomes
	report.Cancelled = batch.Cancelled
	report.Skipped = !batch.Cancelled && !batch.Attempted()

	if report.Skipped {
		m.notifyUnavailable(batch.Availability)
	}
	logger.Info("conversion run finished",
		logging.Int("succeeded", report.Succeeded()),
		logging.Int("failed", report.Failed()),
		logging.Int("not_attempted", report.NotAttempted()),
		logging.Bool("skipped", report.Skipped),
		logging.Bool("cancelled", report.Cancelled),
		logging.Duration("duration", report.Duration()),
	)
	return report, nil
}

// acquireRunLock takes the cross-process run lock when a lock path is
// configured.
func (m *Manager) acquireRunLock() (func(), error) {
	path := strings.TrimSpace(m.lockPath)
	if path == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (lock held: %s)", ErrRunInProgress, path)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			m.logger.Warn("release run lock failed",
				logging.Error(err),
				logging.String(logging.FieldEventType, "run_lock_release_failed"),
				logging.String("lock_path", path),
			)
		}
	}, nil
}
