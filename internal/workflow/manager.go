package workflow

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"dngconv/internal/logging"
	"dngconv/internal/selection"
	"dngconv/internal/services"
	"dngconv/internal/services/dnglab"
	"dngconv/internal/textutil"
)

// OutputLabelLimit is the number of trailing runes of the output path shown
// before it is truncated with an ellipsis.
const OutputLabelLimit = 20

// ConversionRunner executes a batch of conversions.
type ConversionRunner interface {
	Run(ctx context.Context, inputs []string, outputDir string, opts dnglab.Options) dnglab.Batch
}

// Manager coordinates selection updates and conversion runs.
type Manager struct {
	checker  dnglab.AvailabilityChecker
	runner   ConversionRunner
	logger   *slog.Logger
	lockPath string
	clock    func() time.Time

	selection *selection.State
	running   atomic.Bool

	presenterMu sync.RWMutex
	presenter   Presenter
}

// ManagerOption configures optional Manager behavior.
type ManagerOption func(*Manager)

// WithPresenter attaches the display surface at construction time.
func WithPresenter(p Presenter) ManagerOption {
	return func(m *Manager) {
		m.presenter = p
	}
}

// WithLockPath enables the cross-process run lock at path.
func WithLockPath(path string) ManagerOption {
	return func(m *Manager) {
		m.lockPath = path
	}
}

// WithClock overrides time.Now for run timestamps.
func WithClock(clock func() time.Time) ManagerOption {
	return func(m *Manager) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// NewManager constructs a workflow manager with an empty selection.
func NewManager(checker dnglab.AvailabilityChecker, runner ConversionRunner, logger *slog.Logger, opts ...ManagerOption) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	m := &Manager{
		checker:   checker,
		runner:    runner,
		logger:    logging.NewComponentLogger(logger, "workflow"),
		clock:     time.Now,
		selection: selection.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AttachPresenter replaces the display surface. Passing nil detaches it.
func (m *Manager) AttachPresenter(p Presenter) {
	m.presenterMu.Lock()
	m.presenter = p
	m.presenterMu.Unlock()
}

// livePresenter returns the attached presenter if it is still alive.
func (m *Manager) livePresenter() Presenter {
	m.presenterMu.RLock()
	p := m.presenter
	m.presenterMu.RUnlock()
	if p == nil || !p.Alive() {
		return nil
	}
	return p
}

// CheckTool runs the informational availability check and surfaces a notice
// when dnglab is missing. It never blocks further interaction.
func (m *Manager) CheckTool(ctx context.Context) dnglab.Availability {
	availability := m.checker.Check(ctx)
	if availability.Available {
		m.logger.Info("dnglab available",
			logging.String("command", availability.Command),
			logging.String("version", availability.Version),
		)
		return availability
	}
	err := availability.Err()
	logging.WarnWithContext(m.logger, "dnglab not available", services.EventType(err),
		logging.Error(err),
		logging.String("command", availability.Command),
		logging.String(logging.FieldErrorHint, "install dnglab or set dnglab.binary in the config file"),
		logging.String(logging.FieldImpact, "conversion runs will be skipped"),
	)
	m.notifyUnavailable(availability)
	return availability
}

// SelectInputs replaces the input files with the result of a completed pick.
// An empty pick is a cancelled dialog: nothing changes and nothing is pushed.
func (m *Manager) SelectInputs(paths []string) (selection.Snapshot, bool) {
	snap, changed := m.selection.SetInputs(paths)
	if !changed {
		return snap, false
	}
	m.logger.Debug("inputs selected", logging.Int(logging.FieldFileCount, len(snap.Inputs)))
	if p := m.livePresenter(); p != nil {
		p.ShowInputSummary(textutil.FileCountLabel(len(snap.Inputs)))
		p.SetConvertEnabled(snap.Ready)
	}
	return snap, true
}

// SelectOutput replaces the output folder with the result of a completed
// pick. A blank path is a cancelled dialog.
func (m *Manager) SelectOutput(path string) (selection.Snapshot, bool) {
	snap, changed := m.selection.SetOutput(path)
	if !changed {
		return snap, false
	}
	m.logger.Debug("output selected", logging.String("output", snap.Output))
	if p := m.livePresenter(); p != nil {
		p.ShowOutputSummary(OutputLabel(snap.Output))
		p.SetConvertEnabled(snap.Ready)
	}
	return snap, true
}

// Ready reports whether a run may be triggered.
func (m *Manager) Ready() bool {
	return m.selection.Ready()
}

// Selection returns a consistent copy of the current selection.
func (m *Manager) Selection() selection.Snapshot {
	return m.selection.Snapshot()
}

// Running reports whether a conversion run is in flight.
func (m *Manager) Running() bool {
	return m.running.Load()
}

// OutputLabel renders an output path for display.
func OutputLabel(path string) string {
	return textutil.TruncateTail(path, OutputLabelLimit)
}

func (m *Manager) notifyUnavailable(availability dnglab.Availability) {
	if p := m.livePresenter(); p != nil {
		p.ShowNotice(Notice{
			Title:   "dnglab not found",
			Message: availability.Notice(),
		})
	}
}
