package dnglab

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"dngconv/internal/deps"
	"dngconv/internal/services"
)

const (
	// DefaultDarwinPath is where the dnglab macOS installer places the binary.
	DefaultDarwinPath = "/usr/local/bin/dnglab"
	// DefaultLinuxCommand is resolved through PATH on Linux.
	DefaultLinuxCommand = "dnglab"
)

// ErrUnsupportedPlatform is returned when no default location exists for the
// running OS and no explicit binary was configured.
var ErrUnsupportedPlatform = errors.New("dnglab: unsupported platform")

// Availability is the result of one availability check. It is never cached:
// the converter may be installed or removed between runs.
type Availability struct {
	Available bool   `json:"available"`
	Command   string `json:"command"`
	Version   string `json:"version,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// Notice renders the advisory shown to the user when dnglab is missing.
func (a Availability) Notice() string {
	if a.Available {
		return ""
	}
	msg := "You must first install dnglab (https://github.com/dnglab/dnglab)."
	if detail := strings.TrimSpace(a.Detail); detail != "" {
		msg += " " + capitalize(detail) + "."
	}
	return msg
}

// Err returns nil when dnglab can be launched and an ErrUnavailable-marked
// error carrying the detail otherwise.
func (a Availability) Err() error {
	if a.Available {
		return nil
	}
	return services.Wrap(services.ErrUnavailable, "dnglab", "check", a.Detail, nil)
}

// AvailabilityChecker reports whether the converter can be launched.
type AvailabilityChecker interface {
	Check(ctx context.Context) Availability
}

// LocatorConfig selects where dnglab is looked up.
type LocatorConfig struct {
	// Binary overrides platform resolution on every OS when set.
	Binary         string
	DarwinPath     string
	LinuxCommand   string
	VersionTimeout time.Duration
	// GOOS defaults to runtime.GOOS.
	GOOS string
}

// Locator resolves the dnglab binary and probes it with --version.
type Locator struct {
	cfg    LocatorConfig
	prober deps.Prober
}

// LocatorOption configures a Locator.
type LocatorOption func(*Locator)

// WithProber injects the version prober (primarily for tests).
func WithProber(p deps.Prober) LocatorOption {
	return func(l *Locator) {
		if p != nil {
			l.prober = p
		}
	}
}

// NewLocator constructs a Locator, filling unset fields with platform defaults.
func NewLocator(cfg LocatorConfig, opts ...LocatorOption) *Locator {
	cfg.Binary = strings.TrimSpace(cfg.Binary)
	if strings.TrimSpace(cfg.DarwinPath) == "" {
		cfg.DarwinPath = DefaultDarwinPath
	}
	if strings.TrimSpace(cfg.LinuxCommand) == "" {
		cfg.LinuxCommand = DefaultLinuxCommand
	}
	if cfg.VersionTimeout <= 0 {
		cfg.VersionTimeout = deps.DefaultProbeTimeout
	}
	if cfg.GOOS == "" {
		cfg.GOOS = runtime.GOOS
	}
	l := &Locator{cfg: cfg}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve returns the command used to launch dnglab on this platform.
func (l *Locator) Resolve() (string, error) {
	if l.cfg.Binary != "" {
		return l.cfg.Binary, nil
	}
	switch l.cfg.GOOS {
	case "darwin":
		return l.cfg.DarwinPath, nil
	case "linux":
		return l.cfg.LinuxCommand, nil
	default:
		return "", fmt.Errorf("%w %s", ErrUnsupportedPlatform, l.cfg.GOOS)
	}
}

// Check resolves the binary and runs a version query against it. Launch
// failures of any kind are reported as unavailable, never as an error.
func (l *Locator) Check(ctx context.Context) Availability {
	command, err := l.Resolve()
	if err != nil {
		return Availability{Detail: fmt.Sprintf("no default dnglab location for %s; set dnglab.binary", l.cfg.GOOS)}
	}

	opts := []deps.Option{deps.WithTimeout(l.cfg.VersionTimeout)}
	if l.prober != nil {
		opts = append(opts, deps.WithProber(l.prober))
	}
	status := deps.Check(ctx, deps.Requirement{
		Name:        "dnglab",
		Command:     command,
		Description: "Converts camera raw files to DNG",
		VersionArgs: []string{"--version"},
	}, opts...)

	return Availability{
		Available: status.Available,
		Command:   command,
		Version:   status.Version,
		Detail:    status.Detail,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
