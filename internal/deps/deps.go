package deps

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"
)

// DefaultProbeTimeout bounds a version query when the caller sets none.
const DefaultProbeTimeout = 10 * time.Second

// Requirement defines an external binary dngconv relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	// VersionArgs, when set, are passed to Command to prove it launches.
	// Without them only a PATH lookup is performed.
	VersionArgs []string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Version     string
	Detail      string
}

// Prober launches a binary and returns its standard output. A non-nil error
// means the process could not be started or did not finish; callers treat a
// non-zero exit as a successful launch.
type Prober interface {
	Probe(ctx context.Context, command string, args []string) (string, error)
}

// Option configures a check.
type Option func(*checker)

// WithProber injects a custom prober (primarily for tests).
func WithProber(p Prober) Option {
	return func(c *checker) {
		if p != nil {
			c.prober = p
		}
	}
}

// WithTimeout sets the per-binary version query timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *checker) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

type checker struct {
	prober  Prober
	timeout time.Duration
}

func newChecker(opts []Option) *checker {
	c := &checker{prober: commandProber{}, timeout: DefaultProbeTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check evaluates a single requirement.
func Check(ctx context.Context, req Requirement, opts ...Option) Status {
	return newChecker(opts).check(ctx, req)
}

func (c *checker) check(ctx context.Context, req Requirement) Status {
	cmd := strings.TrimSpace(req.Command)
	status := Status{
		Name:        req.Name,
		Command:     cmd,
		Description: strings.TrimSpace(req.Description),
	}
	if cmd == "" {
		status.Detail = "command not configured"
		return status
	}
	if len(req.VersionArgs) == 0 {
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			return status
		}
		status.Available = true
		return status
	}

	probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	output, err := c.prober.Probe(probeCtx, cmd, req.VersionArgs)
	if err != nil {
		status.Detail = DescribeLaunchError(cmd, err)
		if errors.Is(probeCtx.Err(), context.DeadlineExceeded) {
			status.Detail = fmt.Sprintf("binary %q did not answer %s within %s", cmd, strings.Join(req.VersionArgs, " "), c.timeout)
		}
		return status
	}
	status.Available = true
	status.Version = firstLine(output)
	return status
}

// DescribeLaunchError renders a human-readable reason a binary failed to start.
func DescribeLaunchError(command string, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("binary %q not found", command)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Sprintf("binary %q is not executable", command)
	default:
		return fmt.Sprintf("launch %q: %v", command, err)
	}
}

func firstLine(output string) string {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line
		}
	}
	return ""
}

type commandProber struct{}

func (commandProber) Probe(ctx context.Context, command string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, command, args...) //nolint:gosec
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		// The binary started; a failing --version still proves it is installed.
		return stdout.String(), nil
	}
	return "", err
}
