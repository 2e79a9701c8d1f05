package dnglab

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"dngconv/internal/services"
)

// OutcomeKind classifies how a single file's conversion ended.
type OutcomeKind int

const (
	OutcomeSucceeded OutcomeKind = iota
	OutcomeToolReportedError
	OutcomeToolNotFound
	OutcomeLaunchFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeToolReportedError:
		return "tool_error"
	case OutcomeToolNotFound:
		return "tool_not_found"
	case OutcomeLaunchFailed:
		return "launch_failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the result for one input file of a run.
type Outcome struct {
	Input    string
	Args     []string
	Kind     OutcomeKind
	ExitCode int
	Signal   int
	Stderr   string
	Err      error
	Duration time.Duration
}

// Succeeded reports whether dnglab converted the file.
func (o Outcome) Succeeded() bool {
	return o.Kind == OutcomeSucceeded
}

// Message summarizes the outcome in one line.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeSucceeded:
		return "converted"
	case OutcomeToolReportedError:
		msg := fmt.Sprintf("dnglab exited with status %d", o.ExitCode)
		if o.Signal != 0 {
			msg = fmt.Sprintf("dnglab was killed by signal %d", o.Signal)
		}
		if stderr := lastLine(o.Stderr); stderr != "" {
			msg += ": " + stderr
		}
		return msg
	case OutcomeToolNotFound:
		return "dnglab was not found; is it installed and in your PATH?"
	case OutcomeLaunchFailed:
		if o.Err != nil {
			return fmt.Sprintf("could not start dnglab: %v", o.Err)
		}
		return "could not start dnglab"
	default:
		return o.Kind.String()
	}
}

// Error returns nil for a converted file and a marked error otherwise, so
// callers can test the failure class with errors.Is.
func (o Outcome) Error() error {
	var marker error
	switch o.Kind {
	case OutcomeSucceeded:
		return nil
	case OutcomeToolNotFound:
		marker = services.ErrNotFound
	case OutcomeLaunchFailed:
		marker = services.ErrLaunch
	default:
		return services.Wrap(services.ErrExternalTool, "dnglab", Subcommand, o.Input+": "+o.Message(), nil)
	}
	if o.Err == nil {
		return services.Wrap(marker, "dnglab", Subcommand, o.Input+": "+o.Message(), nil)
	}
	return services.Wrap(marker, "dnglab", Subcommand, o.Input, o.Err)
}

// classify turns an executor result into an Outcome.
func classify(inv Invocation, res Result, err error) Outcome {
	out := Outcome{Input: inv.Input, Args: inv.Args}
	switch {
	case err != nil && (errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)):
		out.Kind = OutcomeToolNotFound
		out.Err = err
	case err != nil:
		out.Kind = OutcomeLaunchFailed
		out.Err = err
	case res.ExitCode != 0 || res.Signal != 0:
		out.Kind = OutcomeToolReportedError
		out.ExitCode = res.ExitCode
		out.Signal = res.Signal
		out.Stderr = res.Stderr
	default:
		out.Kind = OutcomeSucceeded
	}
	return out
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
