package dnglab

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"syscall"
)

// Result captures a process that ran to completion. Standard output is not
// kept; dnglab writes its results to the output folder.
type Result struct {
	ExitCode int
	// Signal is the number of the signal that terminated the process, or 0
	// when it exited on its own.
	Signal int
	Stderr string
}

// Executor abstracts command execution for testability. Run returns an error
// only when the process could not be started; a process that ran and exited
// non-zero is reported through Result.ExitCode.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (Result, error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stderr: stderr.String()}
	if err == nil {
		return result, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			result.Signal = int(ws.Signal())
		}
		return result, nil
	}
	return Result{}, err
}
