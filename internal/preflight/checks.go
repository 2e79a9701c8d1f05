package preflight

import (
	"context"
	"fmt"
	"os"
	"strings"

	"dngconv/internal/services/dnglab"
)

// CheckConverter runs the informational dnglab availability check.
func CheckConverter(ctx context.Context, checker dnglab.AvailabilityChecker) Result {
	const name = "dnglab"

	availability := checker.Check(ctx)
	if !availability.Available {
		detail := strings.TrimSpace(availability.Detail)
		if detail == "" {
			detail = "not available"
		}
		return Result{Name: name, Detail: detail}
	}
	detail := availability.Command
	if availability.Version != "" {
		detail = fmt.Sprintf("%s (%s)", availability.Command, availability.Version)
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := checkAccess(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}
