package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExternalTool marks a tool that ran and reported failure.
	ErrExternalTool = errors.New("external tool error")
	// ErrNotFound marks a tool binary that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrLaunch marks a tool that exists but could not be started.
	ErrLaunch = errors.New("launch failure")
	// ErrUnavailable marks a tool found unusable before any work began.
	ErrUnavailable = errors.New("tool unavailable")
)

// Wrap builds an error message that includes component context while tagging
// it with marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// EventType maps a marked error to the log event type used for it.
func EventType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "tool_not_found"
	case errors.Is(err, ErrLaunch):
		return "launch_failed"
	case errors.Is(err, ErrUnavailable):
		return "tool_unavailable"
	default:
		return "conversion_failed"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
