package preflight

import (
	"context"
	"strings"

	"dngconv/internal/services/dnglab"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes the converter check and, when outputDir is set, the output
// directory check.
func RunAll(ctx context.Context, checker dnglab.AvailabilityChecker, outputDir string) []Result {
	var results []Result
	if checker != nil {
		results = append(results, CheckConverter(ctx, checker))
	}
	if strings.TrimSpace(outputDir) != "" {
		results = append(results, CheckDirectoryAccess("Output directory", outputDir))
	}
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
