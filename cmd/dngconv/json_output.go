package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"dngconv/internal/services/dnglab"
	"dngconv/internal/workflow"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type reportJSON struct {
	ID           string              `json:"id"`
	Started      time.Time           `json:"started"`
	Finished     time.Time           `json:"finished"`
	Output       string              `json:"output"`
	Options      dnglab.Options      `json:"options"`
	Availability dnglab.Availability `json:"availability"`
	Skipped      bool                `json:"skipped"`
	Cancelled    bool                `json:"cancelled"`
	Succeeded    int                 `json:"succeeded"`
	Failed       int                 `json:"failed"`
	NotAttempted int                 `json:"not_attempted"`
	Files        []outcomeJSON       `json:"files"`
}

type outcomeJSON struct {
	Input      string   `json:"input"`
	Result     string   `json:"result"`
	ExitCode   int      `json:"exit_code,omitempty"`
	Signal     int      `json:"signal,omitempty"`
	Stderr     string   `json:"stderr,omitempty"`
	Error      string   `json:"error,omitempty"`
	Args       []string `json:"args"`
	DurationMS int64    `json:"duration_ms"`
}

func newReportJSON(report workflow.RunReport) reportJSON {
	files := make([]outcomeJSON, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		entry := outcomeJSON{
			Input:      o.Input,
			Result:     o.Kind.String(),
			ExitCode:   o.ExitCode,
			Signal:     o.Signal,
			Stderr:     o.Stderr,
			Args:       o.Args,
			DurationMS: o.Duration.Milliseconds(),
		}
		if err := o.Error(); err != nil {
			entry.Error = err.Error()
		}
		files = append(files, entry)
	}
	return reportJSON{
		ID:           report.ID,
		Started:      report.Started,
		Finished:     report.Finished,
		Output:       report.Output,
		Options:      report.Options,
		Availability: report.Availability,
		Skipped:      report.Skipped,
		Cancelled:    report.Cancelled,
		Succeeded:    report.Succeeded(),
		Failed:       report.Failed(),
		NotAttempted: report.NotAttempted(),
		Files:        files,
	}
}
