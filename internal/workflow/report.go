package workflow

import (
	"fmt"
	"time"

	"dngconv/internal/services/dnglab"
)

// RunReport summarizes one conversion run.
type RunReport struct {
	ID           string
	Started      time.Time
	Finished     time.Time
	Inputs       []string
	Output       string
	Options      dnglab.Options
	Availability dnglab.Availability
	// Skipped is set when dnglab was unavailable and no file was attempted.
	// A run cancelled before the availability check finished is Cancelled,
	// never Skipped.
	Skipped   bool
	Cancelled bool
	Outcomes  []dnglab.Outcome
}

// Succeeded counts converted files.
func (r RunReport) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Succeeded() {
			n++
		}
	}
	return n
}

// Failed counts attempted files that did not convert.
func (r RunReport) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

// NotAttempted counts inputs that never reached dnglab.
func (r RunReport) NotAttempted() int {
	return len(r.Inputs) - len(r.Outcomes)
}

// Duration is the wall time of the run.
func (r RunReport) Duration() time.Duration {
	if r.Finished.Before(r.Started) {
		return 0
	}
	return r.Finished.Sub(r.Started)
}

// OK reports whether every selected file converted.
func (r RunReport) OK() bool {
	return !r.Skipped && !r.Cancelled && r.NotAttempted() == 0 && r.Failed() == 0
}

// Summary renders a one-line result for display.
func (r RunReport) Summary() string {
	switch {
	case r.Skipped:
		return "Conversion skipped: dnglab is not available."
	case r.Cancelled:
		return fmt.Sprintf("Conversion cancelled: %d converted, %d failed, %d not attempted.", r.Succeeded(), r.Failed(), r.NotAttempted())
	case r.Failed() > 0:
		return fmt.Sprintf("Converted %d of %d file(s); %d failed.", r.Succeeded(), len(r.Inputs), r.Failed())
	default:
		return fmt.Sprintf("Converted %d file(s).", r.Succeeded())
	}
}
