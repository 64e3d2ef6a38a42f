package provisioning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/imamik/fusionboot/internal/platform/fusionauth"
)

// ErrNotResolved is the reason recorded for a step that failed without a
// more specific error.
var ErrNotResolved = errors.New("step not resolved")

// StepStatus is the outcome class of a phase.
type StepStatus int

const (
	// StepResolved means the phase produced the identifier it was after.
	StepResolved StepStatus = iota
	// StepUnresolved means the phase failed; the run continues.
	StepUnresolved
	// StepAborted means the phase hit a transport failure; the run halts.
	StepAborted
)

func (s StepStatus) String() string {
	switch s {
	case StepResolved:
		return "resolved"
	case StepUnresolved:
		return "unresolved"
	case StepAborted:
		return "aborted"
	default:
		return fmt.Sprintf("StepStatus(%d)", int(s))
	}
}

// StepResult is the outcome of one phase.
type StepResult struct {
	Status StepStatus
	// ID is the resolved identifier, if the phase resolves one.
	ID string
	// Created is true when the phase created the resource rather than
	// adopting an existing one.
	Created bool
	Err     error
}

// Resolved reports a successful phase.
func Resolved(id string, created bool) StepResult {
	return StepResult{Status: StepResolved, ID: id, Created: created}
}

// Unresolved reports a failed phase that does not stop the run.
func Unresolved(err error) StepResult {
	if err == nil {
		err = ErrNotResolved
	}
	return StepResult{Status: StepUnresolved, Err: err}
}

// Aborted reports a failure that stops the run.
func Aborted(err error) StepResult {
	return StepResult{Status: StepAborted, Err: err}
}

// Classify maps a client error to a result. Transport failures and context
// cancellation abort; everything else is unresolved.
func Classify(err error) StepResult {
	if fusionauth.IsTransport(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Aborted(err)
	}
	return Unresolved(err)
}

// StepReport is one entry of a Report.
type StepReport struct {
	Phase    string
	Result   StepResult
	Duration time.Duration
}

// Report lists phase outcomes in execution order.
type Report struct {
	Steps []StepReport
}

func (r *Report) add(phase string, res StepResult, d time.Duration) {
	r.Steps = append(r.Steps, StepReport{Phase: phase, Result: res, Duration: d})
}

// Complete reports whether every phase resolved.
func (r *Report) Complete() bool {
	return len(r.Unresolved()) == 0 && !r.Aborted()
}

// Aborted reports whether the run was halted.
func (r *Report) Aborted() bool {
	for _, s := range r.Steps {
		if s.Result.Status == StepAborted {
			return true
		}
	}
	return false
}

// Unresolved returns the phases that failed without halting the run.
func (r *Report) Unresolved() []StepReport {
	var out []StepReport
	for _, s := range r.Steps {
		if s.Result.Status == StepUnresolved {
			out = append(out, s)
		}
	}
	return out
}

// Step returns the report for the named phase.
func (r *Report) Step(phase string) (StepReport, bool) {
	for _, s := range r.Steps {
		if s.Phase == phase {
			return s, true
		}
	}
	return StepReport{}, false
}

// Summary renders a one-line overview, e.g. "5 resolved, 1 unresolved (theme)".
func (r *Report) Summary() string {
	resolved := 0
	var failed []string
	for _, s := range r.Steps {
		if s.Result.Status == StepResolved {
			resolved++
		} else {
			failed = append(failed, s.Phase)
		}
	}
	if len(failed) == 0 {
		return fmt.Sprintf("%d resolved", resolved)
	}
	return fmt.Sprintf("%d resolved, %d unresolved (%s)", resolved, len(failed), strings.Join(failed, ", "))
}
