package provisioning

import (
	"fmt"
	"time"
)

// RunPhases executes all provisioning phases sequentially.
//
// An unresolved phase is logged and the run continues with whatever state
// is present. An aborted phase stops the run; the partial report and the
// abort error are returned.
func RunPhases(ctx *Context, phases []Phase) (*Report, error) {
	start := time.Now()
	report := &Report{}
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(phases))

	for i, phase := range phases {
		if err := ctx.Err(); err != nil {
			report.add(phase.Name(), Aborted(err), 0)
			LogPhaseFailed(ctx.Observer, phase.Name(), err)
			return report, fmt.Errorf("%s phase aborted: %w", phase.Name(), err)
		}

		phaseStart := time.Now()
		LogPhaseStart(ctx.Observer, phase.Name())
		ctx.Observer.Progress(phase.Name(), i+1, len(phases))

		res := phase.Provision(ctx)
		elapsed := time.Since(phaseStart)
		report.add(phase.Name(), res, elapsed)

		switch res.Status {
		case StepAborted:
			LogPhaseFailed(ctx.Observer, phase.Name(), res.Err)
			return report, fmt.Errorf("%s phase aborted: %w", phase.Name(), res.Err)
		case StepUnresolved:
			LogPhaseFailed(ctx.Observer, phase.Name(), res.Err)
		default:
			LogPhaseComplete(ctx.Observer, phase.Name(), elapsed)
		}
	}

	ctx.Observer.Printf("Provisioning finished in %v: %s", time.Since(start).Round(time.Millisecond), report.Summary())
	return report, nil
}
