package provisioning

// Logger is the minimal printf-style logging surface.
type Logger interface {
	Printf(format string, v ...any)
}

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the phase. It never panics on missing state:
	// absent identifiers from earlier phases are passed on as empty strings.
	Provision(ctx *Context) StepResult
}
