package provisioning

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Observer defines the interface for structured observability during provisioning.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// Progress reports progress for a phase
	Progress(phase string, current, total int)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured provisioning event.
type Event struct {
	Type      EventType         // Type of event
	Phase     string            // Phase name (e.g., "tenant", "application")
	Message   string            // Human-readable message
	Resource  string            // Resource name if applicable
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
	Err       error             // Cause, for failure events
}

// EventType represents the type of provisioning event.
type EventType string

const (
	// EventPhaseStarted indicates a provisioning phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a provisioning phase completed successfully.
	EventPhaseCompleted EventType = "phase.completed"
	// EventPhaseFailed indicates a provisioning phase failed.
	EventPhaseFailed EventType = "phase.failed"

	// EventResourceCreating indicates a resource is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceExists indicates a resource already exists.
	EventResourceExists EventType = "resource.exists"
	// EventResourceFailed indicates resource resolution failed.
	EventResourceFailed EventType = "resource.failed"
	// EventResourceDeleting indicates a resource is being deleted.
	EventResourceDeleting EventType = "resource.deleting"
	// EventResourceDeleted indicates a resource was deleted successfully.
	EventResourceDeleted EventType = "resource.deleted"

	// EventProgress indicates progress in a long-running operation.
	EventProgress EventType = "progress"
)

// Failed reports whether the event describes a failure.
func (t EventType) Failed() bool {
	return t == EventPhaseFailed || t == EventResourceFailed
}

// Succeeded reports whether the event describes a resolved resource or phase.
func (t EventType) Succeeded() bool {
	switch t {
	case EventPhaseCompleted, EventResourceCreated, EventResourceExists, EventResourceDeleted:
		return true
	}
	return false
}

// ConsoleObserver writes colored, human-readable lines: blue for progress,
// green for success, red for failures.
type ConsoleObserver struct {
	out           io.Writer
	mu            *sync.Mutex
	contextFields map[string]string

	info    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	faint   lipgloss.Style
}

// NewConsoleObserver creates a console observer writing to w, or stderr
// when w is nil. Colors are dropped when w is not a terminal.
func NewConsoleObserver(w io.Writer) *ConsoleObserver {
	if w == nil {
		w = os.Stderr
	}
	r := lipgloss.NewRenderer(w)
	return &ConsoleObserver{
		out:           w,
		mu:            &sync.Mutex{},
		contextFields: make(map[string]string),
		info:          r.NewStyle().Foreground(lipgloss.Color("12")),
		success:       r.NewStyle().Foreground(lipgloss.Color("10")),
		failure:       r.NewStyle().Foreground(lipgloss.Color("9")),
		faint:         r.NewStyle().Faint(true),
	}
}

// Printf implements Logger.
func (o *ConsoleObserver) Printf(format string, v ...any) {
	o.writeLine(o.info.Render(fmt.Sprintf(format, v...)))
}

// Event implements Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.Fields = mergeFields(o.contextFields, event.Fields)

	style := o.info
	switch {
	case event.Type.Failed():
		style = o.failure
	case event.Type.Succeeded():
		style = o.success
	}

	line := style.Render(o.formatEvent(event))
	if suffix := formatFields(event.Fields); suffix != "" {
		line += " " + o.faint.Render(suffix)
	}
	o.writeLine(line)
}

// Progress implements Observer interface.
func (o *ConsoleObserver) Progress(phase string, current, total int) {
	if total == 0 {
		o.writeLine(o.faint.Render(fmt.Sprintf("[%s] Progress: %d/%d", phase, current, total)))
		return
	}
	percentage := (current * 100) / total
	o.writeLine(o.faint.Render(fmt.Sprintf("[%s] Progress: %d/%d (%d%%)", phase, current, total, percentage)))
}

// WithFields implements Observer interface.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	clone := *o
	clone.contextFields = mergeFields(o.contextFields, fields)
	return &clone
}

func (o *ConsoleObserver) writeLine(line string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = fmt.Fprintln(o.out, line)
}

// formatEvent formats an event for console output.
func (o *ConsoleObserver) formatEvent(event Event) string {
	var parts []string

	if event.Phase != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Phase))
	}
	if event.Resource != "" {
		parts = append(parts, event.Resource+":")
	}
	parts = append(parts, event.Message)

	return strings.Join(parts, " ")
}

// mergeFields returns base overlaid with extra. Keys already in extra win.
func mergeFields(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	maps.Copy(out, base)
	maps.Copy(out, extra)
	return out
}

// formatFields renders fields as "(k=v, ...)" in key order.
func formatFields(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		parts = append(parts, fmt.Sprintf("%s=%s", k, fields[k]))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Helper functions for common events

// LogPhaseStart logs a phase start event.
func LogPhaseStart(observer Observer, phase string) {
	observer.Event(Event{
		Type:    EventPhaseStarted,
		Phase:   phase,
		Message: "starting",
	})
}

// LogPhaseComplete logs a phase completion event.
func LogPhaseComplete(observer Observer, phase string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventPhaseCompleted,
		Phase:   phase,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogPhaseFailed logs a phase failure event.
func LogPhaseFailed(observer Observer, phase string, err error) {
	observer.Event(Event{
		Type:    EventPhaseFailed,
		Phase:   phase,
		Message: fmt.Sprintf("failed: %v", err),
		Err:     err,
	})
}

// LogResourceCreated logs a successful resource creation event.
func LogResourceCreated(observer Observer, phase, resourceType, resourceName, resourceID string) {
	observer.Event(Event{
		Type:     EventResourceCreated,
		Phase:    phase,
		Resource: resourceName,
		Message:  fmt.Sprintf("%s created", resourceType),
		Fields: map[string]string{
			"type": resourceType,
			"id":   resourceID,
		},
	})
}

// LogResourceExists logs when a resource already exists.
func LogResourceExists(observer Observer, phase, resourceType, resourceName, resourceID string) {
	observer.Event(Event{
		Type:     EventResourceExists,
		Phase:    phase,
		Resource: resourceName,
		Message:  fmt.Sprintf("%s exists", resourceType),
		Fields: map[string]string{
			"type": resourceType,
			"id":   resourceID,
		},
	})
}

// LogResourceEnsured logs either a created or an exists event.
func LogResourceEnsured(observer Observer, phase, resourceType, resourceName, resourceID string, created bool) {
	if created {
		LogResourceCreated(observer, phase, resourceType, resourceName, resourceID)
		return
	}
	LogResourceExists(observer, phase, resourceType, resourceName, resourceID)
}

// LogResourceFailed logs a resource that could not be resolved or deleted.
func LogResourceFailed(observer Observer, phase, resourceType, resourceName string, err error) {
	observer.Event(Event{
		Type:     EventResourceFailed,
		Phase:    phase,
		Resource: resourceName,
		Message:  fmt.Sprintf("failed to resolve %s: %v", resourceType, err),
		Fields: map[string]string{
			"type": resourceType,
		},
		Err: err,
	})
}

// LogResourceDeleting logs a resource deletion start event.
func LogResourceDeleting(observer Observer, phase, resourceType, resourceID string) {
	observer.Event(Event{
		Type:     EventResourceDeleting,
		Phase:    phase,
		Resource: resourceID,
		Message:  fmt.Sprintf("deleting %s", resourceType),
		Fields: map[string]string{
			"type": resourceType,
		},
	})
}

// LogResourceDeleted logs a successful resource deletion event.
func LogResourceDeleted(observer Observer, phase, resourceType, resourceID string) {
	observer.Event(Event{
		Type:     EventResourceDeleted,
		Phase:    phase,
		Resource: resourceID,
		Message:  fmt.Sprintf("%s deleted", resourceType),
		Fields: map[string]string{
			"type": resourceType,
		},
	})
}

// LogResourceDeleteFailed logs a failed deletion.
func LogResourceDeleteFailed(observer Observer, phase, resourceType, resourceID string, err error) {
	observer.Event(Event{
		Type:     EventResourceFailed,
		Phase:    phase,
		Resource: resourceID,
		Message:  fmt.Sprintf("failed to delete %s: %v", resourceType, err),
		Fields: map[string]string{
			"type": resourceType,
		},
		Err: err,
	})
}
