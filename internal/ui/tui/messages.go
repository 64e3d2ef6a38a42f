// Package tui provides a Bubble Tea-based terminal UI for provisioning runs.
package tui

import "github.com/imamik/fusionboot/internal/provisioning"

// EventMsg carries one provisioning event into the model.
type EventMsg struct {
	Event provisioning.Event
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the run is complete.
type DoneMsg struct {
	Report *provisioning.Report
	Err    error
}
