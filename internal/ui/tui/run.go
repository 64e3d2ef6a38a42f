package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/fusionboot/internal/provisioning"
)

// RunFunc performs a provisioning run, reporting through observer.
type RunFunc func(ctx context.Context, observer provisioning.Observer) (*provisioning.Report, error)

// Run wraps a provisioning run with a Bubble Tea progress view. Events from
// the run are forwarded to the view until the run returns. Quitting the view
// cancels the run; its report and error are returned either way.
func Run(
	ctx context.Context,
	title string,
	phases []string,
	run RunFunc,
	opts ...tea.ProgramOption,
) (*provisioning.Report, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(title, phases), opts...)

	events := make(chan provisioning.Event, 16)
	done := make(chan struct{})
	observer := provisioning.NewChannelObserver(events, done)

	var (
		report *provisioning.Report
		runErr error
	)
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		report, runErr = run(runCtx, observer)
		close(events)
	}()

	go func() {
		for ev := range events {
			p.Send(EventMsg{Event: ev})
		}
		<-finished
		p.Send(DoneMsg{Report: report, Err: runErr})
	}()

	_, err := p.Run()
	cancel()
	close(done)
	<-finished

	if err != nil {
		return report, fmt.Errorf("TUI error: %w", err)
	}
	return report, runErr
}
