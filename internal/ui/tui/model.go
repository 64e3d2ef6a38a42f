package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/fusionboot/internal/provisioning"
)

// maxLogLines bounds the log tail shown under the step list.
const maxLogLines = 5

// Step represents one provisioning phase for display.
type Step struct {
	Key    string
	Name   string
	Active bool
	Done   bool
	Failed bool
	Detail string
}

// Model is the Bubble Tea model for the step progress view.
type Model struct {
	Title string
	Steps []Step
	Logs  []string

	Report *provisioning.Report

	StartTime    time.Time
	SpinnerFrame int

	Width  int
	Height int
	Err    error
	Done   bool
}

// NewModel creates a model listing phases in order. Phases reported later
// that are not in the list are appended as they start.
func NewModel(title string, phases []string) Model {
	m := Model{
		Title:     title,
		StartTime: time.Now(),
	}
	for _, key := range phases {
		m.Steps = append(m.Steps, Step{Key: key, Name: displayName(key)})
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case EventMsg:
		m.applyEvent(msg.Event)

	case TickMsg:
		if m.Done {
			return m, nil
		}
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		m.Report = msg.Report
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) applyEvent(ev provisioning.Event) {
	if ev.Phase == "" {
		if ev.Message != "" {
			m.appendLog(ev.Message)
		}
		return
	}

	switch ev.Type {
	case provisioning.EventPhaseStarted:
		step := m.step(ev.Phase)
		step.Active = true
	case provisioning.EventPhaseCompleted:
		step := m.step(ev.Phase)
		step.Active = false
		step.Done = true
	case provisioning.EventPhaseFailed:
		step := m.step(ev.Phase)
		step.Active = false
		step.Failed = true
		if step.Detail == "" {
			step.Detail = ev.Message
		}
	case provisioning.EventResourceCreated, provisioning.EventResourceExists,
		provisioning.EventResourceDeleted, provisioning.EventResourceDeleting:
		step := m.step(ev.Phase)
		step.Detail = ev.Message
		if id := ev.Fields["id"]; id != "" {
			step.Detail += " (" + id + ")"
		}
	case provisioning.EventResourceFailed:
		m.step(ev.Phase).Detail = ev.Message
	}
}

// step returns the step for key, appending one if none exists yet.
func (m *Model) step(key string) *Step {
	for i := range m.Steps {
		if m.Steps[i].Key == key {
			return &m.Steps[i]
		}
	}
	m.Steps = append(m.Steps, Step{Key: key, Name: displayName(key)})
	return &m.Steps[len(m.Steps)-1]
}

func (m *Model) appendLog(line string) {
	m.Logs = append(m.Logs, line)
	if len(m.Logs) > maxLogLines {
		m.Logs = m.Logs[len(m.Logs)-maxLogLines:]
	}
}

// displayName turns a phase key like "signing-key" into "Signing key".
func displayName(key string) string {
	name := strings.ReplaceAll(key, "-", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
