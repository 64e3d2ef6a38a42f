package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/fusionboot/internal/provisioning"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9fafb"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// printReport writes a per-step summary of a run.
func printReport(w io.Writer, action, appName string, report *provisioning.Report) {
	if report == nil {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("  fusionboot %s: %s", action, appName)))
	fmt.Fprintln(w, summaryStyle.Render("  "+strings.Repeat("=", 30)))

	for _, step := range report.Steps {
		label := fmt.Sprintf("%-10s", step.Result.Status)
		status := okStyle.Render(label)
		detail := step.Result.ID
		if step.Result.Status != provisioning.StepResolved {
			status = failStyle.Render(label)
			if step.Result.Err != nil {
				detail = step.Result.Err.Error()
			}
		} else if step.Result.Created {
			detail += " (created)"
		}
		fmt.Fprintf(w, "  %s  %s  %s\n", nameStyle.Render(fmt.Sprintf("%-18s", step.Phase)), status, detail)
	}

	fmt.Fprintln(w, summaryStyle.Render("  "+report.Summary()))
	fmt.Fprintln(w)
}
