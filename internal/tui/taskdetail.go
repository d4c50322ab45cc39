package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderTaskDetail() string {
	if len(a.entries) == 0 || a.selectedIdx >= len(a.entries) {
		return "\n  No task selected\n"
	}
	e := a.entries[a.selectedIdx]
	t := e.Task

	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n  %s\n", lipgloss.NewStyle().Bold(true).Render(t.Title)))
	b.WriteString(fmt.Sprintf("  ID: %s\n", shortID(t.ID)))

	status := "In Progress"
	if t.Done {
		status = "Completed"
	}
	b.WriteString(fmt.Sprintf("  Status: %s\n", status))
	b.WriteString(fmt.Sprintf("  Due: %s  (%s)\n", a.formatDue(e), e.Tier))
	b.WriteString(fmt.Sprintf("  Created: %s\n", t.CreatedAt.Format(a.cfg.DateFormat)))

	if t.Description != "" {
		b.WriteString("\n  Description:\n")
		for _, line := range strings.Split(t.Description, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	return b.String()
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
