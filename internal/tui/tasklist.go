package tui

import (
	"fmt"
	"strings"

	"github.com/fentz26/sked/internal/view"
)

func (a *App) renderTaskList(height int) string {
	if a.loading {
		return "\n  Loading tasks...\n"
	}
	if len(a.entries) == 0 {
		return "\n  No tasks. Press a to add one.\n"
	}

	var lines []string
	for i, e := range a.entries {
		row := fmt.Sprintf("%s %s  %s", checkbox(e), padTitle(e.Task.Title, 30), a.formatDue(e))

		switch {
		case i == a.selectedIdx:
			lines = append(lines, selectedStyle.Render("▶ "+row))
		case e.Task.Done:
			lines = append(lines, doneStyle.Render("  "+row))
		default:
			lines = append(lines, taskItemStyle.Render("  "+row))
		}
	}

	// Keep the selection centered once the list outgrows the screen.
	if len(lines) > height {
		start := a.selectedIdx - height/2
		if start < 0 {
			start = 0
		}
		end := start + height
		if end > len(lines) {
			end = len(lines)
			start = max(0, end-height)
		}
		lines = lines[start:end]
	}

	return strings.Join(lines, "\n")
}

func checkbox(e view.Entry) string {
	if e.Task.Done {
		return "[v]"
	}
	return "[ ]"
}

// formatDue renders the deadline colored by tier. The tier itself is the
// abstract category from the urgency package; only the styling lives here.
func (a *App) formatDue(e view.Entry) string {
	style := tierStyles[e.Tier]
	if e.Task.Due == nil {
		return style.Render("no deadline")
	}
	if e.Task.Due.AllDay {
		return style.Render(e.Task.Due.At.Format("2006-01-02"))
	}
	return style.Render(e.Task.Due.At.Format(a.cfg.DateFormat))
}

func padTitle(title string, width int) string {
	if len(title) > width {
		return title[:width-3] + "..."
	}
	return title + strings.Repeat(" ", width-len(title))
}
