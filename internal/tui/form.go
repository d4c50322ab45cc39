package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/sked/internal/deadline"
	"github.com/fentz26/sked/internal/models"
)

const (
	fieldTitle = iota
	fieldDate
	fieldTime
	fieldDesc
	fieldCount
)

// taskForm is the add/edit input sequence: title, date, time, description.
// Each field is prefilled with the existing value when editing; a field
// left at its prefill maps to an Unchanged token, so only what the user
// actually changed touches the deadline.
type taskForm struct {
	inputs  [fieldCount]textinput.Model
	initial [fieldCount]string
	focus   int
	editing *models.Task
	err     string
}

// formInput is the resolved result of a submitted form.
type formInput struct {
	title       string
	description string
	due         *models.Deadline
}

func newTaskForm(editing *models.Task) *taskForm {
	f := &taskForm{editing: editing}

	labels := [fieldCount]struct{ placeholder string }{
		{"Task title"},
		{"Date: t, tm, 2d, 1w, mon..sun, YYYY-MM-DD (blank: none)"},
		{"Time: HH:MM, last, morning, noon, 2h (blank: 23:59)"},
		{"Description (optional)"},
	}

	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i].placeholder
		ti.CharLimit = 256
		ti.Width = 60
		f.inputs[i] = ti
	}

	if editing != nil {
		f.initial[fieldTitle] = editing.Title
		f.initial[fieldDesc] = editing.Description
		if editing.Due != nil {
			f.initial[fieldDate] = editing.Due.At.Format("2006-01-02")
			if !editing.Due.AllDay {
				f.initial[fieldTime] = editing.Due.At.Format("15:04")
			}
		}
		for i := range f.inputs {
			f.inputs[i].SetValue(f.initial[i])
		}
	}

	f.inputs[fieldTitle].Focus()
	return f
}

func (f *taskForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *taskForm) onLastField() bool {
	return f.focus == fieldCount-1
}

func (f *taskForm) nextField() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

func (f *taskForm) prevField() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *taskForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

func (f *taskForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// tokens parses the form fields against now and resolves the deadline.
func (f *taskForm) tokens(now time.Time) (formInput, error) {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	if title == "" {
		return formInput{}, fmt.Errorf("title is required")
	}

	dateText := f.inputs[fieldDate].Value()
	timeText := f.inputs[fieldTime].Value()

	dateTok := deadline.UnchangedDate
	timeTok := deadline.UnchangedTime

	var existing *models.Deadline
	if f.editing != nil {
		existing = f.editing.Due
	}

	var err error
	if f.editing == nil || dateText != f.initial[fieldDate] {
		dateTok, err = deadline.ParseDate(dateText, now)
		if err != nil {
			return formInput{}, err
		}
	}
	if f.editing == nil || timeText != f.initial[fieldTime] {
		hadTime := existing != nil && !existing.AllDay
		timeTok, err = deadline.ParseTime(timeText, now, hadTime)
		if err != nil {
			return formInput{}, err
		}
	}

	return formInput{
		title:       title,
		description: strings.TrimSpace(f.inputs[fieldDesc].Value()),
		due:         deadline.Resolve(existing, dateTok, timeTok),
	}, nil
}

func (a *App) renderForm() string {
	f := a.form
	if f == nil {
		return ""
	}

	var b strings.Builder
	heading := "New Task"
	if f.editing != nil {
		heading = "Edit Task"
	}
	b.WriteString("\n  " + titleStyle.Render(heading) + "\n\n")

	labels := [fieldCount]string{"Title", "Date", "Time", "Description"}
	for i, in := range f.inputs {
		label := fmt.Sprintf("  %-12s", labels[i])
		if i == f.focus {
			b.WriteString(label + inputBoxStyle.Render(in.View()) + "\n")
		} else {
			b.WriteString(label + taskItemStyle.Render(in.View()) + "\n")
		}
	}

	if f.err != "" {
		errStyle := lipgloss.NewStyle().Foreground(errorColor)
		b.WriteString("\n  " + errStyle.Render(f.err) + "\n")
	}
	b.WriteString("\n  " + helpStyle.Render("Enter advances; submitting on the last field saves.") + "\n")
	return b.String()
}
