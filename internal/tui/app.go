// Package tui provides the interactive terminal UI for sked.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/sked/internal/config"
	"github.com/fentz26/sked/internal/logging"
	"github.com/fentz26/sked/internal/store"
	"github.com/fentz26/sked/internal/urgency"
	"github.com/fentz26/sked/internal/view"
)

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED")
	successColor = lipgloss.Color("#10B981")
	warningColor = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#EF4444")
	overdueColor = lipgloss.Color("#EC4899")
	mutedColor   = lipgloss.Color("#6B7280")
	fgColor      = lipgloss.Color("#F9FAFB")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(fgColor).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	taskItemStyle = lipgloss.NewStyle().
			Padding(0, 2)

	selectedStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(fgColor).
			Bold(true).
			Padding(0, 2)

	doneStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	tierStyles = map[urgency.Tier]lipgloss.Style{
		urgency.Overdue: lipgloss.NewStyle().Foreground(overdueColor).Bold(true),
		urgency.Today:   lipgloss.NewStyle().Foreground(errorColor),
		urgency.Soon:    lipgloss.NewStyle().Foreground(warningColor),
		urgency.Later:   lipgloss.NewStyle().Foreground(successColor),
		urgency.None:    lipgloss.NewStyle().Foreground(mutedColor),
	}
)

// App is the main TUI application model.
type App struct {
	store       *store.Store
	cfg         *config.Config
	log         *logging.Logger
	entries     []view.Entry
	selectedIdx int
	width       int
	height      int
	mode        string // "list", "detail", "add", "edit"
	form        *taskForm
	showDone    bool
	message     string
	loading     bool
}

// New creates a new TUI application.
func New(s *store.Store, cfg *config.Config, log *logging.Logger) *App {
	return &App{
		store:    s,
		cfg:      cfg,
		log:      log,
		mode:     "list",
		showDone: cfg.ShowCompleted,
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.fetchTasks()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tasksLoadedMsg:
		a.loading = false
		a.entries = msg.entries
		if a.selectedIdx >= len(a.entries) {
			a.selectedIdx = max(0, len(a.entries)-1)
		}
		return a, nil

	case taskSavedMsg:
		a.message = msg.message
		a.mode = "list"
		a.form = nil
		return a, a.fetchTasks()

	case errMsg:
		a.log.Printf("error: %v", msg.err)
		a.message = "Error: " + msg.err.Error()
		return a, nil
	}

	if a.mode == "add" || a.mode == "edit" {
		return a.updateForm(msg)
	}
	return a.updateList(msg)
}

func (a *App) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "esc":
		if a.mode == "detail" {
			a.mode = "list"
			return a, nil
		}
		return a, tea.Quit

	case "up", "k":
		if a.selectedIdx > 0 {
			a.selectedIdx--
		}

	case "down", "j":
		if a.selectedIdx < len(a.entries)-1 {
			a.selectedIdx++
		}

	case "enter":
		if a.mode == "list" && len(a.entries) > 0 {
			a.mode = "detail"
		}

	case " ":
		if len(a.entries) > 0 {
			return a, a.toggleDone(a.entries[a.selectedIdx])
		}

	case "d":
		if len(a.entries) > 0 {
			return a, a.deleteTask(a.entries[a.selectedIdx])
		}

	case "h":
		a.showDone = !a.showDone
		return a, a.fetchTasks()

	case "a":
		a.mode = "add"
		a.form = newTaskForm(nil)
		return a, a.form.focusCmd()

	case "e":
		if len(a.entries) > 0 {
			task := a.entries[a.selectedIdx].Task
			a.mode = "edit"
			a.form = newTaskForm(&task)
			return a, a.form.focusCmd()
		}

	case "r":
		return a, a.fetchTasks()
	}

	return a, nil
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			a.mode = "list"
			a.form = nil
			a.message = ""
			return a, nil
		case "enter":
			if a.form.onLastField() {
				return a, a.submitForm()
			}
			return a, a.form.nextField()
		case "tab", "down":
			return a, a.form.nextField()
		case "shift+tab", "up":
			return a, a.form.prevField()
		}
	}
	return a, a.form.update(msg)
}

// submitForm resolves the form into a deadline and persists the task.
// Parse failures keep the form open for re-prompting.
func (a *App) submitForm() tea.Cmd {
	form := a.form
	now := time.Now()

	input, err := form.tokens(now)
	if err != nil {
		form.err = err.Error()
		return nil
	}

	return func() tea.Msg {
		if form.editing == nil {
			task, err := a.store.CreateTask(input.title, input.description, input.due)
			if err != nil {
				return errMsg{err}
			}
			return taskSavedMsg{fmt.Sprintf("Created: %s", task.Title)}
		}

		task := *form.editing
		task.Title = input.title
		task.Description = input.description
		task.Due = input.due
		if err := a.store.UpdateTask(&task); err != nil {
			return errMsg{err}
		}
		return taskSavedMsg{fmt.Sprintf("Updated: %s", task.Title)}
	}
}

func (a *App) toggleDone(e view.Entry) tea.Cmd {
	return func() tea.Msg {
		if err := a.store.SetDone(e.Task.ID, !e.Task.Done); err != nil {
			return errMsg{err}
		}
		return taskSavedMsg{""}
	}
}

func (a *App) deleteTask(e view.Entry) tea.Cmd {
	return func() tea.Msg {
		if err := a.store.DeleteTask(e.Task.ID); err != nil {
			return errMsg{err}
		}
		return taskSavedMsg{fmt.Sprintf("Removed: %s", e.Task.Title)}
	}
}

// fetchTasks re-reads the store and re-projects the display sequence.
// Order and tiers are always derived fresh from the wall clock; nothing
// is cached between repaints.
func (a *App) fetchTasks() tea.Cmd {
	a.loading = true
	showDone := a.showDone
	return func() tea.Msg {
		tasks, err := a.store.ListTasks()
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{view.Project(tasks, showDone, time.Now())}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var b strings.Builder

	scope := "Active"
	if a.showDone {
		scope = "All"
	}
	header := titleStyle.Render("SKED") + "  " +
		lipgloss.NewStyle().Foreground(mutedColor).Render(fmt.Sprintf("Tasks (%s)", scope))
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("─", max(a.width, 20)) + "\n")

	contentHeight := a.height - 6
	if contentHeight < 5 {
		contentHeight = 5
	}

	switch a.mode {
	case "add", "edit":
		b.WriteString(a.renderForm())
	case "detail":
		b.WriteString(a.renderTaskDetail())
	default:
		b.WriteString(a.renderTaskList(contentHeight))
	}

	if a.message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(successColor)
		if strings.HasPrefix(a.message, "Error") {
			msgStyle = lipgloss.NewStyle().Foreground(errorColor)
		}
		b.WriteString("\n" + msgStyle.Render(a.message))
	}
	b.WriteString("\n")

	var status string
	switch a.mode {
	case "add":
		status = " Enter:next field | Esc:cancel"
	case "edit":
		status = " Enter:next field | Esc:cancel | blank date clears deadline"
	case "detail":
		status = " Esc:back | e:edit | Space:toggle | d:delete"
	default:
		status = fmt.Sprintf(" Tasks: %d | j/k:nav | Space:toggle | h:show/hide done | a:add | e:edit | d:del | q:quit", len(a.entries))
	}
	b.WriteString(statusBarStyle.Width(max(a.width, len(status))).Render(status))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
