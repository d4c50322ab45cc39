package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/sked/internal/deadline"
	"github.com/fentz26/sked/internal/urgency"
	"github.com/fentz26/sked/internal/view"
	"github.com/spf13/cobra"
)

var taskAddCmd = &cobra.Command{
	Use:     "add [title]",
	Aliases: []string{"a"},
	Short:   "Add a new task",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List tasks ordered by deadline",
	RunE:    runTaskList,
}

var taskDoneCmd = &cobra.Command{
	Use:     "done [task-id]",
	Aliases: []string{"d"},
	Short:   "Mark a task as done",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskDone,
}

var taskRemoveCmd = &cobra.Command{
	Use:     "remove [task-id]",
	Aliases: []string{"r"},
	Short:   "Remove a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskRemove,
}

var taskShowCmd = &cobra.Command{
	Use:     "show [task-id]",
	Aliases: []string{"s"},
	Short:   "Show task details",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskShow,
}

var taskEditCmd = &cobra.Command{
	Use:     "edit [task-id]",
	Aliases: []string{"e"},
	Short:   "Edit task details",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskEdit,
}

var (
	taskDue      string
	taskAt       string
	taskDesc     string
	taskTitle    string
	listAll      bool
	editClearDue bool
)

func init() {
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "Deadline date (YYYY-MM-DD or shorthand: t, tm, 2d, 1w, mon..sun)")
	taskAddCmd.Flags().StringVar(&taskAt, "at", "", "Deadline time (HH:MM or shorthand: last, morning, noon, 2h)")
	taskAddCmd.Flags().StringVar(&taskDesc, "desc", "", "Task description")

	taskListCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Include completed tasks")

	taskEditCmd.Flags().StringVar(&taskTitle, "title", "", "New title")
	taskEditCmd.Flags().StringVar(&taskDue, "due", "", "New deadline date")
	taskEditCmd.Flags().StringVar(&taskAt, "at", "", "New deadline time")
	taskEditCmd.Flags().StringVar(&taskDesc, "desc", "", "New description")
	taskEditCmd.Flags().BoolVar(&editClearDue, "clear-due", false, "Remove the deadline")
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	now := time.Now()
	dateTok := deadline.DateToken{Kind: deadline.DateCleared}
	timeTok := deadline.UnchangedTime

	if taskDue != "" {
		dateTok, err = deadline.ParseDate(taskDue, now)
		if err != nil {
			return err
		}
	}
	if taskAt != "" {
		timeTok, err = deadline.ParseTime(taskAt, now, false)
		if err != nil {
			return err
		}
	}

	title := strings.Join(args, " ")
	due := deadline.Resolve(nil, dateTok, timeTok)
	task, err := s.CreateTask(title, taskDesc, due)
	if err != nil {
		return err
	}

	fmt.Printf("Created task %s: %s\n", shortID(task.ID), task.Title)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	cfg, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	tasks, err := s.ListTasks()
	if err != nil {
		return err
	}

	entries := view.Project(tasks, listAll || cfg.ShowCompleted, time.Now())
	if len(entries) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tv\tTITLE\tDUE")
	for _, e := range entries {
		status := " "
		if e.Task.Done {
			status = "v"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", shortID(e.Task.ID), status, truncate(e.Task.Title, 40), formatDue(e, cfg.DateFormat))
	}
	w.Flush()
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	task, err := s.GetTaskByPrefix(args[0])
	if err != nil {
		return err
	}
	if err := s.SetDone(task.ID, true); err != nil {
		return err
	}
	fmt.Printf("Task marked as done: %s\n", task.Title)
	return nil
}

func runTaskRemove(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	task, err := s.GetTaskByPrefix(args[0])
	if err != nil {
		return err
	}
	if err := s.DeleteTask(task.ID); err != nil {
		return err
	}
	fmt.Printf("Task removed: %s\n", task.Title)
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	cfg, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	task, err := s.GetTaskByPrefix(args[0])
	if err != nil {
		return err
	}

	doneLabel := "No"
	if task.Done {
		doneLabel = "Yes"
	}
	tier := urgency.Classify(task.Due, time.Now())

	fmt.Printf("ID:          %s\n", task.ID)
	fmt.Printf("Title:       %s\n", task.Title)
	fmt.Printf("Done:        %s\n", doneLabel)
	fmt.Printf("Due:         %s\n", formatDue(view.Entry{Task: *task, Tier: tier}, cfg.DateFormat))
	if task.Description != "" {
		fmt.Printf("Description: %s\n", task.Description)
	}
	fmt.Printf("Created:     %s\n", task.CreatedAt.Format(cfg.DateFormat))
	fmt.Printf("Updated:     %s\n", task.UpdatedAt.Format(cfg.DateFormat))
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	_, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	task, err := s.GetTaskByPrefix(args[0])
	if err != nil {
		return err
	}

	now := time.Now()
	dateTok := deadline.UnchangedDate
	timeTok := deadline.UnchangedTime

	switch {
	case editClearDue:
		dateTok = deadline.DateToken{Kind: deadline.DateCleared}
	case cmd.Flags().Changed("due"):
		dateTok, err = deadline.ParseDate(taskDue, now)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("at") {
		hadTime := task.Due != nil && !task.Due.AllDay
		timeTok, err = deadline.ParseTime(taskAt, now, hadTime)
		if err != nil {
			return err
		}
	}

	task.Due = deadline.Resolve(task.Due, dateTok, timeTok)
	if cmd.Flags().Changed("title") {
		if taskTitle == "" {
			return fmt.Errorf("title cannot be empty")
		}
		task.Title = taskTitle
	}
	if cmd.Flags().Changed("desc") {
		task.Description = taskDesc
	}

	if err := s.UpdateTask(task); err != nil {
		return err
	}
	fmt.Printf("Task updated: %s\n", task.Title)
	return nil
}

// --- Helpers ---

var tierStyles = map[urgency.Tier]lipgloss.Style{
	urgency.Overdue: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	urgency.Today:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	urgency.Soon:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	urgency.Later:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	urgency.None:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

// formatDue renders a deadline styled by its urgency tier. The tier is an
// abstract category; the color mapping lives entirely here.
func formatDue(e view.Entry, layout string) string {
	style := tierStyles[e.Tier]
	if e.Task.Due == nil {
		return style.Render("none")
	}
	if e.Task.Due.AllDay {
		return style.Render(e.Task.Due.At.Format("2006-01-02"))
	}
	return style.Render(e.Task.Due.At.Format(layout))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
