// Package view produces the ordered, tier-annotated task sequence that
// the CLI and TUI render. It is the single seam between storage and the
// display layers: no I/O, no state, recomputed on every call.
package view

import (
	"sort"
	"time"

	"github.com/fentz26/sked/internal/models"
	"github.com/fentz26/sked/internal/urgency"
)

// Entry pairs a task with its urgency tier at projection time.
type Entry struct {
	Task models.Task
	Tier urgency.Tier
}

// Project filters, orders and annotates a snapshot of tasks. Completed
// tasks are dropped before sorting unless includeCompleted is set.
// Ordering is ascending and stable: dated tasks before undated, earlier
// deadlines first, with creation instant breaking all remaining ties.
func Project(tasks []models.Task, includeCompleted bool, now time.Time) []Entry {
	entries := make([]Entry, 0, len(tasks))
	for _, t := range tasks {
		if t.Done && !includeCompleted {
			continue
		}
		entries = append(entries, Entry{Task: t, Tier: urgency.Classify(t.Due, now)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i].Task, entries[j].Task)
	})
	return entries
}

func less(a, b models.Task) bool {
	switch {
	case a.Due != nil && b.Due == nil:
		return true
	case a.Due == nil && b.Due != nil:
		return false
	case a.Due != nil && b.Due != nil && !a.Due.At.Equal(b.Due.At):
		return a.Due.At.Before(b.Due.At)
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}
