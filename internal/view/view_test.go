package view

import (
	"testing"
	"time"

	"github.com/fentz26/sked/internal/models"
	"github.com/fentz26/sked/internal/urgency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)

func task(id string, created time.Time, due *models.Deadline, done bool) models.Task {
	return models.Task{
		ID:        id,
		Title:     "task " + id,
		Done:      done,
		Due:       due,
		CreatedAt: created,
	}
}

func dueAt(t time.Time) *models.Deadline {
	return &models.Deadline{At: t}
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Task.ID
	}
	return out
}

func TestProjectOrdersByDeadline(t *testing.T) {
	created := now.Add(-24 * time.Hour)
	tasks := []models.Task{
		task("later", created, dueAt(now.Add(72*time.Hour)), false),
		task("soon", created, dueAt(now.Add(30*time.Hour)), false),
		task("overdue", created, dueAt(now.Add(-2*time.Hour)), false),
	}

	entries := Project(tasks, false, now)
	assert.Equal(t, []string{"overdue", "soon", "later"}, ids(entries))
}

func TestProjectUndatedAlwaysLast(t *testing.T) {
	tasks := []models.Task{
		// Undated task created long before the dated ones.
		task("undated", now.Add(-100*time.Hour), nil, false),
		task("dated", now.Add(-1*time.Hour), dueAt(now.Add(200*time.Hour)), false),
	}

	entries := Project(tasks, false, now)
	assert.Equal(t, []string{"dated", "undated"}, ids(entries))
}

func TestProjectUndatedOrderedByCreation(t *testing.T) {
	tasks := []models.Task{
		task("newer", now.Add(-1*time.Hour), nil, false),
		task("older", now.Add(-10*time.Hour), nil, false),
		task("oldest", now.Add(-20*time.Hour), nil, false),
	}

	entries := Project(tasks, false, now)
	assert.Equal(t, []string{"oldest", "older", "newer"}, ids(entries))
}

func TestProjectDeadlineTieBrokenByCreation(t *testing.T) {
	due := dueAt(now.Add(5 * time.Hour))
	tasks := []models.Task{
		task("second", now.Add(-1*time.Hour), due, false),
		task("first", now.Add(-2*time.Hour), due, false),
	}

	entries := Project(tasks, false, now)
	assert.Equal(t, []string{"first", "second"}, ids(entries))
}

func TestProjectFiltersCompleted(t *testing.T) {
	tasks := []models.Task{
		task("open", now.Add(-2*time.Hour), dueAt(now.Add(time.Hour)), false),
		task("done", now.Add(-1*time.Hour), dueAt(now.Add(2*time.Hour)), true),
	}

	entries := Project(tasks, false, now)
	assert.Equal(t, []string{"open"}, ids(entries))

	// Completion affects inclusion only, never position.
	entries = Project(tasks, true, now)
	assert.Equal(t, []string{"open", "done"}, ids(entries))
}

func TestProjectAttachesTiers(t *testing.T) {
	tasks := []models.Task{
		task("overdue", now.Add(-2*time.Hour), dueAt(now.Add(-time.Hour)), false),
		task("undated", now.Add(-1*time.Hour), nil, false),
	}

	entries := Project(tasks, false, now)
	require.Len(t, entries, 2)
	assert.Equal(t, urgency.Overdue, entries[0].Tier)
	assert.Equal(t, urgency.None, entries[1].Tier)
}

func TestProjectIdempotent(t *testing.T) {
	created := now.Add(-24 * time.Hour)
	tasks := []models.Task{
		task("c", created, nil, false),
		task("a", created, dueAt(now.Add(time.Hour)), false),
		task("b", created, dueAt(now.Add(2*time.Hour)), true),
	}

	first := Project(tasks, true, now)
	second := Project(tasks, true, now)
	assert.Equal(t, first, second)
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	tasks := []models.Task{
		task("b", now.Add(-1*time.Hour), nil, false),
		task("a", now.Add(-2*time.Hour), dueAt(now), false),
	}

	Project(tasks, true, now)
	assert.Equal(t, "b", tasks[0].ID)
	assert.Equal(t, "a", tasks[1].ID)
}

func TestProjectMalformedRecordStillOrdered(t *testing.T) {
	// Deadline earlier than creation is storage's problem; projection
	// still uses the literal values.
	weird := task("weird", now, dueAt(now.Add(-100*time.Hour)), false)
	entries := Project([]models.Task{weird}, false, now)
	require.Len(t, entries, 1)
	assert.Equal(t, urgency.Overdue, entries[0].Tier)
}
