package tui

import (
	"testing"
	"time"

	"github.com/fentz26/sked/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formNow = time.Date(2024, 1, 1, 10, 30, 0, 0, time.Local) // Monday

func TestFormAddResolvesDeadline(t *testing.T) {
	f := newTaskForm(nil)
	f.inputs[fieldTitle].SetValue("write report")
	f.inputs[fieldDate].SetValue("tm")
	f.inputs[fieldTime].SetValue("14:30")

	input, err := f.tokens(formNow)
	require.NoError(t, err)
	assert.Equal(t, "write report", input.title)
	require.NotNil(t, input.due)
	assert.True(t, input.due.At.Equal(time.Date(2024, 1, 2, 14, 30, 0, 0, time.Local)))
}

func TestFormAddBlankDateMeansNoDeadline(t *testing.T) {
	f := newTaskForm(nil)
	f.inputs[fieldTitle].SetValue("someday")

	input, err := f.tokens(formNow)
	require.NoError(t, err)
	assert.Nil(t, input.due)
}

func TestFormAddBlankTimeDefaults(t *testing.T) {
	f := newTaskForm(nil)
	f.inputs[fieldTitle].SetValue("report")
	f.inputs[fieldDate].SetValue("2d")

	input, err := f.tokens(formNow)
	require.NoError(t, err)
	require.NotNil(t, input.due)
	assert.Equal(t, 23, input.due.At.Hour())
	assert.Equal(t, 59, input.due.At.Minute())
	assert.True(t, input.due.At.Equal(time.Date(2024, 1, 3, 23, 59, 0, 0, time.Local)))
}

func TestFormRequiresTitle(t *testing.T) {
	f := newTaskForm(nil)
	_, err := f.tokens(formNow)
	assert.Error(t, err)
}

func TestFormReportsParseErrors(t *testing.T) {
	f := newTaskForm(nil)
	f.inputs[fieldTitle].SetValue("x")
	f.inputs[fieldDate].SetValue("not-a-date")
	_, err := f.tokens(formNow)
	assert.Error(t, err)

	f = newTaskForm(nil)
	f.inputs[fieldTitle].SetValue("x")
	f.inputs[fieldDate].SetValue("tm")
	f.inputs[fieldTime].SetValue("25:00")
	_, err = f.tokens(formNow)
	assert.Error(t, err)
}

func TestFormEditUntouchedFieldsKeepDeadline(t *testing.T) {
	existing := &models.Task{
		ID:    "id",
		Title: "old title",
		Due:   &models.Deadline{At: time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)},
	}

	f := newTaskForm(existing)
	// Only the title changes; date and time stay at their prefills.
	f.inputs[fieldTitle].SetValue("new title")

	input, err := f.tokens(formNow)
	require.NoError(t, err)
	assert.Equal(t, "new title", input.title)
	require.NotNil(t, input.due)
	assert.True(t, input.due.At.Equal(existing.Due.At))
}

func TestFormEditBlankedDateClearsDeadline(t *testing.T) {
	existing := &models.Task{
		ID:    "id",
		Title: "t",
		Due:   &models.Deadline{At: time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)},
	}

	f := newTaskForm(existing)
	f.inputs[fieldDate].SetValue("")

	input, err := f.tokens(formNow)
	require.NoError(t, err)
	assert.Nil(t, input.due)
}

func TestFormEditBlankedTimeYieldsAllDay(t *testing.T) {
	existing := &models.Task{
		ID:    "id",
		Title: "t",
		Due:   &models.Deadline{At: time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)},
	}

	f := newTaskForm(existing)
	f.inputs[fieldTime].SetValue("")

	input, err := f.tokens(formNow)
	require.NoError(t, err)
	require.NotNil(t, input.due)
	assert.True(t, input.due.AllDay)
}

func TestFormEditReplacesTimeOnly(t *testing.T) {
	existing := &models.Task{
		ID:    "id",
		Title: "t",
		Due:   &models.Deadline{At: time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)},
	}

	f := newTaskForm(existing)
	f.inputs[fieldTime].SetValue("14:30")

	input, err := f.tokens(formNow)
	require.NoError(t, err)
	require.NotNil(t, input.due)
	assert.True(t, input.due.At.Equal(time.Date(2024, 6, 1, 14, 30, 0, 0, time.Local)))
}
