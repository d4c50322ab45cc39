package deadline

import (
	"testing"
	"time"

	"github.com/fentz26/sked/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dl(y int, m time.Month, d, hh, mm int) *models.Deadline {
	return &models.Deadline{At: time.Date(y, m, d, hh, mm, 0, 0, time.UTC)}
}

func TestResolveDefaultTimeApplied(t *testing.T) {
	due := Resolve(nil, absDate(date(2024, 6, 1)), UnchangedTime)
	require.NotNil(t, due)
	assert.True(t, due.At.Equal(time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)))
	assert.False(t, due.AllDay)
}

func TestResolveDatePreservedTimeReplaced(t *testing.T) {
	existing := dl(2024, 6, 1, 10, 0)
	due := Resolve(existing, UnchangedDate, absTime(14, 30))
	require.NotNil(t, due)
	assert.True(t, due.At.Equal(time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)))
}

func TestResolveClearedDateWinsOverTime(t *testing.T) {
	existing := dl(2024, 6, 1, 10, 0)
	due := Resolve(existing, DateToken{Kind: DateCleared}, absTime(14, 30))
	assert.Nil(t, due)
}

func TestResolveUnchangedDateWithoutExisting(t *testing.T) {
	// A time alone cannot create a deadline.
	due := Resolve(nil, UnchangedDate, absTime(14, 30))
	assert.Nil(t, due)
}

func TestResolveNewDateKeepsExistingTime(t *testing.T) {
	existing := dl(2024, 6, 1, 10, 0)
	due := Resolve(existing, absDate(date(2024, 7, 15)), UnchangedTime)
	require.NotNil(t, due)
	assert.True(t, due.At.Equal(time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)))
}

func TestResolveDefaultRequestedAlwaysWins(t *testing.T) {
	existing := dl(2024, 6, 1, 10, 0)
	due := Resolve(existing, UnchangedDate, TimeToken{Kind: TimeDefault})
	require.NotNil(t, due)
	assert.Equal(t, 23, due.At.Hour())
	assert.Equal(t, 59, due.At.Minute())
}

func TestResolveClearedTimeYieldsAllDay(t *testing.T) {
	due := Resolve(nil, absDate(date(2024, 6, 1)), TimeToken{Kind: TimeCleared})
	require.NotNil(t, due)
	assert.True(t, due.AllDay)
	assert.True(t, due.At.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestResolveAllDayPreservedOnDateChange(t *testing.T) {
	existing := &models.Deadline{At: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), AllDay: true}
	due := Resolve(existing, absDate(date(2024, 6, 10)), UnchangedTime)
	require.NotNil(t, due)
	assert.True(t, due.AllDay)
	assert.True(t, due.At.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)))
}
