package deadline

import (
	"time"

	"github.com/fentz26/sked/internal/models"
)

// Default time applied when a deadline gets a date but no time-of-day.
const (
	DefaultHour   = 23
	DefaultMinute = 59
)

// Resolve combines parsed date and time tokens with a task's existing
// deadline into the new deadline, or nil for no deadline. Unchanged
// tokens reuse the existing component. Resolve cannot fail: all invalid
// input is rejected at parse time.
func Resolve(existing *models.Deadline, dt DateToken, tt TimeToken) *models.Deadline {
	var date time.Time
	switch dt.Kind {
	case DateCleared:
		return nil
	case DateUnchanged:
		// A time alone cannot create a deadline.
		if existing == nil {
			return nil
		}
		y, m, d := existing.At.Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, existing.At.Location())
	case DateAbsolute:
		date = dt.Date
	}

	switch tt.Kind {
	case TimeAbsolute:
		return &models.Deadline{At: at(date, tt.Hour, tt.Minute)}
	case TimeDefault:
		return &models.Deadline{At: at(date, DefaultHour, DefaultMinute)}
	case TimeCleared:
		return &models.Deadline{At: date, AllDay: true}
	default: // TimeUnchanged
		if existing == nil {
			return &models.Deadline{At: at(date, DefaultHour, DefaultMinute)}
		}
		if existing.AllDay {
			return &models.Deadline{At: date, AllDay: true}
		}
		return &models.Deadline{At: at(date, existing.At.Hour(), existing.At.Minute())}
	}
}

func at(date time.Time, hour, minute int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, date.Location())
}
