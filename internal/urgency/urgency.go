// Package urgency derives a task's urgency tier from its deadline and
// the current instant. Tiers are never stored; callers recompute them on
// every read.
package urgency

import (
	"time"

	"github.com/fentz26/sked/internal/models"
)

// Tier is one of five mutually exclusive urgency categories, ordered from
// most to least urgent.
type Tier int

const (
	Overdue Tier = iota
	Today
	Soon
	Later
	None
)

// soonWindowDays is how many calendar days past today still count as Soon.
const soonWindowDays = 2

func (t Tier) String() string {
	switch t {
	case Overdue:
		return "overdue"
	case Today:
		return "today"
	case Soon:
		return "soon"
	case Later:
		return "later"
	default:
		return "none"
	}
}

// Classify maps a deadline (or nil) and the current instant to exactly
// one tier. Overdue is an exact instant comparison; an all-day deadline
// counts as any time that day, so it only becomes overdue once the day is
// over. The today/soon checks use calendar-day granularity.
func Classify(due *models.Deadline, now time.Time) Tier {
	if due == nil {
		return None
	}

	if due.AllDay {
		if !now.Before(due.DayEnd()) {
			return Overdue
		}
	} else if due.At.Before(now) {
		return Overdue
	}

	days := daysBetween(now, due.At)
	switch {
	case days <= 0:
		return Today
	case days <= soonWindowDays:
		return Soon
	default:
		return Later
	}
}

// daysBetween counts whole calendar days from now's day to t's day.
func daysBetween(now, t time.Time) int {
	ny, nm, nd := now.Date()
	ty, tm, td := t.Date()
	a := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
