// Package deadline turns shorthand date/time input into resolved task
// deadlines. Parsing is pure: the current date/time is always passed in
// by the caller, never read from the system clock.
package deadline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate indicates unrecognized or malformed date input.
var ErrInvalidDate = errors.New("invalid date")

// ErrInvalidTime indicates unrecognized or out-of-range time input.
var ErrInvalidTime = errors.New("invalid time")

// ErrInvalidRange indicates a malformed weekday range.
var ErrInvalidRange = errors.New("invalid weekday range")

// DateKind discriminates the outcome of parsing a date field.
type DateKind int

const (
	// DateCleared removes the deadline.
	DateCleared DateKind = iota
	// DateUnchanged keeps the task's existing date component.
	DateUnchanged
	// DateAbsolute carries a concrete calendar date.
	DateAbsolute
)

// DateToken is a fully resolved date field. For DateAbsolute, Date holds
// midnight of the target day in the caller's location.
type DateToken struct {
	Kind DateKind
	Date time.Time
}

// TimeKind discriminates the outcome of parsing a time field.
type TimeKind int

const (
	// TimeCleared removes the time-of-day, leaving an all-day deadline.
	TimeCleared TimeKind = iota
	// TimeUnchanged keeps the task's existing time component.
	TimeUnchanged
	// TimeDefault asks for the default time (23:59).
	TimeDefault
	// TimeAbsolute carries a concrete hour and minute.
	TimeAbsolute
)

// TimeToken is a fully resolved time field.
type TimeToken struct {
	Kind   TimeKind
	Hour   int
	Minute int
}

// Unchanged tokens are produced by callers for fields the user never
// touched; parsing itself never yields them.
var (
	UnchangedDate = DateToken{Kind: DateUnchanged}
	UnchangedTime = TimeToken{Kind: TimeUnchanged}
)

var weekdays = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// ParseDate parses shorthand or literal date input against today.
// Rules are tried in order, first match wins:
//
//	""            clear the deadline
//	t, today      today
//	tm, tomorrow  tomorrow
//	<N>d, <N>w    today + N days / N weeks
//	mon..sun      next occurrence strictly after today
//	literal       YYYY-MM-DD, M/D, M/D/YY, M/D/YYYY
//
// A literal without a year lands on the current year, rolling to the next
// year when the result would already be in the past.
func ParseDate(text string, today time.Time) (DateToken, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	day := startOfDay(today)

	if s == "" {
		return DateToken{Kind: DateCleared}, nil
	}

	switch s {
	case "t", "today":
		return absDate(day), nil
	case "tm", "tomorrow":
		return absDate(day.AddDate(0, 0, 1)), nil
	}

	if len(s) > 1 {
		switch s[len(s)-1] {
		case 'd':
			if n, err := strconv.Atoi(s[:len(s)-1]); err == nil && n > 0 {
				return absDate(day.AddDate(0, 0, n)), nil
			}
		case 'w':
			if n, err := strconv.Atoi(s[:len(s)-1]); err == nil && n > 0 {
				return absDate(day.AddDate(0, 0, 7*n)), nil
			}
		}
	}

	if wd, ok := weekdays[s]; ok {
		return absDate(nextWeekday(day, wd)), nil
	}

	if d, ok := parseLiteral(s, day); ok {
		return absDate(d), nil
	}

	return DateToken{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
}

// ParseDateRange parses a weekday range of the form day1~day2, e.g.
// "mon~sun". The first day is the next occurrence of its weekday strictly
// after today; the second is the next occurrence of its weekday on or
// after the first.
func ParseDateRange(text string, today time.Time) (DateToken, DateToken, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	parts := strings.Split(s, "~")
	if len(parts) != 2 {
		return DateToken{}, DateToken{}, fmt.Errorf("%w: %q", ErrInvalidRange, text)
	}

	wd1, ok1 := weekdays[strings.TrimSpace(parts[0])]
	wd2, ok2 := weekdays[strings.TrimSpace(parts[1])]
	if !ok1 || !ok2 {
		return DateToken{}, DateToken{}, fmt.Errorf("%w: %q", ErrInvalidRange, text)
	}

	first := nextWeekday(startOfDay(today), wd1)
	second := first
	for second.Weekday() != wd2 {
		second = second.AddDate(0, 0, 1)
	}
	return absDate(first), absDate(second), nil
}

// ParseTime parses shorthand or literal time input. hadPrevious reports
// whether the task already carries a time-of-day: blanking the field then
// clears it, while a blank field on a task without one asks for the
// default (23:59).
func ParseTime(text string, now time.Time, hadPrevious bool) (TimeToken, error) {
	s := strings.ToLower(strings.TrimSpace(text))

	if s == "" {
		if hadPrevious {
			return TimeToken{Kind: TimeCleared}, nil
		}
		return TimeToken{Kind: TimeDefault}, nil
	}

	switch s {
	case "last":
		return absTime(23, 59), nil
	case "morning":
		return absTime(9, 0), nil
	case "noon":
		return absTime(12, 0), nil
	case "evening":
		return absTime(18, 0), nil
	case "night":
		return absTime(21, 0), nil
	}

	// <N>h keeps the current minute.
	if len(s) > 1 && s[len(s)-1] == 'h' {
		if n, err := strconv.Atoi(s[:len(s)-1]); err == nil && n > 0 {
			target := now.Add(time.Duration(n) * time.Hour)
			return absTime(target.Hour(), target.Minute()), nil
		}
	}

	if h, m, ok := parseClock(s); ok {
		if h > 23 || m > 59 {
			return TimeToken{}, fmt.Errorf("%w: %q", ErrInvalidTime, text)
		}
		return absTime(h, m), nil
	}

	return TimeToken{}, fmt.Errorf("%w: %q", ErrInvalidTime, text)
}

// parseLiteral handles explicit calendar dates.
func parseLiteral(s string, today time.Time) (time.Time, bool) {
	if d, err := time.ParseInLocation("2006-01-02", s, today.Location()); err == nil {
		return d, true
	}

	parts := strings.Split(s, "/")
	switch len(parts) {
	case 2: // M/D, year omitted
		mo, err1 := strconv.Atoi(parts[0])
		dy, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return time.Time{}, false
		}
		d, ok := calendarDate(today.Year(), mo, dy, today.Location())
		if !ok {
			return time.Time{}, false
		}
		if d.Before(today) {
			d = d.AddDate(1, 0, 0)
		}
		return d, true
	case 3: // M/D/YY or M/D/YYYY
		mo, err1 := strconv.Atoi(parts[0])
		dy, err2 := strconv.Atoi(parts[1])
		yr, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, false
		}
		if len(parts[2]) == 2 {
			yr += 2000
		}
		return calendarDate(yr, mo, dy, today.Location())
	}
	return time.Time{}, false
}

// calendarDate builds a date and rejects impossible combinations like
// 2/30, which time.Date would otherwise normalize into the next month.
func calendarDate(yr, mo, dy int, loc *time.Location) (time.Time, bool) {
	if mo < 1 || mo > 12 || dy < 1 || dy > 31 {
		return time.Time{}, false
	}
	d := time.Date(yr, time.Month(mo), dy, 0, 0, 0, 0, loc)
	if d.Day() != dy || d.Month() != time.Month(mo) {
		return time.Time{}, false
	}
	return d, true
}

// parseClock handles HH:MM and HHMM literals.
func parseClock(s string) (hour, minute int, ok bool) {
	if h, m, found := strings.Cut(s, ":"); found {
		hh, err1 := strconv.Atoi(h)
		mm, err2 := strconv.Atoi(m)
		if err1 != nil || err2 != nil || hh < 0 || mm < 0 {
			return 0, 0, false
		}
		return hh, mm, true
	}
	if len(s) == 4 {
		hh, err1 := strconv.Atoi(s[:2])
		mm, err2 := strconv.Atoi(s[2:])
		if err1 != nil || err2 != nil || hh < 0 || mm < 0 {
			return 0, 0, false
		}
		return hh, mm, true
	}
	return 0, 0, false
}

// nextWeekday returns the next occurrence of wd strictly after day, so a
// matching weekday today lands a full week out.
func nextWeekday(day time.Time, wd time.Weekday) time.Time {
	d := day.AddDate(0, 0, 1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func absDate(d time.Time) DateToken {
	return DateToken{Kind: DateAbsolute, Date: d}
}

func absTime(h, m int) TimeToken {
	return TimeToken{Kind: TimeAbsolute, Hour: h, Minute: m}
}
