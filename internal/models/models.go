// Package models defines the core domain types for sked.
package models

import "time"

// Deadline is a fully resolved point in time attached to a task. AllDay
// marks deadlines entered without a time-of-day: At holds the start of
// that day, and the deadline counts as "any time that day" until the day
// is over.
type Deadline struct {
	At     time.Time `json:"at"`
	AllDay bool      `json:"all_day,omitempty"`
}

// DayEnd returns the first instant after the deadline's calendar day.
// For an all-day deadline this is the moment it becomes overdue.
func (d Deadline) DayEnd() time.Time {
	y, m, day := d.At.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.At.Location()).AddDate(0, 0, 1)
}

// Task represents a single tracked task.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Done        bool      `json:"done"`
	Due         *Deadline `json:"due,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
