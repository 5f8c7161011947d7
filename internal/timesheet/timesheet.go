package timesheet

import (
	"strings"
	"time"
)

const (
	StatusWork  = "Work"
	StatusLeave = "Leave"
)

// NormalizeStatus canonicalizes the day status. "leave", "LEAVE" and
// friends all become Leave; anything else is a working day.
func NormalizeStatus(status string) string {
	if strings.EqualFold(strings.TrimSpace(status), StatusLeave) {
		return StatusLeave
	}
	return StatusWork
}

// Entry is one employee-day of timesheet data. A day is saved as a
// whole: check-in/out, overtime, status and the full hour-block array
// replace whatever was stored before.
type Entry struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	CheckIn    string
	CheckOut   string
	Overtime   string
	Status     string
	HourBlocks HourBlocks
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsLeave reports whether the day was recorded as leave.
func (e Entry) IsLeave() bool {
	return strings.EqualFold(strings.TrimSpace(e.Status), StatusLeave)
}

// CountedHours returns the worked hours for the day: one hour per
// fully specified block outside the lunch slot, zero on leave days.
func (e Entry) CountedHours() int {
	if e.IsLeave() {
		return 0
	}
	total := 0
	for _, b := range e.HourBlocks {
		if b.IsLunch() {
			continue
		}
		if b.IsFullySpecified() {
			total++
		}
	}
	return total
}
