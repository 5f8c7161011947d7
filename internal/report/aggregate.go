package report

import (
	"strings"
	"time"

	"github.com/frahmantamala/timesheet-management/internal/calendar"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

// Filter narrows which entries and hour blocks an aggregation counts.
// Year and From/To are alternative time scopes; Year wins when both
// are set. Project and Phase match block fields after trimming,
// case-insensitively.
type Filter struct {
	Year    int
	From    time.Time
	To      time.Time
	Project string
	Phase   string
}

func (f Filter) includesDate(date time.Time) bool {
	if f.Year != 0 {
		return date.Year() == f.Year
	}
	if !f.From.IsZero() && date.Before(truncateDay(f.From)) {
		return false
	}
	if !f.To.IsZero() && date.After(truncateDay(f.To)) {
		return false
	}
	return true
}

func (f Filter) includesBlock(b timesheet.HourBlock) bool {
	if f.Project != "" && !foldEqual(b.ProjectName, f.Project) {
		return false
	}
	if f.Phase != "" && !foldEqual(b.ProjectPhase, f.Phase) {
		return false
	}
	return true
}

// workingDays returns the number of working days in the filter's time
// scope, or 0 when the scope is open ended.
func (f Filter) workingDays() int {
	if f.Year != 0 {
		return calendar.WorkingDaysInYear(f.Year)
	}
	if f.From.IsZero() || f.To.IsZero() {
		return 0
	}
	days := 0
	for d := truncateDay(f.From); !d.After(truncateDay(f.To)); d = d.AddDate(0, 0, 1) {
		if calendar.IsWorkingDay(d.Year(), d.Month(), d.Day()) {
			days++
		}
	}
	return days
}

// Summary is the aggregate of one employee's counted hours over a
// filter scope.
type Summary struct {
	TotalHours   int
	AverageHours float64
	WorkingDays  int
}

// AggregateHours sums the counted hours of one employee's entries
// under the filter. Leave days and the lunch slot contribute nothing;
// only fully specified blocks count. An employee with no matching
// entries, or a scope with zero working days, yields a zero summary
// rather than an error.
func AggregateHours(employeeID int64, entries []timesheet.Entry, f Filter) Summary {
	total := 0
	for _, e := range entries {
		if e.EmployeeID != employeeID || !f.includesDate(e.Date) {
			continue
		}
		total += countedHours(e, f)
	}

	summary := Summary{TotalHours: total, WorkingDays: f.workingDays()}
	if summary.WorkingDays > 0 {
		summary.AverageHours = float64(total) / float64(summary.WorkingDays)
	}
	return summary
}

// countedHours is Entry.CountedHours with the filter's block match
// applied on top of the usual rules.
func countedHours(e timesheet.Entry, f Filter) int {
	if e.IsLeave() {
		return 0
	}
	total := 0
	for _, b := range e.HourBlocks {
		if b.IsLunch() || !b.IsFullySpecified() {
			continue
		}
		if !f.includesBlock(b) {
			continue
		}
		total++
	}
	return total
}

func foldEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
