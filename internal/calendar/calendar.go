// Package calendar implements the working-day rules used by hour
// aggregation and reporting: Sundays and the second Saturday of each month
// are non-working days.
package calendar

import "time"

// SecondSaturday returns the day of month of the second Saturday, scanning
// from day 1 upward. Every real month has at least two Saturdays; if a
// month somehow does not, 0 is returned and no day is excluded.
func SecondSaturday(year int, month time.Month) int {
	seen := 0
	for day := 1; day <= DaysInMonth(year, month); day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if d.Weekday() == time.Saturday {
			seen++
			if seen == 2 {
				return day
			}
		}
	}
	return 0
}

// IsWorkingDay reports whether the given calendar day counts as a working
// day: not a Sunday and not the month's second Saturday.
func IsWorkingDay(year int, month time.Month, day int) bool {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Weekday() == time.Sunday {
		return false
	}
	if second := SecondSaturday(year, month); second != 0 && day == second {
		return false
	}
	return true
}

// WorkingDaysInMonth counts the working days of a month.
func WorkingDaysInMonth(year int, month time.Month) int {
	count := 0
	for day := 1; day <= DaysInMonth(year, month); day++ {
		if IsWorkingDay(year, month, day) {
			count++
		}
	}
	return count
}

// WorkingDaysInYear counts the working days of a full calendar year,
// leap years included.
func WorkingDaysInYear(year int) int {
	count := 0
	for month := time.January; month <= time.December; month++ {
		count += WorkingDaysInMonth(year, month)
	}
	return count
}

// DaysInMonth returns the number of calendar days in the month.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
