package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/frahmantamala/timesheet-management/internal"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

const dateLayout = "2006-01-02"

// RosterEmployee is the slice of employee data the report engine
// needs. The service adapts the employee module's records into this.
type RosterEmployee struct {
	ID       int64
	EmpID    string
	FullName string
	Email    string
	Role     string
}

func (e RosterEmployee) isAdmin() bool {
	return strings.EqualFold(e.Role, "admin")
}

type AllEmployeesRow struct {
	Seq          int
	FullName     string
	EmpID        string
	Email        string
	AverageHours float64
	TotalHours   int
	Utilization  float64
}

type AllEmployeesReport struct {
	Year int
	Rows []AllEmployeesRow
}

type RangeRow struct {
	Date     time.Time
	CheckIn  string
	CheckOut string
	Overtime string
	Status   string
	Hours    int
}

type RangeReport struct {
	Employee   RosterEmployee
	From       time.Time
	To         time.Time
	Rows       []RangeRow
	TotalHours int
}

// BuildAllEmployeesReport produces one row per non-admin employee in
// roster order, aggregated over the given year. The daily hour budget
// feeds the utilization column only. Refuses before any computation
// when the year is missing or the roster is empty.
func BuildAllEmployeesReport(roster []RosterEmployee, entries []timesheet.Entry, year, dailyHours int) (*AllEmployeesReport, error) {
	if year == 0 {
		return nil, internal.NewValidationError("year is required", internal.ErrCodeYearRequired)
	}
	if len(roster) == 0 {
		return nil, internal.NewValidationError("no employees to report on", internal.ErrCodeEmptyRoster)
	}

	report := &AllEmployeesReport{Year: year}
	seq := 0
	for _, emp := range roster {
		if emp.isAdmin() {
			continue
		}
		seq++
		summary := AggregateHours(emp.ID, entries, Filter{Year: year})

		utilization := 0.0
		if budget := summary.WorkingDays * dailyHours; budget > 0 {
			utilization = float64(summary.TotalHours) / float64(budget) * 100
		}

		report.Rows = append(report.Rows, AllEmployeesRow{
			Seq:          seq,
			FullName:     emp.FullName,
			EmpID:        emp.EmpID,
			Email:        emp.Email,
			AverageHours: summary.AverageHours,
			TotalHours:   summary.TotalHours,
			Utilization:  utilization,
		})
	}
	return report, nil
}

// BuildEmployeeRangeReport produces one row per recorded day inside
// the inclusive date range, sorted by date, plus a grand total.
// Refuses with a typed error when the range is missing or no entries
// fall inside it, so no empty file is ever produced.
func BuildEmployeeRangeReport(employee RosterEmployee, entries []timesheet.Entry, from, to time.Time) (*RangeReport, error) {
	if from.IsZero() || to.IsZero() {
		return nil, internal.NewValidationError("from and to dates are required", internal.ErrCodeRangeRequired)
	}
	if to.Before(from) {
		return nil, internal.NewValidationError("to date is before from date", internal.ErrCodeRangeRequired)
	}

	filter := Filter{From: from, To: to}
	report := &RangeReport{Employee: employee, From: from, To: to}
	for _, e := range entries {
		if e.EmployeeID != employee.ID || !filter.includesDate(e.Date) {
			continue
		}
		hours := e.CountedHours()
		report.Rows = append(report.Rows, RangeRow{
			Date:     e.Date,
			CheckIn:  e.CheckIn,
			CheckOut: e.CheckOut,
			Overtime: e.Overtime,
			Status:   e.Status,
			Hours:    hours,
		})
		report.TotalHours += hours
	}

	if len(report.Rows) == 0 {
		return nil, internal.NewValidationError("no records found", internal.ErrCodeNoRecords)
	}

	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].Date.Before(report.Rows[j].Date)
	})
	return report, nil
}

// Table is the flat tabular form every report exports as.
type Table struct {
	SheetName string
	FileBase  string
	Headers   []string
	Rows      [][]string
}

func (r *AllEmployeesReport) Table() Table {
	t := Table{
		SheetName: "Employees",
		FileBase:  fmt.Sprintf("employee_hours_%d", r.Year),
		Headers:   []string{"S.No", "Name", "Employee ID", "Email", "Average Hours", "Total Hours", "Utilization %"},
	}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", row.Seq),
			row.FullName,
			row.EmpID,
			row.Email,
			fmt.Sprintf("%.2f", row.AverageHours),
			fmt.Sprintf("%d", row.TotalHours),
			fmt.Sprintf("%.1f", row.Utilization),
		})
	}
	return t
}

func (r *RangeReport) Table() Table {
	t := Table{
		SheetName: "Timesheet",
		FileBase: fmt.Sprintf("%s_%s_to_%s",
			SanitizeFileName(r.Employee.FullName),
			r.From.Format(dateLayout),
			r.To.Format(dateLayout)),
		Headers: []string{"Date", "Check In", "Check Out", "Overtime", "Status", "Hours"},
	}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []string{
			row.Date.Format(dateLayout),
			row.CheckIn,
			row.CheckOut,
			row.Overtime,
			row.Status,
			fmt.Sprintf("%d", row.Hours),
		})
	}
	t.Rows = append(t.Rows, []string{"Total", "", "", "", "", fmt.Sprintf("%d", r.TotalHours)})
	return t
}

// SanitizeFileName keeps letters, digits, dashes and underscores so
// the export name is safe in a Content-Disposition header.
func SanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "report"
	}
	return b.String()
}
