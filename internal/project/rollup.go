package project

import (
	"strings"

	"github.com/frahmantamala/timesheet-management/internal/report"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

// Member is the slice of employee data the rollup needs.
type Member struct {
	ID         int64
	FullName   string
	Department string
}

// StaffingRow is one member's contribution to a project.
type StaffingRow struct {
	EmployeeID int64  `json:"employeeId"`
	FullName   string `json:"fullName"`
	Hours      int    `json:"hours"`
}

// Staffing sums member contributions to a project for one department.
type Staffing struct {
	ProjectName string        `json:"projectName"`
	Department  string        `json:"department"`
	Rows        []StaffingRow `json:"rows"`
	TotalHours  int           `json:"totalHours"`
}

// HoursForEmployeeOnProject counts the employee's fully specified
// block hours whose project name matches after trimming,
// case-insensitively. Unknown names simply yield zero.
func HoursForEmployeeOnProject(employeeID int64, projectName string, entries []timesheet.Entry) int {
	return report.AggregateHours(employeeID, entries, report.Filter{Project: projectName}).TotalHours
}

// HoursForEmployeeOnProjectPhase narrows the count to one phase.
func HoursForEmployeeOnProjectPhase(employeeID int64, projectName, phaseName string, entries []timesheet.Entry) int {
	return report.AggregateHours(employeeID, entries, report.Filter{Project: projectName, Phase: phaseName}).TotalHours
}

// StaffingTable sums, per assigned member of the given department, the
// hours booked against the project. Members outside the department or
// not assigned to the project are skipped.
func StaffingTable(p Project, dept string, members []Member, entries []timesheet.Entry) Staffing {
	staffing := Staffing{ProjectName: p.ProjectName, Department: dept}
	for _, m := range members {
		if !p.HasMember(m.ID) {
			continue
		}
		if dept != "" && !strings.EqualFold(strings.TrimSpace(m.Department), strings.TrimSpace(dept)) {
			continue
		}
		hours := HoursForEmployeeOnProject(m.ID, p.ProjectName, entries)
		staffing.Rows = append(staffing.Rows, StaffingRow{
			EmployeeID: m.ID,
			FullName:   m.FullName,
			Hours:      hours,
		})
		staffing.TotalHours += hours
	}
	return staffing
}
