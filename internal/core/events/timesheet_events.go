package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TimesheetApprovedName = "timesheet.approved"
	TimesheetRejectedName = "timesheet.rejected"
)

// TimesheetReviewedEvent fires when an admin approves or rejects an
// entry. The employee id is carried so subscribers need no extra
// lookup.
type TimesheetReviewedEvent struct {
	EventID     string
	TimesheetID int64
	EmployeeID  int64
	Status      string
	ReviewedBy  string
	OccurredAt  time.Time

	name string
}

func (e *TimesheetReviewedEvent) EventName() string {
	return e.name
}

func NewTimesheetApprovedEvent(timesheetID, employeeID int64, reviewedBy string) *TimesheetReviewedEvent {
	return newReviewedEvent(TimesheetApprovedName, "Approved", timesheetID, employeeID, reviewedBy)
}

func NewTimesheetRejectedEvent(timesheetID, employeeID int64, reviewedBy string) *TimesheetReviewedEvent {
	return newReviewedEvent(TimesheetRejectedName, "Rejected", timesheetID, employeeID, reviewedBy)
}

func newReviewedEvent(name, status string, timesheetID, employeeID int64, reviewedBy string) *TimesheetReviewedEvent {
	return &TimesheetReviewedEvent{
		EventID:     uuid.NewString(),
		TimesheetID: timesheetID,
		EmployeeID:  employeeID,
		Status:      status,
		ReviewedBy:  reviewedBy,
		OccurredAt:  time.Now().UTC(),
		name:        name,
	}
}
