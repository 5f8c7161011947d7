package approval

import "time"

const (
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Record is one review decision on a timesheet entry. Records are
// insert-only; a re-review adds a new row rather than rewriting
// history. The employee id is denormalized from the entry so approval
// history survives entry rewrites.
type Record struct {
	ID          int64
	TimesheetID int64
	EmployeeID  int64
	Status      string
	CreatedAt   time.Time
}

func ValidStatus(status string) bool {
	return status == StatusApproved || status == StatusRejected
}
