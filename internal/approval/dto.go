package approval

import (
	"github.com/frahmantamala/timesheet-management/internal"
)

type ReviewRequest struct {
	Status string `json:"status"`
}

func (r *ReviewRequest) Validate() error {
	if !ValidStatus(r.Status) {
		return internal.NewValidationError("status must be Approved or Rejected", internal.ErrCodeInvalidStatus)
	}
	return nil
}

type RecordResponse struct {
	ID          int64  `json:"id"`
	TimesheetID int64  `json:"timesheetId"`
	EmployeeID  int64  `json:"employeeId"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

func ToRecordResponse(rec *Record) *RecordResponse {
	return &RecordResponse{
		ID:          rec.ID,
		TimesheetID: rec.TimesheetID,
		EmployeeID:  rec.EmployeeID,
		Status:      rec.Status,
		CreatedAt:   rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToRecordResponses(records []Record) []*RecordResponse {
	out := make([]*RecordResponse, 0, len(records))
	for i := range records {
		out = append(out, ToRecordResponse(&records[i]))
	}
	return out
}
