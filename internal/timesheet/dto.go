package timesheet

import (
	"time"

	"github.com/frahmantamala/timesheet-management/internal"
)

const dateLayout = "2006-01-02"

// SaveDayRequest replaces one employee-day of timesheet data.
type SaveDayRequest struct {
	Email      string      `json:"email"`
	Date       string      `json:"date"`
	CheckIn    string      `json:"checkIn"`
	CheckOut   string      `json:"checkOut"`
	Overtime   string      `json:"overtime"`
	Status     string      `json:"status"`
	HourBlocks []HourBlock `json:"hourBlocks"`
}

func (r *SaveDayRequest) Validate() error {
	var errs internal.ValidationErrors

	if r.Email == "" {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "email", Message: "email is required", Code: "required",
		})
	}
	if r.Date == "" {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "date", Message: "date is required", Code: "required",
		})
	} else if _, err := time.Parse(dateLayout, r.Date); err != nil {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "date", Message: "date must be YYYY-MM-DD", Code: "format",
		})
	}

	if len(errs.Errors) > 0 {
		return internal.NewValidationError(errs.Messages(), internal.ErrCodeValidationFailed).WithDetails(errs)
	}
	return nil
}

// ParsedDate returns the request date; Validate must have passed.
func (r *SaveDayRequest) ParsedDate() time.Time {
	d, _ := time.Parse(dateLayout, r.Date)
	return d
}

type EntryResponse struct {
	ID         int64       `json:"id"`
	EmployeeID int64       `json:"employeeId"`
	Date       string      `json:"date"`
	CheckIn    string      `json:"checkIn"`
	CheckOut   string      `json:"checkOut"`
	Overtime   string      `json:"overtime"`
	Status     string      `json:"status"`
	HourBlocks []HourBlock `json:"hourBlocks"`
	Hours      int         `json:"hours"`
}

func ToEntryResponse(e *Entry) *EntryResponse {
	return &EntryResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date.Format(dateLayout),
		CheckIn:    e.CheckIn,
		CheckOut:   e.CheckOut,
		Overtime:   e.Overtime,
		Status:     e.Status,
		HourBlocks: e.HourBlocks,
		Hours:      e.CountedHours(),
	}
}

func ToEntryResponses(entries []Entry) []*EntryResponse {
	out := make([]*EntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, ToEntryResponse(&entries[i]))
	}
	return out
}
