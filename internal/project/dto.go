package project

import (
	"time"

	"github.com/frahmantamala/timesheet-management/internal"
)

const dateLayout = "2006-01-02"

type ProjectRequest struct {
	ProjectName       string   `json:"projectName"`
	ClientName        string   `json:"clientName"`
	ProjectType       string   `json:"projectType"`
	Description       string   `json:"description"`
	Departments       []string `json:"departments"`
	PlannedStart      string   `json:"plannedStart"`
	PlannedEnd        string   `json:"plannedEnd"`
	ActualStart       string   `json:"actualStart"`
	ActualEnd         string   `json:"actualEnd"`
	Status            string   `json:"status"`
	AssignedMemberIDs []int64  `json:"assignedMemberIds"`
	Phases            []Phase  `json:"phases"`
}

func (r *ProjectRequest) Validate() error {
	var errs internal.ValidationErrors

	if r.ProjectName == "" {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "projectName", Message: "project name is required", Code: "required",
		})
	}
	if r.ProjectType != "" && r.ProjectType != TypeBillable && r.ProjectType != TypeInternal {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "projectType", Message: "project type must be billable or internal", Code: "invalid",
		})
	}
	if r.Status != "" && !ValidStatus(r.Status) {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "status", Message: "status must be yet to start, ongoing or completed", Code: "invalid",
		})
	}
	for _, field := range []struct{ name, value string }{
		{"plannedStart", r.PlannedStart},
		{"plannedEnd", r.PlannedEnd},
		{"actualStart", r.ActualStart},
		{"actualEnd", r.ActualEnd},
	} {
		if field.value == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, field.value); err != nil {
			errs.Errors = append(errs.Errors, internal.ValidationError{
				Field: field.name, Message: field.name + " must be YYYY-MM-DD", Code: "format",
			})
		}
	}

	if len(errs.Errors) > 0 {
		return internal.NewValidationError(errs.Messages(), internal.ErrCodeValidationFailed).WithDetails(errs)
	}
	return nil
}

// ToProject converts the request into a domain record; Validate must
// have passed.
func (r *ProjectRequest) ToProject() *Project {
	status := r.Status
	if status == "" {
		status = StatusYetToStart
	}
	return &Project{
		ProjectName:       r.ProjectName,
		ClientName:        r.ClientName,
		ProjectType:       r.ProjectType,
		Description:       r.Description,
		Departments:       r.Departments,
		PlannedStart:      parseOptionalDate(r.PlannedStart),
		PlannedEnd:        parseOptionalDate(r.PlannedEnd),
		ActualStart:       parseOptionalDate(r.ActualStart),
		ActualEnd:         parseOptionalDate(r.ActualEnd),
		Status:            status,
		AssignedMemberIDs: r.AssignedMemberIDs,
		Phases:            r.Phases,
	}
}

func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &d
}

type ProjectResponse struct {
	ID                int64    `json:"id"`
	ProjectName       string   `json:"projectName"`
	ClientName        string   `json:"clientName"`
	ProjectType       string   `json:"projectType"`
	Description       string   `json:"description"`
	Departments       []string `json:"departments"`
	PlannedStart      string   `json:"plannedStart,omitempty"`
	PlannedEnd        string   `json:"plannedEnd,omitempty"`
	ActualStart       string   `json:"actualStart,omitempty"`
	ActualEnd         string   `json:"actualEnd,omitempty"`
	Status            string   `json:"status"`
	AssignedMemberIDs []int64  `json:"assignedMemberIds"`
	Phases            []Phase  `json:"phases"`
}

func ToProjectResponse(p *Project) *ProjectResponse {
	return &ProjectResponse{
		ID:                p.ID,
		ProjectName:       p.ProjectName,
		ClientName:        p.ClientName,
		ProjectType:       p.ProjectType,
		Description:       p.Description,
		Departments:       p.Departments,
		PlannedStart:      formatOptionalDate(p.PlannedStart),
		PlannedEnd:        formatOptionalDate(p.PlannedEnd),
		ActualStart:       formatOptionalDate(p.ActualStart),
		ActualEnd:         formatOptionalDate(p.ActualEnd),
		Status:            p.Status,
		AssignedMemberIDs: p.AssignedMemberIDs,
		Phases:            p.Phases,
	}
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func ToProjectResponses(projects []Project) []*ProjectResponse {
	out := make([]*ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, ToProjectResponse(&projects[i]))
	}
	return out
}
