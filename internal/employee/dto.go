package employee

import (
	"strings"

	"github.com/frahmantamala/timesheet-management/internal"
)

type CreateEmployeeRequest struct {
	EmpID      string `json:"empId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Password   string `json:"password"`
	ImagePath  string `json:"imagePath"`
	Gender     string `json:"gender"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs internal.ValidationErrors

	if r.EmpID == "" {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "empId", Message: "employee id is required", Code: "required",
		})
	}
	if r.FullName == "" {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "fullName", Message: "full name is required", Code: "required",
		})
	}
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "email", Message: "a valid email is required", Code: "required",
		})
	}
	if len(r.Password) < 8 {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "password", Message: "password must be at least 8 characters", Code: "too_short",
		})
	}
	if r.Role != "" && !strings.EqualFold(r.Role, RoleAdmin) && !strings.EqualFold(r.Role, RoleEmployee) {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "role", Message: "role must be admin or employee", Code: "invalid",
		})
	}

	if len(errs.Errors) > 0 {
		return internal.NewValidationError(errs.Messages(), internal.ErrCodeValidationFailed).WithDetails(errs)
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Role       string `json:"role"`
	ImagePath  string `json:"imagePath"`
	Gender     string `json:"gender"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs internal.ValidationErrors

	if r.Token == "" {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "token", Message: "token is required", Code: "required",
		})
	}
	if len(r.NewPassword) < 8 {
		errs.Errors = append(errs.Errors, internal.ValidationError{
			Field: "newPassword", Message: "password must be at least 8 characters", Code: "too_short",
		})
	}

	if len(errs.Errors) > 0 {
		return internal.NewValidationError(errs.Messages(), internal.ErrCodeValidationFailed).WithDetails(errs)
	}
	return nil
}

type EmployeeResponse struct {
	ID         int64  `json:"id"`
	EmpID      string `json:"empId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Role       string `json:"role"`
	ImagePath  string `json:"imagePath,omitempty"`
	Gender     string `json:"gender,omitempty"`
}

func ToEmployeeResponse(e *Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:         e.ID,
		EmpID:      e.EmpID,
		FullName:   e.FullName,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Role:       e.Role,
		ImagePath:  e.ImagePath,
		Gender:     e.Gender,
	}
}

func ToEmployeeResponses(employees []Employee) []*EmployeeResponse {
	out := make([]*EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, ToEmployeeResponse(&employees[i]))
	}
	return out
}
