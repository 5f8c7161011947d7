package employee

import (
	"strings"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Employee is the personnel record and at the same time the login
// account for the service.
type Employee struct {
	ID               int64
	EmpID            string
	FullName         string
	Email            string
	Phone            string
	Department       string
	Role             string
	PasswordHash     string
	ImagePath        string
	Gender           string
	ResetToken       string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (e Employee) IsAdmin() bool {
	return strings.EqualFold(e.Role, RoleAdmin)
}

// ResetTokenValid reports whether the stored reset token matches and
// has not expired.
func (e Employee) ResetTokenValid(token string, now time.Time) bool {
	if e.ResetToken == "" || e.ResetToken != token {
		return false
	}
	return e.ResetTokenExpiry != nil && now.Before(*e.ResetTokenExpiry)
}
