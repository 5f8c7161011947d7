package project

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	StatusYetToStart = "yet to start"
	StatusOngoing    = "ongoing"
	StatusCompleted  = "completed"

	TypeBillable = "billable"
	TypeInternal = "internal"
)

// Task is one unit of work inside a phase, optionally assigned to an
// employee by id.
type Task struct {
	TaskName   string `json:"taskName"`
	AssignedTo int64  `json:"assignedTo,omitempty"`
}

// Phase groups tasks under a named stage of the project.
type Phase struct {
	PhaseName string `json:"phaseName"`
	Tasks     []Task `json:"tasks"`
}

// Project is the planning record: who works on what, in which phases,
// for which client.
type Project struct {
	ID                int64
	ProjectName       string
	ClientName        string
	ProjectType       string
	Description       string
	Departments       StringList
	PlannedStart      *time.Time
	PlannedEnd        *time.Time
	ActualStart       *time.Time
	ActualEnd         *time.Time
	Status            string
	AssignedMemberIDs Int64List
	Phases            PhaseList
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasMember reports whether the employee is assigned to the project.
func (p Project) HasMember(employeeID int64) bool {
	for _, id := range p.AssignedMemberIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// CoversDepartment matches department names after trimming,
// case-insensitively.
func (p Project) CoversDepartment(dept string) bool {
	for _, d := range p.Departments {
		if strings.EqualFold(strings.TrimSpace(d), strings.TrimSpace(dept)) {
			return true
		}
	}
	return false
}

func ValidStatus(status string) bool {
	switch status {
	case StatusYetToStart, StatusOngoing, StatusCompleted:
		return true
	}
	return false
}

// StringList is a JSON-encoded list column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return marshalList(l)
}

func (l *StringList) Scan(src interface{}) error {
	return scanList(src, l)
}

// Int64List is a JSON-encoded list of ids.
type Int64List []int64

func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		l = Int64List{}
	}
	return marshalList(l)
}

func (l *Int64List) Scan(src interface{}) error {
	return scanList(src, l)
}

// PhaseList is the JSON-encoded phase structure column.
type PhaseList []Phase

func (l PhaseList) Value() (driver.Value, error) {
	if l == nil {
		l = PhaseList{}
	}
	return marshalList(l)
}

func (l *PhaseList) Scan(src interface{}) error {
	return scanList(src, l)
}

func marshalList(v interface{}) (driver.Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal list column: %w", err)
	}
	return string(raw), nil
}

func scanList(src, dst interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		raw = []byte("[]")
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported list column type %T", src)
	}
	if len(raw) == 0 {
		raw = []byte("[]")
	}
	return json.Unmarshal(raw, dst)
}
