package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/timesheet-management/internal"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

// ReadModel is the reporting-side view of stored data. It is backed by
// plain SQL rather than the write-side repositories because reports
// scan across employees and months.
type ReadModel interface {
	Roster(ctx context.Context) ([]RosterEmployee, error)
	EmployeeByID(ctx context.Context, id int64) (*RosterEmployee, error)
	EntriesForYear(ctx context.Context, year int) ([]timesheet.Entry, error)
	EntriesForEmployeeRange(ctx context.Context, employeeID int64, from, to time.Time) ([]timesheet.Entry, error)
	EntriesForEmployee(ctx context.Context, employeeID int64) ([]timesheet.Entry, error)
}

type ServiceAPI interface {
	AllEmployees(ctx context.Context, year int) (*AllEmployeesReport, error)
	EmployeeRange(ctx context.Context, employeeID int64, from, to time.Time) (*RangeReport, error)
	EmployeeSummary(ctx context.Context, employeeID int64, f Filter) (Summary, error)
}

type Service struct {
	logger     *slog.Logger
	readModel  ReadModel
	dailyHours int
}

func NewService(logger *slog.Logger, readModel ReadModel, dailyHours int) *Service {
	if dailyHours <= 0 {
		dailyHours = internal.DefaultDailyWorkHours
	}
	return &Service{
		logger:     logger,
		readModel:  readModel,
		dailyHours: dailyHours,
	}
}

// AllEmployees builds the yearly report across the whole non-admin
// roster. Validation failures surface before any data is loaded.
func (s *Service) AllEmployees(ctx context.Context, year int) (*AllEmployeesReport, error) {
	if year == 0 {
		return nil, internal.NewValidationError("year is required", internal.ErrCodeYearRequired)
	}

	roster, err := s.readModel.Roster(ctx)
	if err != nil {
		s.logger.Error("roster load failed", "error", err)
		return nil, internal.NewInternalError("failed to load employees", err)
	}

	entries, err := s.readModel.EntriesForYear(ctx, year)
	if err != nil {
		s.logger.Error("entries load failed", "year", year, "error", err)
		return nil, internal.NewInternalError("failed to load timesheets", err)
	}

	report, err := BuildAllEmployeesReport(roster, entries, year, s.dailyHours)
	if err != nil {
		return nil, err
	}

	s.logger.Info("all-employees report built", "year", year, "rows", len(report.Rows))
	return report, nil
}

// EmployeeRange builds the per-day report for one employee over an
// inclusive date range.
func (s *Service) EmployeeRange(ctx context.Context, employeeID int64, from, to time.Time) (*RangeReport, error) {
	if from.IsZero() || to.IsZero() {
		return nil, internal.NewValidationError("from and to dates are required", internal.ErrCodeRangeRequired)
	}

	employee, err := s.readModel.EmployeeByID(ctx, employeeID)
	if err != nil {
		s.logger.Error("employee load failed", "employee_id", employeeID, "error", err)
		return nil, internal.NewNotFoundError("employee not found", internal.ErrCodeEmployeeNotFound).WithCause(err)
	}

	entries, err := s.readModel.EntriesForEmployeeRange(ctx, employeeID, from, to)
	if err != nil {
		s.logger.Error("entries load failed", "employee_id", employeeID, "error", err)
		return nil, internal.NewInternalError("failed to load timesheets", err)
	}

	return BuildEmployeeRangeReport(*employee, entries, from, to)
}

// EmployeeSummary aggregates one employee's hours under a filter
// without building a downloadable report.
func (s *Service) EmployeeSummary(ctx context.Context, employeeID int64, f Filter) (Summary, error) {
	entries, err := s.readModel.EntriesForEmployee(ctx, employeeID)
	if err != nil {
		return Summary{}, internal.NewInternalError("failed to load timesheets", err)
	}
	return AggregateHours(employeeID, entries, f), nil
}
