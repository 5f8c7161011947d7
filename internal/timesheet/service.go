package timesheet

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/timesheet-management/internal"
)

var ErrEntryNotFound = errors.New("timesheet entry not found")

// Repository persists timesheet entries.
type Repository interface {
	UpsertDay(ctx context.Context, entry *Entry) error
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Entry, error)
	ListByEmployeeAndMonth(ctx context.Context, employeeID int64, year int, month time.Month) ([]Entry, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Entry, error)
	ListAllOrdered(ctx context.Context) ([]Entry, error)
	GetByID(ctx context.Context, id int64) (*Entry, error)
}

// EmployeeDirectory resolves login emails to employee ids.
type EmployeeDirectory interface {
	IDByEmail(ctx context.Context, email string) (int64, error)
}

type ServiceAPI interface {
	SaveDay(ctx context.Context, req *SaveDayRequest) (*Entry, error)
	DayForEmployee(ctx context.Context, employeeID int64, date time.Time) (*Entry, error)
	MonthForEmployee(ctx context.Context, employeeID int64, year int, month time.Month) ([]Entry, error)
	AllForEmployee(ctx context.Context, employeeID int64) ([]Entry, error)
	AllEntries(ctx context.Context) ([]Entry, error)
	EntryByID(ctx context.Context, id int64) (*Entry, error)
}

type Service struct {
	logger    *slog.Logger
	repo      Repository
	directory EmployeeDirectory
}

func NewService(logger *slog.Logger, repo Repository, directory EmployeeDirectory) *Service {
	return &Service{
		logger:    logger,
		repo:      repo,
		directory: directory,
	}
}

// SaveDay validates and stores one employee-day. The stored row is
// keyed (employee, date); a second save for the same day replaces the
// first entirely.
func (s *Service) SaveDay(ctx context.Context, req *SaveDayRequest) (*Entry, error) {
	if err := req.Validate(); err != nil {
		s.logger.Error("timesheet save validation failed", "error", err)
		return nil, err
	}

	employeeID, err := s.directory.IDByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("employee lookup failed", "email", req.Email, "error", err)
		return nil, internal.NewNotFoundError("employee not found", internal.ErrCodeEmployeeNotFound).WithCause(err)
	}

	entry := &Entry{
		EmployeeID: employeeID,
		Date:       req.ParsedDate(),
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Overtime:   req.Overtime,
		Status:     NormalizeStatus(req.Status),
		HourBlocks: req.HourBlocks,
	}
	if entry.HourBlocks == nil {
		entry.HourBlocks = HourBlocks{}
	}

	if err := s.repo.UpsertDay(ctx, entry); err != nil {
		s.logger.Error("timesheet upsert failed", "employee_id", employeeID, "date", req.Date, "error", err)
		return nil, internal.NewInternalError("failed to save timesheet", err)
	}

	s.logger.Info("timesheet day saved", "employee_id", employeeID, "date", req.Date, "hours", entry.CountedHours())
	return entry, nil
}

func (s *Service) DayForEmployee(ctx context.Context, employeeID int64, date time.Time) (*Entry, error) {
	entry, err := s.repo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, internal.NewNotFoundError("no timesheet for that day", internal.ErrCodeTimesheetNotFound)
		}
		return nil, internal.NewInternalError("failed to load timesheet", err)
	}
	return entry, nil
}

func (s *Service) MonthForEmployee(ctx context.Context, employeeID int64, year int, month time.Month) ([]Entry, error) {
	entries, err := s.repo.ListByEmployeeAndMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, internal.NewInternalError("failed to load month", err)
	}
	return entries, nil
}

func (s *Service) AllForEmployee(ctx context.Context, employeeID int64) ([]Entry, error) {
	entries, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load timesheets", err)
	}
	return entries, nil
}

// AllEntries returns every stored entry ordered by date, oldest first.
func (s *Service) AllEntries(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.ListAllOrdered(ctx)
	if err != nil {
		return nil, internal.NewInternalError("failed to load timesheets", err)
	}
	return entries, nil
}

func (s *Service) EntryByID(ctx context.Context, id int64) (*Entry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, internal.NewNotFoundError("timesheet not found", internal.ErrCodeTimesheetNotFound)
		}
		return nil, internal.NewInternalError("failed to load timesheet", err)
	}
	return entry, nil
}
