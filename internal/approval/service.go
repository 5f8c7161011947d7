package approval

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/timesheet-management/internal"
	"github.com/frahmantamala/timesheet-management/internal/core/events"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

type Repository interface {
	Insert(ctx context.Context, rec *Record) error
	ListByTimesheet(ctx context.Context, timesheetID int64) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Record, error)
}

// EntryGetter resolves the reviewed timesheet entry so the decision
// can denormalize its employee id.
type EntryGetter interface {
	EntryByID(ctx context.Context, id int64) (*timesheet.Entry, error)
}

// EventPublisher is the slice of the event bus the service needs.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

type ServiceAPI interface {
	Review(ctx context.Context, timesheetID int64, req *ReviewRequest) (*Record, error)
	HistoryForTimesheet(ctx context.Context, timesheetID int64) ([]Record, error)
	HistoryForEmployee(ctx context.Context, employeeID int64) ([]Record, error)
}

type Service struct {
	logger    *slog.Logger
	repo      Repository
	entries   EntryGetter
	publisher EventPublisher
}

func NewService(logger *slog.Logger, repo Repository, entries EntryGetter, publisher EventPublisher) *Service {
	return &Service{
		logger:    logger,
		repo:      repo,
		entries:   entries,
		publisher: publisher,
	}
}

// Review records an approve/reject decision for a timesheet entry and
// publishes the matching event. Earlier decisions stay in place.
func (s *Service) Review(ctx context.Context, timesheetID int64, req *ReviewRequest) (*Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.EntryByID(ctx, timesheetID)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		TimesheetID: entry.ID,
		EmployeeID:  entry.EmployeeID,
		Status:      req.Status,
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		s.logger.Error("approval insert failed", "timesheet_id", timesheetID, "error", err)
		return nil, internal.NewInternalError("failed to record decision", err)
	}

	reviewedBy := internal.UserIDFromContext(ctx)
	if req.Status == StatusApproved {
		s.publisher.Publish(ctx, events.NewTimesheetApprovedEvent(entry.ID, entry.EmployeeID, reviewedBy))
	} else {
		s.publisher.Publish(ctx, events.NewTimesheetRejectedEvent(entry.ID, entry.EmployeeID, reviewedBy))
	}

	s.logger.Info("timesheet reviewed", "timesheet_id", entry.ID, "status", req.Status)
	return rec, nil
}

func (s *Service) HistoryForTimesheet(ctx context.Context, timesheetID int64) ([]Record, error) {
	records, err := s.repo.ListByTimesheet(ctx, timesheetID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load approvals", err)
	}
	return records, nil
}

func (s *Service) HistoryForEmployee(ctx context.Context, employeeID int64) ([]Record, error) {
	records, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load approvals", err)
	}
	return records, nil
}
