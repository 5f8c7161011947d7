package project

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/timesheet-management/internal"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

var ErrProjectNotFound = errors.New("project not found")

type Repository interface {
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context) ([]Project, error)
}

// EntrySource supplies the timesheet entries the rollups read.
type EntrySource interface {
	ListAllOrdered(ctx context.Context) ([]timesheet.Entry, error)
}

// MemberSource resolves assigned member ids to display data.
type MemberSource interface {
	MembersByIDs(ctx context.Context, ids []int64) ([]Member, error)
}

type ServiceAPI interface {
	Create(ctx context.Context, req *ProjectRequest) (*Project, error)
	Update(ctx context.Context, id int64, req *ProjectRequest) (*Project, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	Staffing(ctx context.Context, projectID int64, dept string) (*Staffing, error)
	EmployeeHours(ctx context.Context, employeeID int64, projectName, phaseName string) (int, error)
}

type Service struct {
	logger  *slog.Logger
	repo    Repository
	entries EntrySource
	members MemberSource
}

func NewService(logger *slog.Logger, repo Repository, entries EntrySource, members MemberSource) *Service {
	return &Service{
		logger:  logger,
		repo:    repo,
		entries: entries,
		members: members,
	}
}

func (s *Service) Create(ctx context.Context, req *ProjectRequest) (*Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToProject()
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("project create failed", "name", req.ProjectName, "error", err)
		return nil, internal.NewInternalError("failed to create project", err)
	}

	s.logger.Info("project created", "project_id", p.ID, "name", p.ProjectName)
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *ProjectRequest) (*Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFoundOrInternal(err)
	}

	updated := req.ToProject()
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, updated); err != nil {
		s.logger.Error("project update failed", "project_id", id, "error", err)
		return nil, internal.NewInternalError("failed to update project", err)
	}
	return updated, nil
}

// Delete removes the project record. Timesheet blocks referencing the
// project name are left untouched; rollups over a deleted name just
// stop finding a project to attach to.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return s.notFoundOrInternal(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("project delete failed", "project_id", id, "error", err)
		return internal.NewInternalError("failed to delete project", err)
	}
	s.logger.Info("project deleted", "project_id", id)
	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFoundOrInternal(err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal.NewInternalError("failed to list projects", err)
	}
	return projects, nil
}

// Staffing builds the per-department contribution table for a project.
func (s *Service) Staffing(ctx context.Context, projectID int64, dept string) (*Staffing, error) {
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, s.notFoundOrInternal(err)
	}

	members, err := s.members.MembersByIDs(ctx, p.AssignedMemberIDs)
	if err != nil {
		return nil, internal.NewInternalError("failed to load members", err)
	}

	entries, err := s.entries.ListAllOrdered(ctx)
	if err != nil {
		return nil, internal.NewInternalError("failed to load timesheets", err)
	}

	staffing := StaffingTable(*p, dept, members, entries)
	return &staffing, nil
}

// EmployeeHours counts one employee's hours on a project, optionally
// narrowed to a phase.
func (s *Service) EmployeeHours(ctx context.Context, employeeID int64, projectName, phaseName string) (int, error) {
	entries, err := s.entries.ListAllOrdered(ctx)
	if err != nil {
		return 0, internal.NewInternalError("failed to load timesheets", err)
	}
	if phaseName != "" {
		return HoursForEmployeeOnProjectPhase(employeeID, projectName, phaseName, entries), nil
	}
	return HoursForEmployeeOnProject(employeeID, projectName, entries), nil
}

func (s *Service) notFoundOrInternal(err error) error {
	if errors.Is(err, ErrProjectNotFound) {
		return internal.NewNotFoundError("project not found", internal.ErrCodeProjectNotFound)
	}
	return internal.NewInternalError("failed to load project", err)
}
