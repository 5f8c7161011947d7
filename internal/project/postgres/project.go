package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/timesheet-management/internal/project"
)

type ProjectModel struct {
	ID                int64              `gorm:"primaryKey;autoIncrement"`
	ProjectName       string             `gorm:"column:project_name;not null"`
	ClientName        string             `gorm:"column:client_name"`
	ProjectType       string             `gorm:"column:project_type"`
	Description       string             `gorm:"column:description"`
	Departments       project.StringList `gorm:"column:departments;type:text"`
	PlannedStart      *time.Time         `gorm:"column:planned_start;type:date"`
	PlannedEnd        *time.Time         `gorm:"column:planned_end;type:date"`
	ActualStart       *time.Time         `gorm:"column:actual_start;type:date"`
	ActualEnd         *time.Time         `gorm:"column:actual_end;type:date"`
	Status            string             `gorm:"column:status;not null;default:yet to start"`
	AssignedMemberIDs project.Int64List  `gorm:"column:assigned_member_ids;type:text"`
	Phases            project.PhaseList  `gorm:"column:phases;type:text"`
	CreatedAt         time.Time          `gorm:"column:created_at"`
	UpdatedAt         time.Time          `gorm:"column:updated_at"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *project.Project) error {
	model := toModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *Repository) Update(ctx context.Context, p *project.Project) error {
	model := toModel(p)
	result := r.db.WithContext(ctx).Model(&ProjectModel{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"project_name":        model.ProjectName,
		"client_name":         model.ClientName,
		"project_type":        model.ProjectType,
		"description":         model.Description,
		"departments":         model.Departments,
		"planned_start":       model.PlannedStart,
		"planned_end":         model.PlannedEnd,
		"actual_start":        model.ActualStart,
		"actual_end":          model.ActualEnd,
		"status":              model.Status,
		"assigned_member_ids": model.AssignedMemberIDs,
		"phases":              model.Phases,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ProjectModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	var model ProjectModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, project.ErrProjectNotFound
		}
		return nil, err
	}
	return toDomain(&model), nil
}

func (r *Repository) List(ctx context.Context) ([]project.Project, error) {
	var models []ProjectModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	projects := make([]project.Project, 0, len(models))
	for i := range models {
		projects = append(projects, *toDomain(&models[i]))
	}
	return projects, nil
}

func toModel(p *project.Project) *ProjectModel {
	return &ProjectModel{
		ID:                p.ID,
		ProjectName:       p.ProjectName,
		ClientName:        p.ClientName,
		ProjectType:       p.ProjectType,
		Description:       p.Description,
		Departments:       p.Departments,
		PlannedStart:      p.PlannedStart,
		PlannedEnd:        p.PlannedEnd,
		ActualStart:       p.ActualStart,
		ActualEnd:         p.ActualEnd,
		Status:            p.Status,
		AssignedMemberIDs: p.AssignedMemberIDs,
		Phases:            p.Phases,
	}
}

func toDomain(m *ProjectModel) *project.Project {
	return &project.Project{
		ID:                m.ID,
		ProjectName:       m.ProjectName,
		ClientName:        m.ClientName,
		ProjectType:       m.ProjectType,
		Description:       m.Description,
		Departments:       m.Departments,
		PlannedStart:      m.PlannedStart,
		PlannedEnd:        m.PlannedEnd,
		ActualStart:       m.ActualStart,
		ActualEnd:         m.ActualEnd,
		Status:            m.Status,
		AssignedMemberIDs: m.AssignedMemberIDs,
		Phases:            m.Phases,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
