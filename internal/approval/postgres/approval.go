package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/timesheet-management/internal/approval"
)

type RecordModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	TimesheetID int64     `gorm:"column:timesheet_id;not null;index"`
	EmployeeID  int64     `gorm:"column:employee_id;not null;index"`
	Status      string    `gorm:"column:status;not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (RecordModel) TableName() string {
	return "approvals"
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, rec *approval.Record) error {
	model := &RecordModel{
		TimesheetID: rec.TimesheetID,
		EmployeeID:  rec.EmployeeID,
		Status:      rec.Status,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	rec.ID = model.ID
	rec.CreatedAt = model.CreatedAt
	return nil
}

func (r *Repository) ListByTimesheet(ctx context.Context, timesheetID int64) ([]approval.Record, error) {
	var models []RecordModel
	err := r.db.WithContext(ctx).
		Where("timesheet_id = ?", timesheetID).
		Order("created_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(models), nil
}

func (r *Repository) ListByEmployee(ctx context.Context, employeeID int64) ([]approval.Record, error) {
	var models []RecordModel
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(models), nil
}

func toDomainList(models []RecordModel) []approval.Record {
	records := make([]approval.Record, 0, len(models))
	for _, m := range models {
		records = append(records, approval.Record{
			ID:          m.ID,
			TimesheetID: m.TimesheetID,
			EmployeeID:  m.EmployeeID,
			Status:      m.Status,
			CreatedAt:   m.CreatedAt,
		})
	}
	return records
}
