package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

type EntryModel struct {
	ID         int64                `gorm:"primaryKey;autoIncrement"`
	EmployeeID int64                `gorm:"column:employee_id;not null;uniqueIndex:idx_employee_date"`
	Date       time.Time            `gorm:"column:date;type:date;not null;uniqueIndex:idx_employee_date"`
	CheckIn    string               `gorm:"column:check_in"`
	CheckOut   string               `gorm:"column:check_out"`
	Overtime   string               `gorm:"column:overtime"`
	Status     string               `gorm:"column:status;not null;default:Work"`
	HourBlocks timesheet.HourBlocks `gorm:"column:hour_blocks;type:text"`
	CreatedAt  time.Time            `gorm:"column:created_at"`
	UpdatedAt  time.Time            `gorm:"column:updated_at"`
}

func (EntryModel) TableName() string {
	return "timesheet_entries"
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertDay writes one employee-day. A conflict on (employee_id, date)
// replaces every mutable column, so the latest save always wins.
func (r *Repository) UpsertDay(ctx context.Context, entry *timesheet.Entry) error {
	model := toModel(entry)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"check_in", "check_out", "overtime", "status", "hour_blocks", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		return err
	}

	entry.ID = model.ID
	entry.CreatedAt = model.CreatedAt
	entry.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *Repository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*timesheet.Entry, error) {
	var model EntryModel
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, dateOnly(date)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, timesheet.ErrEntryNotFound
		}
		return nil, err
	}
	return toDomain(&model), nil
}

func (r *Repository) ListByEmployeeAndMonth(ctx context.Context, employeeID int64, year int, month time.Month) ([]timesheet.Entry, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var models []EntryModel
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date < ?", employeeID, from, to).
		Order("date ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(models), nil
}

func (r *Repository) ListByEmployee(ctx context.Context, employeeID int64) ([]timesheet.Entry, error) {
	var models []EntryModel
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(models), nil
}

func (r *Repository) ListAllOrdered(ctx context.Context) ([]timesheet.Entry, error) {
	var models []EntryModel
	err := r.db.WithContext(ctx).
		Order("date ASC, employee_id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(models), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*timesheet.Entry, error) {
	var model EntryModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, timesheet.ErrEntryNotFound
		}
		return nil, err
	}
	return toDomain(&model), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toModel(e *timesheet.Entry) *EntryModel {
	return &EntryModel{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       dateOnly(e.Date),
		CheckIn:    e.CheckIn,
		CheckOut:   e.CheckOut,
		Overtime:   e.Overtime,
		Status:     e.Status,
		HourBlocks: e.HourBlocks,
	}
}

func toDomain(m *EntryModel) *timesheet.Entry {
	return &timesheet.Entry{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Date:       m.Date,
		CheckIn:    m.CheckIn,
		CheckOut:   m.CheckOut,
		Overtime:   m.Overtime,
		Status:     m.Status,
		HourBlocks: m.HourBlocks,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toDomainList(models []EntryModel) []timesheet.Entry {
	entries := make([]timesheet.Entry, 0, len(models))
	for i := range models {
		entries = append(entries, *toDomain(&models[i]))
	}
	return entries
}
