package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/timesheet-management/internal/employee"
)

type EmployeeModel struct {
	ID               int64      `gorm:"primaryKey;autoIncrement"`
	EmpID            string     `gorm:"column:emp_id;uniqueIndex;not null"`
	FullName         string     `gorm:"column:full_name;not null"`
	Email            string     `gorm:"column:email;uniqueIndex;not null"`
	Phone            string     `gorm:"column:phone"`
	Department       string     `gorm:"column:department"`
	Role             string     `gorm:"column:role;not null;default:employee"`
	PasswordHash     string     `gorm:"column:password_hash;not null"`
	ImagePath        string     `gorm:"column:image_path"`
	Gender           string     `gorm:"column:gender"`
	ResetToken       string     `gorm:"column:reset_token;index"`
	ResetTokenExpiry *time.Time `gorm:"column:reset_token_expiry"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, e *employee.Employee) error {
	model := toModel(e)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return employee.ErrDuplicateEmail
		}
		return err
	}
	e.ID = model.ID
	e.CreatedAt = model.CreatedAt
	e.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *Repository) Update(ctx context.Context, e *employee.Employee) error {
	result := r.db.WithContext(ctx).Model(&EmployeeModel{}).Where("id = ?", e.ID).Updates(map[string]interface{}{
		"full_name":  e.FullName,
		"phone":      e.Phone,
		"department": e.Department,
		"role":       e.Role,
		"image_path": e.ImagePath,
		"gender":     e.Gender,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&EmployeeModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	var model EmployeeModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return toDomain(&model), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	var model EmployeeModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return toDomain(&model), nil
}

func (r *Repository) GetByResetToken(ctx context.Context, token string) (*employee.Employee, error) {
	if token == "" {
		return nil, employee.ErrEmployeeNotFound
	}
	var model EmployeeModel
	err := r.db.WithContext(ctx).Where("reset_token = ?", token).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return toDomain(&model), nil
}

func (r *Repository) List(ctx context.Context) ([]employee.Employee, error) {
	var models []EmployeeModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	employees := make([]employee.Employee, 0, len(models))
	for i := range models {
		employees = append(employees, *toDomain(&models[i]))
	}
	return employees, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&EmployeeModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&EmployeeModel{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *Repository) SetResetToken(ctx context.Context, id int64, token string, expiry time.Time) error {
	result := r.db.WithContext(ctx).Model(&EmployeeModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *Repository) ClearResetToken(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&EmployeeModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reset_token":        "",
		"reset_token_expiry": nil,
	}).Error
}

// isUniqueViolation matches both postgres and the sqlite test driver.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

func toModel(e *employee.Employee) *EmployeeModel {
	return &EmployeeModel{
		ID:               e.ID,
		EmpID:            e.EmpID,
		FullName:         e.FullName,
		Email:            e.Email,
		Phone:            e.Phone,
		Department:       e.Department,
		Role:             e.Role,
		PasswordHash:     e.PasswordHash,
		ImagePath:        e.ImagePath,
		Gender:           e.Gender,
		ResetToken:       e.ResetToken,
		ResetTokenExpiry: e.ResetTokenExpiry,
	}
}

func toDomain(m *EmployeeModel) *employee.Employee {
	return &employee.Employee{
		ID:               m.ID,
		EmpID:            m.EmpID,
		FullName:         m.FullName,
		Email:            m.Email,
		Phone:            m.Phone,
		Department:       m.Department,
		Role:             m.Role,
		PasswordHash:     m.PasswordHash,
		ImagePath:        m.ImagePath,
		Gender:           m.Gender,
		ResetToken:       m.ResetToken,
		ResetTokenExpiry: m.ResetTokenExpiry,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
