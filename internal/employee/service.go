package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/timesheet-management/internal"
	"github.com/frahmantamala/timesheet-management/internal/project"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDuplicateEmail   = errors.New("email already registered")
)

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	GetByResetToken(ctx context.Context, token string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Count(ctx context.Context) (int64, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetResetToken(ctx context.Context, id int64, token string, expiry time.Time) error
	ClearResetToken(ctx context.Context, id int64) error
}

type ServiceAPI interface {
	Create(ctx context.Context, req *CreateEmployeeRequest) (*Employee, error)
	Update(ctx context.Context, id int64, req *UpdateEmployeeRequest) (*Employee, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Count(ctx context.Context) (int64, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
}

type Service struct {
	logger     *slog.Logger
	repo       Repository
	mailer     Mailer
	bcryptCost int
	resetTTL   time.Duration
	baseURL    string
	now        func() time.Time
}

func NewService(logger *slog.Logger, repo Repository, mailer Mailer, security internal.SecurityConfig, baseURL string) *Service {
	return &Service{
		logger:     logger,
		repo:       repo,
		mailer:     mailer,
		bcryptCost: security.BCryptCost,
		resetTTL:   security.ResetTokenDuration,
		baseURL:    baseURL,
		now:        time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateEmployeeRequest) (*Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	role := strings.ToLower(req.Role)
	if role == "" {
		role = RoleEmployee
	}

	e := &Employee{
		EmpID:        req.EmpID,
		FullName:     req.FullName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Department:   req.Department,
		Role:         role,
		PasswordHash: string(hash),
		ImagePath:    req.ImagePath,
		Gender:       req.Gender,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, internal.NewConflictError("email already registered", internal.ErrCodeDuplicateEmployee)
		}
		s.logger.Error("employee create failed", "email", e.Email, "error", err)
		return nil, internal.NewInternalError("failed to create employee", err)
	}

	s.logger.Info("employee created", "employee_id", e.ID, "emp_id", e.EmpID)
	return e, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateEmployeeRequest) (*Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFoundOrInternal(err)
	}

	if req.FullName != "" {
		e.FullName = req.FullName
	}
	if req.Phone != "" {
		e.Phone = req.Phone
	}
	if req.Department != "" {
		e.Department = req.Department
	}
	if req.Role != "" {
		if !strings.EqualFold(req.Role, RoleAdmin) && !strings.EqualFold(req.Role, RoleEmployee) {
			return nil, internal.NewValidationError("role must be admin or employee", internal.ErrCodeValidationFailed)
		}
		e.Role = strings.ToLower(req.Role)
	}
	if req.ImagePath != "" {
		e.ImagePath = req.ImagePath
	}
	if req.Gender != "" {
		e.Gender = req.Gender
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("employee update failed", "employee_id", id, "error", err)
		return nil, internal.NewInternalError("failed to update employee", err)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return s.notFoundOrInternal(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("employee delete failed", "employee_id", id, "error", err)
		return internal.NewInternalError("failed to delete employee", err)
	}
	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFoundOrInternal(err)
	}
	return e, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*Employee, error) {
	e, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, s.notFoundOrInternal(err)
	}
	return e, nil
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	return employees, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, internal.NewInternalError("failed to count employees", err)
	}
	return count, nil
}

// ForgotPassword issues a short-lived reset token and mails the link.
// An unknown email is treated as success so the endpoint does not leak
// which addresses exist.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	e, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			s.logger.Info("password reset requested for unknown email")
			return nil
		}
		return internal.NewInternalError("failed to load employee", err)
	}

	token := uuid.NewString()
	expiry := s.now().Add(s.resetTTL)
	if err := s.repo.SetResetToken(ctx, e.ID, token, expiry); err != nil {
		s.logger.Error("reset token store failed", "employee_id", e.ID, "error", err)
		return internal.NewInternalError("failed to issue reset token", err)
	}

	body := fmt.Sprintf("A password reset was requested for your account.\n\nReset link: %s/reset-password?token=%s\n\nThe link expires in %s.",
		s.baseURL, token, s.resetTTL)
	if err := s.mailer.Send(ctx, e.Email, "Password reset", body); err != nil {
		s.logger.Error("reset mail failed", "employee_id", e.ID, "error", err)
		return internal.NewInternalError("failed to send reset mail", err)
	}

	s.logger.Info("password reset issued", "employee_id", e.ID)
	return nil
}

// ResetPassword consumes a reset token and stores the new password
// hash. Tokens are single use.
func (s *Service) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	e, err := s.repo.GetByResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			return internal.ErrInvalidToken
		}
		return internal.NewInternalError("failed to load employee", err)
	}

	if !e.ResetTokenValid(req.Token, s.now()) {
		return internal.ErrTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.bcryptCost)
	if err != nil {
		return internal.NewInternalError("failed to hash password", err)
	}

	if err := s.repo.UpdatePassword(ctx, e.ID, string(hash)); err != nil {
		return internal.NewInternalError("failed to update password", err)
	}
	if err := s.repo.ClearResetToken(ctx, e.ID); err != nil {
		s.logger.Error("reset token clear failed", "employee_id", e.ID, "error", err)
	}

	s.logger.Info("password reset completed", "employee_id", e.ID)
	return nil
}

// IDByEmail implements the timesheet module's employee directory.
func (s *Service) IDByEmail(ctx context.Context, email string) (int64, error) {
	e, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return 0, err
	}
	return e.ID, nil
}

// MembersByIDs implements the project module's member source.
func (s *Service) MembersByIDs(ctx context.Context, ids []int64) ([]project.Member, error) {
	members := make([]project.Member, 0, len(ids))
	for _, id := range ids {
		e, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrEmployeeNotFound) {
				continue
			}
			return nil, err
		}
		members = append(members, project.Member{
			ID:         e.ID,
			FullName:   e.FullName,
			Department: e.Department,
		})
	}
	return members, nil
}

func (s *Service) notFoundOrInternal(err error) error {
	if errors.Is(err, ErrEmployeeNotFound) {
		return internal.NewNotFoundError("employee not found", internal.ErrCodeEmployeeNotFound)
	}
	return internal.NewInternalError("failed to load employee", err)
}
