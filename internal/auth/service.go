package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/timesheet-management/internal"
	"github.com/frahmantamala/timesheet-management/internal/employee"
)

// CredentialSource looks up login accounts. The employee module
// implements it.
type CredentialSource interface {
	GetByEmail(ctx context.Context, email string) (*employee.Employee, error)
}

type ServiceAPI interface {
	Login(ctx context.Context, req *LoginRequest) (*TokenPair, *employee.Employee, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	ValidateAccess(token string) (*User, error)
}

type Service struct {
	logger      *slog.Logger
	credentials CredentialSource
	tokens      *TokenGenerator
}

func NewService(logger *slog.Logger, credentials CredentialSource, tokens *TokenGenerator) *Service {
	return &Service{
		logger:      logger,
		credentials: credentials,
		tokens:      tokens,
	}
}

// Login verifies the password and issues a token pair. Lookup and
// password failures collapse into one error so the endpoint does not
// reveal which part was wrong.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*TokenPair, *employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	account, err := s.credentials.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, nil, internal.ErrInvalidCredentials
		}
		s.logger.Error("credential lookup failed", "error", err)
		return nil, nil, internal.NewInternalError("failed to verify credentials", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Info("login rejected", "employee_id", account.ID)
		return nil, nil, internal.ErrInvalidCredentials
	}

	pair, err := s.tokens.GeneratePair(User{ID: account.ID, Email: account.Email, Role: account.Role})
	if err != nil {
		return nil, nil, internal.NewInternalError("failed to issue tokens", err)
	}

	s.logger.Info("login succeeded", "employee_id", account.ID)
	return pair, account, nil
}

// Refresh trades a valid refresh token for a fresh pair. The account
// is re-read so role changes take effect on rotation.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	account, err := s.credentials.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, internal.ErrInvalidToken
		}
		return nil, internal.NewInternalError("failed to verify account", err)
	}

	pair, err := s.tokens.GeneratePair(User{ID: account.ID, Email: account.Email, Role: account.Role})
	if err != nil {
		return nil, internal.NewInternalError("failed to issue tokens", err)
	}
	return pair, nil
}

// ValidateAccess resolves an access token into an identity.
func (s *Service) ValidateAccess(token string) (*User, error) {
	claims, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}
	return &User{ID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
