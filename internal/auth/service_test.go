package auth_test

import (
	"context"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/timesheet-management/internal"
	"github.com/frahmantamala/timesheet-management/internal/auth"
	"github.com/frahmantamala/timesheet-management/internal/employee"
)

type mockCredentials struct {
	accounts map[string]*employee.Employee
}

func (m *mockCredentials) GetByEmail(_ context.Context, email string) (*employee.Employee, error) {
	if e, ok := m.accounts[email]; ok {
		return e, nil
	}
	return nil, employee.ErrEmployeeNotFound
}

var _ = Describe("Auth Service", func() {
	var (
		service *auth.Service
		tokens  *auth.TokenGenerator
		ctx     context.Context
	)

	security := internal.SecurityConfig{
		JWTAccessSecret:      "test-access-secret-test-access-secret",
		JWTRefreshSecret:     "test-refresh-secret-test-refresh-secret",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
	}

	BeforeEach(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		credentials := &mockCredentials{accounts: map[string]*employee.Employee{
			"asha@example.com": {
				ID:           7,
				Email:        "asha@example.com",
				FullName:     "Asha Nair",
				Role:         "employee",
				PasswordHash: string(hash),
			},
		}}

		tokens = auth.NewTokenGenerator(security)
		service = auth.NewService(slog.Default(), credentials, tokens)
		ctx = context.Background()
	})

	Describe("Login", func() {
		It("issues a token pair for valid credentials", func() {
			pair, account, err := service.Login(ctx, &auth.LoginRequest{Email: "Asha@Example.com", Password: "supersecret"})
			Expect(err).NotTo(HaveOccurred())
			Expect(account.ID).To(Equal(int64(7)))
			Expect(pair.AccessToken).NotTo(BeEmpty())
			Expect(pair.RefreshToken).NotTo(BeEmpty())

			user, err := service.ValidateAccess(pair.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(7)))
			Expect(user.Role).To(Equal("employee"))
		})

		It("rejects a wrong password with the same error as an unknown email", func() {
			_, _, wrongPass := service.Login(ctx, &auth.LoginRequest{Email: "asha@example.com", Password: "nope-nope"})
			_, _, unknown := service.Login(ctx, &auth.LoginRequest{Email: "ghost@example.com", Password: "supersecret"})
			Expect(wrongPass).To(MatchError(internal.ErrInvalidCredentials))
			Expect(unknown).To(MatchError(internal.ErrInvalidCredentials))
		})
	})

	Describe("Refresh", func() {
		It("rotates a valid refresh token", func() {
			pair, _, err := service.Login(ctx, &auth.LoginRequest{Email: "asha@example.com", Password: "supersecret"})
			Expect(err).NotTo(HaveOccurred())

			rotated, err := service.Refresh(ctx, pair.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(rotated.AccessToken).NotTo(BeEmpty())
		})

		It("refuses an access token passed as refresh token", func() {
			pair, _, err := service.Login(ctx, &auth.LoginRequest{Email: "asha@example.com", Password: "supersecret"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Refresh(ctx, pair.AccessToken)
			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})
	})

	Describe("ValidateAccess", func() {
		It("refuses garbage tokens", func() {
			_, err := service.ValidateAccess("not.a.token")
			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})

		It("refuses tokens signed with another secret", func() {
			other := auth.NewTokenGenerator(internal.SecurityConfig{
				JWTAccessSecret:      "other-access-secret-other-access-sec",
				JWTRefreshSecret:     "other-refresh-secret-other-refresh-s",
				AccessTokenDuration:  time.Minute,
				RefreshTokenDuration: time.Hour,
			})
			pair, err := other.GeneratePair(auth.User{ID: 7, Email: "asha@example.com", Role: "employee"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccess(pair.AccessToken)
			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})
	})
})
