package employee_test

import (
	"context"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/timesheet-management/internal"
	"github.com/frahmantamala/timesheet-management/internal/employee"
)

type mockRepo struct {
	byID   map[int64]*employee.Employee
	nextID int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{byID: make(map[int64]*employee.Employee), nextID: 1}
}

func (m *mockRepo) Create(_ context.Context, e *employee.Employee) error {
	for _, existing := range m.byID {
		if existing.Email == e.Email {
			return employee.ErrDuplicateEmail
		}
	}
	e.ID = m.nextID
	m.nextID++
	stored := *e
	m.byID[e.ID] = &stored
	return nil
}

func (m *mockRepo) Update(_ context.Context, e *employee.Employee) error {
	if _, ok := m.byID[e.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	stored := *e
	m.byID[e.ID] = &stored
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*employee.Employee, error) {
	if e, ok := m.byID[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, employee.ErrEmployeeNotFound
}

func (m *mockRepo) GetByEmail(_ context.Context, email string) (*employee.Employee, error) {
	for _, e := range m.byID {
		if e.Email == email {
			copied := *e
			return &copied, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (m *mockRepo) GetByResetToken(_ context.Context, token string) (*employee.Employee, error) {
	for _, e := range m.byID {
		if e.ResetToken != "" && e.ResetToken == token {
			copied := *e
			return &copied, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (m *mockRepo) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(m.byID))
	for _, e := range m.byID {
		out = append(out, *e)
	}
	return out, nil
}

func (m *mockRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.byID)), nil
}

func (m *mockRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	e, ok := m.byID[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.PasswordHash = hash
	return nil
}

func (m *mockRepo) SetResetToken(_ context.Context, id int64, token string, expiry time.Time) error {
	e, ok := m.byID[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.ResetToken = token
	e.ResetTokenExpiry = &expiry
	return nil
}

func (m *mockRepo) ClearResetToken(_ context.Context, id int64) error {
	e, ok := m.byID[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.ResetToken = ""
	e.ResetTokenExpiry = nil
	return nil
}

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) Send(_ context.Context, to, _, _ string) error {
	m.sent = append(m.sent, to)
	return nil
}

var _ = Describe("Employee Service", func() {
	var (
		repo    *mockRepo
		mailer  *recordingMailer
		service *employee.Service
		ctx     context.Context
	)

	security := internal.SecurityConfig{
		BCryptCost:         bcrypt.MinCost,
		ResetTokenDuration: 15 * time.Minute,
	}

	BeforeEach(func() {
		repo = newMockRepo()
		mailer = &recordingMailer{}
		service = employee.NewService(slog.Default(), repo, mailer, security, "http://localhost:3000")
		ctx = context.Background()
	})

	createRequest := func() *employee.CreateEmployeeRequest {
		return &employee.CreateEmployeeRequest{
			EmpID:      "EMP001",
			FullName:   "Asha Nair",
			Email:      "Asha@Example.com",
			Department: "Software",
			Password:   "supersecret",
		}
	}

	Describe("Create", func() {
		It("hashes the password and lowercases the email", func() {
			e, err := service.Create(ctx, createRequest())
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Email).To(Equal("asha@example.com"))
			Expect(e.Role).To(Equal(employee.RoleEmployee))
			Expect(bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte("supersecret"))).To(Succeed())
		})

		It("rejects short passwords", func() {
			req := createRequest()
			req.Password = "short"
			_, err := service.Create(ctx, req)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("maps duplicate emails to a conflict", func() {
			_, err := service.Create(ctx, createRequest())
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(ctx, createRequest())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeDuplicateEmployee))
		})
	})

	Describe("ForgotPassword", func() {
		It("stores a token and mails the employee", func() {
			e, err := service.Create(ctx, createRequest())
			Expect(err).NotTo(HaveOccurred())

			Expect(service.ForgotPassword(ctx, e.Email)).To(Succeed())
			Expect(mailer.sent).To(Equal([]string{"asha@example.com"}))

			stored, err := repo.GetByID(ctx, e.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.ResetToken).NotTo(BeEmpty())
			Expect(stored.ResetTokenExpiry).NotTo(BeNil())
		})

		It("does not reveal unknown emails", func() {
			Expect(service.ForgotPassword(ctx, "ghost@example.com")).To(Succeed())
			Expect(mailer.sent).To(BeEmpty())
		})
	})

	Describe("ResetPassword", func() {
		It("consumes a valid token and updates the password", func() {
			e, err := service.Create(ctx, createRequest())
			Expect(err).NotTo(HaveOccurred())
			Expect(service.ForgotPassword(ctx, e.Email)).To(Succeed())

			stored, err := repo.GetByID(ctx, e.ID)
			Expect(err).NotTo(HaveOccurred())

			req := &employee.ResetPasswordRequest{Token: stored.ResetToken, NewPassword: "brandnewpass"}
			Expect(service.ResetPassword(ctx, req)).To(Succeed())

			after, err := repo.GetByID(ctx, e.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("brandnewpass"))).To(Succeed())
			Expect(after.ResetToken).To(BeEmpty())
		})

		It("rejects an unknown token", func() {
			req := &employee.ResetPasswordRequest{Token: "nope", NewPassword: "brandnewpass"}
			err := service.ResetPassword(ctx, req)
			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})

		It("rejects an expired token", func() {
			e, err := service.Create(ctx, createRequest())
			Expect(err).NotTo(HaveOccurred())

			past := time.Now().Add(-time.Minute)
			Expect(repo.SetResetToken(ctx, e.ID, "expired-token", past)).To(Succeed())

			req := &employee.ResetPasswordRequest{Token: "expired-token", NewPassword: "brandnewpass"}
			err = service.ResetPassword(ctx, req)
			Expect(err).To(MatchError(internal.ErrTokenExpired))
		})
	})

	Describe("MembersByIDs", func() {
		It("skips ids that no longer resolve", func() {
			e, err := service.Create(ctx, createRequest())
			Expect(err).NotTo(HaveOccurred())

			members, err := service.MembersByIDs(ctx, []int64{e.ID, 999})
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(HaveLen(1))
			Expect(members[0].FullName).To(Equal("Asha Nair"))
		})
	})
})
