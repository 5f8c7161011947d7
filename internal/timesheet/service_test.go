package timesheet_test

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/timesheet-management/internal"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

type mockRepo struct {
	entries map[string]*timesheet.Entry
	nextID  int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{entries: make(map[string]*timesheet.Entry), nextID: 1}
}

func dayKey(employeeID int64, date time.Time) string {
	return fmt.Sprintf("%d/%s", employeeID, date.Format("2006-01-02"))
}

func (m *mockRepo) UpsertDay(_ context.Context, entry *timesheet.Entry) error {
	key := dayKey(entry.EmployeeID, entry.Date)
	if existing, ok := m.entries[key]; ok {
		entry.ID = existing.ID
	} else {
		entry.ID = m.nextID
		m.nextID++
	}
	stored := *entry
	m.entries[key] = &stored
	return nil
}

func (m *mockRepo) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) (*timesheet.Entry, error) {
	if e, ok := m.entries[dayKey(employeeID, date)]; ok {
		return e, nil
	}
	return nil, timesheet.ErrEntryNotFound
}

func (m *mockRepo) ListByEmployeeAndMonth(_ context.Context, employeeID int64, year int, month time.Month) ([]timesheet.Entry, error) {
	var out []timesheet.Entry
	for _, e := range m.entries {
		if e.EmployeeID == employeeID && e.Date.Year() == year && e.Date.Month() == month {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByEmployee(_ context.Context, employeeID int64) ([]timesheet.Entry, error) {
	var out []timesheet.Entry
	for _, e := range m.entries {
		if e.EmployeeID == employeeID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockRepo) ListAllOrdered(_ context.Context) ([]timesheet.Entry, error) {
	var out []timesheet.Entry
	for _, e := range m.entries {
		out = append(out, *e)
	}
	return out, nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*timesheet.Entry, error) {
	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, timesheet.ErrEntryNotFound
}

type mockDirectory struct {
	byEmail map[string]int64
}

func (m *mockDirectory) IDByEmail(_ context.Context, email string) (int64, error) {
	if id, ok := m.byEmail[email]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("no employee with email %s", email)
}

var _ = Describe("Timesheet Service", func() {
	var (
		repo      *mockRepo
		directory *mockDirectory
		service   *timesheet.Service
		ctx       context.Context
	)

	BeforeEach(func() {
		repo = newMockRepo()
		directory = &mockDirectory{byEmail: map[string]int64{"dina@example.com": 7}}
		service = timesheet.NewService(slog.Default(), repo, directory)
		ctx = context.Background()
	})

	validRequest := func() *timesheet.SaveDayRequest {
		return &timesheet.SaveDayRequest{
			Email:    "dina@example.com",
			Date:     "2024-01-15",
			CheckIn:  "09:00:00",
			CheckOut: "18:00:00",
			Status:   "work",
			HourBlocks: []timesheet.HourBlock{{
				Hour:            "9 AM - 10 AM",
				ProjectType:     "billable",
				ProjectCategory: "Software",
				ProjectName:     "Apollo",
				ProjectPhase:    "Development",
				ProjectTask:     "Coding",
			}},
		}
	}

	Describe("SaveDay", func() {
		It("stores the day against the resolved employee", func() {
			entry, err := service.SaveDay(ctx, validRequest())
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.EmployeeID).To(Equal(int64(7)))
			Expect(entry.Status).To(Equal(timesheet.StatusWork))
		})

		It("replaces the whole day on a second save", func() {
			first, err := service.SaveDay(ctx, validRequest())
			Expect(err).NotTo(HaveOccurred())

			req := validRequest()
			req.Status = "Leave"
			req.HourBlocks = nil
			second, err := service.SaveDay(ctx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))

			stored, err := service.DayForEmployee(ctx, 7, second.Date)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(Equal(timesheet.StatusLeave))
			Expect(stored.HourBlocks).To(BeEmpty())
		})

		It("rejects a request without a parseable date", func() {
			req := validRequest()
			req.Date = "15/01/2024"
			_, err := service.SaveDay(ctx, req)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("returns not found for an unknown email", func() {
			req := validRequest()
			req.Email = "ghost@example.com"
			_, err := service.SaveDay(ctx, req)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeEmployeeNotFound))
		})
	})

	Describe("DayForEmployee", func() {
		It("maps a missing day to a not found error", func() {
			_, err := service.DayForEmployee(ctx, 7, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeTimesheetNotFound))
		})
	})

	Describe("MonthForEmployee", func() {
		It("returns only the requested month", func() {
			for _, date := range []string{"2024-01-15", "2024-01-16", "2024-02-01"} {
				req := validRequest()
				req.Date = date
				_, err := service.SaveDay(ctx, req)
				Expect(err).NotTo(HaveOccurred())
			}

			entries, err := service.MonthForEmployee(ctx, 7, 2024, time.January)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
		})
	})
})
