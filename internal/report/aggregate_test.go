package report_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/timesheet-management/internal/calendar"
	"github.com/frahmantamala/timesheet-management/internal/report"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

func block(hour, project, phase string) timesheet.HourBlock {
	return timesheet.HourBlock{
		Hour:            hour,
		ProjectType:     "billable",
		ProjectCategory: "Software",
		ProjectName:     project,
		ProjectPhase:    phase,
		ProjectTask:     "Coding",
	}
}

func workDay(employeeID int64, date string, blocks ...timesheet.HourBlock) timesheet.Entry {
	d, err := time.Parse("2006-01-02", date)
	Expect(err).NotTo(HaveOccurred())
	return timesheet.Entry{
		EmployeeID: employeeID,
		Date:       d,
		Status:     timesheet.StatusWork,
		HourBlocks: blocks,
	}
}

var _ = Describe("AggregateHours", func() {
	It("sums fully specified non-lunch blocks over a year", func() {
		entries := []timesheet.Entry{
			workDay(1, "2024-01-15",
				block("9 AM - 10 AM", "Apollo", "Development"),
				block("10 AM - 11 AM", "Apollo", "Development"),
				block("1 PM - 2 PM", "Apollo", "Development"),
			),
			workDay(1, "2024-01-16",
				block("9 AM - 10 AM", "Apollo", "Development"),
			),
		}

		summary := report.AggregateHours(1, entries, report.Filter{Year: 2024})
		Expect(summary.TotalHours).To(Equal(3))
		Expect(summary.WorkingDays).To(Equal(calendar.WorkingDaysInYear(2024)))
		Expect(summary.AverageHours).To(BeNumerically("~", 3.0/float64(summary.WorkingDays), 1e-9))
	})

	It("ignores other employees and other years", func() {
		entries := []timesheet.Entry{
			workDay(1, "2024-01-15", block("9 AM - 10 AM", "Apollo", "Development")),
			workDay(2, "2024-01-15", block("9 AM - 10 AM", "Apollo", "Development")),
			workDay(1, "2023-12-29", block("9 AM - 10 AM", "Apollo", "Development")),
		}

		summary := report.AggregateHours(1, entries, report.Filter{Year: 2024})
		Expect(summary.TotalHours).To(Equal(1))
	})

	It("returns a zero summary for an unknown employee", func() {
		entries := []timesheet.Entry{
			workDay(1, "2024-01-15", block("9 AM - 10 AM", "Apollo", "Development")),
		}
		summary := report.AggregateHours(99, entries, report.Filter{Year: 2024})
		Expect(summary.TotalHours).To(Equal(0))
		Expect(summary.AverageHours).To(Equal(0.0))
	})

	It("averages zero when the scope has no working days", func() {
		summary := report.AggregateHours(1, nil, report.Filter{})
		Expect(summary.WorkingDays).To(Equal(0))
		Expect(summary.AverageHours).To(Equal(0.0))
	})

	It("matches project filters after trimming, case-insensitively", func() {
		blocks := make([]timesheet.HourBlock, 0, 10)
		hours := []string{"8 AM - 9 AM", "9 AM - 10 AM", "10 AM - 11 AM", "11 AM - 12 PM",
			"12 PM - 1 PM", "2 PM - 3 PM", "3 PM - 4 PM", "4 PM - 5 PM"}
		for _, h := range hours {
			blocks = append(blocks, block(h, "  APOLLO ", "Development"))
		}
		blocks = append(blocks,
			block("5 PM - 6 PM", "Borealis", "Design"),
			block("6 PM - 7 PM", "Borealis", "Design"),
		)

		entries := []timesheet.Entry{workDay(1, "2024-01-15", blocks...)}

		all := report.AggregateHours(1, entries, report.Filter{Year: 2024})
		Expect(all.TotalHours).To(Equal(10))

		apollo := report.AggregateHours(1, entries, report.Filter{Year: 2024, Project: "apollo"})
		Expect(apollo.TotalHours).To(Equal(8))
	})

	It("narrows further with a phase filter", func() {
		entries := []timesheet.Entry{
			workDay(1, "2024-01-15",
				block("9 AM - 10 AM", "Apollo", "Development"),
				block("10 AM - 11 AM", "Apollo", "Testing"),
			),
		}
		summary := report.AggregateHours(1, entries, report.Filter{Year: 2024, Project: "Apollo", Phase: "testing"})
		Expect(summary.TotalHours).To(Equal(1))
	})

	It("never counts more hours with a filter than without", func() {
		entries := []timesheet.Entry{
			workDay(1, "2024-01-15",
				block("9 AM - 10 AM", "Apollo", "Development"),
				block("10 AM - 11 AM", "Borealis", "Design"),
			),
			workDay(1, "2024-01-16", block("9 AM - 10 AM", "Apollo", "Testing")),
		}
		unfiltered := report.AggregateHours(1, entries, report.Filter{Year: 2024})
		for _, project := range []string{"Apollo", "Borealis", "Nothing"} {
			filtered := report.AggregateHours(1, entries, report.Filter{Year: 2024, Project: project})
			Expect(filtered.TotalHours).To(BeNumerically("<=", unfiltered.TotalHours))
		}
	})

	It("is independent of entry order", func() {
		entries := []timesheet.Entry{
			workDay(1, "2024-01-15", block("9 AM - 10 AM", "Apollo", "Development")),
			workDay(1, "2024-01-16", block("9 AM - 10 AM", "Borealis", "Design")),
			workDay(1, "2024-02-01", block("9 AM - 10 AM", "Apollo", "Testing")),
			workDay(2, "2024-02-02", block("9 AM - 10 AM", "Apollo", "Testing")),
		}

		want := report.AggregateHours(1, entries, report.Filter{Year: 2024})
		r := rand.New(rand.NewSource(42))
		for i := 0; i < 5; i++ {
			shuffled := make([]timesheet.Entry, len(entries))
			copy(shuffled, entries)
			r.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			Expect(report.AggregateHours(1, shuffled, report.Filter{Year: 2024})).To(Equal(want))
		}
	})

	It("restricts to an inclusive from/to range", func() {
		entries := []timesheet.Entry{
			workDay(1, "2024-01-15", block("9 AM - 10 AM", "Apollo", "Development")),
			workDay(1, "2024-01-20", block("9 AM - 10 AM", "Apollo", "Development")),
			workDay(1, "2024-01-25", block("9 AM - 10 AM", "Apollo", "Development")),
		}
		f := report.Filter{
			From: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		}
		Expect(report.AggregateHours(1, entries, f).TotalHours).To(Equal(2))
	})
})
