package report_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/timesheet-management/internal"
	"github.com/frahmantamala/timesheet-management/internal/report"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

var _ = Describe("BuildAllEmployeesReport", func() {
	roster := []report.RosterEmployee{
		{ID: 1, EmpID: "EMP001", FullName: "Asha Nair", Email: "asha@example.com", Role: "employee"},
		{ID: 2, EmpID: "EMP002", FullName: "Root Admin", Email: "admin@example.com", Role: "admin"},
		{ID: 3, EmpID: "EMP003", FullName: "Binod Rao", Email: "binod@example.com", Role: "employee"},
	}

	entries := []timesheet.Entry{
		workDay(1, "2024-01-15", block("9 AM - 10 AM", "Apollo", "Development")),
		workDay(3, "2024-01-15",
			block("9 AM - 10 AM", "Apollo", "Development"),
			block("10 AM - 11 AM", "Apollo", "Development"),
		),
	}

	It("produces one row per non-admin employee in roster order", func() {
		rep, err := report.BuildAllEmployeesReport(roster, entries, 2024, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(rep.Rows).To(HaveLen(2))
		Expect(rep.Rows[0].FullName).To(Equal("Asha Nair"))
		Expect(rep.Rows[0].Seq).To(Equal(1))
		Expect(rep.Rows[0].TotalHours).To(Equal(1))
		Expect(rep.Rows[1].FullName).To(Equal("Binod Rao"))
		Expect(rep.Rows[1].Seq).To(Equal(2))
		Expect(rep.Rows[1].TotalHours).To(Equal(2))
	})

	It("refuses without a year", func() {
		_, err := report.BuildAllEmployeesReport(roster, entries, 0, 8)
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(internal.ErrCodeYearRequired))
	})

	It("refuses an empty roster", func() {
		_, err := report.BuildAllEmployeesReport(nil, entries, 2024, 8)
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(internal.ErrCodeEmptyRoster))
	})

	It("keeps zero-hour employees in the report", func() {
		rep, err := report.BuildAllEmployeesReport(roster, nil, 2024, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(rep.Rows).To(HaveLen(2))
		Expect(rep.Rows[0].TotalHours).To(Equal(0))
		Expect(rep.Rows[0].AverageHours).To(Equal(0.0))
		Expect(rep.Rows[0].Utilization).To(Equal(0.0))
	})
})

var _ = Describe("BuildEmployeeRangeReport", func() {
	employee := report.RosterEmployee{ID: 1, EmpID: "EMP001", FullName: "Asha Nair", Email: "asha@example.com", Role: "employee"}

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	It("produces dated rows sorted by date plus a grand total", func() {
		entries := []timesheet.Entry{
			workDay(1, "2024-01-20", block("9 AM - 10 AM", "Apollo", "Development")),
			workDay(1, "2024-01-05",
				block("9 AM - 10 AM", "Apollo", "Development"),
				block("10 AM - 11 AM", "Apollo", "Development"),
			),
		}

		rep, err := report.BuildEmployeeRangeReport(employee, entries, from, to)
		Expect(err).NotTo(HaveOccurred())
		Expect(rep.Rows).To(HaveLen(2))
		Expect(rep.Rows[0].Date.Day()).To(Equal(5))
		Expect(rep.Rows[1].Date.Day()).To(Equal(20))
		Expect(rep.TotalHours).To(Equal(3))
	})

	It("refuses an open-ended range", func() {
		_, err := report.BuildEmployeeRangeReport(employee, nil, from, time.Time{})
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(internal.ErrCodeRangeRequired))
	})

	It("refuses an inverted range", func() {
		_, err := report.BuildEmployeeRangeReport(employee, nil, to, from)
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(internal.ErrCodeRangeRequired))
	})

	It("refuses when no entries fall inside the range", func() {
		entries := []timesheet.Entry{
			workDay(1, "2024-03-05", block("9 AM - 10 AM", "Apollo", "Development")),
		}
		_, err := report.BuildEmployeeRangeReport(employee, entries, from, to)
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(internal.ErrCodeNoRecords))
		Expect(appErr.Message).To(ContainSubstring("no records found"))
	})

	It("counts leave days as zero-hour rows", func() {
		leave := workDay(1, "2024-01-10", block("9 AM - 10 AM", "Apollo", "Development"))
		leave.Status = timesheet.StatusLeave

		rep, err := report.BuildEmployeeRangeReport(employee, []timesheet.Entry{leave}, from, to)
		Expect(err).NotTo(HaveOccurred())
		Expect(rep.Rows).To(HaveLen(1))
		Expect(rep.Rows[0].Hours).To(Equal(0))
		Expect(rep.TotalHours).To(Equal(0))
	})
})

var _ = Describe("SanitizeFileName", func() {
	It("replaces spaces and strips unsafe characters", func() {
		Expect(report.SanitizeFileName("Asha Nair / Q1")).To(Equal("Asha_Nair__Q1"))
	})

	It("falls back to a default for empty names", func() {
		Expect(report.SanitizeFileName("  ")).To(Equal("report"))
	})
})
