package project_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/timesheet-management/internal"
	"github.com/frahmantamala/timesheet-management/internal/project"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

func block(hour, projectName, phase string) timesheet.HourBlock {
	return timesheet.HourBlock{
		Hour:            hour,
		ProjectType:     "billable",
		ProjectCategory: "Software",
		ProjectName:     projectName,
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

var _ = Describe("Project hour rollups", func() {
	entries := []timesheet.Entry{
		workDay(1, "2024-01-15",
			block("9 AM - 10 AM", "Apollo", "Development"),
			block("10 AM - 11 AM", "Apollo", "Testing"),
			block("11 AM - 12 PM", "Borealis", "Design"),
		),
		workDay(2, "2024-01-15",
			block("9 AM - 10 AM", " apollo ", "Development"),
		),
	}

	Describe("HoursForEmployeeOnProject", func() {
		It("matches the project name after trimming, case-insensitively", func() {
			Expect(project.HoursForEmployeeOnProject(1, "APOLLO", entries)).To(Equal(2))
			Expect(project.HoursForEmployeeOnProject(2, "Apollo", entries)).To(Equal(1))
		})

		It("yields zero for an unknown project", func() {
			Expect(project.HoursForEmployeeOnProject(1, "Ghost", entries)).To(Equal(0))
		})
	})

	Describe("HoursForEmployeeOnProjectPhase", func() {
		It("narrows to the phase", func() {
			Expect(project.HoursForEmployeeOnProjectPhase(1, "Apollo", "testing", entries)).To(Equal(1))
		})
	})

	Describe("StaffingTable", func() {
		p := project.Project{
			ProjectName:       "Apollo",
			Departments:       project.StringList{"Software"},
			AssignedMemberIDs: project.Int64List{1, 2},
		}
		members := []project.Member{
			{ID: 1, FullName: "Asha Nair", Department: "Software"},
			{ID: 2, FullName: "Binod Rao", Department: "Hardware"},
			{ID: 3, FullName: "Chitra Iyer", Department: "Software"},
		}

		It("sums hours of assigned members in the department", func() {
			staffing := project.StaffingTable(p, "software", members, entries)
			Expect(staffing.Rows).To(HaveLen(1))
			Expect(staffing.Rows[0].FullName).To(Equal("Asha Nair"))
			Expect(staffing.TotalHours).To(Equal(2))
		})

		It("covers all departments when none is given", func() {
			staffing := project.StaffingTable(p, "", members, entries)
			Expect(staffing.Rows).To(HaveLen(2))
			Expect(staffing.TotalHours).To(Equal(3))
		})
	})
})

var _ = Describe("ProjectRequest validation", func() {
	valid := func() *project.ProjectRequest {
		return &project.ProjectRequest{
			ProjectName: "Apollo",
			ProjectType: project.TypeBillable,
			Status:      project.StatusOngoing,
		}
	}

	It("accepts a well-formed request", func() {
		Expect(valid().Validate()).To(Succeed())
	})

	It("requires a project name", func() {
		req := valid()
		req.ProjectName = ""
		_, ok := internal.IsAppError(req.Validate())
		Expect(ok).To(BeTrue())
	})

	It("rejects unknown statuses and types", func() {
		req := valid()
		req.Status = "paused"
		Expect(req.Validate()).To(HaveOccurred())

		req = valid()
		req.ProjectType = "charity"
		Expect(req.Validate()).To(HaveOccurred())
	})

	It("defaults an empty status to yet to start", func() {
		req := valid()
		req.Status = ""
		Expect(req.Validate()).To(Succeed())
		Expect(req.ToProject().Status).To(Equal(project.StatusYetToStart))
	})
})

var _ = Describe("JSON list columns", func() {
	It("round-trips phases through Value and Scan", func() {
		phases := project.PhaseList{
			{PhaseName: "Development", Tasks: []project.Task{{TaskName: "Coding", AssignedTo: 1}}},
		}
		val, err := phases.Value()
		Expect(err).NotTo(HaveOccurred())

		var scanned project.PhaseList
		Expect(scanned.Scan(val)).To(Succeed())
		Expect(scanned).To(Equal(phases))
	})

	It("scans NULL columns to empty lists", func() {
		var ids project.Int64List
		Expect(ids.Scan(nil)).To(Succeed())
		Expect(ids).To(BeEmpty())
	})
})
