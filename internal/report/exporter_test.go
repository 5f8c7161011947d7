package report_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/frahmantamala/timesheet-management/internal/report"
)

var _ = Describe("Exporters", func() {
	table := report.Table{
		SheetName: "Employees",
		FileBase:  "employee_hours_2024",
		Headers:   []string{"S.No", "Name", "Total Hours"},
		Rows: [][]string{
			{"1", "Asha Nair", "120"},
			{"2", "Binod Rao", "96"},
		},
	}

	Describe("WriteCSV", func() {
		It("writes headers then rows", func() {
			var buf bytes.Buffer
			Expect(report.WriteCSV(&buf, table)).To(Succeed())
			Expect(buf.String()).To(Equal("S.No,Name,Total Hours\n1,Asha Nair,120\n2,Binod Rao,96\n"))
		})
	})

	Describe("WriteExcel", func() {
		readBack := func(protected bool) [][]string {
			var buf bytes.Buffer
			Expect(report.WriteExcel(&buf, table, protected)).To(Succeed())

			f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			rows, err := f.GetRows("Employees")
			Expect(err).NotTo(HaveOccurred())
			return rows
		}

		It("writes a readable workbook", func() {
			rows := readBack(false)
			Expect(rows).To(HaveLen(3))
			Expect(rows[0]).To(Equal([]string{"S.No", "Name", "Total Hours"}))
			Expect(rows[2]).To(Equal([]string{"2", "Binod Rao", "96"}))
		})

		It("keeps a protected workbook readable", func() {
			rows := readBack(true)
			Expect(rows).To(HaveLen(3))
			Expect(rows[1]).To(Equal([]string{"1", "Asha Nair", "120"}))
		})
	})
})
