package timesheet_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

var _ = Describe("HourBlock", func() {
	fullBlock := func(hour string) timesheet.HourBlock {
		return timesheet.HourBlock{
			Hour:            hour,
			ProjectType:     "billable",
			ProjectCategory: "Software",
			ProjectName:     "Apollo",
			ProjectPhase:    "Development",
			ProjectTask:     "Coding",
		}
	}

	Describe("IsFullySpecified", func() {
		It("accepts a block with all descriptive fields filled", func() {
			Expect(fullBlock("9 AM - 10 AM").IsFullySpecified()).To(BeTrue())
		})

		It("rejects a block missing any field", func() {
			b := fullBlock("9 AM - 10 AM")
			b.ProjectTask = ""
			Expect(b.IsFullySpecified()).To(BeFalse())
		})

		It("treats whitespace-only values as missing", func() {
			b := fullBlock("9 AM - 10 AM")
			b.ProjectPhase = "   "
			Expect(b.IsFullySpecified()).To(BeFalse())
		})
	})

	Describe("HourOfDay", func() {
		It("parses morning and afternoon labels", func() {
			Expect(fullBlock("9 AM - 10 AM").HourOfDay()).To(Equal(9))
			Expect(fullBlock("1 PM - 2 PM").HourOfDay()).To(Equal(13))
			Expect(fullBlock("12 PM - 1 PM").HourOfDay()).To(Equal(12))
			Expect(fullBlock("12 AM - 1 AM").HourOfDay()).To(Equal(0))
		})

		It("returns -1 for unparseable labels", func() {
			Expect(fullBlock("whenever").HourOfDay()).To(Equal(-1))
			Expect(fullBlock("").HourOfDay()).To(Equal(-1))
		})
	})

	Describe("ParseHourBlocks", func() {
		It("decodes a valid block array", func() {
			raw := []byte(`[{"hour":"9 AM - 10 AM","projectType":"billable","projectCategory":"Software","projectName":"Apollo","projectPhase":"Development","projectTask":"Coding"}]`)
			blocks := timesheet.ParseHourBlocks(raw)
			Expect(blocks).To(HaveLen(1))
			Expect(blocks[0].ProjectName).To(Equal("Apollo"))
		})

		It("returns an empty list for corrupt JSON", func() {
			Expect(timesheet.ParseHourBlocks([]byte(`{"not":"an array"`))).To(BeEmpty())
		})

		It("returns an empty list for empty input", func() {
			Expect(timesheet.ParseHourBlocks(nil)).To(BeEmpty())
		})
	})

	Describe("Entry.CountedHours", func() {
		It("counts one hour per fully specified block", func() {
			e := timesheet.Entry{
				Status: timesheet.StatusWork,
				HourBlocks: timesheet.HourBlocks{
					fullBlock("9 AM - 10 AM"),
					fullBlock("10 AM - 11 AM"),
					{Hour: "11 AM - 12 PM"},
				},
			}
			Expect(e.CountedHours()).To(Equal(2))
		})

		It("never counts the lunch slot", func() {
			e := timesheet.Entry{
				Status: timesheet.StatusWork,
				HourBlocks: timesheet.HourBlocks{
					fullBlock("1 PM - 2 PM"),
					fullBlock("2 PM - 3 PM"),
				},
			}
			Expect(e.CountedHours()).To(Equal(1))
		})

		It("returns zero on leave days regardless of blocks", func() {
			e := timesheet.Entry{
				Status:     "leave",
				HourBlocks: timesheet.HourBlocks{fullBlock("9 AM - 10 AM")},
			}
			Expect(e.CountedHours()).To(Equal(0))
		})
	})

	Describe("NormalizeStatus", func() {
		It("canonicalizes leave case-insensitively", func() {
			Expect(timesheet.NormalizeStatus("LEAVE")).To(Equal(timesheet.StatusLeave))
			Expect(timesheet.NormalizeStatus(" leave ")).To(Equal(timesheet.StatusLeave))
		})

		It("defaults everything else to a working day", func() {
			Expect(timesheet.NormalizeStatus("")).To(Equal(timesheet.StatusWork))
			Expect(timesheet.NormalizeStatus("work")).To(Equal(timesheet.StatusWork))
		})
	})

	Describe("HourBlocks column round trip", func() {
		It("survives Value then Scan", func() {
			blocks := timesheet.HourBlocks{fullBlock("3 PM - 4 PM")}
			val, err := blocks.Value()
			Expect(err).NotTo(HaveOccurred())

			var scanned timesheet.HourBlocks
			Expect(scanned.Scan(val)).To(Succeed())
			Expect(scanned).To(Equal(blocks))
		})

		It("scans corrupt stored JSON to an empty list", func() {
			var scanned timesheet.HourBlocks
			Expect(scanned.Scan([]byte(`garbage`))).To(Succeed())
			Expect(scanned).To(BeEmpty())
		})
	})
})

var _ = Describe("Entry", func() {
	It("formats response dates as YYYY-MM-DD", func() {
		e := timesheet.Entry{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}
		Expect(timesheet.ToEntryResponse(&e).Date).To(Equal("2024-01-15"))
	})
})
