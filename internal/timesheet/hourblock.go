package timesheet

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/frahmantamala/timesheet-management/pkg/logger"
)

// LunchHour is the 1 PM to 2 PM slot. It never counts as worked time
// no matter what the employee filled in.
const LunchHour = 13

// HourBlock describes what an employee worked on during one hour of
// the day. Hour carries the display label the client submits, for
// example "9 AM - 10 AM".
type HourBlock struct {
	Hour            string `json:"hour"`
	ProjectType     string `json:"projectType"`
	ProjectCategory string `json:"projectCategory"`
	ProjectName     string `json:"projectName"`
	ProjectPhase    string `json:"projectPhase"`
	ProjectTask     string `json:"projectTask"`
}

// IsFullySpecified reports whether all five descriptive fields are
// filled in. Whitespace-only values do not count as filled.
func (b HourBlock) IsFullySpecified() bool {
	return strings.TrimSpace(b.ProjectType) != "" &&
		strings.TrimSpace(b.ProjectCategory) != "" &&
		strings.TrimSpace(b.ProjectName) != "" &&
		strings.TrimSpace(b.ProjectPhase) != "" &&
		strings.TrimSpace(b.ProjectTask) != ""
}

// HourOfDay parses the display label into a 24h hour, or -1 when the
// label does not start with "H AM" or "H PM".
func (b HourBlock) HourOfDay() int {
	fields := strings.Fields(b.Hour)
	if len(fields) < 2 {
		return -1
	}
	h, err := strconv.Atoi(fields[0])
	if err != nil || h < 1 || h > 12 {
		return -1
	}
	switch strings.ToUpper(fields[1]) {
	case "AM":
		if h == 12 {
			return 0
		}
		return h
	case "PM":
		if h == 12 {
			return 12
		}
		return h + 12
	}
	return -1
}

// IsLunch reports whether the block sits in the lunch slot.
func (b HourBlock) IsLunch() bool {
	return b.HourOfDay() == LunchHour
}

// HourBlocks is the per-day block list, stored as a JSON column.
type HourBlocks []HourBlock

// ParseHourBlocks decodes a stored JSON array of hour blocks. Corrupt
// or non-array payloads yield an empty list with a warning log so one
// bad row never poisons an aggregation run.
func ParseHourBlocks(raw []byte) HourBlocks {
	if len(raw) == 0 {
		return HourBlocks{}
	}
	var blocks HourBlocks
	if err := json.Unmarshal(raw, &blocks); err != nil {
		logger.LoggerWrapper().Warn("skipping malformed hour blocks", "error", err)
		return HourBlocks{}
	}
	if blocks == nil {
		return HourBlocks{}
	}
	return blocks
}

// Value implements driver.Valuer so gorm can persist the blocks as a
// JSON column.
func (h HourBlocks) Value() (driver.Value, error) {
	if h == nil {
		h = HourBlocks{}
	}
	raw, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("marshal hour blocks: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner. Malformed stored JSON scans to an empty
// list rather than failing the whole query.
func (h *HourBlocks) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*h = HourBlocks{}
	case []byte:
		*h = ParseHourBlocks(v)
	case string:
		*h = ParseHourBlocks([]byte(v))
	default:
		return fmt.Errorf("unsupported hour blocks column type %T", src)
	}
	return nil
}
