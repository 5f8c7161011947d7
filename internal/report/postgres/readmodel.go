package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/frahmantamala/timesheet-management/internal/report"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
)

// ReadModel runs the reporting queries over plain SQL. Reports scan
// whole years across employees, which the row-oriented repositories
// are a poor fit for.
type ReadModel struct {
	db *sqlx.DB
}

func NewReadModel(db *sqlx.DB) *ReadModel {
	return &ReadModel{db: db}
}

type employeeRow struct {
	ID       int64  `db:"id"`
	EmpID    string `db:"emp_id"`
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Role     string `db:"role"`
}

type entryRow struct {
	ID         int64     `db:"id"`
	EmployeeID int64     `db:"employee_id"`
	Date       time.Time `db:"date"`
	CheckIn    string    `db:"check_in"`
	CheckOut   string    `db:"check_out"`
	Overtime   string    `db:"overtime"`
	Status     string    `db:"status"`
	HourBlocks []byte    `db:"hour_blocks"`
}

const rosterQuery = `
SELECT id, emp_id, full_name, email, role
FROM employees
ORDER BY id ASC`

const employeeByIDQuery = `
SELECT id, emp_id, full_name, email, role
FROM employees
WHERE id = ?`

const entriesBetweenQuery = `
SELECT id, employee_id, date,
       COALESCE(check_in, '') AS check_in,
       COALESCE(check_out, '') AS check_out,
       COALESCE(overtime, '') AS overtime,
       status, hour_blocks
FROM timesheet_entries
WHERE date >= ? AND date < ?
ORDER BY date ASC, employee_id ASC`

const entriesForEmployeeBetweenQuery = `
SELECT id, employee_id, date,
       COALESCE(check_in, '') AS check_in,
       COALESCE(check_out, '') AS check_out,
       COALESCE(overtime, '') AS overtime,
       status, hour_blocks
FROM timesheet_entries
WHERE employee_id = ? AND date >= ? AND date < ?
ORDER BY date ASC`

const entriesForEmployeeQuery = `
SELECT id, employee_id, date,
       COALESCE(check_in, '') AS check_in,
       COALESCE(check_out, '') AS check_out,
       COALESCE(overtime, '') AS overtime,
       status, hour_blocks
FROM timesheet_entries
WHERE employee_id = ?
ORDER BY date ASC`

func (m *ReadModel) Roster(ctx context.Context) ([]report.RosterEmployee, error) {
	var rows []employeeRow
	if err := m.db.SelectContext(ctx, &rows, m.db.Rebind(rosterQuery)); err != nil {
		return nil, err
	}

	roster := make([]report.RosterEmployee, 0, len(rows))
	for _, r := range rows {
		roster = append(roster, toRosterEmployee(r))
	}
	return roster, nil
}

func (m *ReadModel) EmployeeByID(ctx context.Context, id int64) (*report.RosterEmployee, error) {
	var row employeeRow
	err := m.db.GetContext(ctx, &row, m.db.Rebind(employeeByIDQuery), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	emp := toRosterEmployee(row)
	return &emp, nil
}

func (m *ReadModel) EntriesForYear(ctx context.Context, year int) ([]timesheet.Entry, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var rows []entryRow
	if err := m.db.SelectContext(ctx, &rows, m.db.Rebind(entriesBetweenQuery), from, to); err != nil {
		return nil, err
	}
	return toEntries(rows), nil
}

func (m *ReadModel) EntriesForEmployeeRange(ctx context.Context, employeeID int64, from, to time.Time) ([]timesheet.Entry, error) {
	// the range is inclusive of the last day
	upper := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	lower := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)

	var rows []entryRow
	if err := m.db.SelectContext(ctx, &rows, m.db.Rebind(entriesForEmployeeBetweenQuery), employeeID, lower, upper); err != nil {
		return nil, err
	}
	return toEntries(rows), nil
}

func (m *ReadModel) EntriesForEmployee(ctx context.Context, employeeID int64) ([]timesheet.Entry, error) {
	var rows []entryRow
	if err := m.db.SelectContext(ctx, &rows, m.db.Rebind(entriesForEmployeeQuery), employeeID); err != nil {
		return nil, err
	}
	return toEntries(rows), nil
}

func toRosterEmployee(r employeeRow) report.RosterEmployee {
	return report.RosterEmployee{
		ID:       r.ID,
		EmpID:    r.EmpID,
		FullName: r.FullName,
		Email:    r.Email,
		Role:     r.Role,
	}
}

func toEntries(rows []entryRow) []timesheet.Entry {
	entries := make([]timesheet.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, timesheet.Entry{
			ID:         r.ID,
			EmployeeID: r.EmployeeID,
			Date:       r.Date,
			CheckIn:    r.CheckIn,
			CheckOut:   r.CheckOut,
			Overtime:   r.Overtime,
			Status:     r.Status,
			HourBlocks: timesheet.ParseHourBlocks(r.HourBlocks),
		})
	}
	return entries
}
