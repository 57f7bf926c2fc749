package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

const attendanceColumns = `
	id, employee_id, company_id, shift_definition_id, date,
	check_in, check_out, break_start, break_end,
	is_late, late_minutes, is_early_leave, early_leave_minutes,
	is_over_break, break_duration_minutes,
	is_potential_overtime, overtime_minutes, total_work_minutes,
	check_in_location, check_in_note, check_out_location, check_out_note,
	created_at, updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func scanRecord(row pgx.Row) (*attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.ShiftDefinitionID, &rec.Date,
		&rec.CheckIn, &rec.CheckOut, &rec.BreakStart, &rec.BreakEnd,
		&rec.IsLate, &rec.LateMinutes, &rec.IsEarlyLeave, &rec.EarlyLeaveMinutes,
		&rec.IsOverBreak, &rec.BreakDurationMinutes,
		&rec.IsPotentialOvertime, &rec.OvertimeMinutes, &rec.TotalWorkMinutes,
		&rec.CheckInLocation, &rec.CheckInNote, &rec.CheckOutLocation, &rec.CheckOutNote,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
		  AND company_id = $3
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

// getOpenSession looks up the newest open record without a date key, so an
// overnight session opened yesterday evening is still found after midnight.
func (a *attendanceRepository) getOpenSession(ctx context.Context, condition string, employeeID string, companyID string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND company_id = $2
		  AND check_in IS NOT NULL
		  AND check_out IS NULL
		  ` + condition + `
		ORDER BY check_in DESC
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open attendance record: %w", err)
	}
	return rec, nil
}

// GetOpen implements attendance.Repository.
func (a *attendanceRepository) GetOpen(ctx context.Context, employeeID string, companyID string) (*attendance.Record, error) {
	return a.getOpenSession(ctx, "", employeeID, companyID)
}

// GetReadyForBreak implements attendance.Repository.
func (a *attendanceRepository) GetReadyForBreak(ctx context.Context, employeeID string, companyID string) (*attendance.Record, error) {
	return a.getOpenSession(ctx, "AND (break_start IS NULL OR break_end IS NOT NULL)", employeeID, companyID)
}

// GetOnBreak implements attendance.Repository.
func (a *attendanceRepository) GetOnBreak(ctx context.Context, employeeID string, companyID string) (*attendance.Record, error) {
	return a.getOpenSession(ctx, "AND break_start IS NOT NULL AND break_end IS NULL", employeeID, companyID)
}

// Create implements attendance.Repository. The unique index on
// (employee_id, date) backs the one-record-per-day invariant; its violation
// comes back as ErrAlreadyCheckedIn so a concurrent double check-in loses
// cleanly.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, company_id, shift_definition_id, date,
			check_in, is_late, late_minutes,
			check_in_location, check_in_note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.CompanyID,
		rec.ShiftDefinitionID,
		rec.Date,
		rec.CheckIn,
		rec.IsLate,
		rec.LateMinutes,
		rec.CheckInLocation,
		rec.CheckInNote,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out = $1,
			break_start = $2,
			break_end = $3,
			is_late = $4,
			late_minutes = $5,
			is_early_leave = $6,
			early_leave_minutes = $7,
			is_over_break = $8,
			break_duration_minutes = $9,
			is_potential_overtime = $10,
			overtime_minutes = $11,
			total_work_minutes = $12,
			check_out_location = $13,
			check_out_note = $14,
			updated_at = NOW()
		WHERE id = $15
		  AND company_id = $16
	`

	tag, err := q.Exec(ctx, query,
		rec.CheckOut,
		rec.BreakStart,
		rec.BreakEnd,
		rec.IsLate,
		rec.LateMinutes,
		rec.IsEarlyLeave,
		rec.EarlyLeaveMinutes,
		rec.IsOverBreak,
		rec.BreakDurationMinutes,
		rec.IsPotentialOvertime,
		rec.OvertimeMinutes,
		rec.TotalWorkMinutes,
		rec.CheckOutLocation,
		rec.CheckOutNote,
		rec.ID,
		rec.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// ListByEmployeeBetween implements attendance.Repository.
func (a *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND company_id = $2
		  AND date BETWEEN $3 AND $4
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListByCompanyOn implements attendance.Repository.
func (a *attendanceRepository) ListByCompanyOn(ctx context.Context, companyID string, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE company_id = $1
		  AND date = $2
		ORDER BY check_in ASC
	`

	rows, err := q.Query(ctx, query, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list company attendance records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}
