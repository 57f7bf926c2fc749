package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

const shiftColumns = `
	id, company_id, name, start_time, end_time,
	break_start_time, break_end_time,
	allowed_break_minutes, grace_period_minutes,
	mode, weekdays, dates, employee_ids,
	is_active, created_at, updated_at`

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepository{db: db}
}

func scanDefinition(row pgx.Row) (shift.Definition, error) {
	var def shift.Definition
	err := row.Scan(
		&def.ID, &def.CompanyID, &def.Name, &def.StartTime, &def.EndTime,
		&def.BreakStartTime, &def.BreakEndTime,
		&def.AllowedBreakMinutes, &def.GracePeriodMinutes,
		&def.Mode, &def.Weekdays, &def.Dates, &def.EmployeeIDs,
		&def.IsActive, &def.CreatedAt, &def.UpdatedAt,
	)
	return def, err
}

// GetByID implements shift.Repository.
func (s *shiftRepository) GetByID(ctx context.Context, id string, companyID string) (shift.Definition, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_definitions
		WHERE id = $1
		  AND company_id = $2
	`

	def, err := scanDefinition(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Definition{}, shift.ErrShiftNotFound
		}
		return shift.Definition{}, fmt.Errorf("failed to get shift definition: %w", err)
	}
	return def, nil
}

// FindCandidates implements shift.Repository. The query pre-filters by
// assignment and explicit dates; the resolver re-checks every applicability
// rule, so this only has to not miss a candidate.
func (s *shiftRepository) FindCandidates(ctx context.Context, companyID string, employeeID string, date time.Time) ([]shift.Definition, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shift_definitions
		WHERE company_id = $1
		  AND is_active = TRUE
		  AND (mode = 'company-default' OR cardinality(employee_ids) = 0 OR $2 = ANY(employee_ids))
		  AND (mode <> 'specific-dates' OR $3::date = ANY(dates))
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find candidate shifts: %w", err)
	}
	defer rows.Close()

	var defs []shift.Definition
	for rows.Next() {
		def, err := scanDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift definition: %w", err)
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift definitions: %w", err)
	}
	return defs, nil
}
