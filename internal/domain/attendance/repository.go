package attendance

import (
	"context"
	"time"
)

// Repository defines the record-store access the engine needs. All reads used
// as state-machine preconditions run through the same querier as the
// subsequent write, inside one transaction. A unique index on
// (employee_id, date) backs the single-record invariant; Create translates
// its violation into ErrAlreadyCheckedIn.
type Repository interface {
	// GetByEmployeeAndDate retrieves the day-record regardless of state.
	// Returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*Record, error)

	// GetOpen retrieves the newest record with check-in set and check-out
	// unset. It is deliberately not keyed to a date: an overnight session
	// opened yesterday evening must stay reachable after midnight.
	// Returns (nil, nil) when there is none.
	GetOpen(ctx context.Context, employeeID string, companyID string) (*Record, error)

	// GetReadyForBreak retrieves the open record with no break currently
	// running. Returns (nil, nil) when there is none.
	GetReadyForBreak(ctx context.Context, employeeID string, companyID string) (*Record, error)

	// GetOnBreak retrieves the open record with a break started and not
	// ended. Returns (nil, nil) when there is none.
	GetOnBreak(ctx context.Context, employeeID string, companyID string) (*Record, error)

	// Create inserts the day-record produced by check-in.
	Create(ctx context.Context, rec Record) (Record, error)

	// Update persists one state-machine mutation on an existing record.
	Update(ctx context.Context, rec Record) error

	// ListByEmployeeBetween scans an employee's records in [from, to],
	// inclusive, for monthly aggregation.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]Record, error)

	// ListByCompanyOn scans all of a company's records for one date.
	ListByCompanyOn(ctx context.Context, companyID string, date time.Time) ([]Record, error)
}
