package shift

import (
	"context"
	"time"
)

// Repository defines the read-only shift access the engine needs.
// All methods include companyID to prevent cross-company data access.
type Repository interface {
	// GetByID retrieves one definition with company isolation.
	GetByID(ctx context.Context, id string, companyID string) (Definition, error)

	// FindCandidates returns every active definition of the company that could
	// apply to (employeeID, date): assigned to the employee or open to all,
	// and either date-pinned to that day, recurring, or the company default.
	// Ordered by created_at DESC so the newest definition wins ties.
	FindCandidates(ctx context.Context, companyID string, employeeID string, date time.Time) ([]Definition, error)
}

// Resolver picks the single definition applying to an employee on a date
// under the tiered precedence rule. A (nil, nil) result means no shift is
// configured for that day, which is a valid business state.
type Resolver interface {
	Resolve(ctx context.Context, companyID string, employeeID string, date time.Time) (*Definition, error)
}
