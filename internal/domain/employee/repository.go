package employee

import "context"

// Repository defines the read-only employee access this service needs.
// Employee CRUD lives elsewhere; this core only resolves identity and
// headcount. Company membership rides on the employee row returned by
// GetByCode and travels as a JWT claim from then on.
type Repository interface {
	// GetByCode retrieves an employee by their login code.
	GetByCode(ctx context.Context, code string) (Employee, error)

	// CountActive returns the company's active headcount, used by the
	// company-day report to derive the absent count.
	CountActive(ctx context.Context, companyID string) (int, error)
}
