package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

// GetByCode implements employee.Repository.
func (e *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, company_id, code, full_name, email, password_hash, is_active,
			   created_at, updated_at
		FROM employees
		WHERE code = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, code).Scan(
		&emp.ID, &emp.CompanyID, &emp.Code, &emp.FullName, &emp.Email,
		&emp.PasswordHash, &emp.IsActive,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}
	return emp, nil
}

// CountActive implements employee.Repository.
func (e *employeeRepository) CountActive(ctx context.Context, companyID string) (int, error) {
	q := GetQuerier(ctx, e.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE company_id = $1 AND is_active = TRUE`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}
