package postgresql

import (
	"context"
	"fmt"

	"github.com/chronotec/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotec/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

const employeeColumns = `id, email, display_name, role, status, nip_hash, created_at, updated_at`

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY email ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE status = 'active' ORDER BY email ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Email, &e.DisplayName, &e.Role, &e.Status, &e.NIPHash, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return e, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE LOWER(email) = LOWER($1)`

	var e employee.Employee
	err := q.QueryRow(ctx, query, email).Scan(
		&e.ID, &e.Email, &e.DisplayName, &e.Role, &e.Status, &e.NIPHash, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return e, nil
}

// UpdateRole implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateRole(ctx context.Context, id, role string) error {
	return r.updateField(ctx, id, "role", role)
}

// UpdateStatus implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.updateField(ctx, id, "status", status)
}

// UpdateNIPHash implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateNIPHash(ctx context.Context, id, nipHash string) error {
	return r.updateField(ctx, id, "nip_hash", nipHash)
}

func (r *employeeRepository) updateField(ctx context.Context, id, field, value string) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`UPDATE employees SET %s = $1, updated_at = NOW() WHERE id = $2`, field)

	commandTag, err := q.Exec(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", field, err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID, &e.Email, &e.DisplayName, &e.Role, &e.Status, &e.NIPHash, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
