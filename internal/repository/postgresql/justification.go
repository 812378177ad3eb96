package postgresql

import (
	"context"
	"fmt"

	"github.com/chronotec/timeclock-backend-go/internal/domain/justification"
	"github.com/chronotec/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type justificationRepository struct {
	db *database.DB
}

// Create implements justification.JustificationRepository.
func (r *justificationRepository) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justifications (
			employee_id, day, field, new_time, reason, evidence_path, status, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		j.EmployeeID,
		j.Day,
		j.Field,
		j.NewTime,
		j.Reason,
		j.EvidencePath,
		j.Status,
		j.CreatedBy,
	).Scan(&j.ID, &j.CreatedAt)

	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to create justification: %w", err)
	}

	return j, nil
}

// ListApproved implements justification.JustificationRepository.
func (r *justificationRepository) ListApproved(ctx context.Context, from, to string, employeeIDs []string) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "status = 'approved' AND day >= $1 AND day <= $2"
	args := []interface{}{from, to}

	if len(employeeIDs) > 0 {
		baseWhere += " AND employee_id = ANY($3)"
		args = append(args, employeeIDs)
	}

	query := `
		SELECT id, employee_id, day, field, new_time, reason, evidence_path, status,
			   created_by, created_at
		FROM justifications
		WHERE ` + baseWhere + `
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved justifications: %w", err)
	}
	defer rows.Close()

	return scanJustifications(rows)
}

// List implements justification.JustificationRepository.
func (r *justificationRepository) List(ctx context.Context, filter justification.ListFilter) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "day >= $1 AND day <= $2"
	args := []interface{}{filter.From, filter.To}

	if len(filter.EmployeeIDs) > 0 {
		baseWhere += " AND employee_id = ANY($3)"
		args = append(args, filter.EmployeeIDs)
	}

	query := `
		SELECT id, employee_id, day, field, new_time, reason, evidence_path, status,
			   created_by, created_at
		FROM justifications
		WHERE ` + baseWhere + `
		ORDER BY day ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query justifications: %w", err)
	}
	defer rows.Close()

	return scanJustifications(rows)
}

func scanJustifications(rows pgx.Rows) ([]justification.Justification, error) {
	var items []justification.Justification
	for rows.Next() {
		var j justification.Justification
		err := rows.Scan(
			&j.ID, &j.EmployeeID, &j.Day, &j.Field, &j.NewTime, &j.Reason, &j.EvidencePath, &j.Status,
			&j.CreatedBy, &j.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan justification: %w", err)
		}
		items = append(items, j)
	}
	return items, nil
}

func NewJustificationRepository(db *database.DB) justification.JustificationRepository {
	return &justificationRepository{db: db}
}
