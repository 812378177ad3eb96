package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/chronotec/timeclock-backend-go/internal/domain/punch"
	"github.com/chronotec/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRepository struct {
	db *database.DB
}

// Create implements punch.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (
			employee_id, kind, ts, workday, source,
			latitude, longitude, accuracy_m, device_id, ip, user_agent,
			created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID,
		p.Kind,
		p.Timestamp,
		p.Workday,
		p.Source,
		p.Latitude,
		p.Longitude,
		p.AccuracyM,
		p.DeviceID,
		p.IP,
		p.UserAgent,
		p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// ListByWorkdayRange implements punch.PunchRepository.
func (r *punchRepository) ListByWorkdayRange(ctx context.Context, from, to string) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, ts, workday, source,
			   latitude, longitude, accuracy_m, device_id, ip, user_agent,
			   created_by, created_at
		FROM punches
		WHERE workday >= $1
		  AND workday <= $2
		ORDER BY workday ASC, ts ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Kind, &p.Timestamp, &p.Workday, &p.Source,
			&p.Latitude, &p.Longitude, &p.AccuracyM, &p.DeviceID, &p.IP, &p.UserAgent,
			&p.CreatedBy, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	return punches, nil
}

// GetJustificationPunch implements punch.PunchRepository.
func (r *punchRepository) GetJustificationPunch(ctx context.Context, employeeID, workday, kind string) (*punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, ts, workday, source,
			   latitude, longitude, accuracy_m, device_id, ip, user_agent,
			   created_by, created_at
		FROM punches
		WHERE employee_id = $1
		  AND workday = $2
		  AND kind = $3
		  AND source = 'justification'
		LIMIT 1
	`

	var p punch.Punch
	err := q.QueryRow(ctx, query, employeeID, workday, kind).Scan(
		&p.ID, &p.EmployeeID, &p.Kind, &p.Timestamp, &p.Workday, &p.Source,
		&p.Latitude, &p.Longitude, &p.AccuracyM, &p.DeviceID, &p.IP, &p.UserAgent,
		&p.CreatedBy, &p.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get justification punch: %w", err)
	}

	return &p, nil
}

// UpdateTimestamp implements punch.PunchRepository.
func (r *punchRepository) UpdateTimestamp(ctx context.Context, id string, ts time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE punches SET ts = $1 WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, ts, id)
	if err != nil {
		return fmt.Errorf("failed to update punch timestamp: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}

	return nil
}

// HasDevicePunch implements punch.PunchRepository.
func (r *punchRepository) HasDevicePunch(ctx context.Context, employeeID, workday, kind string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM punches
			WHERE employee_id = $1
			  AND workday = $2
			  AND kind = $3
			  AND source = 'device'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, workday, kind).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for device punch: %w", err)
	}

	return exists, nil
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}
