package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/PFTrackr/fin_tracker_app/internal/apperrors"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	"github.com/PFTrackr/fin_tracker_app/internal/models"
	"github.com/PFTrackr/fin_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBillingCycleRepository struct {
	db *pgxpool.Pool
}

func newPgxBillingCycleRepository(db *pgxpool.Pool) portsrepo.BillingCycleRepositoryFacade {
	return &PgxBillingCycleRepository{db: db}
}

// Ensure PgxBillingCycleRepository implements portsrepo.BillingCycleRepositoryFacade
var _ portsrepo.BillingCycleRepositoryFacade = (*PgxBillingCycleRepository)(nil)

func (r *PgxBillingCycleRepository) FindBillingCycleByID(ctx context.Context, cycleID string) (*domain.BillingCycle, error) {
	query := `
		SELECT cycle_id, user_id, name, start_date, end_date, created_at, created_by, last_updated_at, last_updated_by
		FROM billing_cycles
		WHERE cycle_id = $1;
	`
	var m models.BillingCycle
	err := r.db.QueryRow(ctx, query, cycleID).Scan(
		&m.CycleID,
		&m.UserID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find billing cycle by ID %s: %w", cycleID, err)
	}

	cycle := mapping.ToDomainBillingCycle(m)
	return &cycle, nil
}

func (r *PgxBillingCycleRepository) FindBillingCyclesByUser(ctx context.Context, userID string) ([]domain.BillingCycle, error) {
	query := `
		SELECT cycle_id, user_id, name, start_date, end_date, created_at, created_by, last_updated_at, last_updated_by
		FROM billing_cycles
		WHERE user_id = $1
		ORDER BY start_date DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query billing cycles for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelCycles := []models.BillingCycle{}
	for rows.Next() {
		var m models.BillingCycle
		err := rows.Scan(
			&m.CycleID,
			&m.UserID,
			&m.Name,
			&m.StartDate,
			&m.EndDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan billing cycle row: %w", err)
		}
		modelCycles = append(modelCycles, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating billing cycle rows: %w", rows.Err())
	}

	return mapping.ToDomainBillingCycleSlice(modelCycles), nil
}

func (r *PgxBillingCycleRepository) SaveBillingCycle(ctx context.Context, cycle domain.BillingCycle) error {
	m := mapping.ToModelBillingCycle(cycle)
	query := `
		INSERT INTO billing_cycles (cycle_id, user_id, name, start_date, end_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.CycleID,
		m.UserID,
		m.Name,
		m.StartDate,
		m.EndDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save billing cycle: %w", err)
	}
	return nil
}

func (r *PgxBillingCycleRepository) UpdateBillingCycle(ctx context.Context, cycle domain.BillingCycle) error {
	m := mapping.ToModelBillingCycle(cycle)
	query := `
		UPDATE billing_cycles
		SET name = $1, start_date = $2, end_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE cycle_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.StartDate,
		m.EndDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.CycleID,
	)
	if err != nil {
		return fmt.Errorf("failed to update billing cycle: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("billing cycle not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBillingCycleRepository) DeleteBillingCycle(ctx context.Context, cycleID string) error {
	query := `DELETE FROM billing_cycles WHERE cycle_id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, cycleID)
	if err != nil {
		return fmt.Errorf("failed to delete billing cycle: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("billing cycle not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
