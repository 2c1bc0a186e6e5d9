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
	"github.com/shopspring/decimal"
)

type PgxSavingsFundRepository struct {
	db *pgxpool.Pool
}

func newPgxSavingsFundRepository(db *pgxpool.Pool) portsrepo.SavingsFundRepositoryFacade {
	return &PgxSavingsFundRepository{db: db}
}

// Ensure PgxSavingsFundRepository implements portsrepo.SavingsFundRepositoryFacade
var _ portsrepo.SavingsFundRepositoryFacade = (*PgxSavingsFundRepository)(nil)

func (r *PgxSavingsFundRepository) FindSavingsFundByID(ctx context.Context, fundID string) (*domain.SavingsFund, error) {
	query := `
		SELECT fund_id, user_id, name, current_amount, target_amount, target_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM savings_funds
		WHERE fund_id = $1;
	`
	var m models.SavingsFund
	err := r.db.QueryRow(ctx, query, fundID).Scan(
		&m.FundID,
		&m.UserID,
		&m.Name,
		&m.CurrentAmount,
		&m.TargetAmount,
		&m.TargetDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find savings fund by ID %s: %w", fundID, err)
	}

	fund := mapping.ToDomainSavingsFund(m)
	return &fund, nil
}

func (r *PgxSavingsFundRepository) FindSavingsFundsByUser(ctx context.Context, userID string) ([]domain.SavingsFund, error) {
	query := `
		SELECT fund_id, user_id, name, current_amount, target_amount, target_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM savings_funds
		WHERE user_id = $1
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query savings funds for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelFunds := []models.SavingsFund{}
	for rows.Next() {
		var m models.SavingsFund
		err := rows.Scan(
			&m.FundID,
			&m.UserID,
			&m.Name,
			&m.CurrentAmount,
			&m.TargetAmount,
			&m.TargetDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan savings fund row: %w", err)
		}
		modelFunds = append(modelFunds, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating savings fund rows: %w", rows.Err())
	}

	return mapping.ToDomainSavingsFundSlice(modelFunds), nil
}

func (r *PgxSavingsFundRepository) SaveSavingsFund(ctx context.Context, fund domain.SavingsFund) error {
	m := mapping.ToModelSavingsFund(fund)
	query := `
		INSERT INTO savings_funds (fund_id, user_id, name, current_amount, target_amount, target_date,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.FundID,
		m.UserID,
		m.Name,
		m.CurrentAmount,
		m.TargetAmount,
		m.TargetDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save savings fund: %w", err)
	}
	return nil
}

func (r *PgxSavingsFundRepository) UpdateSavingsFund(ctx context.Context, fund domain.SavingsFund) error {
	m := mapping.ToModelSavingsFund(fund)
	query := `
		UPDATE savings_funds
		SET name = $1, target_amount = $2, target_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE fund_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.TargetAmount,
		m.TargetDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.FundID,
	)
	if err != nil {
		return fmt.Errorf("failed to update savings fund: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("savings fund not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// AdjustSavingsFundAmount applies a signed delta atomically. The WHERE guard
// keeps the balance from ever going negative under concurrent withdrawals.
func (r *PgxSavingsFundRepository) AdjustSavingsFundAmount(ctx context.Context, fundID string, delta decimal.Decimal) error {
	query := `
		UPDATE savings_funds
		SET current_amount = current_amount + $1, last_updated_at = NOW()
		WHERE fund_id = $2 AND current_amount + $1 >= 0;
	`
	cmdTag, err := r.db.Exec(ctx, query, delta, fundID)
	if err != nil {
		return fmt.Errorf("failed to adjust savings fund amount: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: fund missing or insufficient balance", apperrors.ErrValidation)
	}
	return nil
}

func (r *PgxSavingsFundRepository) DeleteSavingsFund(ctx context.Context, fundID string) error {
	query := `DELETE FROM savings_funds WHERE fund_id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, fundID)
	if err != nil {
		return fmt.Errorf("failed to delete savings fund: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("savings fund not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
