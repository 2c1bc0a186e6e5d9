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

type PgxTaxRepository struct {
	db *pgxpool.Pool
}

func newPgxTaxRepository(db *pgxpool.Pool) portsrepo.RecurringTaxRepositoryFacade {
	return &PgxTaxRepository{db: db}
}

// Ensure PgxTaxRepository implements portsrepo.RecurringTaxRepositoryFacade
var _ portsrepo.RecurringTaxRepositoryFacade = (*PgxTaxRepository)(nil)

func (r *PgxTaxRepository) FindRecurringTaxByID(ctx context.Context, taxID string) (*domain.RecurringTax, error) {
	query := `
		SELECT tax_id, user_id, name, amount, due_day, created_at, created_by, last_updated_at, last_updated_by
		FROM recurring_taxes
		WHERE tax_id = $1;
	`
	var m models.RecurringTax
	err := r.db.QueryRow(ctx, query, taxID).Scan(
		&m.TaxID,
		&m.UserID,
		&m.Name,
		&m.Amount,
		&m.DueDay,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recurring tax by ID %s: %w", taxID, err)
	}

	tax := mapping.ToDomainRecurringTax(m)
	return &tax, nil
}

func (r *PgxTaxRepository) FindRecurringTaxesByUser(ctx context.Context, userID string) ([]domain.RecurringTax, error) {
	query := `
		SELECT tax_id, user_id, name, amount, due_day, created_at, created_by, last_updated_at, last_updated_by
		FROM recurring_taxes
		WHERE user_id = $1
		ORDER BY due_day;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring taxes for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelTaxes := []models.RecurringTax{}
	for rows.Next() {
		var m models.RecurringTax
		err := rows.Scan(
			&m.TaxID,
			&m.UserID,
			&m.Name,
			&m.Amount,
			&m.DueDay,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring tax row: %w", err)
		}
		modelTaxes = append(modelTaxes, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating recurring tax rows: %w", rows.Err())
	}

	return mapping.ToDomainRecurringTaxSlice(modelTaxes), nil
}

func (r *PgxTaxRepository) SaveRecurringTax(ctx context.Context, tax domain.RecurringTax) error {
	m := mapping.ToModelRecurringTax(tax)
	query := `
		INSERT INTO recurring_taxes (tax_id, user_id, name, amount, due_day, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.TaxID,
		m.UserID,
		m.Name,
		m.Amount,
		m.DueDay,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save recurring tax: %w", err)
	}
	return nil
}

func (r *PgxTaxRepository) UpdateRecurringTax(ctx context.Context, tax domain.RecurringTax) error {
	m := mapping.ToModelRecurringTax(tax)
	query := `
		UPDATE recurring_taxes
		SET name = $1, amount = $2, due_day = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tax_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.Amount,
		m.DueDay,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TaxID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recurring tax: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("recurring tax not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTaxRepository) DeleteRecurringTax(ctx context.Context, taxID string) error {
	query := `DELETE FROM recurring_taxes WHERE tax_id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, taxID)
	if err != nil {
		return fmt.Errorf("failed to delete recurring tax: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("recurring tax not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
