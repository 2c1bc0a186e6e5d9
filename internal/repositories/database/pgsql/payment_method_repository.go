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

type PgxPaymentMethodRepository struct {
	db *pgxpool.Pool
}

func newPgxPaymentMethodRepository(db *pgxpool.Pool) portsrepo.PaymentMethodRepositoryFacade {
	return &PgxPaymentMethodRepository{db: db}
}

// Ensure PgxPaymentMethodRepository implements portsrepo.PaymentMethodRepositoryFacade
var _ portsrepo.PaymentMethodRepositoryFacade = (*PgxPaymentMethodRepository)(nil)

func (r *PgxPaymentMethodRepository) FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error) {
	query := `
		SELECT payment_method_id, user_id, name, icon, created_at, created_by, last_updated_at, last_updated_by
		FROM payment_methods
		WHERE payment_method_id = $1;
	`
	var m models.PaymentMethod
	err := r.db.QueryRow(ctx, query, paymentMethodID).Scan(
		&m.PaymentMethodID,
		&m.UserID,
		&m.Name,
		&m.Icon,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment method by ID %s: %w", paymentMethodID, err)
	}

	method := mapping.ToDomainPaymentMethod(m)
	return &method, nil
}

func (r *PgxPaymentMethodRepository) FindPaymentMethodsByUser(ctx context.Context, userID string) ([]domain.PaymentMethod, error) {
	query := `
		SELECT payment_method_id, user_id, name, icon, created_at, created_by, last_updated_at, last_updated_by
		FROM payment_methods
		WHERE user_id = $1
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelMethods := []models.PaymentMethod{}
	for rows.Next() {
		var m models.PaymentMethod
		err := rows.Scan(
			&m.PaymentMethodID,
			&m.UserID,
			&m.Name,
			&m.Icon,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment method row: %w", err)
		}
		modelMethods = append(modelMethods, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment method rows: %w", rows.Err())
	}

	return mapping.ToDomainPaymentMethodSlice(modelMethods), nil
}

func (r *PgxPaymentMethodRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	m := mapping.ToModelPaymentMethod(method)
	query := `
		INSERT INTO payment_methods (payment_method_id, user_id, name, icon, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		m.PaymentMethodID,
		m.UserID,
		m.Name,
		m.Icon,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment method: %w", err)
	}
	return nil
}

func (r *PgxPaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	m := mapping.ToModelPaymentMethod(method)
	query := `
		UPDATE payment_methods
		SET name = $1, icon = $2, last_updated_at = $3, last_updated_by = $4
		WHERE payment_method_id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.Icon,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.PaymentMethodID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment method: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment method not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPaymentMethodRepository) DeletePaymentMethod(ctx context.Context, paymentMethodID string) error {
	query := `DELETE FROM payment_methods WHERE payment_method_id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, paymentMethodID)
	if err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment method not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
