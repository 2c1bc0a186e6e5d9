package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/PFTrackr/fin_tracker_app/internal/apperrors"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	"github.com/PFTrackr/fin_tracker_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLinkingRepository struct {
	db *pgxpool.Pool
}

func newPgxLinkingRepository(db *pgxpool.Pool) portsrepo.LinkingRepositoryFacade {
	return &PgxLinkingRepository{db: db}
}

// Ensure PgxLinkingRepository implements portsrepo.LinkingRepositoryFacade
var _ portsrepo.LinkingRepositoryFacade = (*PgxLinkingRepository)(nil)

func (r *PgxLinkingRepository) SaveLinkingCode(ctx context.Context, code domain.LinkingCode) error {
	query := `
		INSERT INTO linking_codes (code, user_id, channel, expires_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.db.Exec(ctx, query, code.Code, code.UserID, code.Channel, code.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to save linking code: %w", err)
	}
	return nil
}

func (r *PgxLinkingRepository) FindLinkingCode(ctx context.Context, code string) (*domain.LinkingCode, error) {
	query := `
		SELECT code, user_id, channel, expires_at, redeemed_at
		FROM linking_codes
		WHERE code = $1;
	`
	var m models.LinkingCode
	err := r.db.QueryRow(ctx, query, code).Scan(
		&m.Code,
		&m.UserID,
		&m.Channel,
		&m.ExpiresAt,
		&m.RedeemedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find linking code: %w", err)
	}

	return &domain.LinkingCode{
		Code:       m.Code,
		UserID:     m.UserID,
		Channel:    m.Channel,
		ExpiresAt:  m.ExpiresAt,
		RedeemedAt: m.RedeemedAt,
	}, nil
}

func (r *PgxLinkingRepository) MarkLinkingCodeRedeemed(ctx context.Context, code string) error {
	// The redeemed_at guard makes redemption one-shot even under races.
	query := `
		UPDATE linking_codes
		SET redeemed_at = NOW()
		WHERE code = $1 AND redeemed_at IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query, code)
	if err != nil {
		return fmt.Errorf("failed to mark linking code redeemed: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("linking code missing or already redeemed: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxLinkingRepository) SaveChannelLink(ctx context.Context, link domain.ChannelLink) error {
	query := `
		INSERT INTO channel_links (user_id, channel, channel_account_id, linked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, channel) DO UPDATE SET
			channel_account_id = EXCLUDED.channel_account_id,
			linked_at = EXCLUDED.linked_at;
	`
	_, err := r.db.Exec(ctx, query, link.UserID, link.Channel, link.ChannelAccountID, link.LinkedAt)
	if err != nil {
		return fmt.Errorf("failed to save channel link: %w", err)
	}
	return nil
}

func (r *PgxLinkingRepository) FindChannelLink(ctx context.Context, userID, channel string) (*domain.ChannelLink, error) {
	query := `
		SELECT user_id, channel, channel_account_id, linked_at
		FROM channel_links
		WHERE user_id = $1 AND channel = $2;
	`
	var m models.ChannelLink
	err := r.db.QueryRow(ctx, query, userID, channel).Scan(
		&m.UserID,
		&m.Channel,
		&m.ChannelAccountID,
		&m.LinkedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find channel link: %w", err)
	}

	return &domain.ChannelLink{
		UserID:           m.UserID,
		Channel:          m.Channel,
		ChannelAccountID: m.ChannelAccountID,
		LinkedAt:         m.LinkedAt,
	}, nil
}
