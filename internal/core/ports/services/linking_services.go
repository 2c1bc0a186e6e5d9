package services

import (
	"context"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
)

// LinkingSvcFacade manages one-time messaging-channel linking codes.
type LinkingSvcFacade interface {
	// IssueCode generates a short-lived one-time code binding request for the
	// user on the given channel.
	IssueCode(ctx context.Context, userID string, channel string) (*domain.LinkingCode, error)

	// RedeemCode consumes a code presented from the channel side and records
	// the link. Expired, unknown or already-redeemed codes fail.
	RedeemCode(ctx context.Context, code string, channelAccountID string) (*domain.ChannelLink, error)

	// IsLinked reports whether the user has linked the given channel.
	IsLinked(ctx context.Context, userID string, channel string) (bool, error)
}
