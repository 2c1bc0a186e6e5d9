package repositories

import (
	"context"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
)

// LinkingRepositoryFacade defines operations for messaging-channel linking data
type LinkingRepositoryFacade interface {
	// SaveLinkingCode persists a freshly issued one-time code.
	SaveLinkingCode(ctx context.Context, code domain.LinkingCode) error

	// FindLinkingCode retrieves an issued code by its value.
	FindLinkingCode(ctx context.Context, code string) (*domain.LinkingCode, error)

	// MarkLinkingCodeRedeemed stamps the code as used; a redeemed code can
	// never be redeemed again.
	MarkLinkingCodeRedeemed(ctx context.Context, code string) error

	// SaveChannelLink records an established channel binding.
	SaveChannelLink(ctx context.Context, link domain.ChannelLink) error

	// FindChannelLink retrieves the binding for a user and channel, if any.
	FindChannelLink(ctx context.Context, userID, channel string) (*domain.ChannelLink, error)
}
