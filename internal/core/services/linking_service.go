package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/apperrors"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/utils"
)

// Codes are short-lived and single-use.
const (
	linkingCodeTTL   = 10 * time.Minute
	linkingCodeBytes = 8
)

// linkingService implements the LinkingSvcFacade interface
type linkingService struct {
	BaseService
	linkingRepo portsrepo.LinkingRepositoryFacade
}

// NewLinkingService creates a new channel linking service
func NewLinkingService(linkingRepo portsrepo.LinkingRepositoryFacade) portssvc.LinkingSvcFacade {
	return &linkingService{linkingRepo: linkingRepo}
}

// Ensure linkingService implements the LinkingSvcFacade interface
var _ portssvc.LinkingSvcFacade = (*linkingService)(nil)

// IssueCode generates a short-lived one-time code for linking the user's
// account to a messaging channel.
func (s *linkingService) IssueCode(ctx context.Context, userID string, channel string) (*domain.LinkingCode, error) {
	if channel == "" {
		return nil, fmt.Errorf("%w: channel is required", apperrors.ErrValidation)
	}
	raw, err := utils.GenerateSecureRandomString(linkingCodeBytes)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate linking code")
		return nil, fmt.Errorf("failed to generate linking code: %w", err)
	}
	code := domain.LinkingCode{
		Code:      raw,
		UserID:    userID,
		Channel:   channel,
		ExpiresAt: time.Now().Add(linkingCodeTTL),
	}
	if err := s.linkingRepo.SaveLinkingCode(ctx, code); err != nil {
		s.LogError(ctx, err, "Failed to save linking code", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save linking code: %w", err)
	}
	s.LogInfo(ctx, "Issued linking code", slog.String("user_id", userID), slog.String("channel", channel))
	return &code, nil
}

// RedeemCode consumes a code presented from the channel side and records the
// link. Redemption is strictly one-shot.
func (s *linkingService) RedeemCode(ctx context.Context, code string, channelAccountID string) (*domain.ChannelLink, error) {
	issued, err := s.linkingRepo.FindLinkingCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown linking code", apperrors.ErrValidation)
		}
		return nil, err
	}
	if issued.RedeemedAt != nil {
		return nil, fmt.Errorf("%w: linking code already redeemed", apperrors.ErrValidation)
	}
	if time.Now().After(issued.ExpiresAt) {
		return nil, fmt.Errorf("%w: linking code expired", apperrors.ErrValidation)
	}
	if err := s.linkingRepo.MarkLinkingCodeRedeemed(ctx, code); err != nil {
		s.LogError(ctx, err, "Failed to mark linking code redeemed")
		return nil, fmt.Errorf("failed to redeem linking code: %w", err)
	}
	link := domain.ChannelLink{
		UserID:           issued.UserID,
		Channel:          issued.Channel,
		ChannelAccountID: channelAccountID,
		LinkedAt:         time.Now(),
	}
	if err := s.linkingRepo.SaveChannelLink(ctx, link); err != nil {
		s.LogError(ctx, err, "Failed to save channel link", slog.String("user_id", issued.UserID))
		return nil, fmt.Errorf("failed to save channel link: %w", err)
	}
	s.LogInfo(ctx, "Linked channel account",
		slog.String("user_id", issued.UserID),
		slog.String("channel", issued.Channel))
	return &link, nil
}

// IsLinked reports whether the user has an established link on the channel.
func (s *linkingService) IsLinked(ctx context.Context, userID string, channel string) (bool, error) {
	link, err := s.linkingRepo.FindChannelLink(ctx, userID, channel)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return link != nil, nil
}
