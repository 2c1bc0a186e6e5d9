package dto

import "time"

// IssueLinkingCodeRequest asks for a one-time code for a messaging channel.
type IssueLinkingCodeRequest struct {
	Channel string `json:"channel" binding:"required"`
}

// IssueLinkingCodeResponse returns the freshly issued code and its expiry.
type IssueLinkingCodeResponse struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RedeemLinkingCodeRequest redeems a code from the messaging-channel side.
type RedeemLinkingCodeRequest struct {
	Code             string `json:"code" binding:"required"`
	ChannelAccountID string `json:"channelAccountID" binding:"required"`
}

// LinkStatusResponse reports whether a user has a channel linked.
type LinkStatusResponse struct {
	Channel string `json:"channel"`
	Linked  bool   `json:"linked"`
}
