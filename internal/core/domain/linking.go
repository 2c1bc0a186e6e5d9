package domain

import "time"

// LinkingCode is a one-time code issued to bind a messaging-channel account
// (e.g., a chat bot) to an application user. It expires after a short TTL
// and can be redeemed at most once.
type LinkingCode struct {
	Code      string     `json:"code"`   // Opaque random token
	UserID    string     `json:"userID"` // FK -> User.userID (Not Null)
	Channel   string     `json:"channel"`
	ExpiresAt time.Time  `json:"expiresAt"`
	RedeemedAt *time.Time `json:"redeemedAt,omitempty"` // Set once the code is used
}

// ChannelLink records an established messaging-channel binding for a user.
type ChannelLink struct {
	UserID           string    `json:"userID"`
	Channel          string    `json:"channel"`
	ChannelAccountID string    `json:"channelAccountID"`
	LinkedAt         time.Time `json:"linkedAt"`
}
