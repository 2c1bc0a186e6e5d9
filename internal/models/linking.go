package models

import "time"

// LinkingCode represents a row of the linking_codes table.
type LinkingCode struct {
	Code       string     `db:"code"`
	UserID     string     `db:"user_id"`
	Channel    string     `db:"channel"`
	ExpiresAt  time.Time  `db:"expires_at"`
	RedeemedAt *time.Time `db:"redeemed_at"`
}

// ChannelLink represents a row of the channel_links table.
type ChannelLink struct {
	UserID           string    `db:"user_id"`
	Channel          string    `db:"channel"`
	ChannelAccountID string    `db:"channel_account_id"`
	LinkedAt         time.Time `db:"linked_at"`
}
