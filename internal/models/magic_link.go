package models

import "time"

// MagicLinkToken is a single-use passwordless sign-in token. ConsumedAt is
// set exactly once; a token with a non-nil ConsumedAt is rejected.
type MagicLinkToken struct {
	BaseModel
	Token      string     `gorm:"uniqueIndex;not null" json:"-"`
	Email      string     `gorm:"index;not null" json:"email"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at"`
}
