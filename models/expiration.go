package models

import "time"

// ExpirationPolicy is fixed at message creation time and never mutated
// except by an explicit TTL change. A zero ExpiresAt means the message
// never expires.
type ExpirationPolicy struct {
	TTLSeconds int64     `json:"ttl_seconds"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at,omitempty"`
}

// ExpirationStatus is the point-in-time answer to "is this message still
// readable". The Active -> Expired transition is one-way: once the wall
// clock passes ExpiresAt no later evaluation reports the message active.
type ExpirationStatus struct {
	IsExpired bool `json:"is_expired"`

	// TimeRemainingMs is milliseconds until expiry, <= 0 once expired,
	// and -1 for messages that never expire.
	TimeRemainingMs int64 `json:"time_remaining_ms"`

	// TimeRemainingText is a short human-readable rendering of the
	// remaining time ("2h 30m", "expired", "never").
	TimeRemainingText string `json:"time_remaining_text"`
}
