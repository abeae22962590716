// Package expiration implements the time-bound message policy: an
// enumerated set of allowed TTLs and a pure status computation over a
// stored expiry timestamp. It owns no storage; purging expired
// ciphertext is the purge worker's job, this package only supplies the
// predicate.
package expiration

import (
	"fmt"
	"time"

	"github.com/vidabem/securechat/models"
)

// TTL is a time-to-live in seconds. Zero means the message never
// expires.
type TTL int64

// The enumerated TTLs a deployment allows by default.
const (
	Never TTL = 0
	Hour  TTL = 60 * 60
	Day   TTL = 24 * 60 * 60
	Week  TTL = 7 * 24 * 60 * 60
)

// DefaultOptions is the TTL set used when configuration does not
// override it.
var DefaultOptions = []TTL{Never, Hour, Day, Week}

// Service validates TTLs against the configured option set and
// evaluates expiration status. It is stateless apart from the injected
// clock and safe for unbounded concurrent callers.
type Service struct {
	now     func() time.Time
	options map[TTL]struct{}
	ordered []TTL
}

// NewService builds a Service allowing exactly the given TTLs, or
// [DefaultOptions] when none are given.
func NewService(options ...TTL) *Service {
	if len(options) == 0 {
		options = DefaultOptions
	}

	allowed := make(map[TTL]struct{}, len(options))
	for _, o := range options {
		allowed[o] = struct{}{}
	}

	return &Service{
		now:     time.Now,
		options: allowed,
		ordered: options,
	}
}

// Options returns the allowed TTL set in configuration order.
func (s *Service) Options() []TTL {
	out := make([]TTL, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// NewPolicy builds the immutable policy stored with a message. A TTL
// outside the enumerated options fails with ErrInvalidPolicy.
func (s *Service) NewPolicy(ttl TTL) (models.ExpirationPolicy, error) {
	if _, ok := s.options[ttl]; !ok {
		return models.ExpirationPolicy{}, fmt.Errorf("%w: %d seconds", ErrInvalidPolicy, ttl)
	}

	created := s.now()
	policy := models.ExpirationPolicy{
		TTLSeconds: int64(ttl),
		CreatedAt:  created,
	}
	if ttl != Never {
		policy.ExpiresAt = created.Add(time.Duration(ttl) * time.Second)
	}

	return policy, nil
}

// Status compares expiresAt against the current wall clock. A zero
// expiresAt means the message never expires. The transition is
// monotonic: once the clock passes expiresAt every later evaluation
// reports expired.
func (s *Service) Status(expiresAt time.Time) models.ExpirationStatus {
	if expiresAt.IsZero() {
		return models.ExpirationStatus{
			IsExpired:         false,
			TimeRemainingMs:   -1,
			TimeRemainingText: "never",
		}
	}

	remaining := expiresAt.Sub(s.now())
	if remaining <= 0 {
		return models.ExpirationStatus{
			IsExpired:         true,
			TimeRemainingMs:   remaining.Milliseconds(),
			TimeRemainingText: "expired",
		}
	}

	return models.ExpirationStatus{
		IsExpired:         false,
		TimeRemainingMs:   remaining.Milliseconds(),
		TimeRemainingText: remainingText(remaining),
	}
}

// remainingText renders a coarse human-readable remaining time. It
// deliberately rounds down; precision below a second is noise for a
// "disappearing message" countdown.
func remainingText(d time.Duration) string {
	switch {
	case d >= 24*time.Hour:
		days := d / (24 * time.Hour)
		hours := (d % (24 * time.Hour)) / time.Hour
		if hours == 0 {
			return fmt.Sprintf("%dd", days)
		}
		return fmt.Sprintf("%dd %dh", days, hours)
	case d >= time.Hour:
		hours := d / time.Hour
		minutes := (d % time.Hour) / time.Minute
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case d >= time.Minute:
		return fmt.Sprintf("%dm", d/time.Minute)
	default:
		return fmt.Sprintf("%ds", d/time.Second)
	}
}
