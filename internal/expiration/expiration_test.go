package expiration

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins the service to a known instant so status math is
// deterministic.
func fixedClock(s *Service, at time.Time) {
	s.now = func() time.Time { return at }
}

func TestNewPolicy_AllowedTTLs(t *testing.T) {
	svc := NewService()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	fixedClock(svc, now)

	policy, err := svc.NewPolicy(Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), policy.TTLSeconds)
	assert.Equal(t, now, policy.CreatedAt)
	assert.Equal(t, now.Add(time.Hour), policy.ExpiresAt)
}

func TestNewPolicy_NeverHasNoExpiry(t *testing.T) {
	svc := NewService()

	policy, err := svc.NewPolicy(Never)
	require.NoError(t, err)
	assert.True(t, policy.ExpiresAt.IsZero())
}

func TestNewPolicy_RejectsUnlistedTTL(t *testing.T) {
	svc := NewService()

	_, err := svc.NewPolicy(TTL(12345))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPolicy))
}

func TestNewPolicy_CustomOptionSet(t *testing.T) {
	svc := NewService(Never, Day)

	_, err := svc.NewPolicy(Day)
	require.NoError(t, err)

	// Hour is valid by default but not in this deployment's set.
	_, err = svc.NewPolicy(Hour)
	assert.True(t, errors.Is(err, ErrInvalidPolicy))
}

func TestStatus_ActiveBeforeExpiry(t *testing.T) {
	svc := NewService()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	fixedClock(svc, now)

	status := svc.Status(now.Add(time.Hour))
	assert.False(t, status.IsExpired)
	assert.Equal(t, int64(3600_000), status.TimeRemainingMs)
	assert.Equal(t, "1h", status.TimeRemainingText)
}

func TestStatus_ExpiredAfterExpiry(t *testing.T) {
	svc := NewService()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	fixedClock(svc, now)

	status := svc.Status(now.Add(-time.Hour))
	assert.True(t, status.IsExpired)
	assert.LessOrEqual(t, status.TimeRemainingMs, int64(0))
	assert.Equal(t, "expired", status.TimeRemainingText)
}

func TestStatus_Monotonic(t *testing.T) {
	svc := NewService()
	expiresAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	// Expired at the boundary, one second later, and one year later —
	// never flips back to active.
	for _, offset := range []time.Duration{0, time.Second, 365 * 24 * time.Hour} {
		fixedClock(svc, expiresAt.Add(offset))
		assert.True(t, svc.Status(expiresAt).IsExpired, "offset %s", offset)
	}
}

func TestStatus_NeverExpires(t *testing.T) {
	svc := NewService()
	fixedClock(svc, time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC))

	status := svc.Status(time.Time{})
	assert.False(t, status.IsExpired)
	assert.Equal(t, int64(-1), status.TimeRemainingMs)
	assert.Equal(t, "never", status.TimeRemainingText)
}

func TestStatus_JustExpiredMilliseconds(t *testing.T) {
	svc := NewService()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	fixedClock(svc, now)

	status := svc.Status(now.Add(-1000 * time.Millisecond))
	assert.True(t, status.IsExpired)
	assert.Equal(t, int64(-1000), status.TimeRemainingMs)
}

func TestRemainingText(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{8 * 24 * time.Hour, "8d"},
		{2*24*time.Hour + 5*time.Hour, "2d 5h"},
		{2*time.Hour + 30*time.Minute, "2h 30m"},
		{time.Hour, "1h"},
		{45 * time.Minute, "45m"},
		{30 * time.Second, "30s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, remainingText(tt.d), "duration %s", tt.d)
	}
}

func TestOptions_ReturnsCopy(t *testing.T) {
	svc := NewService()

	opts := svc.Options()
	require.Equal(t, []TTL{Never, Hour, Day, Week}, opts)

	opts[0] = TTL(999)
	assert.Equal(t, []TTL{Never, Hour, Day, Week}, svc.Options())
}
