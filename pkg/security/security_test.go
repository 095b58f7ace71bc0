package security

import (
	"context"
	"testing"
	"time"

	"go-recruitment-tracker/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*SecurityLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewSecurityLogger(zap.New(core), "test", "test"), logs
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@example.com", MaskEmail("ana@example.com"))
	assert.Equal(t, "***@x.io", MaskEmail("b@x.io"))
	assert.Equal(t, "***", MaskEmail("ab"))
}

func TestLogMasksSubjectAndDerivesLevel(t *testing.T) {
	sl, logs := newObservedLogger()
	sl.LogLoginFailed(context.Background(), "ana@example.com", "10.0.0.1", "curl", "req-1", "invalid_credentials")
	sl.LogLoginBlocked(context.Background(), "ana@example.com", "10.0.0.1", "curl", "req-2")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "a***@example.com", entries[0].ContextMap()["subject_value"])
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, string(SeverityHIGH), entries[1].ContextMap()["severity"])
}

func TestGetSeverity(t *testing.T) {
	assert.Equal(t, SeverityINFO, GetSeverity(EventLoginSuccess))
	assert.Equal(t, SeverityHIGH, GetSeverity(EventCSRFViolation))
	assert.Equal(t, SeverityMEDIUM, GetSeverity(EventType("unknown")))
}

func TestLoginTrackerBlocksAfterMaxAttempts(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	defer redis.SetClient(nil)

	sl, logs := newObservedLogger()
	lt := NewLoginTracker(LoginTrackerConfig{
		MaxAttempts:   3,
		AttemptWindow: time.Minute,
		BlockDuration: 10 * time.Minute,
		UseIPTracking: true,
	}, sl)
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		blocked, count, err := lt.RecordFailedAttempt(ctx, "Ana@Example.com", "10.0.0.1", "", "")
		require.NoError(t, err)
		assert.False(t, blocked)
		assert.Equal(t, i, count)
	}

	remaining, err := lt.GetRemainingAttempts(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	blocked, _, err := lt.RecordFailedAttempt(ctx, "ana@example.com", "10.0.0.1", "", "")
	require.NoError(t, err)
	assert.True(t, blocked)

	isBlocked, err := lt.IsBlocked(ctx, "ANA@example.com", "")
	require.NoError(t, err)
	assert.True(t, isBlocked)

	isBlocked, err = lt.IsBlocked(ctx, "other@example.com", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, isBlocked, "IP is blocked as well")

	ttl, ok, err := lt.GetBlockTTL(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10*time.Minute, ttl)

	assert.Equal(t, 1, logs.FilterMessage(string(EventBlockCreated)).Len())

	mr.FastForward(11 * time.Minute)
	isBlocked, err = lt.IsBlocked(ctx, "ana@example.com", "")
	require.NoError(t, err)
	assert.False(t, isBlocked)
}

func TestLoginTrackerClearAttempts(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	defer redis.SetClient(nil)

	lt := NewLoginTracker(DefaultLoginTrackerConfig(), nil)
	ctx := context.Background()

	_, _, err := lt.RecordFailedAttempt(ctx, "ana@example.com", "", "", "")
	require.NoError(t, err)
	require.NoError(t, lt.ClearAttempts(ctx, "ana@example.com", ""))

	remaining, err := lt.GetRemainingAttempts(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)
}

func TestLoginTrackerFailsOpenWithoutRedis(t *testing.T) {
	redis.SetClient(nil)
	lt := NewLoginTracker(DefaultLoginTrackerConfig(), nil)
	ctx := context.Background()

	blocked, count, err := lt.RecordFailedAttempt(ctx, "ana@example.com", "", "", "")
	assert.NoError(t, err)
	assert.False(t, blocked)
	assert.Zero(t, count)

	isBlocked, err := lt.IsBlocked(ctx, "ana@example.com", "")
	assert.NoError(t, err)
	assert.False(t, isBlocked)
}
