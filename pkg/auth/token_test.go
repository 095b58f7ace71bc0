package auth

import (
	"context"
	"testing"
	"time"

	"go-recruitment-tracker/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, issued, err := m.Issue("user-1", "ana@example.com", "Ana")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestParseRejectsForeignAndExpiredTokens(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	foreign, _, err := other.Issue("user-1", "ana@example.com", "Ana")
	require.NoError(t, err)
	_, err = m.Parse(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewTokenManager("test-secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Issue("user-1", "ana@example.com", "Ana")
	require.NoError(t, err)
	_, err = m.Parse(old)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsNoneAlgorithm(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", Issuer: "go-recruitment-tracker"},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevocation(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	defer redis.SetClient(nil)

	ctx := context.Background()
	m := NewTokenManager("test-secret", time.Hour)
	_, claims, err := m.Issue("user-1", "ana@example.com", "Ana")
	require.NoError(t, err)

	revoked, err := m.IsRevoked(ctx, claims)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, m.Revoke(ctx, claims))

	revoked, err = m.IsRevoked(ctx, claims)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, mr.Exists(revokedTokenPrefix+claims.ID))
}

func TestRevocationWithoutRedis(t *testing.T) {
	redis.SetClient(nil)
	m := NewTokenManager("", time.Hour)
	_, claims, err := m.Issue("user-1", "ana@example.com", "Ana")
	require.NoError(t, err)

	assert.Error(t, m.Revoke(context.Background(), claims))
	revoked, err := m.IsRevoked(context.Background(), claims)
	assert.NoError(t, err)
	assert.False(t, revoked)
}
