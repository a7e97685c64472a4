package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/finkeeper/internal/models"
)

func TestTokenStorage_BlacklistToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createStorageUser(t, ctx, s)

	token := &models.BlacklistedToken{
		JTI:       uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}

	err := s.BlacklistToken(ctx, token)
	require.NoError(t, err)

	blacklisted, err := s.IsTokenBlacklisted(ctx, token.JTI)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestTokenStorage_BlacklistTokenTwice(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createStorageUser(t, ctx, s)

	token := &models.BlacklistedToken{
		JTI:       uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}

	// Повторная вставка того же jti не ошибка
	require.NoError(t, s.BlacklistToken(ctx, token))
	require.NoError(t, s.BlacklistToken(ctx, token))
}

func TestTokenStorage_IsTokenBlacklisted_Unknown(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	blacklisted, err := s.IsTokenBlacklisted(ctx, "unknown-jti")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestTokenStorage_DeleteExpiredTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createStorageUser(t, ctx, s)

	now := time.Now()
	expired := &models.BlacklistedToken{
		JTI:       uuid.New().String(),
		UserID:    userID,
		ExpiresAt: now.Add(-time.Hour),
		CreatedAt: now.Add(-2 * time.Hour),
	}
	active := &models.BlacklistedToken{
		JTI:       uuid.New().String(),
		UserID:    userID,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}

	require.NoError(t, s.BlacklistToken(ctx, expired))
	require.NoError(t, s.BlacklistToken(ctx, active))

	deleted, err := s.DeleteExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	// Просроченная запись удалена, активная на месте
	blacklisted, err := s.IsTokenBlacklisted(ctx, expired.JTI)
	require.NoError(t, err)
	assert.False(t, blacklisted)

	blacklisted, err = s.IsTokenBlacklisted(ctx, active.JTI)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestTokenStorage_DeleteExpiredTokens_NonUTCTimes(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createStorageUser(t, ctx, s)

	// Времена в зоне западнее UTC: до нормализации такая запись текстово
	// сортировалась раньше UTC-границы и purge удалял еще действующий токен
	west := time.FixedZone("UTC-10", -10*60*60)
	now := time.Now().In(west)

	active := &models.BlacklistedToken{
		JTI:       uuid.New().String(),
		UserID:    userID,
		ExpiresAt: now.Add(2 * time.Hour),
		CreatedAt: now,
	}
	expired := &models.BlacklistedToken{
		JTI:       uuid.New().String(),
		UserID:    userID,
		ExpiresAt: now.Add(-2 * time.Hour),
		CreatedAt: now.Add(-3 * time.Hour),
	}

	require.NoError(t, s.BlacklistToken(ctx, active))
	require.NoError(t, s.BlacklistToken(ctx, expired))

	deleted, err := s.DeleteExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	// Действующий отозванный токен остается в blacklist
	blacklisted, err := s.IsTokenBlacklisted(ctx, active.JTI)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	blacklisted, err = s.IsTokenBlacklisted(ctx, expired.JTI)
	require.NoError(t, err)
	assert.False(t, blacklisted)
}
