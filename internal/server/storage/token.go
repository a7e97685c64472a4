package storage

import (
	"context"

	"github.com/iudanet/finkeeper/internal/models"
)

// TokenStorage defines interface for the refresh token blacklist.
// A refresh token is identified by its jti claim; once blacklisted it
// stays rejected until its row is purged after the token itself expires.
type TokenStorage interface {
	// BlacklistToken records a revoked refresh token
	// Re-blacklisting the same jti is a no-op
	BlacklistToken(ctx context.Context, token *models.BlacklistedToken) error

	// IsTokenBlacklisted reports whether the jti has been revoked
	IsTokenBlacklisted(ctx context.Context, jti string) (bool, error)

	// DeleteExpiredTokens removes blacklist rows whose tokens have expired
	// Returns number of deleted rows
	DeleteExpiredTokens(ctx context.Context) (int, error)
}
