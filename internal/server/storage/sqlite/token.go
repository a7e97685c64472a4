package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/finkeeper/internal/models"
)

// BlacklistToken records a revoked refresh token
func (s *Storage) BlacklistToken(ctx context.Context, token *models.BlacklistedToken) error {
	// INSERT OR IGNORE: повторный отзыв того же jti не ошибка.
	// Времена нормализуются в UTC: driver сериализует time.Time вместе с
	// зоной, и текстовое сравнение в purge корректно только при общей зоне.
	query := `
		INSERT OR IGNORE INTO token_blacklist (jti, user_id, expires_at, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		token.JTI,
		token.UserID,
		token.ExpiresAt.UTC(),
		token.CreatedAt.UTC(),
	)

	if err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

// IsTokenBlacklisted reports whether the jti has been revoked
func (s *Storage) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	query := `SELECT COUNT(1) FROM token_blacklist WHERE jti = ?`

	var count int
	if err := s.db.QueryRowContext(ctx, query, jti).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}

	return count > 0, nil
}

// DeleteExpiredTokens removes blacklist rows whose tokens have expired
func (s *Storage) DeleteExpiredTokens(ctx context.Context) (int, error) {
	// Граница передается параметром в UTC, а не datetime('now'): обе стороны
	// сравнения проходят одну сериализацию времени
	query := `DELETE FROM token_blacklist WHERE expires_at < ?`

	result, err := s.db.ExecContext(ctx, query, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}
