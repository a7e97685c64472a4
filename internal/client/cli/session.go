package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/finkeeper/internal/client/storage"
)

// ensureSession загружает сессию и при истекшем access token обновляет его
// через refresh endpoint. Возвращает готовую к запросам сессию.
func (c *Cli) ensureSession(ctx context.Context) (*storage.SessionData, error) {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not authenticated, run 'finkeeper login' first")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.AccessExpired() {
		resp, err := c.apiClient.Refresh(ctx, session.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("session expired, run 'finkeeper login' again: %w", err)
		}

		session.AccessToken = resp.AccessToken
		session.ExpiresAt = time.Now().Unix() + resp.ExpiresIn

		if err := c.sessions.SaveSession(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to save refreshed session: %w", err)
		}
	}

	c.apiClient.SetAccessToken(session.AccessToken)
	return session, nil
}
