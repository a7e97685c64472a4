package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/finkeeper/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	// Отзываем refresh token на сервере; локальную сессию удаляем
	// в любом случае
	if err := c.apiClient.Logout(ctx, session.RefreshToken); err != nil {
		c.io.Printf("Warning: server logout failed: %v\n", err)
	}

	if err := c.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("✓ Logged out.")
	return nil
}
