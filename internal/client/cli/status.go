package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/finkeeper/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Status: not authenticated")
			c.io.Println("Run 'finkeeper login' to start a session.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	c.io.Println("Status: authenticated")
	c.io.Printf("Email:   %s\n", session.Email)
	c.io.Printf("User ID: %s\n", session.UserID)

	if session.AccessExpired() {
		c.io.Println("Access token: expired (will be refreshed on next request)")
	} else {
		remaining := time.Until(time.Unix(session.ExpiresAt, 0)).Round(time.Second)
		c.io.Printf("Access token: valid for %s\n", remaining)
	}

	return nil
}
