package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/finkeeper/internal/client/storage"
	"github.com/iudanet/finkeeper/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	// Точный срок жизни access token login не сообщает, берем
	// консервативную оценку; refresh уточнит его позже
	session := &storage.SessionData{
		UserID:       resp.ID,
		Email:        resp.Email,
		AccessToken:  resp.Tokens.AccessToken,
		RefreshToken: resp.Tokens.RefreshToken,
		ExpiresAt:    time.Now().Unix() + accessTokenLifetimeHint,
	}

	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Email: %s\n", resp.Email)

	return nil
}

// accessTokenLifetimeHint — консервативная оценка срока жизни access token
// в секундах; сервер выдает точный expires_in только на refresh
const accessTokenLifetimeHint = 10 * 60
