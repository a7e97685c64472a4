package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/finkeeper/internal/validation"
	"github.com/iudanet/finkeeper/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: finkeeper profile <show|update>")
	}

	switch args[0] {
	case "show":
		return c.runProfileShow(ctx)
	case "update":
		return c.runProfileUpdate(ctx)
	default:
		return fmt.Errorf("unknown profile subcommand: %s", args[0])
	}
}

func (c *Cli) runProfileShow(ctx context.Context) error {
	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	profile, err := c.apiClient.GetProfile(ctx, session.UserID)
	if err != nil {
		return err
	}

	c.io.Println("=== Profile ===")
	c.io.Printf("Email:      %s\n", profile.Email)
	c.io.Printf("First name: %s\n", profile.FirstName)
	c.io.Printf("Last name:  %s\n", profile.LastName)
	c.io.Printf("Username:   %s\n", profile.Username)

	return nil
}

func (c *Cli) runProfileUpdate(ctx context.Context) error {
	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	// Показываем текущие значения, PUT требует полный payload
	current, err := c.apiClient.GetProfile(ctx, session.UserID)
	if err != nil {
		return err
	}

	firstName, err := c.readWithDefault("First name", current.FirstName)
	if err != nil {
		return err
	}
	lastName, err := c.readWithDefault("Last name", current.LastName)
	if err != nil {
		return err
	}
	username, err := c.readWithDefault("Username", current.Username)
	if err != nil {
		return err
	}

	password, err := c.io.ReadPassword("New password (leave empty to keep current): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password != "" {
		if err := validation.ValidatePassword(password); err != nil {
			return err
		}
	}

	profile, err := c.apiClient.UpdateProfile(ctx, session.UserID, api.ProfileUpdateRequest{
		FirstName: &firstName,
		LastName:  &lastName,
		Username:  &username,
		Password:  password,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Profile updated!")
	c.io.Printf("Username: %s\n", profile.Username)

	return nil
}

// readWithDefault запрашивает значение, пустой ввод оставляет текущее
func (c *Cli) readWithDefault(label, current string) (string, error) {
	value, err := c.io.ReadInput(fmt.Sprintf("%s [%s]: ", label, current))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}
