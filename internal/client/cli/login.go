package cli

import (
	"context"
	"fmt"

	"github.com/ctfgrid/ctfgrid/internal/validation"
)

// RunLogin prompts for credentials and establishes a session.
func (c *Cli) RunLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if err := validation.ValidateName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.session.Login(ctx, name, password); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	if user := c.session.User(); user != nil {
		c.io.Printf("Logged in as: %s\n", user.Name)
	}

	return nil
}
