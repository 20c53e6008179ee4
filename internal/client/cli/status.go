package cli

import (
	"context"
	"fmt"
)

// RunStatus refreshes and prints the current session state.
func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	if err := c.session.RefreshUser(ctx); err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}

	if !c.session.IsAuthenticated() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'ctfgrid login' to authenticate.")
		return nil
	}

	user := c.session.User()

	c.io.Println("Status: Authenticated")
	c.io.Printf("Name:  %s\n", user.Name)
	c.io.Printf("Email: %s\n", user.Email)
	if user.Affiliation != "" {
		c.io.Printf("Affiliation: %s\n", user.Affiliation)
	}
	if user.TeamID != 0 {
		c.io.Printf("Team ID: %d\n", user.TeamID)
	}

	return nil
}
