package cli

import (
	"context"
	"strings"

	"github.com/ctfgrid/ctfgrid/pkg/api"
)

// RunChallenges lists challenges, optionally filtered by category.
func (c *Cli) RunChallenges(ctx context.Context, category string) error {
	env := c.backend.GetChallenges(ctx)
	if !env.Success {
		c.printErrors(env.Errors)
		return nil
	}

	challenges := env.Data
	if category != "" {
		filtered := make([]api.Challenge, 0, len(challenges))
		for _, ch := range challenges {
			if strings.EqualFold(ch.Category, category) {
				filtered = append(filtered, ch)
			}
		}
		challenges = filtered
	}

	if len(challenges) == 0 {
		c.io.Println("No challenges found.")
		return nil
	}

	c.io.Printf("%-4s %-28s %-20s %6s %-6s %7s %s\n",
		"ID", "NAME", "CATEGORY", "VALUE", "DIFF", "SOLVES", "")
	for _, ch := range challenges {
		solved := ""
		if ch.SolvedByMe {
			solved = "✓"
		}
		c.io.Printf("%-4d %-28s %-20s %6d %-6s %7d %s\n",
			ch.ID, ch.Name, ch.Category, ch.Value, api.DifficultyFor(ch.Value), ch.Solves, solved)
	}

	return nil
}

// RunChallenge prints the details of a single challenge.
func (c *Cli) RunChallenge(ctx context.Context, id int) error {
	env := c.backend.GetChallenge(ctx, id)
	if !env.Success {
		c.printErrors(env.Errors)
		return nil
	}

	ch := env.Data

	c.io.Printf("=== %s ===\n", ch.Name)
	c.io.Printf("Category:   %s\n", ch.Category)
	c.io.Printf("Value:      %d (%s)\n", ch.Value, api.DifficultyFor(ch.Value))
	c.io.Printf("Solves:     %d\n", ch.Solves)
	if ch.SolvedByMe {
		c.io.Println("Solved:     ✓ by you")
	}
	c.io.Println()
	c.io.Println(ch.Description)
	if ch.ConnectionInfo != "" {
		c.io.Println()
		c.io.Printf("Connection: %s\n", ch.ConnectionInfo)
	}
	if len(ch.Files) > 0 {
		c.io.Println()
		c.io.Println("Files:")
		for _, f := range ch.Files {
			c.io.Printf("  %s\n", f)
		}
	}

	return nil
}
