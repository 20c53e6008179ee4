package cli

import (
	"context"
	"fmt"

	"github.com/ctfgrid/ctfgrid/internal/validation"
	"github.com/ctfgrid/ctfgrid/pkg/api"
)

// RunSubmit submits a flag for a challenge. onSolve is invoked exactly once
// when the backend confirms the flag, and never for any other outcome.
// Non-correct outcomes are all presented as a denial; the distinct status
// stays available to the caller through the return value.
func (c *Cli) RunSubmit(ctx context.Context, challengeID int, flag string, onSolve func()) (api.AttemptStatus, error) {
	if flag == "" {
		input, err := c.io.ReadInput("Flag: ")
		if err != nil {
			return "", fmt.Errorf("failed to read flag: %w", err)
		}
		flag = input
	}

	if err := validation.ValidateFlag(flag); err != nil {
		return "", err
	}

	env := c.backend.SubmitFlag(ctx, api.AttemptRequest{
		ChallengeID: challengeID,
		Submission:  flag,
	})
	if !env.Success {
		c.printErrors(env.Errors)
		return "", fmt.Errorf("flag submission failed")
	}

	result := env.Data

	if result.Status == api.AttemptCorrect {
		c.io.Println("✓ Correct! Challenge solved.")
		if result.Message != "" {
			c.io.Println(result.Message)
		}
		if onSolve != nil {
			onSolve()
		}
		return result.Status, nil
	}

	c.io.Println("✗ Denied.")
	if result.Message != "" {
		c.io.Println(result.Message)
	}

	return result.Status, nil
}
