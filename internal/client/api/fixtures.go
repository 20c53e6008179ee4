package api

import "github.com/ctfgrid/ctfgrid/pkg/api"

// Demo fixtures served when the backend is unreachable and demo fallback is
// enabled. Returned as fresh slices so callers can't corrupt the canned set.

// FixtureChallenges returns the canned challenge listing.
func FixtureChallenges() []api.Challenge {
	return []api.Challenge{
		{
			ID:          1,
			Name:        "SQL Injection 101",
			Description: "Basic SQL injection vulnerability in search parameter.",
			Category:    "Web",
			Value:       100,
			Type:        "standard",
			State:       "visible",
			Solves:      42,
			SolvedByMe:  true,
		},
		{
			ID:          2,
			Name:        "Buffer Overflow Basic",
			Description: "Classic stack-based buffer overflow exploit.",
			Category:    "Pwn",
			Value:       200,
			Type:        "standard",
			State:       "visible",
			Solves:      15,
		},
		{
			ID:          3,
			Name:        "RSA Oracle",
			Description: "Padding oracle attack against RSA implementation.",
			Category:    "Crypto",
			Value:       300,
			Type:        "standard",
			State:       "visible",
			Solves:      8,
		},
		{
			ID:          4,
			Name:        "Missing Headers",
			Description: "Security headers missing from response.",
			Category:    "Web",
			Value:       150,
			Type:        "standard",
			State:       "visible",
			Solves:      89,
		},
		{
			ID:          5,
			Name:        "Reverse Me",
			Description: "Find the hidden flag in the binary string.",
			Category:    "Reverse Engineering",
			Value:       250,
			Type:        "standard",
			State:       "visible",
			Solves:      12,
		},
		{
			ID:          6,
			Name:        "Forensics 101",
			Description: "Extract metadata from the provided image file.",
			Category:    "Forensics",
			Value:       100,
			Type:        "standard",
			State:       "visible",
			Solves:      156,
			SolvedByMe:  true,
		},
	}
}

// FixtureScoreboard returns the canned ranked entries.
func FixtureScoreboard() []api.ScoreboardEntry {
	return []api.ScoreboardEntry{
		{Pos: 1, AccountID: 101, AccountType: "team", Name: "Red Pwners", Score: 1250},
		{Pos: 2, AccountID: 102, AccountType: "team", Name: "Blue Team Alpha", Score: 1100},
		{Pos: 3, AccountID: 103, AccountType: "team", Name: "Null Pointers", Score: 950},
		{Pos: 4, AccountID: 104, AccountType: "team", Name: "Cyber Ninjas", Score: 800},
		{Pos: 5, AccountID: 105, AccountType: "team", Name: "Script Kiddies", Score: 600},
	}
}
