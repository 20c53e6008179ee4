package store

import "github.com/ctfgrid/ctfgrid/pkg/api"

// SeedChallenges is the default challenge set served by the demo backend.
// It mirrors the client's demo fixtures so both paths show the same data.
func SeedChallenges() []Challenge {
	return []Challenge{
		{
			Flag: "flag{union_select_all_the_things}",
			Challenge: api.Challenge{
				ID:          1,
				Name:        "SQL Injection 101",
				Description: "Basic SQL injection vulnerability in search parameter.",
				Category:    "Web",
				Value:       100,
				Type:        "standard",
				State:       "visible",
			},
		},
		{
			Flag: "flag{smashed_the_stack}",
			Challenge: api.Challenge{
				ID:             2,
				Name:           "Buffer Overflow Basic",
				Description:    "Classic stack-based buffer overflow exploit.",
				Category:       "Pwn",
				Value:          200,
				Type:           "standard",
				State:          "visible",
				ConnectionInfo: "nc demo.ctfgrid.local 31337",
			},
		},
		{
			Flag: "flag{padding_tells_all}",
			Challenge: api.Challenge{
				ID:          3,
				Name:        "RSA Oracle",
				Description: "Padding oracle attack against RSA implementation.",
				Category:    "Crypto",
				Value:       300,
				Type:        "standard",
				State:       "visible",
			},
		},
		{
			Flag: "flag{x_content_type_options}",
			Challenge: api.Challenge{
				ID:          4,
				Name:        "Missing Headers",
				Description: "Security headers missing from response.",
				Category:    "Web",
				Value:       150,
				Type:        "standard",
				State:       "visible",
			},
		},
		{
			Flag: "flag{strings_was_enough}",
			Challenge: api.Challenge{
				ID:          5,
				Name:        "Reverse Me",
				Description: "Find the hidden flag in the binary string.",
				Category:    "Reverse Engineering",
				Value:       250,
				Type:        "standard",
				State:       "visible",
				Files:       []string{"/files/reverse-me.bin"},
			},
		},
		{
			Flag: "flag{exif_never_lies}",
			Challenge: api.Challenge{
				ID:          6,
				Name:        "Forensics 101",
				Description: "Extract metadata from the provided image file.",
				Category:    "Forensics",
				Value:       100,
				Type:        "standard",
				State:       "visible",
				Files:       []string{"/files/evidence.jpg"},
			},
		},
	}
}
