package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "player1", false},
		{"valid with underscore", "red_pwner", false},
		{"valid with hyphen", "blue-team", false},
		{"minimum length", "abc", false},
		{"maximum length", strings.Repeat("a", 32), false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 33), true},
		{"spaces", "red pwner", true},
		{"special characters", "player<script>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "p1@example.com", false},
		{"valid subdomain", "p1@ctf.example.org", false},
		{"empty", "", true},
		{"missing at", "p1.example.com", true},
		{"missing domain", "p1@", true},
		{"missing tld", "p1@example", true},
		{"whitespace", "p 1@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
}

func TestValidateFlag(t *testing.T) {
	assert.NoError(t, ValidateFlag("flag{it_works}"))
	assert.Error(t, ValidateFlag(""))
	assert.Error(t, ValidateFlag("   "))
}
