package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// NamePattern defines the accepted account name format:
// letters, digits, underscore, hyphen; 3-32 characters.
var NamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,32}$`)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinNameLen is the minimum account name length
	MinNameLen = 3
	// MaxNameLen is the maximum account name length
	MaxNameLen = 32
	// MinPasswordLen is the minimum password length
	MinPasswordLen = 8
)

// ValidateName checks that an account name matches the accepted format.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if len(name) < MinNameLen {
		return fmt.Errorf("name must be at least %d characters long", MinNameLen)
	}

	if len(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	if !NamePattern.MatchString(name) {
		return fmt.Errorf("name can only contain letters, numbers, underscores and hyphens")
	}

	return nil
}

// ValidateEmail checks the basic shape of an email address. The backend
// remains authoritative; this only catches obvious typos before a request.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if !emailPattern.MatchString(email) {
		return fmt.Errorf("email address is not valid")
	}

	return nil
}

// ValidatePassword checks minimum password requirements.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateFlag checks that a flag submission is not blank. Correctness is
// entirely the backend's call.
func ValidateFlag(flag string) error {
	if strings.TrimSpace(flag) == "" {
		return fmt.Errorf("flag cannot be empty")
	}

	return nil
}
