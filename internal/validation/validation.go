// Package validation contains input validators used at the API boundary.
package validation

import (
	"errors"
	"regexp"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateUsername checks length and charset of a username.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	if len(username) > 30 {
		return errors.New("username must be at most 30 characters")
	}
	if !usernameRe.MatchString(username) {
		return errors.New("username may only contain letters, digits and underscores")
	}
	return nil
}

// ValidatePassword enforces a minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates beyond 72 bytes
		return errors.New("password must be at most 72 characters")
	}
	return nil
}
