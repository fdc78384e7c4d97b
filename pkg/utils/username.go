package utils

import (
	"strings"
	"unicode/utf8"
)

// MaxUsernameLength bounds stored usernames.
const MaxUsernameLength = 64

// CleanUsername trims surrounding whitespace and checks the result is usable.
// Case is preserved: lookups by username are exact.
func CleanUsername(username string) (string, error) {
	username = strings.TrimSpace(username)

	if username == "" {
		return "", &ValidationError{Field: "username", Message: "username is required"}
	}

	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return "", &ValidationError{Field: "username", Message: "username must be at most 64 characters"}
	}

	return username, nil
}

// ValidationError represents a rejected input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
