package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestCleanUsername(t *testing.T) {
	got, err := CleanUsername("  Alice ")
	if err != nil {
		t.Fatalf("CleanUsername: %v", err)
	}
	if got != "Alice" {
		t.Errorf("CleanUsername = %q, want %q", got, "Alice")
	}

	for _, in := range []string{"", "   ", strings.Repeat("x", MaxUsernameLength+1)} {
		_, err := CleanUsername(in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("CleanUsername(%q) error = %v, want ValidationError", in, err)
			continue
		}
		if verr.Field != "username" {
			t.Errorf("ValidationError.Field = %q, want username", verr.Field)
		}
	}
}
