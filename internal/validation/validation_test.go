package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "harry_potter", false},
		{"valid with digits", "albus123", false},
		{"minimum length", "abc", false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 31), true},
		{"maximum length", strings.Repeat("a", 30), false},
		{"spaces", "harry potter", true},
		{"punctuation", "harry!", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "longenough", false},
		{"minimum length", "12345678", false},
		{"too short", "1234567", true},
		{"too long for bcrypt", strings.Repeat("x", 73), true},
		{"maximum length", strings.Repeat("x", 72), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
