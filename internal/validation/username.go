package validation

import (
	"fmt"
	"regexp"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 64
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateUsername проверяет имя учетной записи работника
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLength {
		return fmt.Errorf("username must be at least %d characters", MinUsernameLength)
	}
	if len(username) > MaxUsernameLength {
		return fmt.Errorf("username must be at most %d characters", MaxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username may contain only letters, digits, '_', '.' and '-'")
	}
	return nil
}
