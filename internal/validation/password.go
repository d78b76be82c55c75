// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode"

	"ripple/internal/models"
)

const (
	minPasswordLen = 12
	maxPasswordLen = 128
)

var (
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
)

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return models.NewValidationError(fmt.Sprintf("password must be at least %d characters long", minPasswordLen))
	}
	if len(password) > maxPasswordLen {
		return models.NewValidationError(fmt.Sprintf("password must not exceed %d characters", maxPasswordLen))
	}

	var hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasUpper {
		return models.NewValidationError("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return models.NewValidationError("password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		return models.NewValidationError("password must contain at least one digit")
	}
	if !specialRe.MatchString(password) {
		return models.NewValidationError("password must contain at least one special character (!@#$%^&*)")
	}

	return nil
}
