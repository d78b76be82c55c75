package validation

import (
	"fmt"
	"regexp"
	"strings"

	"ripple/internal/models"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 30
	maxEmailLen    = 254
	maxContentLen  = 10000
	maxBioLen      = 500
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < minUsernameLen {
		return models.NewValidationError(fmt.Sprintf("username must be at least %d characters long", minUsernameLen))
	}
	if len(username) > maxUsernameLen {
		return models.NewValidationError(fmt.Sprintf("username must not exceed %d characters", maxUsernameLen))
	}
	if !usernameRe.MatchString(username) {
		return models.NewValidationError("username can only contain letters, numbers, underscores, and hyphens")
	}
	// Cannot start or end with underscore/hyphen
	if strings.HasPrefix(username, "_") || strings.HasPrefix(username, "-") ||
		strings.HasSuffix(username, "_") || strings.HasSuffix(username, "-") {
		return models.NewValidationError("username cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return models.NewValidationError("invalid email format")
	}
	if len(email) > maxEmailLen {
		return models.NewValidationError(fmt.Sprintf("email must not exceed %d characters", maxEmailLen))
	}

	return nil
}

// ValidateContent checks that post or comment text is non-empty after
// trimming and within the size cap.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("content cannot be empty")
	}
	if len(content) > maxContentLen {
		return models.NewValidationError(fmt.Sprintf("content must not exceed %d characters", maxContentLen))
	}

	return nil
}

// ValidateBio checks the profile bio length.
func ValidateBio(bio string) error {
	if len(bio) > maxBioLen {
		return models.NewValidationError(fmt.Sprintf("bio must not exceed %d characters", maxBioLen))
	}
	return nil
}
