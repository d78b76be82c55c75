package validation

import (
	"strings"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "SecurePass12!@", false},
		{"Exactly Min Length", "Abcdefghij1!", false},
		{"Too Short", "Small1!", true},
		{"Too Long", "A" + strings.Repeat("b", 126) + "1!", true},
		{"No Upper", "securepass12!", true},
		{"No Lower", "SECUREPASS12!", true},
		{"No Digit", "SecurePass!!", true},
		{"No Special", "SecurePass123", true},
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

func TestValidateUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "some_user-1", false},
		{"Too Short", "ab", true},
		{"Too Long", strings.Repeat("a", 31), true},
		{"Invalid Characters", "user name", true},
		{"Leading Underscore", "_user", true},
		{"Trailing Hyphen", "user-", true},
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

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("user@"+strings.Repeat("a", 250)+".com"))
}

func TestValidateContent(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateContent("hello world"))
	assert.Error(t, ValidateContent(""))
	assert.Error(t, ValidateContent("   \n\t  "))
	assert.Error(t, ValidateContent(strings.Repeat("x", 10001)))
}

// Every validator failure must map to a 400 through the error taxonomy,
// never fall through to a 500.
func TestValidationErrorsCarryCode(t *testing.T) {
	t.Parallel()
	errs := []error{
		ValidateUsername("ab"),
		ValidateEmail("not-an-email"),
		ValidatePassword("short"),
		ValidateContent("   "),
		ValidateBio(strings.Repeat("x", 501)),
	}
	for _, err := range errs {
		assert.True(t, models.IsCode(err, models.ErrCodeValidation), "got %v", err)
	}
}
