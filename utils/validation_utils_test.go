package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		areaCode string
		number   string
		wantErr  string
	}{
		{"valid", "415", "5551234", ""},
		{"area code too short", "12", "5551234", "Area code must be 3 digits."},
		{"area code too long", "4155", "5551234", "Area code must be 3 digits."},
		{"area code with letters", "41a", "5551234", "Area code must be 3 digits."},
		{"area code empty", "", "5551234", "Area code must be 3 digits."},
		{"number too short", "415", "555123", "Phone number must be 7 digits."},
		{"number too long", "415", "55512345", "Phone number must be 7 digits."},
		{"number with dash", "415", "555-1234", "Phone number must be 7 digits."},
		{"number empty", "415", "", "Phone number must be 7 digits."},
		{"leading zeros accepted", "015", "0551234", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhoneNumber(tt.areaCode, tt.number)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStreetAddress(t *testing.T) {
	tests := []struct {
		name    string
		street  string
		city    string
		state   string
		postal  string
		wantErr string
	}{
		{"valid", "123 Main St", "Anytown", "CA", "94000", ""},
		{"valid lowercase state", "123 Main St", "Anytown", "ca", "94000", ""},
		{"street too long", strings.Repeat("a", 101), "Anytown", "CA", "94000", "Street address must be no more than 100 characters."},
		{"street at limit", strings.Repeat("a", 100), "Anytown", "CA", "94000", ""},
		{"city too long", "123 Main St", strings.Repeat("b", 51), "CA", "94000", "City name must be no more than 50 characters."},
		{"city at limit", "123 Main St", strings.Repeat("b", 50), "CA", "94000", ""},
		{"state one letter", "123 Main St", "Anytown", "C", "94000", "State code must be 2 letters."},
		{"state three letters", "123 Main St", "Anytown", "CAL", "94000", "State code must be 2 letters."},
		{"state with digit", "123 Main St", "Anytown", "C1", "94000", "State code must be 2 letters."},
		{"postal too short", "123 Main St", "Anytown", "CA", "9400", "Postal code must be 5 digits."},
		{"postal with letter", "123 Main St", "Anytown", "CA", "9400a", "Postal code must be 5 digits."},
		{"postal too long", "123 Main St", "Anytown", "CA", "940000", "Postal code must be 5 digits."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStreetAddress(tt.street, tt.city, tt.state, tt.postal)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmailAddress(t *testing.T) {
	valid := []string{
		"a@b.com",
		"user@example.com",
		"first.last@sub.example.org",
		"user+tag@example.co",
		"x_y-z@example.io",
	}
	for _, email := range valid {
		t.Run(email, func(t *testing.T) {
			assert.NoError(t, ValidateEmailAddress(email))
		})
	}

	invalid := []string{
		"not-an-email",
		"missing-at.example.com",
		"@example.com",
		"user@",
		"user@@example.com",
		"user@exa mple.com",
		"",
	}
	for _, email := range invalid {
		t.Run("invalid_"+email, func(t *testing.T) {
			assert.EqualError(t, ValidateEmailAddress(email), "Invalid format for email address.")
		})
	}
}

func TestValidatePersonName(t *testing.T) {
	assert.NoError(t, ValidatePersonName("Ada Lovelace"))
	assert.NoError(t, ValidatePersonName(""))
	assert.NoError(t, ValidatePersonName(strings.Repeat("x", 100)))
	assert.EqualError(t, ValidatePersonName(strings.Repeat("x", 101)),
		"Person's name must be no more than 100 characters.")
}
