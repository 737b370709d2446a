package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayPhoneNumber(t *testing.T) {
	assert.Equal(t, "(415) 555-1234 (home)", DisplayPhoneNumber(415, 5551234, "home"))
	assert.Equal(t, "(212) 867-5309 (work)", DisplayPhoneNumber(212, 8675309, "work"))
	// Leading zeros are preserved in both parts
	assert.Equal(t, "(015) 055-1234 (home)", DisplayPhoneNumber(15, 551234, "home"))
}

func TestDisplayStreetAddress(t *testing.T) {
	assert.Equal(t, "123 Main St, Anytown, CA, 94000 (work)",
		DisplayStreetAddress("123 Main St", "Anytown", "CA", "94000", "work"))
}

func TestDisplayEmailAddress(t *testing.T) {
	assert.Equal(t, "ada@example.com (home)", DisplayEmailAddress("ada@example.com", "home"))
}

func TestCapitalizeWords(t *testing.T) {
	assert.Equal(t, "123 Main St", CapitalizeWords("123 main st"))
	assert.Equal(t, "Anytown", CapitalizeWords("anytown"))
	assert.Equal(t, "Main St", CapitalizeWords("MAIN ST"))
	assert.Equal(t, "", CapitalizeWords(""))
	assert.Equal(t, "A B C", CapitalizeWords("  a  b  c  "))
}
