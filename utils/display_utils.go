package utils

import (
	"fmt"
	"strings"
)

// DisplayPhoneNumber formats a phone number as "(AAA) NNN-NNNN (type)".
// The seven-digit number is split 3+4; leading zeros are preserved.
func DisplayPhoneNumber(areaCode, number int, kind string) string {
	digits := fmt.Sprintf("%07d", number)
	return fmt.Sprintf("(%03d) %s-%s (%s)", areaCode, digits[:3], digits[3:], kind)
}

// DisplayStreetAddress formats a street address as
// "street, city, state, postal (type)".
func DisplayStreetAddress(street, city, state, postal, kind string) string {
	return fmt.Sprintf("%s, %s, %s, %s (%s)", street, city, state, postal, kind)
}

// DisplayEmailAddress formats an email address as "email (type)".
func DisplayEmailAddress(email, kind string) string {
	return fmt.Sprintf("%s (%s)", email, kind)
}

// CapitalizeWords upper-cases the first letter of each space-separated word
// and lower-cases the rest, e.g. "123 main st" -> "123 Main St".
func CapitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		if len(runes) > 0 {
			upper := []rune(strings.ToUpper(string(runes[0])))
			runes[0] = upper[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
