package utils

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

var (
	threeDigits = regexp.MustCompile(`^[0-9]{3}$`)
	sevenDigits = regexp.MustCompile(`^[0-9]{7}$`)
	fiveDigits  = regexp.MustCompile(`^[0-9]{5}$`)
	twoLetters  = regexp.MustCompile(`^[a-zA-Z]{2}$`)

	// RFC mailbox grammar: local-part@domain with the standard allowed characters
	emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+" +
		"@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?" +
		"(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
)

// ValidatePhoneNumber checks that the area code is exactly 3 digits and the
// number exactly 7 digits. Non-digit characters are rejected outright.
func ValidatePhoneNumber(areaCode, number string) error {
	if !threeDigits.MatchString(areaCode) {
		return errors.New("Area code must be 3 digits.")
	}
	if !sevenDigits.MatchString(number) {
		return errors.New("Phone number must be 7 digits.")
	}
	return nil
}

// ValidateStreetAddress checks the street address field constraints.
func ValidateStreetAddress(street, city, state, postal string) error {
	if utf8.RuneCountInString(street) > 100 {
		return errors.New("Street address must be no more than 100 characters.")
	}
	if utf8.RuneCountInString(city) > 50 {
		return errors.New("City name must be no more than 50 characters.")
	}
	if !twoLetters.MatchString(state) {
		return errors.New("State code must be 2 letters.")
	}
	if !fiveDigits.MatchString(postal) {
		return errors.New("Postal code must be 5 digits.")
	}
	return nil
}

// ValidateEmailAddress checks that the value is a well-formed mailbox address.
func ValidateEmailAddress(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.New("Invalid format for email address.")
	}
	return nil
}

// ValidatePersonName checks that the name fits the persons.name column.
func ValidatePersonName(name string) error {
	if utf8.RuneCountInString(name) > 100 {
		return errors.New("Person's name must be no more than 100 characters.")
	}
	return nil
}
