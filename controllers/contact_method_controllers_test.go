package controllers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacts-http-service/models"
	"contacts-http-service/services"
)

func TestAddPhoneNumberRejectsInvalidInput(t *testing.T) {
	app := newTestApp(t)
	personService := app.container.GetService("person").(services.InterfacePersonService)
	person, err := personService.CreatePerson("Ada Lovelace")
	require.NoError(t, err)

	w := app.postForm(t, fmt.Sprintf("/phone_number/add/%d", person.ID), url.Values{
		"area_code": {"12"},
		"number":    {"5551234"},
		"type":      {"home"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Area code must be 3 digits.")

	// No row was created
	var count int64
	require.NoError(t, app.db.Model(&models.PhoneNumber{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddPhoneNumberFlow(t *testing.T) {
	app := newTestApp(t)
	personService := app.container.GetService("person").(services.InterfacePersonService)
	person, err := personService.CreatePerson("Ada Lovelace")
	require.NoError(t, err)

	w := app.postForm(t, fmt.Sprintf("/phone_number/add/%d", person.ID), url.Values{
		"area_code": {"415"},
		"number":    {"5551234"},
		"type":      {"home"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, fmt.Sprintf("/person/%d", person.ID), w.Header().Get("Location"))

	w = app.get(t, fmt.Sprintf("/person/%d", person.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The phone number has been added.")
	assert.Contains(t, w.Body.String(), "(415) 555-1234 (home)")
}

func TestAddPhoneNumberForUnknownPerson(t *testing.T) {
	app := newTestApp(t)

	w := app.postForm(t, "/phone_number/add/9999", url.Values{
		"area_code": {"415"},
		"number":    {"5551234"},
		"type":      {"home"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePhoneNumberLeavesSiblings(t *testing.T) {
	app := newTestApp(t)
	personService := app.container.GetService("person").(services.InterfacePersonService)
	phoneService := app.container.GetService("phone_number").(services.InterfacePhoneNumberService)

	person, err := personService.CreatePerson("Ada Lovelace")
	require.NoError(t, err)
	doomed, err := phoneService.CreatePhoneNumber(415, 5551234, "home", person.ID)
	require.NoError(t, err)
	sibling, err := phoneService.CreatePhoneNumber(212, 8675309, "work", person.ID)
	require.NoError(t, err)

	w := app.postForm(t, fmt.Sprintf("/person/%d/phone_number/%d", person.ID, doomed.ID), nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	numbers, err := phoneService.GetPhoneNumbersByPersonID(person.ID)
	require.NoError(t, err)
	require.Len(t, numbers, 1)
	assert.Equal(t, sibling.ID, numbers[0].ID)

	w = app.get(t, fmt.Sprintf("/person/%d", person.ID))
	assert.Contains(t, w.Body.String(), "The phone number has been deleted.")
}

func TestAddStreetAddressRejectsInvalidInput(t *testing.T) {
	app := newTestApp(t)
	personService := app.container.GetService("person").(services.InterfacePersonService)
	person, err := personService.CreatePerson("Ada Lovelace")
	require.NoError(t, err)

	w := app.postForm(t, fmt.Sprintf("/street_address/add/%d", person.ID), url.Values{
		"street": {"123 Main St"},
		"city":   {"Anytown"},
		"state":  {"California"},
		"postal": {"94000"},
		"type":   {"home"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "State code must be 2 letters.")

	var count int64
	require.NoError(t, app.db.Model(&models.StreetAddress{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddStreetAddressFlow(t *testing.T) {
	app := newTestApp(t)
	personService := app.container.GetService("person").(services.InterfacePersonService)
	person, err := personService.CreatePerson("Ada Lovelace")
	require.NoError(t, err)

	w := app.postForm(t, fmt.Sprintf("/street_address/add/%d", person.ID), url.Values{
		"street": {"123 main st"},
		"city":   {"anytown"},
		"state":  {"ca"},
		"postal": {"94000"},
		"type":   {"work"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = app.get(t, fmt.Sprintf("/person/%d", person.ID))
	assert.Contains(t, w.Body.String(), "The street address has been added.")
	assert.Contains(t, w.Body.String(), "123 Main St, Anytown, CA, 94000 (work)")
}

func TestAddEmailAddressRejectsInvalidInput(t *testing.T) {
	app := newTestApp(t)
	personService := app.container.GetService("person").(services.InterfacePersonService)
	person, err := personService.CreatePerson("Ada Lovelace")
	require.NoError(t, err)

	w := app.postForm(t, fmt.Sprintf("/email_address/add/%d", person.ID), url.Values{
		"email": {"not-an-email"},
		"type":  {"home"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid format for email address.")

	var count int64
	require.NoError(t, app.db.Model(&models.EmailAddress{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddEmailAddressFlow(t *testing.T) {
	app := newTestApp(t)
	personService := app.container.GetService("person").(services.InterfacePersonService)
	person, err := personService.CreatePerson("Ada Lovelace")
	require.NoError(t, err)

	w := app.postForm(t, fmt.Sprintf("/email_address/add/%d", person.ID), url.Values{
		"email": {"ada@example.com"},
		"type":  {"home"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = app.get(t, fmt.Sprintf("/person/%d", person.ID))
	assert.Contains(t, w.Body.String(), "The email address has been added.")
	assert.Contains(t, w.Body.String(), "ada@example.com (home)")
}

func TestDeleteEmailAddress(t *testing.T) {
	app := newTestApp(t)
	personService := app.container.GetService("person").(services.InterfacePersonService)
	emailService := app.container.GetService("email_address").(services.InterfaceEmailAddressService)

	person, err := personService.CreatePerson("Ada Lovelace")
	require.NoError(t, err)
	created, err := emailService.CreateEmailAddress("ada@example.com", "home", person.ID)
	require.NoError(t, err)

	w := app.postForm(t, fmt.Sprintf("/person/%d/email_address/%d", person.ID, created.ID), nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	addresses, err := emailService.GetEmailAddressesByPersonID(person.ID)
	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestDeleteStreetAddress(t *testing.T) {
	app := newTestApp(t)
	personService := app.container.GetService("person").(services.InterfacePersonService)
	streetService := app.container.GetService("street_address").(services.InterfaceStreetAddressService)

	person, err := personService.CreatePerson("Ada Lovelace")
	require.NoError(t, err)
	created, err := streetService.CreateStreetAddress("123 Main St", "Anytown", "CA", "94000", "home", person.ID)
	require.NoError(t, err)

	w := app.postForm(t, fmt.Sprintf("/person/%d/street_address/%d", person.ID, created.ID), nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	addresses, err := streetService.GetStreetAddressesByPersonID(person.ID)
	require.NoError(t, err)
	assert.Empty(t, addresses)
}
