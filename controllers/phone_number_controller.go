package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"contacts-http-service/services"
	"contacts-http-service/services/container"
	"contacts-http-service/utils"
)

// InterfacePhoneNumberController defines the phone number controller interface
type InterfacePhoneNumberController interface {
	ShowAddForm()
	CreatePhoneNumber()
	DeletePhoneNumber()
}

// PhoneNumberController handles phone-number-related requests
type PhoneNumberController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPhoneNumberController creates a new phone number controller
func NewPhoneNumberController(ctx *gin.Context, container *container.ServiceContainer) *PhoneNumberController {
	return &PhoneNumberController{
		Ctx:       ctx,
		Container: container,
	}
}

// lookupPerson resolves the :person_id path parameter to a person, rendering
// a 404 page when it does not resolve. The bool reports success.
func (c *PhoneNumberController) lookupPerson() (uint, bool) {
	personID, ok := parseIDParam(c.Ctx, "person_id")
	if !ok {
		renderNotFound(c.Ctx, c.Container, "No such person.")
		return 0, false
	}

	personService := c.Container.GetService("person").(services.InterfacePersonService)
	if _, err := personService.GetPersonByID(personID); err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			renderNotFound(c.Ctx, c.Container, "No such person.")
		} else {
			renderServerError(c.Ctx, c.Container, err)
		}
		return 0, false
	}

	return personID, true
}

// ShowAddForm displays the add-phone-number form for a person
func (c *PhoneNumberController) ShowAddForm() {
	personID, ok := c.lookupPerson()
	if !ok {
		return
	}

	c.Ctx.HTML(http.StatusOK, "add_phone_number.html", gin.H{
		"Flash":    popFlash(c.Ctx, c.Container),
		"PersonID": personID,
	})
}

// CreatePhoneNumber validates the submitted fields, then either persists and
// redirects to the person page or re-renders the form with the error
func (c *PhoneNumberController) CreatePhoneNumber() {
	personID, ok := c.lookupPerson()
	if !ok {
		return
	}

	areaCode := c.Ctx.PostForm("area_code")
	number := c.Ctx.PostForm("number")
	kind := c.Ctx.PostForm("type")

	if err := utils.ValidatePhoneNumber(areaCode, number); err != nil {
		c.Ctx.HTML(http.StatusOK, "add_phone_number.html", gin.H{
			"Flash":    Flash{Error: err.Error()},
			"PersonID": personID,
		})
		return
	}

	// Validation guarantees both fields are all digits
	areaCodeValue, _ := strconv.Atoi(areaCode)
	numberValue, _ := strconv.Atoi(number)

	phoneService := c.Container.GetService("phone_number").(services.InterfacePhoneNumberService)
	if _, err := phoneService.CreatePhoneNumber(areaCodeValue, numberValue, kind, personID); err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	setFlash(c.Ctx, c.Container, services.FlashSuccess, "The phone number has been added.")
	c.Ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/person/%d", personID))
}

// DeletePhoneNumber removes one phone number and redirects to the owner's page
func (c *PhoneNumberController) DeletePhoneNumber() {
	personID, ok := parseIDParam(c.Ctx, "person_id")
	if !ok {
		renderNotFound(c.Ctx, c.Container, "No such person.")
		return
	}
	phoneID, ok := parseIDParam(c.Ctx, "phone_id")
	if !ok {
		renderNotFound(c.Ctx, c.Container, "No such phone number.")
		return
	}

	phoneService := c.Container.GetService("phone_number").(services.InterfacePhoneNumberService)
	if err := phoneService.DeletePhoneNumber(phoneID); err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	setFlash(c.Ctx, c.Container, services.FlashSuccess, "The phone number has been deleted.")
	c.Ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/person/%d", personID))
}

// HandlePhoneNumberFunc returns a gin handler dispatching to the phone
// number controller
func HandlePhoneNumberFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPhoneNumberController(ctx, container)

		switch method {
		case "showAddForm":
			controller.ShowAddForm()
		case "createPhoneNumber":
			controller.CreatePhoneNumber()
		case "deletePhoneNumber":
			controller.DeletePhoneNumber()
		default:
			renderNotFound(ctx, container, "")
		}
	}
}
