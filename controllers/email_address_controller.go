package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"contacts-http-service/services"
	"contacts-http-service/services/container"
	"contacts-http-service/utils"
)

// InterfaceEmailAddressController defines the email address controller interface
type InterfaceEmailAddressController interface {
	ShowAddForm()
	CreateEmailAddress()
	DeleteEmailAddress()
}

// EmailAddressController handles email-address-related requests
type EmailAddressController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEmailAddressController creates a new email address controller
func NewEmailAddressController(ctx *gin.Context, container *container.ServiceContainer) *EmailAddressController {
	return &EmailAddressController{
		Ctx:       ctx,
		Container: container,
	}
}

// lookupPerson resolves the :person_id path parameter, rendering a 404 page
// when it does not resolve
func (c *EmailAddressController) lookupPerson() (uint, bool) {
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

// ShowAddForm displays the add-email-address form for a person
func (c *EmailAddressController) ShowAddForm() {
	personID, ok := c.lookupPerson()
	if !ok {
		return
	}

	c.Ctx.HTML(http.StatusOK, "add_email_address.html", gin.H{
		"Flash":    popFlash(c.Ctx, c.Container),
		"PersonID": personID,
	})
}

// CreateEmailAddress validates the submitted address, then either persists
// and redirects to the person page or re-renders the form with the error
func (c *EmailAddressController) CreateEmailAddress() {
	personID, ok := c.lookupPerson()
	if !ok {
		return
	}

	email := c.Ctx.PostForm("email")
	kind := c.Ctx.PostForm("type")

	if err := utils.ValidateEmailAddress(email); err != nil {
		c.Ctx.HTML(http.StatusOK, "add_email_address.html", gin.H{
			"Flash":    Flash{Error: err.Error()},
			"PersonID": personID,
		})
		return
	}

	emailService := c.Container.GetService("email_address").(services.InterfaceEmailAddressService)
	if _, err := emailService.CreateEmailAddress(email, kind, personID); err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	setFlash(c.Ctx, c.Container, services.FlashSuccess, "The email address has been added.")
	c.Ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/person/%d", personID))
}

// DeleteEmailAddress removes one email address and redirects to the owner's page
func (c *EmailAddressController) DeleteEmailAddress() {
	personID, ok := parseIDParam(c.Ctx, "person_id")
	if !ok {
		renderNotFound(c.Ctx, c.Container, "No such person.")
		return
	}
	emailID, ok := parseIDParam(c.Ctx, "email_id")
	if !ok {
		renderNotFound(c.Ctx, c.Container, "No such email address.")
		return
	}

	emailService := c.Container.GetService("email_address").(services.InterfaceEmailAddressService)
	if err := emailService.DeleteEmailAddress(emailID); err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	setFlash(c.Ctx, c.Container, services.FlashSuccess, "The email address has been deleted.")
	c.Ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/person/%d", personID))
}

// HandleEmailAddressFunc returns a gin handler dispatching to the email
// address controller
func HandleEmailAddressFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEmailAddressController(ctx, container)

		switch method {
		case "showAddForm":
			controller.ShowAddForm()
		case "createEmailAddress":
			controller.CreateEmailAddress()
		case "deleteEmailAddress":
			controller.DeleteEmailAddress()
		default:
			renderNotFound(ctx, container, "")
		}
	}
}
