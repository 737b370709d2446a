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

// InterfaceStreetAddressController defines the street address controller interface
type InterfaceStreetAddressController interface {
	ShowAddForm()
	CreateStreetAddress()
	DeleteStreetAddress()
}

// StreetAddressController handles street-address-related requests
type StreetAddressController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStreetAddressController creates a new street address controller
func NewStreetAddressController(ctx *gin.Context, container *container.ServiceContainer) *StreetAddressController {
	return &StreetAddressController{
		Ctx:       ctx,
		Container: container,
	}
}

// lookupPerson resolves the :person_id path parameter, rendering a 404 page
// when it does not resolve
func (c *StreetAddressController) lookupPerson() (uint, bool) {
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

// ShowAddForm displays the add-street-address form for a person
func (c *StreetAddressController) ShowAddForm() {
	personID, ok := c.lookupPerson()
	if !ok {
		return
	}

	c.Ctx.HTML(http.StatusOK, "add_street_address.html", gin.H{
		"Flash":    popFlash(c.Ctx, c.Container),
		"PersonID": personID,
	})
}

// CreateStreetAddress validates the submitted fields, then either persists
// and redirects to the person page or re-renders the form with the error
func (c *StreetAddressController) CreateStreetAddress() {
	personID, ok := c.lookupPerson()
	if !ok {
		return
	}

	street := c.Ctx.PostForm("street")
	city := c.Ctx.PostForm("city")
	state := c.Ctx.PostForm("state")
	postal := c.Ctx.PostForm("postal")
	kind := c.Ctx.PostForm("type")

	if err := utils.ValidateStreetAddress(street, city, state, postal); err != nil {
		c.Ctx.HTML(http.StatusOK, "add_street_address.html", gin.H{
			"Flash":    Flash{Error: err.Error()},
			"PersonID": personID,
		})
		return
	}

	streetService := c.Container.GetService("street_address").(services.InterfaceStreetAddressService)
	if _, err := streetService.CreateStreetAddress(street, city, state, postal, kind, personID); err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	setFlash(c.Ctx, c.Container, services.FlashSuccess, "The street address has been added.")
	c.Ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/person/%d", personID))
}

// DeleteStreetAddress removes one street address and redirects to the
// owner's page
func (c *StreetAddressController) DeleteStreetAddress() {
	personID, ok := parseIDParam(c.Ctx, "person_id")
	if !ok {
		renderNotFound(c.Ctx, c.Container, "No such person.")
		return
	}
	streetID, ok := parseIDParam(c.Ctx, "street_id")
	if !ok {
		renderNotFound(c.Ctx, c.Container, "No such street address.")
		return
	}

	streetService := c.Container.GetService("street_address").(services.InterfaceStreetAddressService)
	if err := streetService.DeleteStreetAddress(streetID); err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	setFlash(c.Ctx, c.Container, services.FlashSuccess, "The street address has been deleted.")
	c.Ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/person/%d", personID))
}

// HandleStreetAddressFunc returns a gin handler dispatching to the street
// address controller
func HandleStreetAddressFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStreetAddressController(ctx, container)

		switch method {
		case "showAddForm":
			controller.ShowAddForm()
		case "createStreetAddress":
			controller.CreateStreetAddress()
		case "deleteStreetAddress":
			controller.DeleteStreetAddress()
		default:
			renderNotFound(ctx, container, "")
		}
	}
}
