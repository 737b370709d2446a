package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"contacts-http-service/services"
	"contacts-http-service/services/container"
	"contacts-http-service/utils"
)

// InterfacePersonController defines the person controller interface
type InterfacePersonController interface {
	Index()
	ShowAddForm()
	ShowPerson()
	CreatePerson()
	DeletePerson()
}

// PersonController handles person-related requests
type PersonController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPersonController creates a new person controller
func NewPersonController(ctx *gin.Context, container *container.ServiceContainer) *PersonController {
	return &PersonController{
		Ctx:       ctx,
		Container: container,
	}
}

// Index lists all persons
func (c *PersonController) Index() {
	personService := c.Container.GetService("person").(services.InterfacePersonService)
	persons, err := personService.GetAllPersons()
	if err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	c.Ctx.HTML(http.StatusOK, "index.html", gin.H{
		"Flash":   popFlash(c.Ctx, c.Container),
		"Persons": persons,
	})
}

// ShowAddForm displays the add-person form
func (c *PersonController) ShowAddForm() {
	c.Ctx.HTML(http.StatusOK, "add_person.html", gin.H{
		"Flash": popFlash(c.Ctx, c.Container),
	})
}

// ShowPerson displays one person with all attached contact methods
func (c *PersonController) ShowPerson() {
	personID, ok := parseIDParam(c.Ctx, "person_id")
	if !ok {
		renderNotFound(c.Ctx, c.Container, "No such person.")
		return
	}

	personService := c.Container.GetService("person").(services.InterfacePersonService)
	person, err := personService.GetPersonByID(personID)
	if err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			renderNotFound(c.Ctx, c.Container, "No such person.")
			return
		}
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	phoneService := c.Container.GetService("phone_number").(services.InterfacePhoneNumberService)
	phoneNumbers, err := phoneService.GetPhoneNumbersByPersonID(personID)
	if err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	streetService := c.Container.GetService("street_address").(services.InterfaceStreetAddressService)
	streetAddresses, err := streetService.GetStreetAddressesByPersonID(personID)
	if err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	emailService := c.Container.GetService("email_address").(services.InterfaceEmailAddressService)
	emailAddresses, err := emailService.GetEmailAddressesByPersonID(personID)
	if err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	c.Ctx.HTML(http.StatusOK, "person.html", gin.H{
		"Flash":           popFlash(c.Ctx, c.Container),
		"Person":          person,
		"PhoneNumbers":    phoneNumbers,
		"StreetAddresses": streetAddresses,
		"EmailAddresses":  emailAddresses,
	})
}

// CreatePerson validates the submitted name, then either persists and
// redirects to the listing or re-renders the form with the error
func (c *PersonController) CreatePerson() {
	name := c.Ctx.PostForm("name")

	if err := utils.ValidatePersonName(name); err != nil {
		c.Ctx.HTML(http.StatusOK, "add_person.html", gin.H{
			"Flash": Flash{Error: err.Error()},
		})
		return
	}

	personService := c.Container.GetService("person").(services.InterfacePersonService)
	if _, err := personService.CreatePerson(name); err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	setFlash(c.Ctx, c.Container, services.FlashSuccess, "The person has been added.")
	c.Ctx.Redirect(http.StatusSeeOther, "/index")
}

// DeletePerson deletes a person and all of their contact methods, then
// redirects to the listing
func (c *PersonController) DeletePerson() {
	personID, ok := parseIDParam(c.Ctx, "person_id")
	if !ok {
		renderNotFound(c.Ctx, c.Container, "No such person.")
		return
	}

	personService := c.Container.GetService("person").(services.InterfacePersonService)
	if err := personService.DeletePerson(personID); err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	setFlash(c.Ctx, c.Container, services.FlashSuccess, "The person has been deleted.")
	c.Ctx.Redirect(http.StatusSeeOther, "/index")
}

// HandlePersonFunc returns a gin handler dispatching to the person controller
func HandlePersonFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPersonController(ctx, container)

		switch method {
		case "index":
			controller.Index()
		case "showAddForm":
			controller.ShowAddForm()
		case "showPerson":
			controller.ShowPerson()
		case "createPerson":
			controller.CreatePerson()
		case "deletePerson":
			controller.DeletePerson()
		default:
			renderNotFound(ctx, container, "")
		}
	}
}
