package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"contacts-http-service/config"
	"contacts-http-service/middleware"
	"contacts-http-service/services"
	"contacts-http-service/services/container"
)

// Flash carries the transient messages for one page render
type Flash struct {
	Error   string
	Success string
}

// popFlash consumes any pending flash messages for the current session.
// Messages are single-read: once returned here they are gone from the store.
func popFlash(c *gin.Context, ctn *container.ServiceContainer) Flash {
	flashService := ctn.GetService("flash").(services.InterfaceFlashService)
	sessionID := middleware.SessionID(c)

	errorMsg, err := flashService.Pop(sessionID, services.FlashError)
	if err != nil {
		config.Warning("failed to pop error flash: %v", err)
	}
	successMsg, err := flashService.Pop(sessionID, services.FlashSuccess)
	if err != nil {
		config.Warning("failed to pop success flash: %v", err)
	}

	return Flash{Error: errorMsg, Success: successMsg}
}

// setFlash stores a flash message so it survives the coming redirect
func setFlash(c *gin.Context, ctn *container.ServiceContainer, kind, message string) {
	flashService := ctn.GetService("flash").(services.InterfaceFlashService)
	if err := flashService.Set(middleware.SessionID(c), kind, message); err != nil {
		config.Warning("failed to set flash: %v", err)
	}
}

// parseIDParam parses an integer path parameter. A malformed ID is treated
// the same as a missing resource.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// renderNotFound renders the error page with a 404 status
func renderNotFound(c *gin.Context, ctn *container.ServiceContainer, message string) {
	if message == "" {
		message = "The page you requested does not exist."
	}
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"Flash":   popFlash(c, ctn),
		"Status":  http.StatusNotFound,
		"Message": message,
	})
}

// renderServerError logs the failure and renders the error page with a 500
// status. Each mutation is a single statement, so there is no partial state
// to clean up.
func renderServerError(c *gin.Context, ctn *container.ServiceContainer, err error) {
	config.Error("request failed: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Flash":   Flash{},
		"Status":  http.StatusInternalServerError,
		"Message": "Something went wrong. Please try again.",
	})
}
