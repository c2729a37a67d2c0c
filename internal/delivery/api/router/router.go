// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"addressbook/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressBookHandler *handler.AddressBookHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	addressBookHandler *handler.AddressBookHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressBookHandler: params.AddressBookHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	apiV1.GET("/lookup", r.addressBookHandler.SearchAddresses)

	// Results of the last search
	candidatesGroup := apiV1.Group("/candidates")
	{
		candidatesGroup.GET("", r.addressBookHandler.GetCandidates)
		candidatesGroup.DELETE("", r.addressBookHandler.ResetCandidates)
	}

	addressBookGroup := apiV1.Group("/address-book")
	{
		addressBookGroup.GET("", r.addressBookHandler.ListAddresses)
		addressBookGroup.POST("", r.addressBookHandler.AddPerson)
		addressBookGroup.PUT("", r.addressBookHandler.ReplaceAddresses)
		addressBookGroup.DELETE("/:id", r.addressBookHandler.RemoveAddress)
	}
}
