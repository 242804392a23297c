package web

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all web UI routes
func RegisterRoutes(e *echo.Group, h *Handler) {
	// Customers
	e.GET("/", h.ListCustomers)
	e.GET("/search", h.SearchCustomers)
	e.GET("/best", h.BestCustomers)
	e.GET("/add", h.NewCustomerForm)
	e.POST("/add", h.CreateCustomer)
	e.GET("/:id", h.ShowCustomer)
	e.GET("/:id/edit", h.EditCustomerForm)
	e.POST("/:id/edit", h.UpdateCustomer)

	// Reservations
	e.POST("/:id/add-reservation", h.AddReservation)
}
