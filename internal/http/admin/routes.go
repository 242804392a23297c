package admin

import "github.com/labstack/echo/v4"

func RegisterRoutes(g *echo.Group, h *Handler) {

	// Customers
	g.GET("/customers", h.GetCustomers)
	g.GET("/customers/best", h.GetBestCustomers)
	g.GET("/customers/search", h.SearchCustomers)
	g.GET("/customers/:id", h.GetCustomer)
	g.POST("/customers", h.CreateCustomer)
	g.PUT("/customers/:id", h.UpdateCustomer)

	// Reservations
	g.GET("/customers/:id/reservations", h.GetCustomerReservations)
	g.POST("/customers/:id/reservations", h.CreateReservation)
	g.GET("/reservations/:id", h.GetReservation)

	// Backup
	g.POST("/backup", h.BackupDatabase)
}
