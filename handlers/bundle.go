package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// User endpoints
	RegisterHandler    gin.HandlerFunc
	LoginHandler       gin.HandlerFunc
	VerifyTokenHandler gin.HandlerFunc

	// Booking endpoints
	GetSlotsHandler   gin.HandlerFunc
	BookSlotHandler   gin.HandlerFunc
	CancelSlotHandler gin.HandlerFunc

	// Ops
	HealthHandler gin.HandlerFunc

	// AuthMiddleware guards the booking endpoints.
	AuthMiddleware gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a HandlerBundle.
func NewHandlerBundle(uh *UserHandler, bh *BookingHandler, hh *HealthHandler, auth gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		RegisterHandler:    uh.RegisterHandler,
		LoginHandler:       uh.LoginHandler,
		VerifyTokenHandler: uh.VerifyTokenHandler,
		GetSlotsHandler:    bh.GetSlotsHandler,
		BookSlotHandler:    bh.BookSlotHandler,
		CancelSlotHandler:  bh.CancelSlotHandler,
		HealthHandler:      hh.HealthCheckHandler,
		AuthMiddleware:     auth,
	}
}
