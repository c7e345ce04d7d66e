package handlers

import (
	"errors"
	"net/http"

	"slotbook/middleware"
	"slotbook/services/booking"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the slot endpoints. Every route sits behind middleware.AuthMiddleware.
type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(bookingService booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: bookingService}
}

type bookRequest struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

type cancelRequest struct {
	Time string `json:"time"`
}

func bookingErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, booking.ErrMissingFields):
		return http.StatusBadRequest, "Name and time are required."
	case errors.Is(err, booking.ErrMissingTime):
		return http.StatusBadRequest, "Time is required."
	case errors.Is(err, booking.ErrSlotAlreadyBooked):
		return http.StatusBadRequest, "Slot already booked."
	case errors.Is(err, booking.ErrSlotNotBooked):
		return http.StatusBadRequest, "Slot is not booked."
	case errors.Is(err, booking.ErrSlotNotFound):
		return http.StatusNotFound, "Slot not found."
	case errors.Is(err, booking.ErrNotSlotOwner):
		return http.StatusForbidden, "You can only cancel your own bookings."
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func (h *BookingHandler) fail(c *gin.Context, op string, err error) {
	status, msg := bookingErrorStatus(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error(op+" failed", zap.Error(err))
	}
	utils.JSONError(c, status, msg)
}

// GetSlotsHandler handles GET /slots.
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	slots, err := h.BookingService.ListSlots(c.Request.Context())
	if err != nil {
		h.fail(c, "List slots", err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// BookSlotHandler handles POST /book.
func (h *BookingHandler) BookSlotHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req bookRequest
	if err := bindJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.BookingService.Book(c.Request.Context(), principal, req.Time, req.Name); err != nil {
		h.fail(c, "Book slot", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Slot booked successfully."})
}

// CancelSlotHandler handles POST /cancel.
func (h *BookingHandler) CancelSlotHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req cancelRequest
	if err := bindJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.BookingService.Cancel(c.Request.Context(), principal, req.Time); err != nil {
		h.fail(c, "Cancel slot", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled."})
}
