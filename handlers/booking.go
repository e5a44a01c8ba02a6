package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"peacelock/models"
	"peacelock/services/booking"
	"peacelock/utils"
)

// BookingHandler exposes the booking submission and listing endpoints.
type BookingHandler struct {
	service booking.BookingService
	logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest,
			"Invalid booking data. Please check your inputs and try again.")
		return
	}

	meta := models.RequestMeta{
		UserAgent: c.Request.UserAgent(),
		ClientIP:  c.ClientIP(),
		Referrer:  c.Request.Referer(),
	}

	result, err := h.service.Submit(c.Request.Context(), req, meta)
	if err != nil {
		h.rejectSubmission(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Booking submitted successfully! You should receive a confirmation email shortly.",
		"bookingId": result.ID,
	})
}

// rejectSubmission maps pipeline errors to HTTP responses. Client-input
// faults get descriptive messages; infrastructure faults get a generic
// one with the cause kept in the logs.
func (h *BookingHandler) rejectSubmission(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var persistenceFault *models.PersistenceFault

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest,
			fmt.Sprintf("Missing required fields: %s", strings.Join(validationErr.Fields, ", ")))
	case errors.Is(err, models.ErrMissingVerificationToken):
		utils.JSONError(c, http.StatusBadRequest,
			"Missing verification token. Please reload the page and try again.")
	case errors.Is(err, models.ErrVerificationFailed):
		utils.JSONError(c, http.StatusBadRequest,
			"Verification failed. Please try again.")
	case errors.As(err, &persistenceFault):
		h.logger.Error("Booking persistence failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError,
			"Failed to submit booking. Please try again later.")
	default:
		h.logger.Error("Booking submission error", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest,
			"Invalid booking data. Please check your inputs and try again.")
	}
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings()
	if err != nil {
		h.logger.Error("Error fetching bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	result, err := h.service.GetBooking(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		h.logger.Error("Error fetching booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": result})
}
