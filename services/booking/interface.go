package booking

import (
	"context"

	"peacelock/models"
)

// BookingService defines the submission pipeline operations.
type BookingService interface {
	// Submit validates, verifies, persists and dispatches a booking
	// request. The returned booking is final; email dispatch continues
	// in the background and never affects the result.
	Submit(ctx context.Context, req models.BookingRequest, meta models.RequestMeta) (*models.Booking, error)
	// GetBooking retrieves a booking by its ID.
	GetBooking(id string) (*models.Booking, error)
	// ListBookings retrieves all bookings.
	ListBookings() ([]models.Booking, error)
}

// Verifier is the bot-mitigation gate consumed by the service.
type Verifier interface {
	Enforcing() bool
	Verify(ctx context.Context, token string) bool
}

// Dispatcher triggers the notification fan-out for a persisted booking.
type Dispatcher interface {
	Dispatch(booking models.Booking, meta models.RequestMeta)
}
