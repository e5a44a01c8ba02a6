package bookingRepo

import (
	"peacelock/models"
)

// BookingRepository defines the narrow CRUD contract the core depends on.
// The default implementation is in-memory; a durable database slots in
// behind the same interface.
type BookingRepository interface {
	// Create assigns a fresh identifier, stamps the creation time, stores
	// the record and returns the full booking. Identifiers are never reused.
	Create(req models.BookingRequest) (*models.Booking, error)
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings in insertion order.
	GetAll() ([]models.Booking, error)
}
