package bookingRepo

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"peacelock/models"
)

// MemoryBookingRepo is the process-lifetime store used when no database
// is configured. Identifier assignment and insertion happen under one
// lock, so no two records can ever share an ID.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
	order    []string
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{
		bookings: make(map[string]models.Booking),
	}
}

func (r *MemoryBookingRepo) Create(req models.BookingRequest) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.RecaptchaToken = ""
	booking := models.Booking{
		ID:             uuid.New().String(),
		CreatedAt:      time.Now(),
		BookingRequest: req,
	}
	r.bookings[booking.ID] = booking
	r.order = append(r.order, booking.ID)
	return &booking, nil
}

func (r *MemoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &booking, nil
}

func (r *MemoryBookingRepo) GetAll() ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Booking, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.bookings[id])
	}
	return all, nil
}
