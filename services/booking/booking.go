package booking

import (
	"context"
	"strings"

	"go.uber.org/zap"

	bookingRepo "peacelock/database/repository/booking"
	"peacelock/models"
)

// DefaultBookingService is the production implementation of the
// submission pipeline: shape validation, bot verification, normalization,
// persistence, then fire-and-forget notification dispatch.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Verifier   Verifier
	Dispatcher Dispatcher
	Logger     *zap.Logger
}

func (s *DefaultBookingService) Submit(ctx context.Context, req models.BookingRequest, meta models.RequestMeta) (*models.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.Verifier.Enforcing() {
		if strings.TrimSpace(req.RecaptchaToken) == "" {
			return nil, models.ErrMissingVerificationToken
		}
		if !s.Verifier.Verify(ctx, req.RecaptchaToken) {
			return nil, models.ErrVerificationFailed
		}
	}

	req.Normalize()

	booking, err := s.Repo.Create(req)
	if err != nil {
		return nil, &models.PersistenceFault{Op: "create booking", Err: err}
	}

	s.Logger.Info("New booking received",
		zap.String("bookingId", booking.ID),
		zap.String("name", booking.CustomerName()),
		zap.String("phone", booking.Phone),
		zap.String("serviceType", booking.ServiceType),
		zap.String("urgency", booking.Urgency))

	// Handoff. The dispatcher owns the work from here; submission
	// success no longer depends on it.
	s.Dispatcher.Dispatch(*booking, meta)

	return booking, nil
}

func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultBookingService) ListBookings() ([]models.Booking, error) {
	return s.Repo.GetAll()
}
