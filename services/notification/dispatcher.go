package notification

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"peacelock/models"
)

// sendTimeout bounds each outbound mail call so a slow provider cannot
// hold resources indefinitely. The timeout firing is a dispatch failure,
// never a submission failure.
const sendTimeout = 8 * time.Second

const customerSubject = "Service Request Confirmation - Peace & Lock"

// Dispatcher renders and sends the two notification emails for a booking.
// Dispatch is fire-and-forget relative to the HTTP response; each outcome
// is logged independently and failures never cross the recipient boundary.
type Dispatcher struct {
	mailer    Mailer
	teamEmail string
	logger    *zap.Logger
	wg        sync.WaitGroup
}

func NewDispatcher(mailer Mailer, teamEmail string, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		mailer:    mailer,
		teamEmail: teamEmail,
		logger:    logger,
	}
}

// Dispatch fans out both sends in the background and returns immediately.
// The caller holds no reference to the work after handoff.
func (d *Dispatcher) Dispatch(booking models.Booking, meta models.RequestMeta) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		var inner sync.WaitGroup
		inner.Add(2)
		go func() {
			defer inner.Done()
			d.logOutcome(d.SendConfirmation(ctx, booking))
		}()
		go func() {
			defer inner.Done()
			d.logOutcome(d.SendTeamAlert(ctx, booking, meta))
		}()
		inner.Wait()
	}()
}

// Wait blocks until all in-flight dispatches have reached a terminal
// state. Used at shutdown and in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// SendConfirmation sends the customer confirmation email. A booking
// without an email address yields a skipped outcome, not a failure.
func (d *Dispatcher) SendConfirmation(ctx context.Context, booking models.Booking) models.DispatchOutcome {
	outcome := models.DispatchOutcome{
		BookingID: booking.ID,
		Recipient: models.RecipientCustomer,
	}

	if booking.Email == "" {
		outcome.Status = models.DispatchSkipped
		return outcome
	}

	html, err := RenderCustomerConfirmation(booking)
	if err != nil {
		outcome.Status = models.DispatchFailed
		outcome.Err = err
		return outcome
	}

	err = d.mailer.Send(ctx, Email{
		To:      booking.Email,
		ToName:  booking.CustomerName(),
		Subject: customerSubject,
		HTML:    html,
	})
	if err != nil {
		outcome.Status = models.DispatchFailed
		outcome.Err = err
		return outcome
	}
	outcome.Status = models.DispatchSent
	return outcome
}

// SendTeamAlert sends the internal team notification.
func (d *Dispatcher) SendTeamAlert(ctx context.Context, booking models.Booking, meta models.RequestMeta) models.DispatchOutcome {
	outcome := models.DispatchOutcome{
		BookingID: booking.ID,
		Recipient: models.RecipientTeam,
	}

	if d.teamEmail == "" {
		outcome.Status = models.DispatchSkipped
		return outcome
	}

	html, err := RenderTeamAlert(booking, meta)
	if err != nil {
		outcome.Status = models.DispatchFailed
		outcome.Err = err
		return outcome
	}

	msg := Email{
		To:      d.teamEmail,
		Subject: teamSubject(booking),
		HTML:    html,
	}
	if booking.Email != "" {
		msg.ReplyTo = booking.Email
	}

	if err := d.mailer.Send(ctx, msg); err != nil {
		outcome.Status = models.DispatchFailed
		outcome.Err = err
		return outcome
	}
	outcome.Status = models.DispatchSent
	return outcome
}

func teamSubject(booking models.Booking) string {
	return fmt.Sprintf("NEW %s PRIORITY REQUEST - %s",
		strings.ToUpper(booking.Urgency), booking.ServiceType)
}

func (d *Dispatcher) logOutcome(outcome models.DispatchOutcome) {
	fields := []zap.Field{
		zap.String("bookingId", outcome.BookingID),
		zap.String("recipient", string(outcome.Recipient)),
		zap.String("status", outcome.Status),
	}
	switch outcome.Status {
	case models.DispatchFailed:
		d.logger.Error("Email dispatch failed", append(fields, zap.Error(outcome.Err))...)
	case models.DispatchSkipped:
		d.logger.Info("Email dispatch skipped, no usable address", fields...)
	default:
		d.logger.Info("Email dispatched", fields...)
	}
}
