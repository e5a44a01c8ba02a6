package notification

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"peacelock/models"
)

// fakeMailer records sends and can fail selectively per recipient address.
type fakeMailer struct {
	mu     sync.Mutex
	sent   []Email
	failTo map[string]error
}

func (m *fakeMailer) Send(_ context.Context, msg Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failTo[msg.To]; ok {
		return err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) sentTo() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var to []string
	for _, msg := range m.sent {
		to = append(to, msg.To)
	}
	return to
}

const teamAddr = "team@peaceandlocknj.com"

func newTestDispatcher(mailer Mailer) *Dispatcher {
	return NewDispatcher(mailer, teamAddr, zap.NewNop())
}

func TestDispatcher_SendConfirmation(t *testing.T) {
	mailer := &fakeMailer{}
	d := newTestDispatcher(mailer)

	outcome := d.SendConfirmation(context.Background(), sampleBooking())
	assert.Equal(t, models.DispatchSent, outcome.Status)
	assert.Equal(t, models.RecipientCustomer, outcome.Recipient)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@example.com", mailer.sent[0].To)
	assert.Equal(t, "Service Request Confirmation - Peace & Lock", mailer.sent[0].Subject)
}

func TestDispatcher_SendConfirmation_SkippedWithoutEmail(t *testing.T) {
	mailer := &fakeMailer{}
	d := newTestDispatcher(mailer)

	b := sampleBooking()
	b.Email = ""

	outcome := d.SendConfirmation(context.Background(), b)
	assert.Equal(t, models.DispatchSkipped, outcome.Status)
	assert.Empty(t, mailer.sent)
}

func TestDispatcher_SendTeamAlert(t *testing.T) {
	mailer := &fakeMailer{}
	d := newTestDispatcher(mailer)

	b := sampleBooking()
	b.Urgency = models.UrgencyEmergency

	outcome := d.SendTeamAlert(context.Background(), b, models.RequestMeta{})
	assert.Equal(t, models.DispatchSent, outcome.Status)
	assert.Equal(t, models.RecipientTeam, outcome.Recipient)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, teamAddr, mailer.sent[0].To)
	assert.Equal(t, "NEW EMERGENCY PRIORITY REQUEST - repair", mailer.sent[0].Subject)
	assert.Equal(t, "jane@example.com", mailer.sent[0].ReplyTo)
}

func TestDispatcher_SendTeamAlert_NoReplyToWithoutEmail(t *testing.T) {
	mailer := &fakeMailer{}
	d := newTestDispatcher(mailer)

	b := sampleBooking()
	b.Email = ""

	outcome := d.SendTeamAlert(context.Background(), b, models.RequestMeta{})
	assert.Equal(t, models.DispatchSent, outcome.Status)
	require.Len(t, mailer.sent, 1)
	assert.Empty(t, mailer.sent[0].ReplyTo)
}

func TestDispatcher_OutcomesAreIndependent(t *testing.T) {
	mailer := &fakeMailer{
		failTo: map[string]error{teamAddr: errors.New("smtp 550")},
	}
	d := newTestDispatcher(mailer)

	b := sampleBooking()
	customer := d.SendConfirmation(context.Background(), b)
	team := d.SendTeamAlert(context.Background(), b, models.RequestMeta{})

	assert.Equal(t, models.DispatchSent, customer.Status)
	assert.Equal(t, models.DispatchFailed, team.Status)
	assert.Error(t, team.Err)
	assert.NoError(t, customer.Err)
}

func TestDispatcher_Dispatch_FiresBoth(t *testing.T) {
	mailer := &fakeMailer{}
	d := newTestDispatcher(mailer)

	d.Dispatch(sampleBooking(), models.RequestMeta{UserAgent: "test"})
	d.Wait()

	assert.ElementsMatch(t, []string{"jane@example.com", teamAddr}, mailer.sentTo())
}

func TestDispatcher_Dispatch_FailureDoesNotPanic(t *testing.T) {
	mailer := &fakeMailer{
		failTo: map[string]error{
			"jane@example.com": errors.New("timeout"),
			teamAddr:           errors.New("timeout"),
		},
	}
	d := newTestDispatcher(mailer)

	d.Dispatch(sampleBooking(), models.RequestMeta{})
	d.Wait()

	assert.Empty(t, mailer.sent)
}
