package models

// RecipientClass identifies which notification a dispatch outcome belongs to.
type RecipientClass string

const (
	RecipientCustomer RecipientClass = "customer"
	RecipientTeam     RecipientClass = "team"
)

// Dispatch statuses. Outcomes are ephemeral: logged, never persisted,
// and never reflected in the HTTP response to the submitter.
const (
	DispatchSent    = "sent"
	DispatchFailed  = "failed"
	DispatchSkipped = "skipped"
)

// DispatchOutcome records the terminal state of one email send attempt.
type DispatchOutcome struct {
	BookingID string
	Recipient RecipientClass
	Status    string
	Err       error
}

// RequestMeta carries best-effort session metadata captured at HTTP
// ingress. All fields are optional; absence must not affect dispatch.
type RequestMeta struct {
	UserAgent string
	ClientIP  string
	Referrer  string
}
