package models

import (
	"fmt"
	"strings"
	"time"
)

// Urgency levels accepted on a booking request.
const (
	UrgencyNormal    = "normal"
	UrgencyUrgent    = "urgent"
	UrgencyEmergency = "emergency"
)

// BookingRequest is the untrusted inbound payload of a service request
// submission. Required-ness and defaults are enforced by Validate and
// Normalize, not by the JSON decoder, so every integration path (full
// booking form, quick contact form) gets identical treatment.
type BookingRequest struct {
	// Personal information.
	FirstName string `json:"firstName" bson:"first_name"`
	LastName  string `json:"lastName" bson:"last_name"`
	Phone     string `json:"phone" bson:"phone"`
	// Email is optional; when absent the customer confirmation email is
	// skipped and the team alert is still sent.
	Email string `json:"email,omitempty" bson:"email,omitempty"`

	// Service details.
	ServiceType   string `json:"serviceType" bson:"service_type"`
	Urgency       string `json:"urgency,omitempty" binding:"omitempty,oneof=normal urgent emergency" bson:"urgency"`
	PreferredDate string `json:"preferredDate,omitempty" bson:"preferred_date,omitempty"`
	PreferredTime string `json:"preferredTime,omitempty" bson:"preferred_time,omitempty"`

	// Property information.
	Address      string `json:"address" bson:"address"`
	City         string `json:"city" bson:"city"`
	ZipCode      string `json:"zipCode" bson:"zip_code"`
	PropertyType string `json:"propertyType,omitempty" bson:"property_type"`

	// Issue description.
	Description     string `json:"description" bson:"description"`
	GarageDoorBrand string `json:"garageDoorBrand,omitempty" bson:"garage_door_brand,omitempty"`
	AgeOfDoor       string `json:"ageOfDoor,omitempty" bson:"age_of_door,omitempty"`

	// Additional options.
	ContactMethod    string `json:"contactMethod,omitempty" bson:"contact_method"`
	MarketingConsent bool   `json:"marketingConsent" bson:"marketing_consent"`

	// Bot mitigation. Never persisted.
	RecaptchaToken string `json:"recaptchaToken,omitempty" bson:"-"`
}

// requiredFields maps field keys (as they appear on the wire) to accessors.
var requiredFields = []struct {
	name  string
	value func(*BookingRequest) string
}{
	{"firstName", func(r *BookingRequest) string { return r.FirstName }},
	{"lastName", func(r *BookingRequest) string { return r.LastName }},
	{"phone", func(r *BookingRequest) string { return r.Phone }},
	{"serviceType", func(r *BookingRequest) string { return r.ServiceType }},
	{"address", func(r *BookingRequest) string { return r.Address }},
	{"city", func(r *BookingRequest) string { return r.City }},
	{"zipCode", func(r *BookingRequest) string { return r.ZipCode }},
	{"description", func(r *BookingRequest) string { return r.Description }},
}

// Validate checks the required fields and returns a ValidationError naming
// every missing one. Callers that want placeholder values for address or
// city must supply them explicitly; absence is always a failure here.
func (r *BookingRequest) Validate() error {
	var missing []string
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(r)) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Normalize applies the documented defaults for optional fields in place.
func (r *BookingRequest) Normalize() {
	if r.Urgency == "" {
		r.Urgency = UrgencyNormal
	}
	if r.PropertyType == "" {
		r.PropertyType = "residential"
	}
	if r.ContactMethod == "" {
		r.ContactMethod = "phone"
	}
	r.Email = strings.TrimSpace(r.Email)
}

// Booking is a persisted service request. Once created it is immutable;
// there is no update or delete operation.
type Booking struct {
	ID        string    `json:"id" bson:"id"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`

	BookingRequest `bson:",inline"`
}

// CustomerName returns the display name used in notification emails.
func (b *Booking) CustomerName() string {
	return fmt.Sprintf("%s %s", b.FirstName, b.LastName)
}
