package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"peacelock/models"
)

// urgencyTier is the visual severity treatment applied to team alerts.
type urgencyTier struct {
	Label string
	Color string
}

var urgencyTiers = map[string]urgencyTier{
	models.UrgencyNormal:    {Label: "NORMAL PRIORITY", Color: "#10b981"},
	models.UrgencyUrgent:    {Label: "URGENT PRIORITY", Color: "#f59e0b"},
	models.UrgencyEmergency: {Label: "EMERGENCY PRIORITY", Color: "#dc2626"},
}

func tierFor(urgency string) urgencyTier {
	if t, ok := urgencyTiers[strings.ToLower(urgency)]; ok {
		return t
	}
	return urgencyTiers[models.UrgencyNormal]
}

// emailData carries every interpolated value. Rendering goes through
// html/template, so customer-controlled fields are escaped in HTML, URL
// and CSS contexts alike.
type emailData struct {
	CustomerName  string
	Email         string
	Phone         string
	ServiceType   string
	Urgency       string
	UrgencyLabel  string
	UrgencyColor  string
	Address       string
	City          string
	ZipCode       string
	PropertyType  string
	PreferredDate string
	PreferredTime string
	Description   string
	SubmittedAt   string

	// Best-effort session metadata, team alert only.
	UserAgent string
	ClientIP  string
	Referrer  string
}

func newEmailData(b models.Booking, meta models.RequestMeta) emailData {
	tier := tierFor(b.Urgency)
	return emailData{
		CustomerName:  b.CustomerName(),
		Email:         b.Email,
		Phone:         b.Phone,
		ServiceType:   b.ServiceType,
		Urgency:       b.Urgency,
		UrgencyLabel:  tier.Label,
		UrgencyColor:  tier.Color,
		Address:       b.Address,
		City:          b.City,
		ZipCode:       b.ZipCode,
		PropertyType:  b.PropertyType,
		PreferredDate: b.PreferredDate,
		PreferredTime: b.PreferredTime,
		Description:   b.Description,
		SubmittedAt:   b.CreatedAt.Format("Jan 2, 2006 3:04 PM"),
		UserAgent:     meta.UserAgent,
		ClientIP:      meta.ClientIP,
		Referrer:      meta.Referrer,
	}
}

const customerTemplateHTML = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Service Request Confirmation</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1);">
    <div style="background: linear-gradient(135deg, #f97316, #ea580c); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0;">
      <h1 style="margin: 0; font-size: 28px;">Peace &amp; Lock</h1>
      <p style="margin: 10px 0 0 0; font-size: 16px;">Professional Garage Door Services</p>
    </div>
    <div style="padding: 30px;">
      <h2 style="color: #f97316; margin-top: 0;">Thank you, {{.CustomerName}}!</h2>
      <p>We've received your service request and our team will review it promptly.</p>
      <div style="background: #f8f9fa; border-left: 4px solid #f97316; padding: 20px; margin: 20px 0;">
        <h3 style="margin-top: 0;">Your Service Request Details</h3>
        <p><strong>Service Type:</strong> {{.ServiceType}}</p>
        <p><strong>Urgency:</strong> {{.Urgency}}</p>
        <p><strong>Phone:</strong> {{.Phone}}</p>
        <p><strong>Address:</strong> {{.Address}}, {{.City}} {{.ZipCode}}</p>
        {{if .PreferredDate}}<p><strong>Preferred Date:</strong> {{.PreferredDate}}{{if .PreferredTime}} at {{.PreferredTime}}{{end}}</p>{{end}}
        {{if .Description}}<p><strong>Description:</strong> {{.Description}}</p>{{end}}
      </div>
      <div style="background: #ecfdf5; border: 1px solid #10b981; border-radius: 6px; padding: 20px; margin: 25px 0;">
        <h3 style="color: #10b981; margin-top: 0;">What Happens Next?</h3>
        <ul>
          <li>Our team will review your request promptly</li>
          <li>We'll call you to schedule a convenient time</li>
          <li>Our licensed technician will provide professional service</li>
        </ul>
      </div>
      <div style="background: #f0f9ff; padding: 20px; text-align: center; border-radius: 6px;">
        <h3 style="margin-top: 0;">Need Immediate Assistance?</h3>
        <p style="margin: 0;">Call us at <a href="tel:2015551234" style="color: #f97316; font-weight: 600;">(201) 555-1234</a> &mdash; available 24/7 for emergencies.</p>
      </div>
    </div>
  </div>
</body>
</html>`

const teamTemplateHTML = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>New Service Request</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1);">
    <div style="background: {{.UrgencyColor}}; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
      <h1 style="margin: 0; font-size: 22px;">{{.UrgencyLabel}}</h1>
      <p style="margin: 8px 0 0 0;">New service request received {{.SubmittedAt}}</p>
    </div>
    <div style="padding: 30px;">
      <div style="background: #f8f9fa; border-left: 4px solid {{.UrgencyColor}}; padding: 20px; margin-bottom: 20px;">
        <h3 style="margin-top: 0;">Customer Information</h3>
        <p><strong>Name:</strong> {{.CustomerName}}</p>
        <p><strong>Phone:</strong> {{.Phone}}</p>
        {{if .Email}}<p><strong>Email:</strong> {{.Email}}</p>{{end}}
        <p><strong>Address:</strong> {{.Address}}, {{.City}} {{.ZipCode}}</p>
        <p><strong>Property Type:</strong> {{.PropertyType}}</p>
      </div>
      <div style="background: #f8f9fa; border-left: 4px solid {{.UrgencyColor}}; padding: 20px; margin-bottom: 20px;">
        <h3 style="margin-top: 0;">Service Details</h3>
        <p><strong>Service Type:</strong> {{.ServiceType}}</p>
        <p><strong>Urgency:</strong> {{.Urgency}}</p>
        {{if .PreferredDate}}<p><strong>Preferred Date:</strong> {{.PreferredDate}}{{if .PreferredTime}} at {{.PreferredTime}}{{end}}</p>{{end}}
        <p><strong>Description:</strong> {{.Description}}</p>
      </div>
      {{if or .UserAgent .ClientIP .Referrer}}
      <div style="background: #f1f5f9; padding: 15px; margin-bottom: 20px; font-size: 13px; color: #64748b;">
        <h4 style="margin-top: 0;">Session Details</h4>
        {{if .ClientIP}}<p style="margin: 4px 0;"><strong>IP:</strong> {{.ClientIP}}</p>{{end}}
        {{if .UserAgent}}<p style="margin: 4px 0;"><strong>User Agent:</strong> {{.UserAgent}}</p>{{end}}
        {{if .Referrer}}<p style="margin: 4px 0;"><strong>Referrer:</strong> {{.Referrer}}</p>{{end}}
      </div>
      {{end}}
      <div style="text-align: center;">
        <a href="tel:{{.Phone}}" style="display: inline-block; padding: 12px 24px; margin: 5px; background: #f97316; color: white; text-decoration: none; border-radius: 6px; font-weight: 600;">Call Customer</a>
        {{if .Email}}<a href="mailto:{{.Email}}" style="display: inline-block; padding: 12px 24px; margin: 5px; background: #6b7280; color: white; text-decoration: none; border-radius: 6px; font-weight: 600;">Email Customer</a>{{end}}
      </div>
    </div>
  </div>
</body>
</html>`

var (
	customerTmpl = template.Must(template.New("customer").Parse(customerTemplateHTML))
	teamTmpl     = template.Must(template.New("team").Parse(teamTemplateHTML))
)

// RenderCustomerConfirmation renders the customer confirmation email body.
func RenderCustomerConfirmation(b models.Booking) (string, error) {
	var buf bytes.Buffer
	if err := customerTmpl.Execute(&buf, newEmailData(b, models.RequestMeta{})); err != nil {
		return "", fmt.Errorf("failed to render customer template: %w", err)
	}
	return buf.String(), nil
}

// RenderTeamAlert renders the internal team alert email body.
func RenderTeamAlert(b models.Booking, meta models.RequestMeta) (string, error) {
	var buf bytes.Buffer
	if err := teamTmpl.Execute(&buf, newEmailData(b, meta)); err != nil {
		return "", fmt.Errorf("failed to render team template: %w", err)
	}
	return buf.String(), nil
}
