package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@passculture.app" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// sendEmail posts a payload to the Resend API
func (r *ResendClient) sendEmail(payload map[string]interface{}) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	return nil
}

// OfferValidationEmailData holds data for the offer moderation outcome email
type OfferValidationEmailData struct {
	RecipientEmail string
	RecipientName  string
	OfferName      string
	VenueName      string
	Approved       bool
	OfferLink      string
}

// SendOfferValidationEmail notifies the offer's booking contact of the
// moderation outcome (approved or rejected)
func (r *ResendClient) SendOfferValidationEmail(data OfferValidationEmailData) error {
	subject := fmt.Sprintf("Your offer \"%s\" has been approved", data.OfferName)
	if !data.Approved {
		subject = fmt.Sprintf("Your offer \"%s\" has been rejected", data.OfferName)
	}

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.RecipientEmail,
		"subject": subject,
		"html":    r.buildOfferValidationHTML(data),
	}

	if err := r.sendEmail(payload); err != nil {
		return err
	}

	log.Printf("[resend] offer validation email sent to %s (approved=%t)", data.RecipientEmail, data.Approved)
	return nil
}

// buildOfferValidationHTML creates the HTML body for the moderation outcome email
func (r *ResendClient) buildOfferValidationHTML(data OfferValidationEmailData) string {
	outcome := `<p style="margin: 8px 0; font-size: 15px; color: #262622;">Good news! Your offer has been <strong>approved</strong> and is now visible to beneficiaries.</p>`
	if !data.Approved {
		outcome = `<p style="margin: 8px 0; font-size: 15px; color: #262622;">Unfortunately your offer has been <strong>rejected</strong> by our moderation team. It will not be shown to beneficiaries.</p>`
	}

	return fmt.Sprintf(`<!doctype html>
<html>
<body style="margin: 0; padding: 24px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 600px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 22px; font-weight: bold; color: #6123df;">pass Culture Pro</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <p style="margin: 0 0 8px 0; font-size: 15px; color: #262622;">Hello %s,</p>
        %s
        <p style="margin: 8px 0; font-size: 14px; color: #79776d;">Offer: <strong>%s</strong><br>Venue: %s</p>
        <p style="margin: 16px 0;">
          <a href="%s" style="display: inline-block; padding: 10px 20px; background: #6123df; color: #ffffff; text-decoration: none; font-size: 14px;">View your offer</a>
        </p>
      </td>
    </tr>
    <tr>
      <td style="padding-top: 16px; border-top: 1px solid #e5e5e0;">
        <p style="margin: 0; font-size: 12px; color: #79776d;">© 2026 pass Culture. All rights reserved.</p>
      </td>
    </tr>
  </table>
</body>
</html>`, data.RecipientName, outcome, data.OfferName, data.VenueName, data.OfferLink)
}

// BookingCancellationEmailData holds data for the booking cancellation email
type BookingCancellationEmailData struct {
	RecipientEmail  string
	BeneficiaryName string
	BookingToken    string
	OfferName       string
	VenueName       string
	Amount          float64
}

// SendBookingCancellationEmail notifies the offer's booking contact that a
// beneficiary cancelled a booking
func (r *ResendClient) SendBookingCancellationEmail(data BookingCancellationEmailData) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.RecipientEmail,
		"subject": fmt.Sprintf("Booking %s for \"%s\" was cancelled", data.BookingToken, data.OfferName),
		"html":    r.buildBookingCancellationHTML(data),
	}

	if err := r.sendEmail(payload); err != nil {
		return err
	}

	log.Printf("[resend] booking cancellation email sent to %s (token %s)", data.RecipientEmail, data.BookingToken)
	return nil
}

// buildBookingCancellationHTML creates the HTML body for the cancellation email
func (r *ResendClient) buildBookingCancellationHTML(data BookingCancellationEmailData) string {
	return fmt.Sprintf(`<!doctype html>
<html>
<body style="margin: 0; padding: 24px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 600px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 22px; font-weight: bold; color: #6123df;">pass Culture Pro</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <p style="margin: 0 0 8px 0; font-size: 15px; color: #262622;">A booking for your offer <strong>%s</strong> at %s has been cancelled.</p>
        <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="margin-top: 12px;">
          <tr>
            <td style="font-size: 14px; color: #79776d; padding: 4px 0;">Beneficiary</td>
            <td style="font-size: 14px; color: #262622; text-align: right;">%s</td>
          </tr>
          <tr>
            <td style="font-size: 14px; color: #79776d; padding: 4px 0;">Counterpart token</td>
            <td style="font-size: 14px; color: #262622; text-align: right;">%s</td>
          </tr>
          <tr>
            <td style="font-size: 14px; color: #79776d; padding: 4px 0;">Amount</td>
            <td style="font-size: 14px; color: #262622; text-align: right;">%.2f&nbsp;€</td>
          </tr>
        </table>
        <p style="margin: 16px 0 0 0; font-size: 14px; color: #79776d;">The corresponding stock quantity has been released.</p>
      </td>
    </tr>
    <tr>
      <td style="padding-top: 16px; border-top: 1px solid #e5e5e0;">
        <p style="margin: 0; font-size: 12px; color: #79776d;">© 2026 pass Culture. All rights reserved.</p>
      </td>
    </tr>
  </table>
</body>
</html>`, data.OfferName, data.VenueName, data.BeneficiaryName, data.BookingToken, data.Amount)
}

// Global instance
var resendClient *ResendClient

// GetResendClient returns the global Resend client
func GetResendClient() *ResendClient {
	if resendClient == nil {
		resendClient = NewResendClient()
	}
	return resendClient
}
