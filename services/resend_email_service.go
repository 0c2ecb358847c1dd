package services

import (
	"bytes"
	"encoding/json"
	"errors"
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

// NewResendClient creates a new Resend client. Returns an error when the
// API key is missing so callers can skip email for local development.
func NewResendClient() (*ResendClient, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, errors.New("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@sadhanacart.shop" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}, nil
}

// WelcomeEmailData holds data for the signup welcome email
type WelcomeEmailData struct {
	Name         string
	Email        string
	ReferralCode string
}

// ReferralBonusEmailData holds data for the referral bonus email
type ReferralBonusEmailData struct {
	Name        string
	Email       string
	BonusAmount int
}

// SendWelcomeEmail sends the post-signup welcome email via Resend
func (r *ResendClient) SendWelcomeEmail(data WelcomeEmailData) error {
	htmlBody := r.buildWelcomeHTML(data)
	subject := "Welcome to Sadhana Cart"
	return r.send(data.Email, subject, htmlBody)
}

// SendReferralBonusEmail notifies a referrer that their code was redeemed
func (r *ResendClient) SendReferralBonusEmail(data ReferralBonusEmailData) error {
	htmlBody := r.buildReferralBonusHTML(data)
	subject := fmt.Sprintf("You earned ₹%d in wallet credit", data.BonusAmount)
	return r.send(data.Email, subject, htmlBody)
}

func (r *ResendClient) send(to, subject, htmlBody string) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      to,
		"subject": subject,
		"html":    htmlBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	// Make request to Resend API
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

	// Check status code
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] email sent to %s", to)
	return nil
}

func (r *ResendClient) buildWelcomeHTML(data WelcomeEmailData) string {
	return fmt.Sprintf(`<!doctype html>
<html>
  <body style="margin: 0; padding: 0; background-color: #f6f6f4; font-family: Helvetica, Arial, sans-serif;">
    <table role="presentation" width="100%%" cellpadding="0" cellspacing="0" style="max-width: 560px; margin: 0 auto; padding: 32px 24px;">
      <tr>
        <td style="padding: 24px; background-color: #ffffff; border-radius: 8px;">
          <h1 style="font-size: 20px; color: #262622; margin: 0 0 16px;">Welcome, %s 👋</h1>
          <p style="font-size: 14px; color: #444; line-height: 1.6;">
            Your Sadhana Cart account is ready. Share your referral code with friends
            and you both earn ₹%d in wallet credit when they sign up.
          </p>
          <p style="font-size: 24px; letter-spacing: 4px; font-weight: 700; color: #262622; text-align: center; padding: 16px; background: #f0efe9; border-radius: 6px;">%s</p>
          <p style="font-size: 12px; color: #888;">Happy shopping!</p>
        </td>
      </tr>
    </table>
  </body>
</html>`, data.Name, ReferralBonus, data.ReferralCode)
}

func (r *ResendClient) buildReferralBonusHTML(data ReferralBonusEmailData) string {
	return fmt.Sprintf(`<!doctype html>
<html>
  <body style="margin: 0; padding: 0; background-color: #f6f6f4; font-family: Helvetica, Arial, sans-serif;">
    <table role="presentation" width="100%%" cellpadding="0" cellspacing="0" style="max-width: 560px; margin: 0 auto; padding: 32px 24px;">
      <tr>
        <td style="padding: 24px; background-color: #ffffff; border-radius: 8px;">
          <h1 style="font-size: 20px; color: #262622; margin: 0 0 16px;">Nice one, %s 🎉</h1>
          <p style="font-size: 14px; color: #444; line-height: 1.6;">
            Someone just signed up with your referral code. ₹%d has been added to
            your wallet and is ready to spend on your next order.
          </p>
        </td>
      </tr>
    </table>
  </body>
</html>`, data.Name, data.BonusAmount)
}
