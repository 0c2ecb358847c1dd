package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// SMSSender dispatches one text message.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// NewSMSSenderFromEnv picks the gateway sender when SMS_GATEWAY_URL is set,
// otherwise the console sender (local development).
func NewSMSSenderFromEnv() SMSSender {
	gatewayURL := os.Getenv("SMS_GATEWAY_URL")
	if gatewayURL == "" {
		log.Println("⚠️  SMS_GATEWAY_URL not set, OTP codes will be logged to console")
		return &ConsoleSMSSender{}
	}
	return &GatewaySMSSender{
		url:    gatewayURL,
		apiKey: os.Getenv("SMS_GATEWAY_API_KEY"),
	}
}

// ConsoleSMSSender prints the message instead of sending it.
type ConsoleSMSSender struct{}

func (s *ConsoleSMSSender) Send(ctx context.Context, phone, message string) error {
	log.Printf("📱 [sms:console] to=%s message=%q", phone, message)
	return nil
}

// GatewaySMSSender posts the message to an HTTP SMS gateway.
type GatewaySMSSender struct {
	url    string
	apiKey string
}

func (s *GatewaySMSSender) Send(ctx context.Context, phone, message string) error {
	payload := map[string]string{
		"to":      phone,
		"message": message,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[sms] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[sms] gateway returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("sms gateway error: status %d", resp.StatusCode)
	}

	log.Printf("[sms] message sent to %s", phone)
	return nil
}
