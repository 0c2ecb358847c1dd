package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	otpTTL            = 5 * time.Minute
	maxVerifyAttempts = 5
)

var (
	// ErrInvalidOTP means the code did not match the pending one.
	ErrInvalidOTP = errors.New("invalid otp")
	// ErrExpiredOTP means no code is pending for the number.
	ErrExpiredOTP = errors.New("otp expired")
	// ErrTooManyAttempts means the pending code was burned by repeated
	// wrong guesses.
	ErrTooManyAttempts = errors.New("too many otp attempts")
)

// OTPService issues and verifies one-time codes for phone signup. Codes live
// in Redis under the full phone number; issuing a new code for a number
// replaces any pending one, which is what the "change number" flow relies on.
type OTPService struct {
	redis  *redis.Client
	sender SMSSender
}

var otpService *OTPService

// InitOTPService wires the service singleton
func InitOTPService(client *redis.Client, sender SMSSender) {
	otpService = &OTPService{redis: client, sender: sender}
}

// GetOTPService returns the initialized OTP service
func GetOTPService() *OTPService {
	return otpService
}

func otpKey(phone string) string      { return "otp:" + phone }
func attemptsKey(phone string) string { return "otp:" + phone + ":attempts" }

// RequestOTP generates a 6-digit code, stores it with a 5-minute TTL, and
// dispatches it over SMS. A previously pending code for the number is
// discarded.
func (s *OTPService) RequestOTP(ctx context.Context, phone string) error {
	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	if err := s.redis.Set(ctx, otpKey(phone), code, otpTTL).Err(); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	// Fresh code, fresh attempt budget
	s.redis.Del(ctx, attemptsKey(phone))

	message := fmt.Sprintf("Your Sadhana Cart verification code is %s. It expires in 5 minutes.", code)
	if err := s.sender.Send(ctx, phone, message); err != nil {
		// Burn the stored code so a failed dispatch cannot be guessed against
		s.redis.Del(ctx, otpKey(phone))
		return err
	}

	return nil
}

// VerifyOTP checks the submitted code against the pending one and consumes
// it on success.
func (s *OTPService) VerifyOTP(ctx context.Context, phone, code string) error {
	stored, err := s.redis.Get(ctx, otpKey(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrExpiredOTP
	}
	if err != nil {
		return fmt.Errorf("failed to read otp: %w", err)
	}

	attempts, err := s.redis.Incr(ctx, attemptsKey(phone)).Result()
	if err != nil {
		return fmt.Errorf("failed to count otp attempts: %w", err)
	}
	if attempts == 1 {
		s.redis.Expire(ctx, attemptsKey(phone), otpTTL)
	}
	if attempts > maxVerifyAttempts {
		s.redis.Del(ctx, otpKey(phone), attemptsKey(phone))
		return ErrTooManyAttempts
	}

	if stored != code {
		return ErrInvalidOTP
	}

	s.redis.Del(ctx, otpKey(phone), attemptsKey(phone))
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
