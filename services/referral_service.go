package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"gorm.io/gorm"
)

// ReferralBonus is credited to both wallets on a successful redemption.
const ReferralBonus = 100

const (
	referralCodePrefix = "SC"
	referralCodeLength = 5
	codeAlphabet       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	maxCodeAttempts = 5
)

var (
	// ErrInvalidReferralCode means the supplied code matched no user.
	// Signup must abort without writing anything.
	ErrInvalidReferralCode = errors.New("invalid referral code")

	errCodeSpaceExhausted = errors.New("could not allocate a unique referral code")
)

// NormalizeReferralCode trims and uppercases user input before lookup.
func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GenerateReferralCode draws a fixed-prefix code with 5 random base-36
// characters. Uniqueness is enforced by the caller against the users table.
func GenerateReferralCode() string {
	b := make([]byte, referralCodeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return referralCodePrefix + string(b)
}

// CreateUserWithReferral persists a first-time signup. The whole flow runs in
// one transaction: referral-code lookup, fresh code allocation, profile
// insert, and both wallet credits. Wallet credits are in-database increments,
// so concurrent redemptions of the same code cannot race each other.
//
// The supplied code may be empty (no referral). A non-empty code that matches
// no user returns ErrInvalidReferralCode and leaves the database untouched.
// Returns the referrer when a bonus was credited, for notification purposes.
func CreateUserWithReferral(db *gorm.DB, user *models.User, suppliedCode string) (*models.User, error) {
	code := NormalizeReferralCode(suppliedCode)

	var referrer *models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if code != "" {
			var r models.User
			if err := tx.Where("referral_code = ?", code).First(&r).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInvalidReferralCode
				}
				return err
			}
			referrer = &r
		}

		fresh, err := allocateCode(tx)
		if err != nil {
			return err
		}
		user.ReferralCode = fresh

		if referrer != nil {
			user.ReferredBy = &referrer.ID
			user.WalletBalance += ReferralBonus
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if referrer != nil {
			if err := tx.Model(&models.User{}).
				Where("id = ?", referrer.ID).
				UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", ReferralBonus)).Error; err != nil {
				return err
			}
			referrer.WalletBalance += ReferralBonus
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidReferralCode) {
			log.Printf("❌ Signup transaction failed: %v", err)
		}
		return nil, err
	}

	if referrer != nil {
		log.Printf("✅ Referral redeemed: %s referred %s (+%d each)", referrer.ReferralCode, user.ReferralCode, ReferralBonus)
	}
	return referrer, nil
}

// allocateCode draws codes until one is unused. The code space is large
// enough that more than one retry is already suspicious, so attempts are
// bounded.
func allocateCode(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		candidate := GenerateReferralCode()
		var count int64
		if err := tx.Model(&models.User{}).
			Where("referral_code = ?", candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		log.Printf("⚠️ Referral code collision on %s (attempt %d)", candidate, attempt+1)
	}
	return "", fmt.Errorf("%w after %d attempts", errCodeSpaceExhausted, maxCodeAttempts)
}
