package services

import (
	"regexp"
	"testing"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGenerateReferralCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^SC[A-Z0-9]{5}$`)
	for i := 0; i < 100; i++ {
		code := GenerateReferralCode()
		assert.True(t, pattern.MatchString(code), "unexpected code %q", code)
	}
}

func TestNormalizeReferralCode(t *testing.T) {
	assert.Equal(t, "SCAB12X", NormalizeReferralCode("  scab12x "))
	assert.Equal(t, "SCAB12X", NormalizeReferralCode("SCAB12X"))
	assert.Equal(t, "", NormalizeReferralCode("   "))
}

// newUserDB opens an in-memory database with a users table matching the
// production columns, sized down to what the signup transaction touches.
func newUserDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`
		CREATE TABLE users (
			id text PRIMARY KEY,
			name text NOT NULL,
			email text,
			phone text,
			password_hash text,
			google_id text,
			provider text NOT NULL,
			referral_code text NOT NULL UNIQUE,
			referred_by text,
			wallet_balance integer NOT NULL DEFAULT 0 CHECK (wallet_balance >= 0),
			wallet_coins integer NOT NULL DEFAULT 0,
			theme text NOT NULL DEFAULT 'light',
			status text DEFAULT 'active',
			email_verified numeric DEFAULT 0,
			avatar text,
			created_at datetime,
			updated_at datetime,
			last_login_at datetime
		)
	`).Error)
	return db
}

func seedReferrer(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	email := "meena@example.com"
	referrer := models.User{
		Name:         "Meena",
		Email:        &email,
		Provider:     "password",
		ReferralCode: "SCAAAAA",
		Status:       "active",
		Theme:        "light",
	}
	require.NoError(t, db.Create(&referrer).Error)
	return referrer
}

func TestCreateUserWithReferralCreditsBothWallets(t *testing.T) {
	db := newUserDB(t)
	referrer := seedReferrer(t, db)

	email := "ravi@example.com"
	signup := models.User{
		Name:     "Ravi",
		Email:    &email,
		Provider: "password",
		Status:   "active",
		Theme:    "light",
	}

	// Lowercase input must still match the stored code
	got, err := CreateUserWithReferral(db, &signup, "  scaaaaa ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, referrer.ID, got.ID)

	assert.Regexp(t, `^SC[A-Z0-9]{5}$`, signup.ReferralCode)
	assert.NotEqual(t, referrer.ReferralCode, signup.ReferralCode)
	require.NotNil(t, signup.ReferredBy)
	assert.Equal(t, referrer.ID, *signup.ReferredBy)

	var storedSignup, storedReferrer models.User
	require.NoError(t, db.First(&storedSignup, "id = ?", signup.ID).Error)
	require.NoError(t, db.First(&storedReferrer, "id = ?", referrer.ID).Error)
	assert.Equal(t, ReferralBonus, storedSignup.WalletBalance)
	assert.Equal(t, ReferralBonus, storedReferrer.WalletBalance)
}

func TestCreateUserWithReferralInvalidCodeWritesNothing(t *testing.T) {
	db := newUserDB(t)
	referrer := seedReferrer(t, db)

	email := "ravi@example.com"
	signup := models.User{
		Name:     "Ravi",
		Email:    &email,
		Provider: "password",
		Status:   "active",
		Theme:    "light",
	}

	got, err := CreateUserWithReferral(db, &signup, "SCZZZZZ")
	assert.ErrorIs(t, err, ErrInvalidReferralCode)
	assert.Nil(t, got)

	// The aborted transaction must leave only the seeded referrer behind,
	// with an untouched wallet
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var storedReferrer models.User
	require.NoError(t, db.First(&storedReferrer, "id = ?", referrer.ID).Error)
	assert.Equal(t, 0, storedReferrer.WalletBalance)
}

func TestCreateUserWithReferralNoCodeNoBonus(t *testing.T) {
	db := newUserDB(t)

	email := "asha@example.com"
	signup := models.User{
		Name:     "Asha",
		Email:    &email,
		Provider: "password",
		Status:   "active",
		Theme:    "light",
	}

	got, err := CreateUserWithReferral(db, &signup, "")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Regexp(t, `^SC[A-Z0-9]{5}$`, signup.ReferralCode)
	assert.Nil(t, signup.ReferredBy)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", signup.ID).Error)
	assert.Equal(t, 0, stored.WalletBalance)
}
