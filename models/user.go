package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string     `json:"name" gorm:"type:varchar(255);not null"`
	Email         *string    `json:"email,omitempty" gorm:"type:varchar(255);uniqueIndex:idx_users_email,where:email IS NOT NULL"`
	Phone         *string    `json:"phone,omitempty" gorm:"type:varchar(50);uniqueIndex:idx_users_phone,where:phone IS NOT NULL"`
	PasswordHash  *string    `json:"-" gorm:"column:password_hash;type:text"`
	GoogleID      *string    `json:"googleId,omitempty" gorm:"column:google_id;type:varchar(255);uniqueIndex:idx_users_google_id,where:google_id IS NOT NULL"`
	Provider      string     `json:"provider" gorm:"type:varchar(50);not null;check:provider IN ('password', 'phone', 'google')"`
	ReferralCode  string     `json:"referralCode" gorm:"column:referral_code;type:varchar(20);uniqueIndex;not null"`
	ReferredBy    *uuid.UUID `json:"referredBy,omitempty" gorm:"column:referred_by;type:uuid"`
	WalletBalance int        `json:"walletBalance" gorm:"column:wallet_balance;not null;default:0;check:wallet_balance >= 0"`
	WalletCoins   int        `json:"walletCoins" gorm:"column:wallet_coins;not null;default:0"`
	Theme         string     `json:"theme" gorm:"type:varchar(20);not null;default:'light';check:theme IN ('light', 'dark')"`
	Status        string     `json:"status" gorm:"type:varchar(50);default:'active';index"`
	EmailVerified bool       `json:"emailVerified" gorm:"column:email_verified;default:false"`
	Avatar        *string    `json:"avatar,omitempty" gorm:"type:text"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty" gorm:"column:last_login_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         *string   `json:"email"`
	Phone         *string   `json:"phone"`
	Provider      string    `json:"provider"`
	ReferralCode  string    `json:"referral_code"`
	WalletBalance int       `json:"wallet_balance"`
	WalletCoins   int       `json:"wallet_coins"`
	Theme         string    `json:"theme"`
	EmailVerified bool      `json:"email_verified"`
	Avatar        *string   `json:"avatar,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email, // ✅ keep pointer
		Phone:         u.Phone,
		Provider:      u.Provider,
		ReferralCode:  u.ReferralCode,
		WalletBalance: u.WalletBalance,
		WalletCoins:   u.WalletCoins,
		Theme:         u.Theme,
		EmailVerified: u.EmailVerified,
		Avatar:        u.Avatar,
		CreatedAt:     u.CreatedAt,
	}
}

// GoogleUserInfo represents data from Google OAuth
type GoogleUserInfo struct {
	Sub           string `json:"sub"` // Google user ID
	ID            string `json:"id"`  // Alternative field name
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// RegisterRequest for email/password signup
type RegisterRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=255"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	ReferralCode string `json:"referral_code"`
}

// LoginRequest for email/password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PhoneOTPRequest asks for a one-time code to be sent
type PhoneOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// PhoneVerifyRequest exchanges a code for a session
type PhoneVerifyRequest struct {
	Phone        string `json:"phone" binding:"required"`
	OTP          string `json:"otp" binding:"required"`
	Name         string `json:"name"`
	ReferralCode string `json:"referral_code"`
}

// GoogleOneTapRequest carries the ID token from the One Tap prompt
type GoogleOneTapRequest struct {
	Credential   string `json:"credential" binding:"required"`
	ReferralCode string `json:"referral_code"`
}

// UpdatePreferencesRequest for profile settings
type UpdatePreferencesRequest struct {
	Theme *string `json:"theme" binding:"omitempty,oneof=light dark"`
	Name  *string `json:"name" binding:"omitempty,min=2,max=255"`
}

// WalletResponse for the wallet widget
type WalletResponse struct {
	Balance int `json:"balance"`
	Coins   int `json:"coins"`
}

// UserOverviewResponse backs the header badges
type UserOverviewResponse struct {
	Profile     UserResponse   `json:"profile"`
	TotalOrders int            `json:"total_orders"`
	OpenOrders  int            `json:"open_orders"`
	Wallet      WalletResponse `json:"wallet"`
}
