package auth_controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"regexp"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/services"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ─────────────────────────────────────────────────────────────
// User-facing error taxonomy. Backend causes map to these fixed
// strings; anything unmapped falls back to MsgGeneric.
// ─────────────────────────────────────────────────────────────

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgDuplicateEmail     = "An account with this email already exists"
	MsgWeakPassword       = "Password must be at least 6 characters"
	MsgMalformedEmail     = "Please enter a valid email address"
	MsgInvalidPhone       = "Please enter a valid 10-digit mobile number"
	MsgInvalidOTP         = "Invalid OTP. Please check the code and try again"
	MsgExpiredOTP         = "OTP expired. Please request a new code"
	MsgTooManyAttempts    = "Too many incorrect attempts. Please request a new code"
	MsgInvalidReferral    = "Invalid referral code"
	MsgPopupCancelled     = "Sign-in was cancelled. Please try again"
	MsgRateLimited        = "Too many requests. Please try again later"
	MsgNameRequired       = "Please enter your name"
	MsgGeneric            = "Something went wrong. Please try again"
)

// isUniqueViolation reports whether an insert failed on a unique index. On
// the register path that means the email raced a concurrent signup past the
// lookup check.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// countryCode is prefixed to the 10-digit local number before dispatch.
const countryCode = "+91"

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// normalizePhone validates a 10-digit local number and returns it with the
// fixed country code.
func normalizePhone(local string) (string, bool) {
	if !phonePattern.MatchString(local) {
		return "", false
	}
	return countryCode + local, true
}

// issueSession generates the JWT, sets the auth cookie, records the login
// event, and refreshes last_login_at. Returns the token for body transport.
func issueSession(c *gin.Context, user *models.User) (string, error) {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}

	token, err := utils.IssueSessionToken(user.ID, email, user.Name)
	if err != nil {
		return "", err
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		token,
		24*60*60, // 24 hours
		"/",
		"",
		isProd,
		true, // httpOnly
	)

	if err := utils.LogLoginEvent(c, user.ID, user.Provider); err != nil {
		log.Printf("⚠️  Failed to log login event: %v", err)
	}

	if err := config.StoreGorm.Model(user).
		Updates(map[string]interface{}{"last_login_at": gorm.Expr("NOW()")}).Error; err != nil {
		log.Printf("⚠️  Failed to refresh last login: %v", err)
	}

	return token, nil
}

// createOrUpdateGoogleUser handles both first-time and returning Google
// sign-ins. First-time signups run through the referral transaction: a
// supplied code that matches nothing aborts the whole signup.
func createOrUpdateGoogleUser(googleUser *models.GoogleUserInfo, googleID string, emailVerified bool, referralCode string) (*models.User, error) {
	var user models.User

	result := config.StoreGorm.
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user
			user = models.User{
				Email:         &googleUser.Email,
				Name:          googleUser.Name,
				GoogleID:      &googleID,
				Provider:      "google",
				EmailVerified: emailVerified,
				Avatar:        &googleUser.Picture,
				Status:        "active",
			}

			referrer, err := services.CreateUserWithReferral(config.StoreGorm, &user, referralCode)
			if err != nil {
				return nil, err
			}
			notifySignup(&user, referrer)

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"avatar":         googleUser.Picture,
		"email_verified": emailVerified,
	}

	// Only set name if user never had one
	if user.Name == "" {
		updates["name"] = googleUser.Name
	}

	// Attach Google account if not already linked
	if user.GoogleID == nil || *user.GoogleID == "" {
		updates["google_id"] = googleID
		updates["provider"] = "google"
	}

	if err := config.StoreGorm.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Sync struct with DB updates
	if user.Name == "" {
		user.Name = googleUser.Name
	}
	user.Avatar = &googleUser.Picture
	user.EmailVerified = emailVerified

	return &user, nil
}

// notifySignup fires the welcome email and, when a referral was redeemed,
// the bonus email. Both are best-effort and never block the signup response.
func notifySignup(user *models.User, referrer *models.User) {
	client, err := services.NewResendClient()
	if err != nil {
		log.Printf("⚠️  Email disabled: %v", err)
		return
	}

	if user.Email != nil {
		welcome := services.WelcomeEmailData{
			Name:         user.Name,
			Email:        *user.Email,
			ReferralCode: user.ReferralCode,
		}
		go func() {
			if err := client.SendWelcomeEmail(welcome); err != nil {
				log.Printf("⚠️  Failed to send welcome email: %v", err)
			}
		}()
	}

	if referrer != nil && referrer.Email != nil {
		bonus := services.ReferralBonusEmailData{
			Name:        referrer.Name,
			Email:       *referrer.Email,
			BonusAmount: services.ReferralBonus,
		}
		go func() {
			if err := client.SendReferralBonusEmail(bonus); err != nil {
				log.Printf("⚠️  Failed to send referral bonus email: %v", err)
			}
		}()
	}
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

// setUserDataCookie exposes the fresh profile to the OAuth popup for one
// minute; it is not httpOnly on purpose.
func setUserDataCookie(c *gin.Context, user *models.User) {
	userJSON, _ := json.Marshal(user.ToResponse())
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"user_data",
		string(userJSON),
		60, // 1 minute (just for transfer)
		"/",
		"",
		isProd,
		false, // NOT httpOnly (popup needs to read it)
	)
}
