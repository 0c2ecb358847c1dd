// Path: controllers/storefront/auth_controller/google_login.go

package auth_controller

import (
	"log"
	"net/http"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GoogleLogin godoc
// @Summary Redirect to Google OAuth
// @Description Starts the Google OAuth flow by generating a state token, storing it in a secure cookie, and redirecting the user to Google's consent page. An optional ?ref= referral code is stashed in a cookie for the callback.
// @Tags Auth - Google OAuth
// @Produce json
// @Param ref query string false "Referral code to redeem on first-time signup"
// @Success 307 "Temporary redirect to Google OAuth"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/google [get]
func GoogleLogin(c *gin.Context) {
	// Generate state token
	state := uuid.New().String()

	// SameSite=Lax so the cookies survive the redirect back from Google.
	// Must be set before SetCookie or it does not apply.
	c.SetSameSite(http.SameSiteLaxMode)

	c.SetCookie(
		"oauth_state", // name
		state,         // value
		3600,          // maxAge (1 hour)
		"/",           // path
		"",            // domain (empty = current domain)
		false,         // secure (false for localhost)
		true,          // httpOnly
	)

	// Stash the referral code so the callback can redeem it on first login
	if ref := services.NormalizeReferralCode(c.Query("ref")); ref != "" {
		c.SetCookie("referral_code", ref, 3600, "/", "", false, true)
	}

	url := config.GoogleOAuthConfig.AuthCodeURL(state)

	log.Printf("🔗 Redirecting to Google OAuth (state %s)", state)

	c.Redirect(http.StatusTemporaryRedirect, url)
}
