package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GoogleOneTap godoc
// @Summary Sign in with a Google One Tap credential
// @Description Verifies the ID token from the One Tap prompt via OIDC and signs the user in, running the referral transaction for first-time signups.
// @Tags Auth - Google OAuth
// @Accept json
// @Produce json
// @Param body body models.GoogleOneTapRequest true "One Tap credential"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid referral code"
// @Failure 401 {object} models.ApiResponse "Invalid credential"
// @Failure 500 {object} models.ApiResponse
// @Router /auth/google/one-tap [post]
func GoogleOneTap(c *gin.Context) {
	var req models.GoogleOneTapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgGeneric))
		return
	}

	idToken, err := config.OIDCVerifier.Verify(c.Request.Context(), req.Credential)
	if err != nil {
		log.Printf("❌ One Tap token verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, MsgPopupCancelled))
		return
	}

	var googleUser models.GoogleUserInfo
	if err := idToken.Claims(&googleUser); err != nil {
		log.Printf("❌ Failed to decode One Tap claims: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, MsgGeneric))
		return
	}

	if googleUser.Sub == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, MsgGeneric))
		return
	}

	user, err := createOrUpdateGoogleUser(&googleUser, googleUser.Sub, googleUser.EmailVerified, req.ReferralCode)
	if err != nil {
		if errors.Is(err, services.ErrInvalidReferralCode) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgInvalidReferral))
			return
		}
		log.Printf("❌ One Tap DB error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, MsgGeneric))
		return
	}

	token, err := issueSession(c, user)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, MsgGeneric))
		return
	}

	log.Printf("✅ One Tap login successful: %s", googleUser.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
