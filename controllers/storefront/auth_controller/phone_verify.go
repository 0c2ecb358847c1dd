package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var otpPattern = regexp.MustCompile(`^[0-9]{6}$`)

// VerifyPhoneOTP godoc
// @Summary Exchange a one-time code for a session
// @Description Verifies a 6-digit OTP. First-time numbers create a profile (name required, referral code honored); returning users just get a fresh session.
// @Tags Auth - Phone
// @Accept json
// @Produce json
// @Param body body models.PhoneVerifyRequest true "Phone + OTP, plus name/referral for first-time signup"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid phone, OTP, or referral code"
// @Failure 500 {object} models.ApiResponse
// @Router /auth/phone/verify [post]
func VerifyPhoneOTP(c *gin.Context) {
	var req models.PhoneVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgGeneric))
		return
	}

	phone, ok := normalizePhone(req.Phone)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgInvalidPhone))
		return
	}

	if !otpPattern.MatchString(req.OTP) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgInvalidOTP))
		return
	}

	if err := services.GetOTPService().VerifyOTP(c.Request.Context(), phone, req.OTP); err != nil {
		switch {
		case errors.Is(err, services.ErrExpiredOTP):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgExpiredOTP))
		case errors.Is(err, services.ErrTooManyAttempts):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgTooManyAttempts))
		case errors.Is(err, services.ErrInvalidOTP):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgInvalidOTP))
		default:
			log.Printf("❌ OTP verify failed for %s: %v", phone, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, MsgGeneric))
		}
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := config.StoreGorm.WithContext(ctx).Where("phone = ?", phone).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// First login for this number: create the profile
		name := strings.TrimSpace(req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgNameRequired))
			return
		}

		user = models.User{
			Name:     name,
			Phone:    &phone,
			Provider: "phone",
			Status:   "active",
		}

		referrer, err := services.CreateUserWithReferral(config.StoreGorm.WithContext(ctx), &user, req.ReferralCode)
		if err != nil {
			if errors.Is(err, services.ErrInvalidReferralCode) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgInvalidReferral))
				return
			}
			log.Printf("❌ Phone signup failed for %s: %v", phone, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, MsgGeneric))
			return
		}
		notifySignup(&user, referrer)
		log.Printf("✅ Phone signup: %s", phone)

	case err != nil:
		log.Printf("❌ Phone lookup failed for %s: %v", phone, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, MsgGeneric))
		return
	}

	token, err := issueSession(c, &user)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, MsgGeneric))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
