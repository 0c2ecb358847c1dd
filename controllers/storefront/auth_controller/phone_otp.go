package auth_controller

import (
	"log"
	"net/http"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// RequestPhoneOTP godoc
// @Summary Send a one-time code for phone sign-in
// @Description Accepts a 10-digit local number, prefixes the country code, and dispatches a 6-digit OTP valid for 5 minutes. Requesting again for the same number replaces the pending code ("change number" flow). The route is rate limited per IP.
// @Tags Auth - Phone
// @Accept json
// @Produce json
// @Param body body models.PhoneOTPRequest true "Local phone number"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid phone number"
// @Failure 429 {object} models.ApiResponse "Rate limited"
// @Failure 500 {object} models.ApiResponse
// @Router /auth/phone/otp [post]
func RequestPhoneOTP(c *gin.Context) {
	var req models.PhoneOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgInvalidPhone))
		return
	}

	phone, ok := normalizePhone(req.Phone)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgInvalidPhone))
		return
	}

	if err := services.GetOTPService().RequestOTP(c.Request.Context(), phone); err != nil {
		log.Printf("❌ OTP dispatch failed for %s: %v", phone, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, MsgGeneric))
		return
	}

	log.Printf("✅ OTP dispatched to %s", phone)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "OTP sent successfully", gin.H{
		"phone": phone,
	}))
}
