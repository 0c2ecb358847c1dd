package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strings"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/models"
	"github.com/Sadhana-Cart/sadhana-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register godoc
// @Summary Register with email and password
// @Description Create an account. A supplied referral code is validated first; an invalid code aborts the signup and both wallets are credited on a valid one.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.RegisterRequest true "Signup details"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Validation or referral error"
// @Failure 409 {object} models.ApiResponse "Duplicate email"
// @Failure 500 {object} models.ApiResponse
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgGeneric))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgMalformedEmail))
		return
	}

	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgWeakPassword))
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgNameRequired))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.User
	err := config.StoreGorm.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, MsgDuplicateEmail))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("❌ Email lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, MsgGeneric))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Password hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, MsgGeneric))
		return
	}
	hashStr := string(hash)

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        &email,
		PasswordHash: &hashStr,
		Provider:     "password",
		Status:       "active",
	}

	referrer, err := services.CreateUserWithReferral(config.StoreGorm.WithContext(ctx), &user, req.ReferralCode)
	if err != nil {
		if errors.Is(err, services.ErrInvalidReferralCode) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, MsgInvalidReferral))
			return
		}
		if isUniqueViolation(err) {
			// Lost a race with a concurrent signup for the same email
			c.JSON(http.StatusConflict, models.ErrorResponse(c, MsgDuplicateEmail))
			return
		}
		log.Printf("❌ Signup failed for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, MsgGeneric))
		return
	}

	token, err := issueSession(c, &user)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, MsgGeneric))
		return
	}

	notifySignup(&user, referrer)

	log.Printf("✅ Registered new user: %s (referral used: %v)", email, referrer != nil)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
