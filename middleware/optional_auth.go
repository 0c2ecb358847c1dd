package middleware

import (
	"github.com/Sadhana-Cart/sadhana-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// OptionalAuth populates the user context when a valid session token is
// present but lets anonymous requests through. Used on public routes that
// personalize when they can (recent searches).
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("auth_token")
		if err != nil || token == "" {
			if header, hErr := utils.BearerToken(c.GetHeader("Authorization")); hErr == nil {
				token = header
			}
		}

		if token != "" {
			if claims, err := utils.ParseSessionToken(token); err == nil {
				c.Set("userID", claims.UserID)
				c.Set("userEmail", claims.Email)
				c.Set("userName", claims.Name)
			}
		}

		c.Next()
	}
}
