package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const clientIDCookie = "client_id"

// ClientID tags anonymous visitors with a stable id cookie so their recent
// searches survive across requests. Authenticated users are keyed by their
// user id instead; see SearchOwnerKey.
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(clientIDCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			isProd := os.Getenv("ENV") == "production"
			c.SetCookie(clientIDCookie, id, 365*24*60*60, "/", "", isProd, true)
		}
		c.Set("clientID", id)
		c.Next()
	}
}

// SearchOwnerKey resolves who owns the recent-search list for this request:
// the authenticated user when a valid session exists, the anonymous client
// id otherwise.
func SearchOwnerKey(c *gin.Context) string {
	if userID, ok := GetUserIDFromContext(c); ok && userID != "" {
		return "user:" + userID
	}
	if id, exists := c.Get("clientID"); exists {
		return "anon:" + id.(string)
	}
	return ""
}
