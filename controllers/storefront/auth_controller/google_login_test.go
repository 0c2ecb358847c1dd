package auth_controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func TestGoogleLoginSetsLaxCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.GoogleOAuthConfig = &oauth2.Config{
		ClientID:    "test-client",
		RedirectURL: "http://localhost:8080/api/v1/auth/google/callback",
		Endpoint:    google.Endpoint,
		Scopes:      []string{"openid", "email", "profile"},
	}

	router := gin.New()
	router.GET("/auth/google", GoogleLogin)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google?ref=scab12x", nil))

	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "accounts.google.com")

	var stateCookie, refCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		switch ck.Name {
		case "oauth_state":
			stateCookie = ck
		case "referral_code":
			refCookie = ck
		}
	}

	// Both cookies need SameSite=Lax to survive the redirect back from Google
	require.NotNil(t, stateCookie)
	assert.NotEmpty(t, stateCookie.Value)
	assert.True(t, stateCookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, stateCookie.SameSite)

	require.NotNil(t, refCookie)
	assert.Equal(t, "SCAB12X", refCookie.Value)
	assert.Equal(t, http.SameSiteLaxMode, refCookie.SameSite)
}
