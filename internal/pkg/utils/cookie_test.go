package utils

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCrossSiteOrigins(t *testing.T) {
	assert.False(t, CrossSiteOrigins("http://localhost:3000", "http://localhost:8080"))
	assert.True(t, CrossSiteOrigins("https://app.example.com", "https://api.example.org"))
	assert.False(t, CrossSiteOrigins("https://example.com", "https://example.com"))
}

func TestBuildSessionCookie(t *testing.T) {
	t.Run("Same Site", func(t *testing.T) {
		cookie := BuildSessionCookie("neuroShieldToken", "token-value", 24*time.Hour, false, false)
		assert.Equal(t, "neuroShieldToken", cookie.Name)
		assert.Equal(t, "token-value", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.False(t, cookie.Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
	})

	t.Run("Cross Site Forces Secure", func(t *testing.T) {
		cookie := BuildSessionCookie("neuroShieldToken", "token-value", 24*time.Hour, false, true)
		assert.True(t, cookie.Secure, "SameSite=None is only honored over HTTPS")
		assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	})
}

func TestClearSessionCookie(t *testing.T) {
	cookie := ClearSessionCookie("neuroShieldToken", false, false)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}
