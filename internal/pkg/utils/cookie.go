package utils

import (
	"net/http"
	"net/url"
	"time"
)

// CrossSiteOrigins reports whether the frontend is served from a different
// site than this API, which forces SameSite=None on the session cookie.
func CrossSiteOrigins(frontendOrigin, backendOrigin string) bool {
	f, err := url.Parse(frontendOrigin)
	if err != nil {
		return false
	}
	b, err := url.Parse(backendOrigin)
	if err != nil {
		return false
	}
	return f.Hostname() != b.Hostname()
}

func BuildSessionCookie(name, token string, ttl time.Duration, secure, crossSite bool) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if crossSite {
		// SameSite=None is only honored over HTTPS.
		sameSite = http.SameSiteNoneMode
		secure = true
	}
	return &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		MaxAge:   int(ttl.Seconds()),
	}
}

func ClearSessionCookie(name string, secure, crossSite bool) *http.Cookie {
	cookie := BuildSessionCookie(name, "", 0, secure, crossSite)
	cookie.MaxAge = -1
	return cookie
}
