package middlewares

import (
	"context"
	"errors"
	"net/http"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/exceptions"
	"neuroshield-service/internal/pkg/utils"
)

// Authentication verifies the session cookie and resolves the Principal for
// the request. A missing or bad token clears the cookie and stops the
// request; a valid token whose subject has no profile is rejected without
// clearing, since the token itself is still good.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.InternalConfig.App.SessionCookieName)
		if err != nil || cookie.Value == "" {
			m.rejectWithClearedCookie(w, exceptions.ErrTokenMissing(errors.New("session cookie is missing")))
			return
		}

		subjectID, err := m.TokenService.Verify(r.Context(), cookie.Value)
		if err != nil {
			m.rejectWithClearedCookie(w, err)
			return
		}

		principal, err := m.SessionResolver.Resolve(r.Context(), subjectID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PRINCIPAL_KEY, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) rejectWithClearedCookie(w http.ResponseWriter, err error) {
	appConfig := m.InternalConfig.App
	crossSite := utils.CrossSiteOrigins(appConfig.FrontendOrigin, appConfig.BackendOrigin)
	http.SetCookie(w, utils.ClearSessionCookie(appConfig.SessionCookieName, appConfig.Env == "production", crossSite))
	utils.BuildErrorResponse(m.Log, w, err)
}
