package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"neuroshield-service/internal/app/config"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/exceptions"
	"neuroshield-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubTokenService struct {
	subjectID string
	err       error
}

func (s *stubTokenService) Issue(ctx context.Context, subjectID string) (string, error) {
	return "token-" + subjectID, nil
}

func (s *stubTokenService) Verify(ctx context.Context, token string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.subjectID, nil
}

func (s *stubTokenService) Revoke(ctx context.Context, token string) error {
	return nil
}

type stubSessionResolver struct {
	principal *models.Principal
	err       error
}

func (s *stubSessionResolver) Resolve(ctx context.Context, subjectID string) (*models.Principal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.principal, nil
}

func newTestMiddlewares(tokens *stubTokenService, resolver *stubSessionResolver) *Middlewares {
	return NewMiddlewares(zap.NewNop(), tokens, resolver, &config.InternalConfig{
		App: config.App{
			Env:               "development",
			SessionCookieName: "neuroShieldToken",
			FrontendOrigin:    "http://localhost:3000",
			BackendOrigin:     "http://localhost:8080",
		},
	})
}

func clearedSessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == "neuroShieldToken" {
			return cookie
		}
	}
	return nil
}

func TestAuthentication(t *testing.T) {
	principal := &models.Principal{
		SubjectID: "sub-1",
		Role:      models.RolePatient,
		ProfileID: "patient-1",
	}

	t.Run("Missing Cookie", func(t *testing.T) {
		m := newTestMiddlewares(&stubTokenService{}, &stubSessionResolver{})
		handler := m.Authentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a session cookie")
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/auth/dashboard", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		cookie := clearedSessionCookie(t, rr)
		require.NotNil(t, cookie, "response should clear the session cookie")
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		tokens := &stubTokenService{err: exceptions.ErrTokenInvalidOrExpired(errors.New("signature mismatch"))}
		m := newTestMiddlewares(tokens, &stubSessionResolver{})
		handler := m.Authentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run with an invalid token")
		}))

		req := httptest.NewRequest("GET", "/api/v1/auth/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "neuroShieldToken", Value: "tampered"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		require.NotNil(t, clearedSessionCookie(t, rr))
	})

	t.Run("Subject Without Profile", func(t *testing.T) {
		tokens := &stubTokenService{subjectID: "sub-1"}
		resolver := &stubSessionResolver{err: exceptions.ErrProfileNotFound(errors.New("no profile row"))}
		m := newTestMiddlewares(tokens, resolver)
		handler := m.Authentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a principal")
		}))

		req := httptest.NewRequest("GET", "/api/v1/auth/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "neuroShieldToken", Value: "token-sub-1"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		// The token itself is still valid, so the cookie stays.
		assert.Nil(t, clearedSessionCookie(t, rr))
	})

	t.Run("Valid Session Injects Principal", func(t *testing.T) {
		tokens := &stubTokenService{subjectID: "sub-1"}
		resolver := &stubSessionResolver{principal: principal}
		m := newTestMiddlewares(tokens, resolver)

		handler := m.Authentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := utils.PrincipalFromContext(r.Context())
			require.True(t, ok, "principal should be on the request context")
			assert.Equal(t, "patient-1", got.ProfileID)
			assert.Equal(t, models.RolePatient, got.Role)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest("GET", "/api/v1/auth/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "neuroShieldToken", Value: "token-sub-1"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
