package middlewares

import (
	"context"
	"halo-optom-service/internal/app/config"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/exceptions"
	"halo-optom-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testJWTSecret = "test-secret"

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func newTestMiddlewares(t *testing.T) (*Middlewares, *MockSessionService) {
	t.Helper()
	hash, err := utils.HashAPIKey("superadmin-key")
	require.NoError(t, err)

	sessionService := new(MockSessionService)
	return NewMiddlewares(zap.NewNop(), sessionService, &config.InternalConfig{
		App: config.App{
			SuperadminAPIKeyHash:       hash,
			RequestBodyLimitInMegabyte: 1,
			MaxRequests:                100,
			SuperadminAPIKeyRateLimit:  100,
		},
		JWT: config.AppJWT{Secret: testJWTSecret},
	}), sessionService
}

// sessionEcho reports the session the chain handed to the final handler.
func sessionEcho(captured **models.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAPIKeyAuth(t *testing.T) {
	m, _ := newTestMiddlewares(t)

	t.Run("Valid Key Grants Superadmin", func(t *testing.T) {
		var session *models.Session
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/pending", nil)
		req.Header.Set(constvars.HeaderAPIKey, "superadmin-key")
		rec := httptest.NewRecorder()

		m.APIKeyAuth(sessionEcho(&session)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, session)
		assert.Equal(t, constvars.APIKeySuperadminUserID, session.UserID)
		assert.True(t, session.HasAnyRole(constvars.HaloRoleSuperadmin))
	})

	t.Run("Wrong Key Rejected", func(t *testing.T) {
		var session *models.Session
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAPIKey, "guess")
		rec := httptest.NewRecorder()

		m.APIKeyAuth(sessionEcho(&session)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, session)
	})

	t.Run("No Key Passes Through", func(t *testing.T) {
		var session *models.Session
		rec := httptest.NewRecorder()

		m.APIKeyAuth(sessionEcho(&session)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Nil(t, session)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("Bearer Token Resolves Session", func(t *testing.T) {
		m, sessionService := newTestMiddlewares(t)
		token, err := utils.GenerateSessionJWT("session-1", testJWTSecret, 1)
		require.NoError(t, err)
		expected := &models.Session{SessionID: "session-1", UserID: "A1", Roles: []string{constvars.HaloRoleAdmin}}
		sessionService.On("GetSession", mock.Anything, "session-1").Return(expected, nil)

		var session *models.Session
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		m.Authenticate(sessionEcho(&session)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, expected, session)
	})

	t.Run("Missing Token", func(t *testing.T) {
		m, sessionService := newTestMiddlewares(t)
		var session *models.Session
		rec := httptest.NewRecorder()

		m.Authenticate(sessionEcho(&session)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		sessionService.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
	})

	t.Run("Token Signed With Other Secret", func(t *testing.T) {
		m, sessionService := newTestMiddlewares(t)
		token, err := utils.GenerateSessionJWT("session-1", "another-secret", 1)
		require.NoError(t, err)

		var session *models.Session
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		m.Authenticate(sessionEcho(&session)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		sessionService.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
	})

	t.Run("Expired Session", func(t *testing.T) {
		m, sessionService := newTestMiddlewares(t)
		token, err := utils.GenerateSessionJWT("session-1", testJWTSecret, 1)
		require.NoError(t, err)
		sessionService.On("GetSession", mock.Anything, "session-1").Return(nil, exceptions.ErrSessionNotFound(nil))

		var session *models.Session
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		m.Authenticate(sessionEcho(&session)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, session)
	})
}

func TestRequireRoles(t *testing.T) {
	m, _ := newTestMiddlewares(t)
	handler := m.RequireRoles(constvars.HaloRoleAdmin, constvars.HaloRoleSuperadmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name    string
		session *models.Session
		want    int
	}{
		{"Admin Allowed", &models.Session{UserID: "A1", Roles: []string{constvars.HaloRoleAdmin}}, http.StatusNoContent},
		{"Superadmin Allowed", &models.Session{UserID: "S1", Roles: []string{constvars.HaloRoleSuperadmin}}, http.StatusNoContent},
		{"Optometrist Forbidden", &models.Session{UserID: "O1", Roles: []string{constvars.HaloRoleOptometrist}}, http.StatusForbidden},
		{"No Session", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.session != nil {
				req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, tt.session))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	m, _ := newTestMiddlewares(t)
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("Client Request ID Kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-123", seen)
		assert.Equal(t, "client-123", rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generated When Missing", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	m, _ := newTestMiddlewares(t)
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestBodyLimit(t *testing.T) {
	m, _ := newTestMiddlewares(t)
	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 2<<20)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 2<<20))))

	var maxBytesErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxBytesErr)
}
