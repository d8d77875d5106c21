package middlewares

import (
	"context"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/exceptions"
	"halo-optom-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// APIKeyAuth turns a valid x-api-key into a superadmin session. Requests
// without the header pass through untouched.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !utils.CheckAPIKeyHash(apiKey, m.InternalConfig.App.SuperadminAPIKeyHash) {
			utils.LogSecurityEvent(m.Log, "invalid_api_key", utils.GetRequestID(r.Context()), "warn",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		session := &models.Session{
			UserID: constvars.APIKeySuperadminUserID,
			Roles:  []string{constvars.HaloRoleSuperadmin},
		}
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH, true)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)

		m.Log.Info("API Key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
