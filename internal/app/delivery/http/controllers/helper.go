package controllers

import (
	"context"
	"errors"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/exceptions"
	"halo-optom-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultRequestTimeoutInSeconds = 10

func requestIDFromContext(log *zap.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	return requestID, true
}

// sessionFromContext returns the identity placed by the auth middlewares.
func sessionFromContext(log *zap.Logger, w http.ResponseWriter, r *http.Request) (*models.Session, bool) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil || session.UserID == "" {
		utils.BuildErrorResponse(log, w, exceptions.ErrSessionNotFound(nil))
		return nil, false
	}
	return session, true
}

func uuidURLParam(log *zap.Logger, w http.ResponseWriter, r *http.Request, paramName string) (string, bool) {
	value := chi.URLParam(r, paramName)
	if err := utils.ValidateUrlParamID(value); err != nil {
		utils.BuildErrorResponse(log, w, exceptions.ErrURLParamIDValidation(err, paramName))
		return "", false
	}
	return value, true
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
