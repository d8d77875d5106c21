package utils

import (
	"errors"
	"fmt"
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/dto/responses"
	"halo-optom-service/internal/pkg/exceptions"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildPaginationResponse(total, page, pageSize int, baseURL string) *responses.Pagination {
	pagination := &responses.Pagination{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	format := constvars.AppPaginationUrlFormat
	if strings.Contains(baseURL, "?") {
		format = strings.Replace(format, "?", "&", 1)
	}

	if page*pageSize < total {
		pagination.NextURL = fmt.Sprintf(format, baseURL, page+1, pageSize)
	}
	if page > 1 {
		pagination.PrevURL = fmt.Sprintf(format, baseURL, page-1, pageSize)
	}

	return pagination
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *responses.Pagination, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// BuildErrorResponse writes the error envelope. Dev messages and caller
// locations are only exposed outside production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	response := exceptions.CustomError{
		StatusCode:    constvars.StatusInternalServerError,
		ClientMessage: constvars.ErrClientSomethingWrongWithApplication,
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		response.StatusCode = customErr.StatusCode
		response.ClientMessage = customErr.ClientMessage

		fields := []zap.Field{
			zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
			zap.Any("locations", customErr.Locations),
		}
		if customErr.Err != nil {
			fields = append(fields, zap.Error(customErr.Err))
		}
		if customErr.StatusCode >= constvars.StatusInternalServerError {
			log.Error(customErr.DevMessage, fields...)
		} else {
			log.Warn(customErr.DevMessage, fields...)
		}

		if GetEnvString("APP_ENV", constvars.EnvironmentDevelopment) != constvars.EnvironmentProduction {
			response.DevMessage = customErr.DevMessage
			response.Locations = customErr.Locations
		}
	} else {
		log.Error("unhandled error", zap.Error(err))
	}

	writeJSON(w, response.StatusCode, response)
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
