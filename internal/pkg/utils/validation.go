package utils

import (
	"errors"
	"strings"

	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/exceptions"

	"github.com/google/uuid"
)

var (
	ErrProofContentType = errors.New("unsupported proof content type")
	ErrProofTooLarge    = errors.New("proof exceeds size limit")
)

var allowedProofContentTypes = map[string]bool{
	constvars.MIMEImageJPEG:      true,
	constvars.MIMEImagePNG:       true,
	constvars.MIMEApplicationPDF: true,
}

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}

	_, err := uuid.Parse(param)
	return err
}

// ValidateProofFile checks the sniffed content type and the size against a
// limit given in megabytes.
func ValidateProofFile(contentType string, size, maxSizeInMegabytes int64) error {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if !allowedProofContentTypes[mediaType] {
		return ErrProofContentType
	}
	if size <= 0 || size > maxSizeInMegabytes*1024*1024 {
		return ErrProofTooLarge
	}
	return nil
}

// RequireReason trims the reason and rejects blank or whitespace-only input.
func RequireReason(reason string) (string, error) {
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return "", exceptions.ErrBlankReason
	}
	return trimmed, nil
}
