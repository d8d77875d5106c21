package utils

import (
	"fmt"
	"halo-optom-service/internal/pkg/constvars"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionJWT(sessionID, secret string, jwtExpiryTimeInHours int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(jwtExpiryTimeInHours) * time.Hour).Unix(),
	})

	return token.SignedString([]byte(secret))
}

// GenerateProofObjectName builds "<payment_id>/<timestamp>_<uuid><ext>".
func GenerateProofObjectName(paymentID, originalFileName string) string {
	ext := strings.ToLower(filepath.Ext(originalFileName))
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%s/%s_%s%s", paymentID, timestamp, uuid.NewString(), ext)
}
