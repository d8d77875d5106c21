package contracts

import (
	"context"
	"halo-optom-service/internal/app/models"
)

type SessionService interface {
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
}
