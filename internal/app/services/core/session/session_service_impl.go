package session

import (
	"context"
	"errors"
	"halo-optom-service/internal/app/contracts"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

var errSessionExpired = errors.New("session expired")

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if session.IsExpired(time.Now()) {
		return nil, exceptions.ErrSessionNotFound(errSessionExpired)
	}
	if session.SessionID == "" {
		session.SessionID = sessionID
	}
	return session, nil
}
