package models

import (
	"slices"
	"time"
)

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Roles     []string  `json:"roles"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if slices.Contains(s.Roles, role) {
			return true
		}
	}
	return false
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
