package storage

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound возвращается когда сохраненная сессия отсутствует
var ErrSessionNotFound = errors.New("session not found")

// SessionData хранит данные сессии пользователя между запусками клиента
type SessionData struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix time истечения access token
}

// AccessExpired reports whether the stored access token is past its lifetime
func (s *SessionData) AccessExpired() bool {
	return time.Now().Unix() >= s.ExpiresAt
}

// SessionStorage defines the interface for client session persistence
type SessionStorage interface {
	SaveSession(ctx context.Context, session *SessionData) error
	GetSession(ctx context.Context) (*SessionData, error)
	DeleteSession(ctx context.Context) error
}
