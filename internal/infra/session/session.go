// Package session хранит сессии администратора.
//
// Два бэкенда: in-memory для разработки и Redis для продакшена,
// выбирается конфигурацией. Токен сессии выдается при успешном
// входе и проверяется middleware на защищенных маршрутах.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound возвращается, когда сессия не найдена или истекла
	ErrNotFound = errors.New("session: not found")

	// ErrStoreUnavailable возвращается при недоступности хранилища сессий
	ErrStoreUnavailable = errors.New("session: store unavailable")
)

// Session сессия администратора
type Session struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired возвращает true, если срок сессии истек
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// New создает сессию со свежим токеном и заданным TTL
func New(ttl time.Duration, now time.Time) *Session {
	return &Session{
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Store интерфейс хранилища сессий
type Store interface {
	// Set сохраняет сессию до её ExpiresAt
	Set(ctx context.Context, s *Session) error
	// Get возвращает живую сессию по токену, ErrNotFound для
	// неизвестного токена или истекшей сессии
	Get(ctx context.Context, token string) (*Session, error)
	// Delete удаляет сессию; удаление неизвестного токена не ошибка
	Delete(ctx context.Context, token string) error
}
