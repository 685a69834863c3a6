package auth

import (
	"context"
	"time"

	"massageshop/internal/infra/session"
)

// SessionStore интерфейс хранилища админских сессий
type SessionStore interface {
	Set(ctx context.Context, sess *session.Session) error
	Get(ctx context.Context, token string) (*session.Session, error)
	Delete(ctx context.Context, token string) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
