package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"massageshop/internal/infra/session"
)

// Service сервис аутентификации администратора.
// Демо-схема: один общий пароль из конфигурации, сессии с токеном-UUID.
type Service struct {
	adminPassword string
	sessionTTL    time.Duration
	store         SessionStore
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	adminPassword string,
	sessionTTL time.Duration,
	store SessionStore,
	logger Logger,
) *Service {
	return &Service{
		adminPassword: adminPassword,
		sessionTTL:    sessionTTL,
		store:         store,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// LoginResponse результат успешного входа
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// Login проверяет пароль и создаёт новую сессию
func (s *Service) Login(ctx context.Context, password string) (*LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		s.logger.Warn("Login: invalid admin password attempt")
		return nil, ErrInvalidPassword
	}

	sess := session.New(s.sessionTTL, s.timeProvider.Now())
	if err := s.store.Set(ctx, sess); err != nil {
		s.logger.Error("Login: failed to store session: %v", err)
		return nil, fmt.Errorf("%w: Login - store session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin session created, expires at %s", sess.ExpiresAt.Format(time.RFC3339))
	return &LoginResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// Validate проверяет, что токен соответствует живой сессии
func (s *Service) Validate(ctx context.Context, token string) error {
	sess, err := s.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("Validate: session store error: %v", err)
		return fmt.Errorf("%w: Validate - store error: %v", ErrInternal, err)
	}

	if sess.IsExpired(s.timeProvider.Now()) {
		// Просроченную сессию сразу убираем
		if err := s.store.Delete(ctx, token); err != nil {
			s.logger.Warn("Validate: failed to delete expired session: %v", err)
		}
		return ErrSessionNotFound
	}

	return nil
}

// Logout удаляет сессию
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.store.Delete(ctx, token); err != nil {
		s.logger.Error("Logout: failed to delete session: %v", err)
		return fmt.Errorf("%w: Logout - delete session: %v", ErrInternal, err)
	}
	s.logger.Info("Logout: admin session deleted")
	return nil
}
