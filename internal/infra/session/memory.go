package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore in-memory хранилище сессий.
// Сессии живут до рестарта процесса - достаточно для разработки
// и single-instance деплоя без Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewMemoryStore создает пустое in-memory хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Set сохраняет сессию
func (s *MemoryStore) Set(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = *sess
	return nil
}

// Get возвращает живую сессию; истекшие удаляются при обращении
func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}

	if sess.IsExpired(s.now()) {
		delete(s.sessions, token)
		return nil, ErrNotFound
	}

	return &sess, nil
}

// Delete удаляет сессию
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
