// Package storage provides in-memory storage for active quiz sessions.
package storage

import (
	"sync"

	"github.com/oliverwhitby/elevenplus-bot/internal/service"
)

// SessionStorage keeps the active quiz session for each chat. A chat
// has at most one session at a time.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*service.Session
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*service.Session),
	}
}

// Store saves the session for a given chat ID, replacing any previous one.
func (s *SessionStorage) Store(chatID int64, session *service.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = session
}

// Get retrieves the session for a given chat ID.
func (s *SessionStorage) Get(chatID int64) *service.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[chatID]
}

// Delete removes the session for a given chat ID.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
