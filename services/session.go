package services

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"natulang/models"
)

// SessionStore tracks conversation sessions for the lifetime of the
// process. Sessions are never expired by the core; teardown happens with
// the process.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

var (
	sessionStore     *SessionStore
	sessionStoreOnce sync.Once
)

// GetSessionStore returns the process-wide registry.
func GetSessionStore() *SessionStore {
	sessionStoreOnce.Do(func() {
		sessionStore = NewSessionStore()
	})
	return sessionStore
}

// NewSessionStore builds an isolated registry for tests.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*models.Session)}
}

// CreateSession allocates a fresh session id of the form "sess-<8 hex>".
func (s *SessionStore) CreateSession() string {
	id := "sess-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &models.Session{ID: id, History: []models.ChatExchange{}}
	return id
}

// AppendExchange records one user/tutor turn, creating the session when the
// id is unknown.
func (s *SessionStore) AppendExchange(sessionID string, exchange models.ChatExchange) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		session = &models.Session{ID: sessionID, History: []models.ChatExchange{}}
		s.sessions[sessionID] = session
	}
	session.History = append(session.History, exchange)
}

// History returns a copy of the session's exchanges, nil when unknown.
func (s *SessionStore) History(sessionID string) []models.ChatExchange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	return append([]models.ChatExchange(nil), session.History...)
}
