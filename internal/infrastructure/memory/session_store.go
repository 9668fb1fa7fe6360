package memory

import (
	"context"
	"sync"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/application/flow"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
)

// SessionStore guarda sessões em memória do processo. Serve para instância
// única do bot; com mais de uma instância use o store em Redis.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]entity.UserSession
}

var _ flow.SessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]entity.UserSession)}
}

// Get devolve uma cópia da sessão, ou nil, nil quando não há sessão.
func (s *SessionStore) Get(_ context.Context, userID int64) (*entity.UserSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, nil
	}
	copied := session
	return &copied, nil
}

func (s *SessionStore) Save(_ context.Context, session *entity.UserSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.UserID] = *session
	return nil
}

func (s *SessionStore) Delete(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}
