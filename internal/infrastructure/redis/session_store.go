package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/application/flow"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
)

// SessionStore guarda sessões em Redis com TTL, como JSON. Permite rodar mais
// de uma instância do bot atrás do mesmo gateway: qualquer instância enxerga
// a sessão de qualquer usuário. O TTL expira conversas abandonadas.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ flow.SessionStore = (*SessionStore)(nil)

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// NewClient abre a conexão e valida com PING.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar ao redis: %w", err)
	}
	return client, nil
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("bot:session:%d", userID)
}

func (s *SessionStore) Get(ctx context.Context, userID int64) (*entity.UserSession, error) {
	payload, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ler sessão: %w", err)
	}

	var session entity.UserSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decodificar sessão: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) Save(ctx context.Context, session *entity.UserSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("codificar sessão: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.UserID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("gravar sessão: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("remover sessão: %w", err)
	}
	return nil
}
