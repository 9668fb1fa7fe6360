package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
	infraredis "github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/infrastructure/redis"
)

func newTestStore(t *testing.T, ttl time.Duration) (*infraredis.SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return infraredis.NewSessionStore(client, ttl), mr
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	got, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got, "sem sessão deve vir nil, nil")

	price := decimal.RequireFromString("49.90")
	session := &entity.UserSession{
		UserID:       1,
		Direction:    entity.DirectionOut,
		Awaiting:     entity.AwaitingOutValue,
		Category:     "cafes",
		ProductID:    "p1",
		Promo:        false,
		PendingPrice: &price,
		LastMessage:  &entity.MessageRef{ChatID: 1, MessageID: 33},
	}
	require.NoError(t, store.Save(ctx, session))

	got, err = store.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.AwaitingOutValue, got.Awaiting)
	assert.Equal(t, "p1", got.ProductID)
	require.NotNil(t, got.PendingPrice)
	assert.True(t, got.PendingPrice.Equal(price))
	require.NotNil(t, got.LastMessage)
	assert.Equal(t, int64(33), got.LastMessage.MessageID)

	require.NoError(t, store.Delete(ctx, 1))
	got, err = store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Conversa abandonada expira com o TTL.
func TestSessionStoreExpiraComTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.UserSession{UserID: 1, Awaiting: entity.AwaitingCategory}))
	require.True(t, mr.Exists("bot:session:1"))

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got, "sessão expirada deve sumir")
}

// Cada usuário tem a própria chave: sessões não se misturam.
func TestSessionStoreIsolaUsuarios(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.UserSession{UserID: 1, Awaiting: entity.AwaitingCategory}))
	require.NoError(t, store.Save(ctx, &entity.UserSession{UserID: 2, Awaiting: entity.AwaitingProduct}))

	first, err := store.Get(ctx, 1)
	require.NoError(t, err)
	second, err := store.Get(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, entity.AwaitingCategory, first.Awaiting)
	assert.Equal(t, entity.AwaitingProduct, second.Awaiting)

	require.NoError(t, store.Delete(ctx, 1))
	second, err = store.Get(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, second)
}

func TestSessionStoreGuardaJSONLegivel(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.UserSession{UserID: 9, Awaiting: entity.AwaitingPromoDescription}))

	raw, err := mr.Get("bot:session:9")
	require.NoError(t, err)
	assert.Contains(t, raw, `"awaiting":"promo_description"`)
}
