package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/infrastructure/memory"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	got, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got, "sem sessão deve vir nil, nil")

	qty := decimal.RequireFromString("12.5")
	session := &entity.UserSession{
		UserID:          1,
		Direction:       entity.DirectionOut,
		Awaiting:        entity.AwaitingOutValue,
		Category:        "cafes",
		ProductID:       "p1",
		PendingQuantity: &qty,
	}
	require.NoError(t, store.Save(ctx, session))

	got, err = store.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.AwaitingOutValue, got.Awaiting)
	require.NotNil(t, got.PendingQuantity)
	assert.True(t, got.PendingQuantity.Equal(qty))

	require.NoError(t, store.Delete(ctx, 1))
	got, err = store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Get devolve uma cópia: mutar o resultado não muda o que está guardado.
func TestSessionStoreGetDevolveCopia(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.UserSession{UserID: 1, Awaiting: entity.AwaitingCategory}))

	first, err := store.Get(ctx, 1)
	require.NoError(t, err)
	first.Awaiting = entity.AwaitingProduct

	second, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.AwaitingCategory, second.Awaiting)
}

func TestSessionStoreConcorrente(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_ = store.Save(ctx, &entity.UserSession{UserID: userID, Awaiting: entity.AwaitingCategory})
			_, _ = store.Get(ctx, userID)
			_ = store.Delete(ctx, userID)
		}(i)
	}
	wg.Wait()
}
