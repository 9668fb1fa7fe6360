package repository

import (
	"context"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
)

// PromoRepository define o porto de persistência para registros avulsos de
// brinde (DIP).
type PromoRepository interface {
	Create(ctx context.Context, record *entity.PromoRecord) error
	ListRecent(ctx context.Context, limit int) ([]*entity.PromoRecord, error)
}
