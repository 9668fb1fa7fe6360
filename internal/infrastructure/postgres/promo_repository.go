package postgres

import (
	"context"
	"fmt"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/repository"
)

var _ repository.PromoRepository = (*PromoRepo)(nil)

// PromoRepo implementação de PromoRepository sobre PostgreSQL.
type PromoRepo struct {
	q Querier
}

// NewPromoRepository constrói o adaptador de registros de brinde.
func NewPromoRepository(q Querier) *PromoRepo {
	return &PromoRepo{q: q}
}

// Create insere um registro avulso de brinde.
func (r *PromoRepo) Create(ctx context.Context, rec *entity.PromoRecord) error {
	query := `
		INSERT INTO promotional_records (id, description, origin_chat, occurred_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, rec.ID, rec.Description, rec.OriginChat, rec.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert promo record: %w", err)
	}
	return nil
}

// ListRecent devolve os registros mais recentes primeiro.
func (r *PromoRepo) ListRecent(ctx context.Context, limit int) ([]*entity.PromoRecord, error) {
	query := `
		SELECT id, description, origin_chat, occurred_at
		FROM promotional_records
		ORDER BY occurred_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list promo records: %w", err)
	}
	defer rows.Close()

	var out []*entity.PromoRecord
	for rows.Next() {
		var rec entity.PromoRecord
		if err := rows.Scan(&rec.ID, &rec.Description, &rec.OriginChat, &rec.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan promo record: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
