package postgres

import (
	"context"
	"fmt"
)

// DDL das tabelas. IF NOT EXISTS para que o bot possa subir contra um banco
// vazio sem ferramenta de migração à parte.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL CHECK (kind IN ('finished_good', 'raw_material')),
		quantity NUMERIC(14, 3) NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		unit TEXT NOT NULL DEFAULT 'un',
		category TEXT NOT NULL DEFAULT 'cafes',
		reference_price NUMERIC(14, 2) NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS movements (
		id UUID PRIMARY KEY,
		product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		direction TEXT NOT NULL CHECK (direction IN ('in', 'out')),
		quantity NUMERIC(14, 3) NOT NULL CHECK (quantity > 0),
		unit_price NUMERIC(14, 2),
		occurred_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		note TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_occurred_at ON movements (occurred_at DESC)`,
	`CREATE TABLE IF NOT EXISTS promotional_records (
		id UUID PRIMARY KEY,
		description TEXT NOT NULL,
		origin_chat BIGINT,
		occurred_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema cria as tabelas do ledger se ainda não existirem.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
