package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
)

// MovementWithProduct junta um lançamento com o produto movimentado, para
// listagens de histórico.
type MovementWithProduct struct {
	Movement entity.Movement
	Product  entity.Product
}

// MovementFilter restringe listagens de histórico.
type MovementFilter struct {
	Direction string // in | out | "" (todas)
}

// SalesTotal agrega receita de saídas por dia ou por produto.
// Brindes (valor zero) ficam de fora dos totais.
type SalesTotal struct {
	Day      time.Time
	Product  string
	Quantity decimal.Decimal
	Total    decimal.Decimal
}

// MovementRepository define o porto de persistência para Movement (DIP).
// Lançamentos são imutáveis: só inserção, listagem e limpeza administrativa.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// ListRecent retorna os lançamentos mais recentes primeiro, com o produto.
	ListRecent(ctx context.Context, filter MovementFilter, limit int) ([]*MovementWithProduct, error)
	// Clear remove lançamentos; direction vazio remove todos.
	Clear(ctx context.Context, direction string) error

	// Agregações de receita consumidas pelos relatórios (somente leitura).
	SalesTotalsByDay(ctx context.Context, days int) ([]*SalesTotal, error)
	SalesTotalsByProduct(ctx context.Context, days int) ([]*SalesTotal, error)
	SalesTotalForDate(ctx context.Context, day time.Time) (decimal.Decimal, error)
}
