package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
)

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	// GetByID retorna nil, nil quando o produto não existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDForUpdate lê o produto bloqueando a linha (SELECT FOR UPDATE).
	// Só faz sentido dentro de uma transação.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// UpdateQuantity grava o novo saldo e atualiza a data da última movimentação.
	UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	// ListOverview retorna todos os produtos ordenados por categoria e nome.
	ListOverview(ctx context.Context) ([]*entity.Product, error)
	// ListAll retorna todos os produtos por nome (snapshot para o assistente).
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// Upsert insere ou atualiza o cadastro pelo nome (seed do catálogo).
	// Não toca na quantidade de produtos já existentes.
	Upsert(ctx context.Context, product *entity.Product) error
	// ClearStock zera o saldo de todos os produtos.
	ClearStock(ctx context.Context) error
}
