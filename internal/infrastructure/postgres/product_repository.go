package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, kind, quantity, unit, category, reference_price, updated_at`

// ProductRepo implementação de ProductRepository sobre PostgreSQL (usável com
// pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de produtos. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Kind, &p.Quantity, &p.Unit, &p.Category, &p.Price, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID obtém um produto por ID. Retorna nil, nil quando não existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
// Serializa ajustes concorrentes no mesmo produto; produtos diferentes não se
// bloqueiam entre si.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// UpdateQuantity grava o novo saldo e marca a data da movimentação.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2, updated_at = NOW() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// ListByCategory lista produtos de uma categoria, em ordem alfabética de nome.
func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY name`
	return r.list(ctx, query, category)
}

// ListOverview lista todos os produtos agrupados por categoria e nome, para a
// visão geral de estoque.
func (r *ProductRepo) ListOverview(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY category, name`
	return r.list(ctx, query)
}

// ListAll lista todos os produtos por nome (snapshot para o assistente).
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`
	return r.list(ctx, query)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Upsert insere ou atualiza o cadastro pelo nome. A quantidade de produtos já
// existentes é preservada — o seed nunca mexe em saldo.
func (r *ProductRepo) Upsert(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, kind, quantity, unit, category, reference_price, updated_at)
		VALUES ($1, $2, $3, 0, $4, $5, $6, NOW())
		ON CONFLICT (name) DO UPDATE
		SET kind = EXCLUDED.kind,
		    unit = EXCLUDED.unit,
		    category = EXCLUDED.category,
		    reference_price = EXCLUDED.reference_price`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Kind, product.Unit, product.Category, product.Price,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// ClearStock zera o saldo de todos os produtos (operação administrativa).
func (r *ProductRepo) ClearStock(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `UPDATE products SET quantity = 0`); err != nil {
		return fmt.Errorf("clear stock: %w", err)
	}
	return nil
}
