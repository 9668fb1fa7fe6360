package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação de MovementRepository sobre PostgreSQL (usável
// com pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador de movimentações. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create insere um lançamento no ledger. Lançamentos nunca são alterados depois.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, product_id, direction, quantity, unit_price, occurred_at, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.Direction, m.Quantity, m.UnitPrice, m.OccurredAt, m.Note,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListRecent devolve os lançamentos mais recentes primeiro, com o produto
// movimentado.
func (r *MovementRepo) ListRecent(ctx context.Context, filter repository.MovementFilter, limit int) ([]*repository.MovementWithProduct, error) {
	query := `
		SELECT m.id, m.product_id, m.direction, m.quantity, m.unit_price, m.occurred_at, m.note,
		       p.id, p.name, p.kind, p.quantity, p.unit, p.category, p.reference_price, p.updated_at
		FROM movements m
		JOIN products p ON p.id = m.product_id
		WHERE ($1 = '' OR m.direction = $1)
		ORDER BY m.occurred_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, filter.Direction, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []*repository.MovementWithProduct
	for rows.Next() {
		var mp repository.MovementWithProduct
		err := rows.Scan(
			&mp.Movement.ID, &mp.Movement.ProductID, &mp.Movement.Direction,
			&mp.Movement.Quantity, &mp.Movement.UnitPrice, &mp.Movement.OccurredAt, &mp.Movement.Note,
			&mp.Product.ID, &mp.Product.Name, &mp.Product.Kind, &mp.Product.Quantity,
			&mp.Product.Unit, &mp.Product.Category, &mp.Product.Price, &mp.Product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, &mp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return out, nil
}

// Clear remove lançamentos do histórico; direction vazio remove todos.
// Operação administrativa, um único statement atômico.
func (r *MovementRepo) Clear(ctx context.Context, direction string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM movements WHERE ($1 = '' OR direction = $1)`, direction); err != nil {
		return fmt.Errorf("clear movements: %w", err)
	}
	return nil
}

// Receita de uma saída: o valor unitário registrado no lançamento, ou o preço
// de referência do produto quando a saída antiga não tem valor. Brindes
// (nota marcada) ficam fora de qualquer total.
const revenueExpr = `m.quantity * COALESCE(m.unit_price, p.reference_price)`

// SalesTotalsByDay agrega a receita de saídas por dia dentro da janela.
func (r *MovementRepo) SalesTotalsByDay(ctx context.Context, days int) ([]*repository.SalesTotal, error) {
	query := `
		SELECT DATE(m.occurred_at) AS day,
		       SUM(m.quantity) AS quantity,
		       SUM(` + revenueExpr + `) AS total
		FROM movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.direction = 'out'
		  AND m.note NOT LIKE $2 || '%'
		  AND m.occurred_at >= NOW() - ($1 * INTERVAL '1 day')
		GROUP BY day
		ORDER BY day DESC`
	rows, err := r.q.Query(ctx, query, days, entity.PromoTag)
	if err != nil {
		return nil, fmt.Errorf("sales totals by day: %w", err)
	}
	defer rows.Close()

	var out []*repository.SalesTotal
	for rows.Next() {
		var st repository.SalesTotal
		if err := rows.Scan(&st.Day, &st.Quantity, &st.Total); err != nil {
			return nil, fmt.Errorf("scan sales total: %w", err)
		}
		out = append(out, &st)
	}
	return out, rows.Err()
}

// SalesTotalsByProduct agrega a receita de saídas por produto dentro da
// janela, maiores receitas primeiro.
func (r *MovementRepo) SalesTotalsByProduct(ctx context.Context, days int) ([]*repository.SalesTotal, error) {
	query := `
		SELECT p.name,
		       SUM(m.quantity) AS quantity,
		       SUM(` + revenueExpr + `) AS total
		FROM movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.direction = 'out'
		  AND m.note NOT LIKE $2 || '%'
		  AND m.occurred_at >= NOW() - ($1 * INTERVAL '1 day')
		GROUP BY p.name
		ORDER BY total DESC`
	rows, err := r.q.Query(ctx, query, days, entity.PromoTag)
	if err != nil {
		return nil, fmt.Errorf("sales totals by product: %w", err)
	}
	defer rows.Close()

	var out []*repository.SalesTotal
	for rows.Next() {
		var st repository.SalesTotal
		if err := rows.Scan(&st.Product, &st.Quantity, &st.Total); err != nil {
			return nil, fmt.Errorf("scan sales total: %w", err)
		}
		out = append(out, &st)
	}
	return out, rows.Err()
}

// SalesTotalForDate devolve a receita de saídas de um dia específico.
func (r *MovementRepo) SalesTotalForDate(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(` + revenueExpr + `), 0)
		FROM movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.direction = 'out'
		  AND m.note NOT LIKE $2 || '%'
		  AND DATE(m.occurred_at) = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, day.Format("2006-01-02"), entity.PromoTag).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sales total for date: %w", err)
	}
	return total, nil
}
