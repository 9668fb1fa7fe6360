package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/repository"
)

// Service é o ledger de estoque: o único caminho de escrita para saldos de
// produto, mais as leituras consumidas pelo fluxo de conversa e pelos
// relatórios.
type Service struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	promoRepo    repository.PromoRepository
}

// NewService constrói o ledger. Os repos aqui são atados ao pool; os de
// escrita transacional vêm do TxRunner a cada ajuste.
func NewService(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	promoRepo repository.PromoRepository,
) *Service {
	return &Service{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		promoRepo:    promoRepo,
	}
}

// AdjustInput entrada para um ajuste de estoque.
type AdjustInput struct {
	ProductID string
	Direction string // entity.DirectionIn | entity.DirectionOut
	Quantity  decimal.Decimal
	UnitPrice *decimal.Decimal // só em saídas; nil em entradas
	Note      string
}

// AdjustStock aplica a quantidade com sinal + (entrada) ou - (saída) ao saldo
// do produto e grava o lançamento, tudo em uma transação com a linha do
// produto bloqueada (SELECT FOR UPDATE). Ajustes concorrentes no mesmo
// produto são serializados pelo lock; um resultado negativo faz rollback com
// ErrInsufficientStock e nenhum efeito parcial. Devolve o novo saldo.
func (s *Service) AdjustStock(ctx context.Context, in AdjustInput) (decimal.Decimal, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	if in.Direction != entity.DirectionIn && in.Direction != entity.DirectionOut {
		return decimal.Zero, fmt.Errorf("direção de movimentação desconhecida: %q", in.Direction)
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return decimal.Zero, domain.ErrInvalidPrice
	}

	var newQuantity decimal.Decimal
	err := s.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetByIDForUpdate(ctx, in.ProductID)
		if err != nil {
			return persistence(err)
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		delta := in.Quantity
		if in.Direction == entity.DirectionOut {
			delta = delta.Neg()
		}
		newQuantity = product.Quantity.Add(delta)
		if newQuantity.IsNegative() {
			return domain.ErrInsufficientStock
		}

		if err := productRepo.UpdateQuantity(ctx, in.ProductID, newQuantity); err != nil {
			return persistence(err)
		}

		movement := &entity.Movement{
			ID:         uuid.New().String(),
			ProductID:  in.ProductID,
			Direction:  in.Direction,
			Quantity:   in.Quantity,
			UnitPrice:  in.UnitPrice,
			OccurredAt: time.Now(),
			Note:       in.Note,
		}
		if err := movementRepo.Create(ctx, movement); err != nil {
			return persistence(err)
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newQuantity, nil
}

// GetProduct devolve o produto ou ErrProductNotFound.
func (s *Service) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, persistence(err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// ListProductsByCategory lista os produtos de uma categoria por nome.
func (s *Service) ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := s.productRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, persistence(err)
	}
	return products, nil
}

// ListStockOverview lista todos os produtos por categoria e nome, para a
// visão geral de estoque.
func (s *Service) ListStockOverview(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.ListOverview(ctx)
	if err != nil {
		return nil, persistence(err)
	}
	return products, nil
}

// ListProducts lista todos os produtos por nome (snapshot do assistente).
func (s *Service) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, persistence(err)
	}
	return products, nil
}

// ListRecentMovements devolve o histórico mais recente primeiro.
func (s *Service) ListRecentMovements(ctx context.Context, filter repository.MovementFilter, limit int) ([]*repository.MovementWithProduct, error) {
	movements, err := s.movementRepo.ListRecent(ctx, filter, limit)
	if err != nil {
		return nil, persistence(err)
	}
	return movements, nil
}

// ClearStock zera o saldo de todos os produtos.
func (s *Service) ClearStock(ctx context.Context) error {
	if err := s.productRepo.ClearStock(ctx); err != nil {
		return persistence(err)
	}
	return nil
}

// ClearMovements apaga o histórico de lançamentos; direction vazio apaga tudo.
func (s *Service) ClearMovements(ctx context.Context, direction string) error {
	if err := s.movementRepo.Clear(ctx, direction); err != nil {
		return persistence(err)
	}
	return nil
}

// RecordPromo grava um registro avulso de brinde descrito em texto livre.
func (s *Service) RecordPromo(ctx context.Context, description string, originChat *int64) error {
	rec := &entity.PromoRecord{
		ID:          uuid.New().String(),
		Description: description,
		OriginChat:  originChat,
		OccurredAt:  time.Now(),
	}
	if err := s.promoRepo.Create(ctx, rec); err != nil {
		return persistence(err)
	}
	return nil
}

// ListRecentPromos devolve os registros de brinde mais recentes primeiro.
func (s *Service) ListRecentPromos(ctx context.Context, limit int) ([]*entity.PromoRecord, error) {
	records, err := s.promoRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, persistence(err)
	}
	return records, nil
}

// SalesTotalsByDay agrega a receita de saídas por dia na janela de dias.
func (s *Service) SalesTotalsByDay(ctx context.Context, days int) ([]*repository.SalesTotal, error) {
	totals, err := s.movementRepo.SalesTotalsByDay(ctx, days)
	if err != nil {
		return nil, persistence(err)
	}
	return totals, nil
}

// SalesTotalsByProduct agrega a receita de saídas por produto na janela de dias.
func (s *Service) SalesTotalsByProduct(ctx context.Context, days int) ([]*repository.SalesTotal, error) {
	totals, err := s.movementRepo.SalesTotalsByProduct(ctx, days)
	if err != nil {
		return nil, persistence(err)
	}
	return totals, nil
}

// SalesTotalForDate devolve a receita de saídas de um dia.
func (s *Service) SalesTotalForDate(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	total, err := s.movementRepo.SalesTotalForDate(ctx, day)
	if err != nil {
		return decimal.Zero, persistence(err)
	}
	return total, nil
}

// persistence marca um erro de infraestrutura como falha de persistência,
// preservando a causa para o log.
func persistence(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
}
