package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
)

type productSeed struct {
	name     string
	kind     string
	unit     string
	category string
	price    string
}

// Catálogo inicial da torrefação. O seed é idempotente: reaplica cadastro e
// preço de referência sem tocar no saldo.
var productSeeds = []productSeed{
	{"Café especial moído 250g", entity.ProductKindFinishedGood, "un", "cafes", "28.90"},
	{"Café especial moído 1kg", entity.ProductKindFinishedGood, "un", "cafes", "86.00"},
	{"Café especial em grãos 250g", entity.ProductKindFinishedGood, "un", "cafes", "30.50"},
	{"Café especial em grãos 1kg", entity.ProductKindFinishedGood, "un", "cafes", "92.00"},
	{"Café gourmet clássico 250g", entity.ProductKindFinishedGood, "un", "cafes", "26.00"},
	{"Café gourmet clássico 1kg", entity.ProductKindFinishedGood, "un", "cafes", "82.00"},
	{"Café gourmet intenso 1kg", entity.ProductKindFinishedGood, "un", "cafes", "60.00"},
	{"Embalagem 1kg", entity.ProductKindRawMaterial, "un", "embalagens", "3.00"},
	{"Embalagem especial 250g", entity.ProductKindRawMaterial, "un", "embalagens", "1.20"},
	{"Embalagem gourmet 250g", entity.ProductKindRawMaterial, "un", "embalagens", "1.50"},
	{"Lote de café verde especial moído", entity.ProductKindRawMaterial, "kg", "insumos", "0"},
	{"Lote de café verde especial em grãos", entity.ProductKindRawMaterial, "kg", "insumos", "0"},
	{"Lote de café verde gourmet", entity.ProductKindRawMaterial, "kg", "insumos", "0"},
}

// SeedProducts aplica o catálogo inicial via upsert por nome.
func SeedProducts(ctx context.Context, q Querier) error {
	repo := NewProductRepository(q)
	for _, s := range productSeeds {
		price, err := decimal.NewFromString(s.price)
		if err != nil {
			return fmt.Errorf("seed %q: preço inválido: %w", s.name, err)
		}
		p := &entity.Product{
			ID:       uuid.New().String(),
			Name:     s.name,
			Kind:     s.kind,
			Unit:     s.unit,
			Category: s.category,
			Price:    price,
		}
		if err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("seed %q: %w", s.name, err)
		}
	}
	return nil
}
