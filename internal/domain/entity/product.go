package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de produto do catálogo.
const (
	ProductKindFinishedGood = "finished_good" // produto acabado (cafés embalados)
	ProductKindRawMaterial  = "raw_material"  // matéria-prima (embalagens, café verde)
)

// Product representa um item do catálogo com seu saldo atual em estoque.
// Quantity só é alterada pelo ajuste transacional do ledger; nunca direto.
type Product struct {
	ID        string
	Name      string // único
	Kind      string // finished_good | raw_material
	Quantity  decimal.Decimal
	Unit      string // un, kg
	Category  string // cafes, embalagens, insumos
	Price     decimal.Decimal // preço de referência por unidade
	UpdatedAt time.Time       // última movimentação
}
