package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direções de movimentação de estoque.
const (
	DirectionIn  = "in"  // entrada
	DirectionOut = "out" // saída
)

// PromoTag marca na observação as saídas de brinde (valor zero),
// para exclusão dos totais de receita nos relatórios.
const PromoTag = "[BRINDE]"

// Movement é um lançamento imutável do ledger: uma entrada ou saída de um
// produto. UnitPrice só é preenchido em saídas; brindes saem com valor zero.
type Movement struct {
	ID         string
	ProductID  string
	Direction  string // in | out
	Quantity   decimal.Decimal // sempre > 0; o sinal vem de Direction
	UnitPrice  *decimal.Decimal
	OccurredAt time.Time
	Note       string
}

// IsPromo indica se o movimento foi registrado como brinde.
func (m *Movement) IsPromo() bool {
	return len(m.Note) >= len(PromoTag) && m.Note[:len(PromoTag)] == PromoTag
}
