package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
)

// baseNote identifica a origem dos lançamentos feitos pela conversa.
const baseNote = "Movimentação registrada via bot Telegram"

// InNote observação de uma entrada.
func InNote() string {
	return baseNote
}

// OutNote observação de uma saída com valor: registra o valor unitário
// informado e o total (quantidade × valor, arredondado a duas casas).
func OutNote(unitPrice, total decimal.Decimal) string {
	return fmt.Sprintf("%s | valor unitário R$ %s | total R$ %s",
		baseNote, unitPrice.StringFixed(2), total.StringFixed(2))
}

// PromoOutNote observação de uma saída de brinde: marcada com a tag de
// brinde e com valor zero, para ficar fora dos totais de receita.
func PromoOutNote() string {
	return fmt.Sprintf("%s %s | valor unitário R$ 0.00 | total R$ 0.00", entity.PromoTag, baseNote)
}
