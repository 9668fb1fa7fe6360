package entity

import "github.com/shopspring/decimal"

// Awaiting enumera os estados da conversa: o tipo de entrada que o fluxo
// espera do usuário. Enumeração fechada — o controlador trata todos os casos.
type Awaiting string

const (
	AwaitingCategory          Awaiting = "category"
	AwaitingProduct           Awaiting = "product"
	AwaitingQuantityChoice    Awaiting = "quantity_choice"
	AwaitingQuantityManual    Awaiting = "quantity_manual"
	AwaitingOutValue          Awaiting = "out_value"
	AwaitingPromoDescription  Awaiting = "promo_description"
	AwaitingAssistantQuestion Awaiting = "assistant_question"
)

// MessageRef localiza a última mensagem renderizada para a sessão, para que o
// gateway possa editá-la no lugar em vez de enviar outra.
type MessageRef struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// UserSession é o estado mutável de uma conversa em andamento, uma por
// usuário. Só o controlador de fluxo lê e escreve; uma sessão sem Awaiting
// não existe — ao concluir ou abandonar o fluxo ela é removida da store.
type UserSession struct {
	UserID    int64    `json:"user_id"`
	Direction string   `json:"direction"` // in | out | "" (fluxos de brinde avulso e assistente)
	Awaiting  Awaiting `json:"awaiting"`
	Category  string   `json:"category,omitempty"`
	ProductID string   `json:"product_id,omitempty"`
	Promo     bool     `json:"promo,omitempty"` // saída de brinde: valor zero, sem sub-fluxo de preço

	// Rascunho do assistente de movimentação. PendingQuantity e PendingPrice
	// são limpos juntos sempre que a quantidade é pedida de novo, para nunca
	// reaproveitar um preço de uma tentativa anterior.
	PendingQuantity *decimal.Decimal `json:"pending_quantity,omitempty"`
	PendingPrice    *decimal.Decimal `json:"pending_price,omitempty"`

	LastMessage *MessageRef `json:"last_message,omitempty"`
}

// ClearPending descarta quantidade e preço pendentes do rascunho.
func (s *UserSession) ClearPending() {
	s.PendingQuantity = nil
	s.PendingPrice = nil
}
