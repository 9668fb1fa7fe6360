package flow

import "github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"

// SelectionKind é o namespace de uma seleção vinda do gateway (botão tocado).
type SelectionKind string

const (
	SelectionMenu      SelectionKind = "menu"
	SelectionCategory  SelectionKind = "category"
	SelectionProduct   SelectionKind = "product"
	SelectionQuantity  SelectionKind = "quantity"
	SelectionValue     SelectionKind = "value"
	SelectionNav       SelectionKind = "nav"
	SelectionAdmin     SelectionKind = "admin"
	SelectionAssistant SelectionKind = "assistant"
)

// Payloads do menu principal.
const (
	MenuIn        = "entrada"
	MenuOut       = "saida"
	MenuOverview  = "estoque"
	MenuHistory   = "historico"
	MenuAssistant = "assistente"
	MenuPromo     = "brinde"
	MenuHome      = "home"
)

// Comandos de navegação dentro do assistente de movimentação.
const (
	NavBackToCategories = "back_to_categories"
	NavBackToProducts   = "back_to_products"
	NavBackToQuantity   = "back_to_quantity"
	NavRestart          = "restart"
)

// Comandos administrativos (limpezas com confirmação).
const (
	AdminConfirmClearStock   = "confirm_clear_stock"
	AdminDoClearStock        = "do_clear_stock"
	AdminConfirmClearOut     = "confirm_clear_out"
	AdminDoClearOut          = "do_clear_out"
	AdminConfirmClearHistory = "confirm_clear_history"
	AdminDoClearHistory      = "do_clear_history"
	AdminCancel              = "cancel"
)

// Atalhos do painel do assistente (respostas calculadas do próprio ledger,
// sem chamar a IA).
const (
	AssistantSuggestions = "sugestoes"
	AssistantReports     = "relatorios"
	AssistantSummary     = "resumo"
)

// PayloadCustom pede entrada manual em vez de um dos valores rápidos.
const PayloadCustom = "custom"

// CategoryPromo é a pseudo-categoria de brindes: lista os cafés, mas toda
// saída resultante é marcada como brinde e sai com valor zero.
const (
	CategoryPromo       = "brindes"
	promoSourceCategory = "cafes"
)

// Selection é o evento estruturado do gateway: um namespace de ação, a
// direção do fluxo e o payload (categoria, id de produto, quantidade, valor
// ou comando). Message referencia a mensagem a editar no lugar.
type Selection struct {
	Kind      SelectionKind
	Direction string // entity.DirectionIn | entity.DirectionOut | ""
	Payload   string
	Message   *entity.MessageRef
}
