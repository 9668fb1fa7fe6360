package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/application/ledger"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/application/ports"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/repository"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/logger"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/textutil"
)

// Ledger é o contrato que o fluxo de conversa precisa do ledger de estoque.
type Ledger interface {
	AdjustStock(ctx context.Context, in ledger.AdjustInput) (decimal.Decimal, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	ListStockOverview(ctx context.Context) ([]*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListRecentMovements(ctx context.Context, filter repository.MovementFilter, limit int) ([]*repository.MovementWithProduct, error)
	ClearStock(ctx context.Context) error
	ClearMovements(ctx context.Context, direction string) error
	RecordPromo(ctx context.Context, description string, originChat *int64) error
	ListRecentPromos(ctx context.Context, limit int) ([]*entity.PromoRecord, error)
	SalesTotalsByDay(ctx context.Context, days int) ([]*repository.SalesTotal, error)
	SalesTotalsByProduct(ctx context.Context, days int) ([]*repository.SalesTotal, error)
	SalesTotalForDate(ctx context.Context, day time.Time) (decimal.Decimal, error)
}

const (
	historyLimit        = 15
	lowStockThreshold   = 10
	reportWindowDays    = 7
	reportTopProducts   = 3
	retryMessage        = "Não consegui registrar agora. Tente de novo em instantes."
	unavailableMessage  = "O assistente está indisponível agora. Tente de novo em instantes."
	useButtonsMessage   = "Use os botões da última mensagem para continuar."
	promoDescribePrompt = "Descreva o brinde (o que saiu, para quem):"
)

// Controller é a máquina de estados da conversa: recebe eventos do gateway,
// consulta e muta a sessão do usuário e devolve Views pelo Renderer. Eventos
// do mesmo usuário são serializados por um lock por chave.
type Controller struct {
	ledger    Ledger
	sessions  SessionStore
	renderer  Renderer
	assistant ports.AssistantService
	locks     *userLocks
	log       *logger.Logger
}

func NewController(
	ledger Ledger,
	sessions SessionStore,
	renderer Renderer,
	assistant ports.AssistantService,
	log *logger.Logger,
) *Controller {
	return &Controller{
		ledger:    ledger,
		sessions:  sessions,
		renderer:  renderer,
		assistant: assistant,
		locks:     newUserLocks(),
		log:       log,
	}
}

// HandleSelection processa o toque em um botão. Eventos que não fazem sentido
// no estado atual (callbacks antigos, sessão expirada) degradam para o
// reinício do fluxo em vez de errar.
func (c *Controller) HandleSelection(ctx context.Context, userID int64, sel Selection) error {
	unlock := c.locks.lock(userID)
	defer unlock()

	session, err := c.sessions.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("carregar sessão: %w", err)
	}

	switch sel.Kind {
	case SelectionMenu:
		return c.handleMenu(ctx, userID, sel)
	case SelectionCategory:
		return c.handleCategory(ctx, userID, session, sel)
	case SelectionProduct:
		return c.handleProduct(ctx, userID, session, sel)
	case SelectionQuantity:
		return c.handleQuantity(ctx, userID, session, sel)
	case SelectionValue:
		return c.handleValue(ctx, userID, session, sel)
	case SelectionNav:
		return c.handleNav(ctx, userID, session, sel)
	case SelectionAdmin:
		return c.handleAdmin(ctx, userID, sel)
	case SelectionAssistant:
		return c.handleAssistantShortcut(ctx, userID, session, sel)
	default:
		return c.render(ctx, userID, nil, mainMenuView(""), sel.Message)
	}
}

// HandleText processa uma mensagem de texto livre. Fora dos estados que
// esperam texto, o usuário é orientado de volta aos botões.
func (c *Controller) HandleText(ctx context.Context, userID int64, text string, msg *entity.MessageRef) error {
	unlock := c.locks.lock(userID)
	defer unlock()

	session, err := c.sessions.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("carregar sessão: %w", err)
	}
	if session == nil {
		return c.render(ctx, userID, nil, mainMenuView(""), nil)
	}

	// Edita a última mensagem do bot; o gateway pode indicar outra referência
	// quando a conversa não tem uma registrada.
	edit := session.LastMessage
	if edit == nil {
		edit = msg
	}

	switch session.Awaiting {
	case entity.AwaitingQuantityManual:
		qty, err := parsePositive(text)
		if err != nil {
			view := View{Text: "Quantidade inválida. Digite um número maior que zero (ex.: 12,5)."}
			return c.render(ctx, userID, session, view, edit)
		}
		return c.confirmQuantity(ctx, userID, session, qty, edit)

	case entity.AwaitingOutValue:
		price, err := parsePositive(text)
		if err != nil {
			view := View{Text: "Valor inválido. Digite um número maior que zero (ex.: 49,90)."}
			return c.render(ctx, userID, session, view, edit)
		}
		return c.confirmValue(ctx, userID, session, price, edit)

	case entity.AwaitingPromoDescription:
		return c.recordLoosePromo(ctx, userID, text, edit)

	case entity.AwaitingAssistantQuestion:
		return c.answerQuestion(ctx, userID, session, text, edit)

	default:
		return c.render(ctx, userID, session, View{Text: useButtonsMessage}, edit)
	}
}

func (c *Controller) handleMenu(ctx context.Context, userID int64, sel Selection) error {
	switch sel.Payload {
	case MenuHome:
		if err := c.sessions.Delete(ctx, userID); err != nil {
			return fmt.Errorf("descartar sessão: %w", err)
		}
		return c.render(ctx, userID, nil, mainMenuView(""), sel.Message)

	case MenuIn:
		return c.startWizard(ctx, userID, entity.DirectionIn, sel.Message)

	case MenuOut:
		return c.startWizard(ctx, userID, entity.DirectionOut, sel.Message)

	case MenuOverview:
		products, err := c.ledger.ListStockOverview(ctx)
		if err != nil {
			return c.render(ctx, userID, nil, mainMenuView(retryMessage), sel.Message)
		}
		return c.render(ctx, userID, nil, overviewView(products), sel.Message)

	case MenuHistory:
		movements, err := c.ledger.ListRecentMovements(ctx, repository.MovementFilter{}, historyLimit)
		if err != nil {
			return c.render(ctx, userID, nil, mainMenuView(retryMessage), sel.Message)
		}
		promos, err := c.ledger.ListRecentPromos(ctx, historyLimit)
		if err != nil {
			return c.render(ctx, userID, nil, mainMenuView(retryMessage), sel.Message)
		}
		return c.render(ctx, userID, nil, historyView(movements, promos), sel.Message)

	case MenuAssistant:
		session := &entity.UserSession{UserID: userID, Awaiting: entity.AwaitingAssistantQuestion}
		if err := c.sessions.Save(ctx, session); err != nil {
			return fmt.Errorf("salvar sessão: %w", err)
		}
		return c.render(ctx, userID, session, assistantPanelView(""), sel.Message)

	case MenuPromo:
		session := &entity.UserSession{UserID: userID, Awaiting: entity.AwaitingPromoDescription}
		if err := c.sessions.Save(ctx, session); err != nil {
			return fmt.Errorf("salvar sessão: %w", err)
		}
		view := View{
			Text:    promoDescribePrompt,
			Options: []Option{{Label: "Cancelar", Data: "menu:" + MenuHome}},
		}
		return c.render(ctx, userID, session, view, sel.Message)

	default:
		return c.render(ctx, userID, nil, mainMenuView(""), sel.Message)
	}
}

// startWizard abre (ou reinicia) o assistente de movimentação na escolha de
// categoria. Qualquer rascunho anterior do usuário é descartado.
func (c *Controller) startWizard(ctx context.Context, userID int64, direction string, edit *entity.MessageRef) error {
	session := &entity.UserSession{
		UserID:    userID,
		Direction: direction,
		Awaiting:  entity.AwaitingCategory,
	}
	if err := c.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("salvar sessão: %w", err)
	}
	return c.render(ctx, userID, session, categoryView(direction), edit)
}

func (c *Controller) handleCategory(ctx context.Context, userID int64, session *entity.UserSession, sel Selection) error {
	if session == nil || session.Direction != sel.Direction {
		// Callback de uma conversa antiga: reabre o fluxo do zero na direção
		// do botão, que continua válida.
		session = &entity.UserSession{UserID: userID, Direction: sel.Direction}
	}

	// Gateways podem devolver o rótulo exibido em vez do token; normalizar
	// aqui deixa "Cafés" e "cafes" equivalentes.
	category := textutil.Token(sel.Payload)
	session.Promo = false
	if category == CategoryPromo {
		if sel.Direction != entity.DirectionOut {
			return c.startWizard(ctx, userID, sel.Direction, sel.Message)
		}
		session.Promo = true
		category = promoSourceCategory
	}

	products, err := c.ledger.ListProductsByCategory(ctx, category)
	if err != nil {
		return c.render(ctx, userID, session, categoryView(sel.Direction), sel.Message)
	}
	if len(products) == 0 {
		// Categoria vazia encerra o fluxo na hora.
		if err := c.sessions.Delete(ctx, userID); err != nil {
			return fmt.Errorf("descartar sessão: %w", err)
		}
		return c.render(ctx, userID, nil, mainMenuView("Nenhum produto nessa categoria."), sel.Message)
	}

	session.Category = category
	session.ProductID = ""
	session.ClearPending()
	session.Awaiting = entity.AwaitingProduct
	if err := c.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("salvar sessão: %w", err)
	}
	return c.render(ctx, userID, session, productsView(sel.Direction, session.Promo, products), sel.Message)
}

func (c *Controller) handleProduct(ctx context.Context, userID int64, session *entity.UserSession, sel Selection) error {
	if session == nil || session.Direction != sel.Direction {
		return c.startWizard(ctx, userID, sel.Direction, sel.Message)
	}

	product, err := c.ledger.GetProduct(ctx, sel.Payload)
	if errors.Is(err, domain.ErrProductNotFound) {
		// Produto sumiu entre a listagem e o toque; reapresenta a lista.
		products, listErr := c.ledger.ListProductsByCategory(ctx, session.Category)
		if listErr != nil {
			return c.startWizard(ctx, userID, sel.Direction, sel.Message)
		}
		view := productsView(sel.Direction, session.Promo, products)
		view.Text = "Esse produto não existe mais. Escolha outro:"
		return c.render(ctx, userID, session, view, sel.Message)
	}
	if err != nil {
		return c.render(ctx, userID, session, View{Text: retryMessage}, sel.Message)
	}

	session.ProductID = product.ID
	session.ClearPending()
	session.Awaiting = entity.AwaitingQuantityChoice
	if err := c.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("salvar sessão: %w", err)
	}
	return c.render(ctx, userID, session, quantityView(sel.Direction, product, ""), sel.Message)
}

func (c *Controller) handleQuantity(ctx context.Context, userID int64, session *entity.UserSession, sel Selection) error {
	if session == nil || session.ProductID == "" {
		return c.startWizard(ctx, userID, sel.Direction, sel.Message)
	}

	if sel.Payload == PayloadCustom {
		session.ClearPending()
		session.Awaiting = entity.AwaitingQuantityManual
		if err := c.sessions.Save(ctx, session); err != nil {
			return fmt.Errorf("salvar sessão: %w", err)
		}
		view := View{
			Text: "Digite a quantidade (aceita decimais, ex.: 12,5):",
			Options: []Option{
				{Label: "Voltar", Data: navData(session.Direction, NavBackToQuantity)},
				{Label: "Menu principal", Data: "menu:" + MenuHome},
			},
		}
		return c.render(ctx, userID, session, view, sel.Message)
	}

	qty, err := parsePositive(sel.Payload)
	if err != nil {
		return c.render(ctx, userID, session, View{Text: useButtonsMessage}, sel.Message)
	}
	return c.confirmQuantity(ctx, userID, session, qty, sel.Message)
}

// confirmQuantity recebe uma quantidade válida e decide o próximo passo:
// commit imediato (entrada e brinde) ou sub-fluxo de valor (saída com preço).
// Para saídas, a disponibilidade é checada aqui para responder cedo; a
// checagem que vale é a da transação, com a linha bloqueada.
func (c *Controller) confirmQuantity(ctx context.Context, userID int64, session *entity.UserSession, qty decimal.Decimal, edit *entity.MessageRef) error {
	product, err := c.ledger.GetProduct(ctx, session.ProductID)
	if errors.Is(err, domain.ErrProductNotFound) {
		return c.abortMissingProduct(ctx, userID, edit)
	}
	if err != nil {
		return c.render(ctx, userID, session, View{Text: retryMessage}, edit)
	}

	if session.Direction == entity.DirectionOut && qty.GreaterThan(product.Quantity) {
		session.ClearPending()
		session.Awaiting = entity.AwaitingQuantityChoice
		if err := c.sessions.Save(ctx, session); err != nil {
			return fmt.Errorf("salvar sessão: %w", err)
		}
		warning := fmt.Sprintf("Estoque insuficiente: %s tem %s %s em estoque. Escolha outra quantidade:",
			product.Name, product.Quantity.String(), product.Unit)
		view := quantityView(session.Direction, product, warning)
		return c.render(ctx, userID, session, view, edit)
	}

	if session.Direction == entity.DirectionIn {
		return c.commit(ctx, userID, session, product, qty, nil, ledger.InNote(), edit)
	}

	if session.Promo {
		zero := decimal.Zero
		return c.commit(ctx, userID, session, product, qty, &zero, ledger.PromoOutNote(), edit)
	}

	session.PendingQuantity = &qty
	session.PendingPrice = nil
	session.Awaiting = entity.AwaitingOutValue
	if err := c.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("salvar sessão: %w", err)
	}
	return c.render(ctx, userID, session, valueView(product, qty, ""), edit)
}

func (c *Controller) handleValue(ctx context.Context, userID int64, session *entity.UserSession, sel Selection) error {
	if session == nil || session.PendingQuantity == nil {
		return c.startWizard(ctx, userID, entity.DirectionOut, sel.Message)
	}

	if sel.Payload == PayloadCustom {
		session.Awaiting = entity.AwaitingOutValue
		if err := c.sessions.Save(ctx, session); err != nil {
			return fmt.Errorf("salvar sessão: %w", err)
		}
		view := View{
			Text: "Digite o valor unitário em reais (ex.: 49,90):",
			Options: []Option{
				{Label: "Voltar", Data: navData(entity.DirectionOut, NavBackToQuantity)},
				{Label: "Menu principal", Data: "menu:" + MenuHome},
			},
		}
		return c.render(ctx, userID, session, view, sel.Message)
	}

	price, err := parsePositive(sel.Payload)
	if err != nil {
		return c.render(ctx, userID, session, View{Text: useButtonsMessage}, sel.Message)
	}
	return c.confirmValue(ctx, userID, session, price, sel.Message)
}

// confirmValue fecha a saída com preço: total = quantidade × valor unitário,
// arredondado a duas casas, registrado na observação do lançamento.
func (c *Controller) confirmValue(ctx context.Context, userID int64, session *entity.UserSession, price decimal.Decimal, edit *entity.MessageRef) error {
	if session.PendingQuantity == nil {
		return c.startWizard(ctx, userID, entity.DirectionOut, edit)
	}
	qty := *session.PendingQuantity

	product, err := c.ledger.GetProduct(ctx, session.ProductID)
	if errors.Is(err, domain.ErrProductNotFound) {
		return c.abortMissingProduct(ctx, userID, edit)
	}
	if err != nil {
		return c.render(ctx, userID, session, View{Text: retryMessage}, edit)
	}

	session.PendingPrice = &price
	total := rowTotal(qty, price)
	return c.commit(ctx, userID, session, product, qty, &price, ledger.OutNote(price, total), edit)
}

// commit aplica o ajuste no ledger e encerra (ou redireciona) a conversa
// conforme o resultado. A sessão só sobrevive a falhas recuperáveis.
func (c *Controller) commit(ctx context.Context, userID int64, session *entity.UserSession, product *entity.Product, qty decimal.Decimal, unitPrice *decimal.Decimal, note string, edit *entity.MessageRef) error {
	newQty, err := c.ledger.AdjustStock(ctx, ledger.AdjustInput{
		ProductID: product.ID,
		Direction: session.Direction,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Note:      note,
	})

	switch {
	case err == nil:
		if delErr := c.sessions.Delete(ctx, userID); delErr != nil {
			c.log.Warn().Err(delErr).Int64("user_id", userID).Msg("falha ao descartar sessão após movimentação")
		}
		text := summaryText(session, product, qty, unitPrice, newQty)
		return c.render(ctx, userID, nil, postMovementView(text, session.Direction), edit)

	case errors.Is(err, domain.ErrInsufficientStock):
		// O saldo mudou entre a checagem e a transação. Volta à escolha de
		// quantidade com o saldo atual; o preço pendente morre junto.
		session.ClearPending()
		session.Awaiting = entity.AwaitingQuantityChoice
		if saveErr := c.sessions.Save(ctx, session); saveErr != nil {
			return fmt.Errorf("salvar sessão: %w", saveErr)
		}
		current, getErr := c.ledger.GetProduct(ctx, product.ID)
		if getErr != nil {
			current = product
		}
		warning := fmt.Sprintf("Estoque insuficiente: %s tem %s %s em estoque. Escolha outra quantidade:",
			current.Name, current.Quantity.String(), current.Unit)
		return c.render(ctx, userID, session, quantityView(session.Direction, current, warning), edit)

	case errors.Is(err, domain.ErrProductNotFound):
		return c.abortMissingProduct(ctx, userID, edit)

	default:
		c.log.Error().Err(err).Int64("user_id", userID).Str("product_id", product.ID).Msg("falha ao registrar movimentação")
		// Sessão preservada: o mesmo botão pode ser tocado de novo.
		return c.render(ctx, userID, session, View{Text: retryMessage}, edit)
	}
}

func (c *Controller) abortMissingProduct(ctx context.Context, userID int64, edit *entity.MessageRef) error {
	if err := c.sessions.Delete(ctx, userID); err != nil {
		c.log.Warn().Err(err).Int64("user_id", userID).Msg("falha ao descartar sessão de produto removido")
	}
	return c.render(ctx, userID, nil, mainMenuView("Esse produto não existe mais. Começando de novo:"), edit)
}

func (c *Controller) handleNav(ctx context.Context, userID int64, session *entity.UserSession, sel Selection) error {
	direction := sel.Direction
	if direction == "" && session != nil {
		direction = session.Direction
	}

	switch sel.Payload {
	case NavRestart:
		return c.startWizard(ctx, userID, direction, sel.Message)

	case NavBackToCategories:
		// Idempotente: de qualquer ponto do fluxo (inclusive já na escolha de
		// categoria), o resultado é o mesmo fluxo recém-aberto.
		return c.startWizard(ctx, userID, direction, sel.Message)

	case NavBackToProducts:
		if session == nil || session.Category == "" {
			return c.startWizard(ctx, userID, direction, sel.Message)
		}
		products, err := c.ledger.ListProductsByCategory(ctx, session.Category)
		if err != nil {
			return c.render(ctx, userID, session, View{Text: retryMessage}, sel.Message)
		}
		session.ProductID = ""
		session.ClearPending()
		session.Awaiting = entity.AwaitingProduct
		if err := c.sessions.Save(ctx, session); err != nil {
			return fmt.Errorf("salvar sessão: %w", err)
		}
		return c.render(ctx, userID, session, productsView(direction, session.Promo, products), sel.Message)

	case NavBackToQuantity:
		if session == nil || session.ProductID == "" {
			return c.startWizard(ctx, userID, direction, sel.Message)
		}
		product, err := c.ledger.GetProduct(ctx, session.ProductID)
		if errors.Is(err, domain.ErrProductNotFound) {
			// Produto sumiu: cai para a lista de produtos da categoria.
			back := sel
			back.Payload = NavBackToProducts
			return c.handleNav(ctx, userID, session, back)
		}
		if err != nil {
			return c.render(ctx, userID, session, View{Text: retryMessage}, sel.Message)
		}
		session.ClearPending()
		session.Awaiting = entity.AwaitingQuantityChoice
		if err := c.sessions.Save(ctx, session); err != nil {
			return fmt.Errorf("salvar sessão: %w", err)
		}
		return c.render(ctx, userID, session, quantityView(direction, product, ""), sel.Message)

	default:
		return c.startWizard(ctx, userID, direction, sel.Message)
	}
}

func (c *Controller) handleAdmin(ctx context.Context, userID int64, sel Selection) error {
	switch sel.Payload {
	case AdminConfirmClearStock:
		view := confirmView("Zerar o saldo de TODOS os produtos? Os lançamentos ficam.", AdminDoClearStock)
		return c.render(ctx, userID, nil, view, sel.Message)

	case AdminDoClearStock:
		if err := c.ledger.ClearStock(ctx); err != nil {
			return c.render(ctx, userID, nil, mainMenuView(retryMessage), sel.Message)
		}
		return c.render(ctx, userID, nil, mainMenuView("Estoque zerado."), sel.Message)

	case AdminConfirmClearOut:
		view := confirmView("Apagar só os lançamentos de saída? Os saldos não mudam.", AdminDoClearOut)
		return c.render(ctx, userID, nil, view, sel.Message)

	case AdminDoClearOut:
		if err := c.ledger.ClearMovements(ctx, entity.DirectionOut); err != nil {
			return c.render(ctx, userID, nil, mainMenuView(retryMessage), sel.Message)
		}
		return c.render(ctx, userID, nil, mainMenuView("Lançamentos de saída apagados."), sel.Message)

	case AdminConfirmClearHistory:
		view := confirmView("Apagar TODO o histórico de lançamentos? Os saldos não mudam.", AdminDoClearHistory)
		return c.render(ctx, userID, nil, view, sel.Message)

	case AdminDoClearHistory:
		if err := c.ledger.ClearMovements(ctx, ""); err != nil {
			return c.render(ctx, userID, nil, mainMenuView(retryMessage), sel.Message)
		}
		return c.render(ctx, userID, nil, mainMenuView("Histórico apagado."), sel.Message)

	default: // AdminCancel
		return c.render(ctx, userID, nil, mainMenuView("Nada foi apagado."), sel.Message)
	}
}

// render entrega a View e atualiza a referência da última mensagem na sessão,
// quando ela ainda existe. Falha de entrega não desfaz o estado já gravado.
func (c *Controller) render(ctx context.Context, userID int64, session *entity.UserSession, view View, edit *entity.MessageRef) error {
	view.Edit = edit
	ref, err := c.renderer.Render(ctx, userID, view)
	if err != nil {
		c.log.Error().Err(err).Int64("user_id", userID).Msg("falha ao entregar mensagem ao gateway")
		return err
	}
	if session != nil && ref != nil {
		session.LastMessage = ref
		if err := c.sessions.Save(ctx, session); err != nil {
			c.log.Warn().Err(err).Int64("user_id", userID).Msg("falha ao gravar referência da última mensagem")
		}
	}
	return nil
}

func summaryText(session *entity.UserSession, product *entity.Product, qty decimal.Decimal, unitPrice *decimal.Decimal, newQty decimal.Decimal) string {
	var b strings.Builder
	switch {
	case session.Direction == entity.DirectionIn:
		fmt.Fprintf(&b, "Entrada registrada: +%s %s de %s.", qty.String(), product.Unit, product.Name)
	case session.Promo:
		fmt.Fprintf(&b, "Brinde registrado: -%s %s de %s (sem valor).", qty.String(), product.Unit, product.Name)
	default:
		fmt.Fprintf(&b, "Saída registrada: -%s %s de %s.", qty.String(), product.Unit, product.Name)
		if unitPrice != nil {
			fmt.Fprintf(&b, " Valor unitário R$ %s, total R$ %s.",
				unitPrice.StringFixed(2), rowTotal(qty, *unitPrice).StringFixed(2))
		}
	}
	fmt.Fprintf(&b, "\nSaldo atual: %s %s.", newQty.String(), product.Unit)
	return b.String()
}

func parsePositive(raw string) (decimal.Decimal, error) {
	v, err := textutil.ParseDecimal(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if !v.GreaterThan(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("valor não positivo: %s", v.String())
	}
	return v, nil
}

// rowTotal aplica a regra comercial: quantidade × valor unitário, duas casas.
func rowTotal(qty, unitPrice decimal.Decimal) decimal.Decimal {
	return textutil.RoundMoney(qty.Mul(unitPrice))
}
