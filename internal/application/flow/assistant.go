package flow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
)

// Painel do assistente. Os atalhos são calculados direto do ledger, sem IA;
// só a pergunta em texto livre vai ao modelo, acompanhada de um snapshot do
// estoque montado na hora.

func (c *Controller) handleAssistantShortcut(ctx context.Context, userID int64, session *entity.UserSession, sel Selection) error {
	if session == nil || session.Awaiting != entity.AwaitingAssistantQuestion {
		session = &entity.UserSession{UserID: userID, Awaiting: entity.AwaitingAssistantQuestion}
		if err := c.sessions.Save(ctx, session); err != nil {
			return fmt.Errorf("salvar sessão: %w", err)
		}
	}

	var text string
	var err error
	switch sel.Payload {
	case AssistantSuggestions:
		text, err = c.restockSuggestions(ctx)
	case AssistantReports:
		text, err = c.salesReport(ctx)
	case AssistantSummary:
		text, err = c.dailySummary(ctx)
	default:
		text = "Atalho desconhecido. Escolha uma das opções:"
	}
	if err != nil {
		c.log.Error().Err(err).Int64("user_id", userID).Str("shortcut", sel.Payload).Msg("falha ao montar atalho do assistente")
		text = retryMessage
	}
	return c.render(ctx, userID, session, assistantPanelView(text), sel.Message)
}

// restockSuggestions aponta os produtos com saldo no limite de reposição.
func (c *Controller) restockSuggestions(ctx context.Context) (string, error) {
	products, err := c.ledger.ListProducts(ctx)
	if err != nil {
		return "", err
	}

	threshold := decimal.NewFromInt(lowStockThreshold)
	var b strings.Builder
	b.WriteString("Sugestões de reposição (saldo baixo):\n")
	low := 0
	for _, p := range products {
		if !p.Quantity.GreaterThan(threshold) {
			fmt.Fprintf(&b, "- %s: %s %s\n", p.Name, p.Quantity.String(), p.Unit)
			low++
		}
	}
	if low == 0 {
		return "Nenhum produto com saldo baixo. Tudo reposto.", nil
	}
	return b.String(), nil
}

// salesReport agrega a receita de saídas dos últimos dias, por produto e por
// dia.
func (c *Controller) salesReport(ctx context.Context) (string, error) {
	byProduct, err := c.ledger.SalesTotalsByProduct(ctx, reportWindowDays)
	if err != nil {
		return "", err
	}
	if len(byProduct) == 0 {
		return fmt.Sprintf("Nenhuma saída com valor nos últimos %d dias.", reportWindowDays), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Mais vendidos nos últimos %d dias:\n", reportWindowDays)
	for i, t := range byProduct {
		if i >= reportTopProducts {
			break
		}
		fmt.Fprintf(&b, "- %s: %s unidades, R$ %s\n", t.Product, t.Quantity.String(), t.Total.StringFixed(2))
	}

	byDay, err := c.ledger.SalesTotalsByDay(ctx, reportWindowDays)
	if err != nil {
		return "", err
	}
	if len(byDay) > 0 {
		b.WriteString("\nReceita por dia:\n")
		for _, t := range byDay {
			fmt.Fprintf(&b, "- %s: R$ %s\n", t.Day.Format("02/01"), t.Total.StringFixed(2))
		}
	}
	return b.String(), nil
}

// dailySummary compara a receita de hoje com a de ontem.
func (c *Controller) dailySummary(ctx context.Context) (string, error) {
	now := time.Now()
	today, err := c.ledger.SalesTotalForDate(ctx, now)
	if err != nil {
		return "", err
	}
	yesterday, err := c.ledger.SalesTotalForDate(ctx, now.AddDate(0, 0, -1))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Resumo do dia %s:\n", now.Format("02/01"))
	fmt.Fprintf(&b, "- hoje: R$ %s\n", today.StringFixed(2))
	fmt.Fprintf(&b, "- ontem: R$ %s\n", yesterday.StringFixed(2))
	switch {
	case today.GreaterThan(yesterday):
		b.WriteString("Vendas acima de ontem.")
	case today.LessThan(yesterday):
		b.WriteString("Vendas abaixo de ontem.")
	default:
		b.WriteString("Vendas no mesmo ritmo de ontem.")
	}
	return b.String(), nil
}

// answerQuestion envia a pergunta ao modelo com o snapshot do estoque.
// Falha do assistente não derruba a conversa: o painel continua aberto.
func (c *Controller) answerQuestion(ctx context.Context, userID int64, session *entity.UserSession, question string, edit *entity.MessageRef) error {
	products, err := c.ledger.ListProducts(ctx)
	if err != nil {
		return c.render(ctx, userID, session, assistantPanelView(retryMessage), edit)
	}

	answer, err := c.assistant.Ask(ctx, question, stockSnapshot(products))
	if err != nil {
		c.log.Error().Err(err).Int64("user_id", userID).Msg("falha ao consultar o assistente")
		return c.render(ctx, userID, session, assistantPanelView(unavailableMessage), edit)
	}
	return c.render(ctx, userID, session, assistantPanelView(answer), edit)
}

// recordLoosePromo grava o brinde avulso descrito em texto livre e encerra a
// conversa.
func (c *Controller) recordLoosePromo(ctx context.Context, userID int64, description string, edit *entity.MessageRef) error {
	description = strings.TrimSpace(description)
	if description == "" {
		view := View{
			Text:    promoDescribePrompt,
			Options: []Option{{Label: "Cancelar", Data: "menu:" + MenuHome}},
		}
		return c.render(ctx, userID, nil, view, edit)
	}

	origin := userID
	if err := c.ledger.RecordPromo(ctx, description, &origin); err != nil {
		return c.render(ctx, userID, nil, View{Text: retryMessage}, edit)
	}
	if err := c.sessions.Delete(ctx, userID); err != nil {
		c.log.Warn().Err(err).Int64("user_id", userID).Msg("falha ao descartar sessão de brinde avulso")
	}
	return c.render(ctx, userID, nil, mainMenuView("Brinde registrado."), edit)
}

// stockSnapshot monta o resumo em texto plano enviado ao modelo.
func stockSnapshot(products []*entity.Product) string {
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%s): %s %s\n", p.Name, p.Kind, p.Quantity.String(), p.Unit)
	}
	if b.Len() == 0 {
		return "estoque vazio"
	}
	return b.String()
}
