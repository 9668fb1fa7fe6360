package flow

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/repository"
)

// Construtores das Views do fluxo. O texto aqui é o conteúdo mínimo; a
// apresentação final (layout de botões, ênfase, emojis) é do gateway.

var quickQuantities = []string{"1", "5", "10", "15", "30", "50"}

var quickPrices = []string{"9.90", "15.90", "29.90", "49.90"}

func mainMenuOptions() []Option {
	return []Option{
		{Label: "Entrada", Data: "menu:" + MenuIn},
		{Label: "Saída", Data: "menu:" + MenuOut},
		{Label: "Estoque", Data: "menu:" + MenuOverview},
		{Label: "Histórico", Data: "menu:" + MenuHistory},
		{Label: "Assistente", Data: "menu:" + MenuAssistant},
		{Label: "Registrar brinde avulso", Data: "menu:" + MenuPromo},
	}
}

func mainMenuView(text string) View {
	if text == "" {
		text = "O que você quer fazer?"
	}
	return View{Text: text, Options: mainMenuOptions()}
}

func categoryView(direction string) View {
	text := "Escolha a categoria de entrada:"
	options := []Option{
		{Label: "Cafés", Data: categoryData(direction, "cafes")},
		{Label: "Embalagens", Data: categoryData(direction, "embalagens")},
		{Label: "Insumos", Data: categoryData(direction, "insumos")},
	}
	if direction == entity.DirectionOut {
		text = "Escolha a categoria de saída:"
		options = append(options, Option{Label: "Brindes", Data: categoryData(direction, CategoryPromo)})
	}
	options = append(options, Option{Label: "Menu principal", Data: "menu:" + MenuHome})
	return View{Text: text, Options: options}
}

func categoryData(direction, category string) string {
	return fmt.Sprintf("category:%s:%s", direction, category)
}

func productsView(direction string, promo bool, products []*entity.Product) View {
	text := "Escolha o produto:"
	if promo {
		text = "Escolha o café que sai como brinde:"
	}
	options := make([]Option, 0, len(products)+2)
	for _, p := range products {
		options = append(options, Option{
			Label: p.Name,
			Data:  fmt.Sprintf("product:%s:%s", direction, p.ID),
		})
	}
	options = append(options,
		Option{Label: "Voltar às categorias", Data: navData(direction, NavBackToCategories)},
		Option{Label: "Menu principal", Data: "menu:" + MenuHome},
	)
	return View{Text: text, Options: options}
}

func quantityView(direction string, product *entity.Product, warning string) View {
	text := fmt.Sprintf("Qual a quantidade de %s?", product.Name)
	if warning != "" {
		text = warning
	}
	options := make([]Option, 0, len(quickQuantities)+3)
	for _, q := range quickQuantities {
		options = append(options, Option{
			Label: q,
			Data:  fmt.Sprintf("quantity:%s:%s", direction, q),
		})
	}
	options = append(options,
		Option{Label: "Inserir manualmente", Data: fmt.Sprintf("quantity:%s:%s", direction, PayloadCustom)},
		Option{Label: "Trocar produto", Data: navData(direction, NavBackToProducts)},
		Option{Label: "Menu principal", Data: "menu:" + MenuHome},
	)
	return View{Text: text, Options: options}
}

func valueView(product *entity.Product, quantity decimal.Decimal, warning string) View {
	text := fmt.Sprintf("Qual o valor unitário da saída de %s %s de %s?",
		quantity.String(), product.Unit, product.Name)
	if warning != "" {
		text = warning
	}
	options := make([]Option, 0, len(quickPrices)+3)
	for _, v := range quickPrices {
		options = append(options, Option{
			Label: "R$ " + strings.ReplaceAll(v, ".", ","),
			Data:  fmt.Sprintf("value:%s:%s", entity.DirectionOut, v),
		})
	}
	options = append(options,
		Option{Label: "Personalizar", Data: fmt.Sprintf("value:%s:%s", entity.DirectionOut, PayloadCustom)},
		Option{Label: "Ajustar quantidade", Data: navData(entity.DirectionOut, NavBackToQuantity)},
		Option{Label: "Menu principal", Data: "menu:" + MenuHome},
	)
	return View{Text: text, Options: options}
}

func navData(direction, command string) string {
	return fmt.Sprintf("nav:%s:%s", direction, command)
}

func postMovementView(text, direction string) View {
	return View{
		Text: text,
		Options: []Option{
			{Label: "Ver estoque", Data: "menu:" + MenuOverview},
			{Label: "Ver histórico", Data: "menu:" + MenuHistory},
			{Label: "Nova movimentação", Data: navData(direction, NavRestart)},
			{Label: "Menu principal", Data: "menu:" + MenuHome},
		},
	}
}

func overviewView(products []*entity.Product) View {
	var b strings.Builder
	b.WriteString("Estoque atual:\n")
	lastCategory := ""
	for _, p := range products {
		if p.Category != lastCategory {
			fmt.Fprintf(&b, "\n%s\n", p.Category)
			lastCategory = p.Category
		}
		fmt.Fprintf(&b, "- %s: %s %s\n", p.Name, p.Quantity.String(), p.Unit)
	}
	if len(products) == 0 {
		b.WriteString("nenhum produto cadastrado\n")
	}
	return View{
		Text: b.String(),
		Options: []Option{
			{Label: "Atualizar", Data: "menu:" + MenuOverview},
			{Label: "Limpar estoque", Data: "admin:" + AdminConfirmClearStock},
			{Label: "Menu principal", Data: "menu:" + MenuHome},
		},
	}
}

func historyView(movements []*repository.MovementWithProduct, promos []*entity.PromoRecord) View {
	var b strings.Builder
	b.WriteString("Histórico de movimentações:\n")
	if len(movements) == 0 {
		b.WriteString("nenhum registro até o momento\n")
	}
	for _, mp := range movements {
		sign := "+"
		if mp.Movement.Direction == entity.DirectionOut {
			sign = "-"
		}
		line := fmt.Sprintf("%s %s %s%s %s",
			mp.Movement.OccurredAt.Format("02/01 15:04"),
			mp.Product.Name, sign, mp.Movement.Quantity.String(), mp.Product.Unit)
		if mp.Movement.IsPromo() {
			line += " (brinde)"
		} else if mp.Movement.UnitPrice != nil {
			line += fmt.Sprintf(" (R$ %s/un)", mp.Movement.UnitPrice.StringFixed(2))
		}
		b.WriteString(line + "\n")
	}
	if len(promos) > 0 {
		b.WriteString("\nBrindes avulsos:\n")
		for _, rec := range promos {
			fmt.Fprintf(&b, "%s %s\n", rec.OccurredAt.Format("02/01 15:04"), rec.Description)
		}
	}
	return View{
		Text: b.String(),
		Options: []Option{
			{Label: "Limpar histórico", Data: "admin:" + AdminConfirmClearHistory},
			{Label: "Limpar só saídas", Data: "admin:" + AdminConfirmClearOut},
			{Label: "Menu principal", Data: "menu:" + MenuHome},
		},
	}
}

func assistantPanelView(text string) View {
	if text == "" {
		text = "Envie sua pergunta sobre o estoque ou escolha um atalho."
	}
	return View{
		Text: text,
		Options: []Option{
			{Label: "Sugestões automáticas", Data: "assistant:" + AssistantSuggestions},
			{Label: "Relatórios rápidos", Data: "assistant:" + AssistantReports},
			{Label: "Resumo do dia", Data: "assistant:" + AssistantSummary},
			{Label: "Menu principal", Data: "menu:" + MenuHome},
		},
	}
}

func confirmView(text, doData string) View {
	return View{
		Text: text,
		Options: []Option{
			{Label: "Confirmar", Data: "admin:" + doData},
			{Label: "Cancelar", Data: "admin:" + AdminCancel},
			{Label: "Menu principal", Data: "menu:" + MenuHome},
		},
	}
}
