package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/application/flow"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
)

func TestParseSelectionData(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		kind      flow.SelectionKind
		direction string
		payload   string
		wantErr   bool
	}{
		{name: "menu", data: "menu:estoque", kind: flow.SelectionMenu, payload: "estoque"},
		{name: "categoria com direção", data: "category:out:cafes", kind: flow.SelectionCategory, direction: "out", payload: "cafes"},
		{name: "produto com uuid", data: "product:in:a1b2c3", kind: flow.SelectionProduct, direction: "in", payload: "a1b2c3"},
		{name: "quantidade rápida", data: "quantity:out:50", kind: flow.SelectionQuantity, direction: "out", payload: "50"},
		{name: "valor com ponto", data: "value:out:9.90", kind: flow.SelectionValue, direction: "out", payload: "9.90"},
		{name: "navegação", data: "nav:out:back_to_products", kind: flow.SelectionNav, direction: "out", payload: "back_to_products"},
		{name: "admin sem direção", data: "admin:do_clear_stock", kind: flow.SelectionAdmin, payload: "do_clear_stock"},
		{name: "atalho do assistente", data: "assistant:resumo", kind: flow.SelectionAssistant, payload: "resumo"},
		{name: "payload com dois-pontos", data: "menu:a:b", kind: flow.SelectionMenu, payload: "a:b"},

		{name: "vazio", data: "", wantErr: true},
		{name: "sem payload", data: "menu:", wantErr: true},
		{name: "tipo desconhecido", data: "foo:bar", wantErr: true},
		{name: "categoria sem direção", data: "category:cafes", wantErr: true},
		{name: "direção desconhecida", data: "quantity:sideways:5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := flow.ParseSelectionData(tt.data, nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, sel.Kind)
			assert.Equal(t, tt.direction, sel.Direction)
			assert.Equal(t, tt.payload, sel.Payload)
		})
	}
}

func TestParseSelectionDataPreservaMensagem(t *testing.T) {
	msg := &entity.MessageRef{ChatID: 7, MessageID: 99}
	sel, err := flow.ParseSelectionData("menu:historico", msg)
	require.NoError(t, err)
	assert.Equal(t, msg, sel.Message)
}
