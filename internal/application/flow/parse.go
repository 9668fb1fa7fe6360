package flow

import (
	"fmt"
	"strings"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
)

// ParseSelectionData decodifica o token de callback devolvido pelo gateway
// ("kind:payload" ou "kind:direction:payload") na Selection estruturada.
// Os tokens são os mesmos gerados pelas Views deste pacote.
func ParseSelectionData(data string, msg *entity.MessageRef) (Selection, error) {
	parts := strings.Split(strings.TrimSpace(data), ":")
	if len(parts) < 2 || parts[0] == "" {
		return Selection{}, fmt.Errorf("callback malformado: %q", data)
	}

	kind := SelectionKind(parts[0])
	sel := Selection{Kind: kind, Message: msg}

	switch kind {
	case SelectionMenu, SelectionAdmin, SelectionAssistant:
		sel.Payload = strings.Join(parts[1:], ":")

	case SelectionCategory, SelectionProduct, SelectionQuantity, SelectionValue, SelectionNav:
		if len(parts) < 3 {
			return Selection{}, fmt.Errorf("callback sem direção: %q", data)
		}
		direction := parts[1]
		if direction != entity.DirectionIn && direction != entity.DirectionOut && direction != "" {
			return Selection{}, fmt.Errorf("direção desconhecida em callback: %q", data)
		}
		sel.Direction = direction
		sel.Payload = strings.Join(parts[2:], ":")

	default:
		return Selection{}, fmt.Errorf("tipo de callback desconhecido: %q", data)
	}

	if sel.Payload == "" {
		return Selection{}, fmt.Errorf("callback sem payload: %q", data)
	}
	return sel, nil
}
