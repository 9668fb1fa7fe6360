package flow

import (
	"context"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
)

// SessionStore guarda uma sessão de conversa por usuário. Backends: memória
// (instância única) ou um keyed store externo (várias instâncias). Get devolve
// nil, nil quando não há sessão.
type SessionStore interface {
	Get(ctx context.Context, userID int64) (*entity.UserSession, error)
	Save(ctx context.Context, session *entity.UserSession) error
	Delete(ctx context.Context, userID int64) error
}

// Option é um botão oferecido ao usuário: rótulo curto e o token de callback
// que o gateway devolve na seleção. Layout e formatação são do gateway.
type Option struct {
	Label string
	Data  string
}

// View é a única primitiva de saída do controlador: um texto, opções e a
// indicação de editar a última mensagem da sessão ou enviar uma nova.
// A escolha entre editar e enviar é puramente de apresentação.
type View struct {
	Text    string
	Options []Option
	// Edit aponta a mensagem a editar no lugar; nil envia uma nova.
	Edit *entity.MessageRef
}

// Renderer entrega uma View ao gateway de mensagens e devolve a referência da
// mensagem resultante, para edição em futuras respostas.
type Renderer interface {
	Render(ctx context.Context, userID int64, view View) (*entity.MessageRef, error)
}
