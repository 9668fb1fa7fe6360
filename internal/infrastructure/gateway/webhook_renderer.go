package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/application/flow"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/jwt"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/logger"
)

// tokenTTLMinutes validade do token emitido para cada entrega.
const tokenTTLMinutes = 5

// WebhookRenderer entrega Views ao gateway de mensagens por HTTP: POST do
// texto e das opções no callback do gateway, autenticado com o mesmo segredo
// compartilhado do webhook de entrada. O gateway decide o layout (teclado,
// edição in-place) e devolve a referência da mensagem resultante.
type WebhookRenderer struct {
	callbackURL string
	jwtSecret   string
	issuer      string
	httpClient  *http.Client
}

var _ flow.Renderer = (*WebhookRenderer)(nil)

func NewWebhookRenderer(callbackURL, jwtSecret, issuer string) *WebhookRenderer {
	return &WebhookRenderer{
		callbackURL: callbackURL,
		jwtSecret:   jwtSecret,
		issuer:      issuer,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type renderRequest struct {
	UserID  int64              `json:"user_id"`
	Text    string             `json:"text"`
	Options []renderOption     `json:"options,omitempty"`
	Edit    *entity.MessageRef `json:"edit,omitempty"`
}

type renderOption struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

type renderResponse struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

func (r *WebhookRenderer) Render(ctx context.Context, userID int64, view flow.View) (*entity.MessageRef, error) {
	payload := renderRequest{
		UserID: userID,
		Text:   view.Text,
		Edit:   view.Edit,
	}
	for _, opt := range view.Options {
		payload.Options = append(payload.Options, renderOption{Label: opt.Label, Data: opt.Data})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("gateway: serializar mensagem: %w", err)
	}

	token, err := jwt.Generate(r.jwtSecret, "estoque-bot", r.issuer, tokenTTLMinutes)
	if err != nil {
		return nil, fmt.Errorf("gateway: emitir token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.callbackURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gateway: criar HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: entregar mensagem: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
	if err != nil {
		return nil, fmt.Errorf("gateway: ler resposta: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("gateway: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var ref renderResponse
	if err := json.Unmarshal(rawBody, &ref); err != nil {
		return nil, fmt.Errorf("gateway: desserializar resposta: %w", err)
	}
	if ref.MessageID == 0 {
		return nil, nil
	}
	return &entity.MessageRef{ChatID: ref.ChatID, MessageID: ref.MessageID}, nil
}

// LogRenderer só escreve as Views no log. Usado em desenvolvimento, quando
// não há callback de gateway configurado.
type LogRenderer struct {
	log *logger.Logger
}

var _ flow.Renderer = (*LogRenderer)(nil)

func NewLogRenderer(log *logger.Logger) *LogRenderer {
	return &LogRenderer{log: log}
}

func (r *LogRenderer) Render(_ context.Context, userID int64, view flow.View) (*entity.MessageRef, error) {
	labels := make([]string, 0, len(view.Options))
	for _, opt := range view.Options {
		labels = append(labels, opt.Label)
	}
	r.log.Info().
		Int64("user_id", userID).
		Str("text", view.Text).
		Strs("options", labels).
		Msg("mensagem renderizada")
	return nil, nil
}
