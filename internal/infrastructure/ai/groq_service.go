package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/application/ports"
)

// Verificação em tempo de compilação de que GroqService implementa o porto.
var _ ports.AssistantService = (*GroqService)(nil)

const (
	groqChatCompletionsURL = "https://api.groq.com/openai/v1/chat/completions"

	// DefaultModel modelo usado quando a configuração não indica outro.
	DefaultModel = "llama-3.3-70b-versatile"

	groqSystemPrompt = `Você é o assistente de estoque da Eos Cafés Especiais, uma torrefação de cafés.
Responda em português do Brasil, de forma curta e direta, usando SOMENTE os dados do estoque abaixo.
Se a pergunta não puder ser respondida com esses dados, diga isso claramente.
Quantidades e valores devem sair exatamente como estão no snapshot; não invente números.

Estoque atual:
%s`
)

// GroqService adaptador que implementa AssistantService via API REST da Groq
// (protocolo chat completions compatível com OpenAI). Usa net/http; não
// precisa do SDK oficial.
type GroqService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGroqService constrói o adaptador. Com apiKey vazia as chamadas devolvem
// erro descritivo em vez de panic.
func NewGroqService(apiKey, model string) *GroqService {
	if model == "" {
		model = DefaultModel
	}
	return &GroqService{
		apiKey:  apiKey,
		model:   model,
		baseURL: groqChatCompletionsURL,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

// Estruturas internas do protocolo chat completions.

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqResponse struct {
	Choices []struct {
		Message groqMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Ask envia a pergunta ao modelo com o snapshot do estoque no prompt de
// sistema e devolve a resposta em texto plano.
func (s *GroqService) Ask(ctx context.Context, question, stockSnapshot string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("assistente: GROQ_API_KEY não configurada")
	}

	payload := groqRequest{
		Model: s.model,
		Messages: []groqMessage{
			{Role: "system", Content: fmt.Sprintf(groqSystemPrompt, stockSnapshot)},
			{Role: "user", Content: question},
		},
		Temperature: 0.3,
		MaxTokens:   1024,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("assistente: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("assistente: criar HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("assistente: timeout ou cancelamento: %w", ctx.Err())
		}
		return "", fmt.Errorf("assistente: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("assistente: ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp groqResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("assistente: Groq (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("assistente: Groq HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var groqResp groqResponse
	if err := json.Unmarshal(rawBody, &groqResp); err != nil {
		return "", fmt.Errorf("assistente: desserializar resposta: %w", err)
	}
	if len(groqResp.Choices) == 0 {
		return "", fmt.Errorf("assistente: o modelo devolveu resposta vazia")
	}

	answer := strings.TrimSpace(groqResp.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("assistente: o modelo devolveu resposta vazia")
	}
	return answer, nil
}
