package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestService aponta o adaptador para um servidor httptest.
func newTestService(t *testing.T, handler http.HandlerFunc) *GroqService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewGroqService("chave-de-teste", "modelo-de-teste")
	svc.baseURL = srv.URL
	return svc
}

func TestAskEnviaSnapshotEDevolveResposta(t *testing.T) {
	var got groqRequest
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer chave-de-teste", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(groqResponse{
			Choices: []struct {
				Message groqMessage `json:"message"`
			}{
				{Message: groqMessage{Role: "assistant", Content: "  O Bourbon tem 10 un.  "}},
			},
		})
	})

	answer, err := svc.Ask(context.Background(), "quanto tem de bourbon?", "- Café Bourbon (finished_good): 10 un")
	require.NoError(t, err)
	assert.Equal(t, "O Bourbon tem 10 un.", answer, "resposta deve vir sem espaços nas pontas")

	assert.Equal(t, "modelo-de-teste", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "Café Bourbon")
	assert.Equal(t, "quanto tem de bourbon?", got.Messages[1].Content)
}

func TestAskDevolveErroDaAPI(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit","message":"muitas requisições"}}`))
	})

	_, err := svc.Ask(context.Background(), "pergunta", "estoque vazio")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit")
}

func TestAskRejeitaRespostaVazia(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := svc.Ask(context.Background(), "pergunta", "estoque vazio")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vazia")
}

func TestAskRejeitaJSONInvalido(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>nginx</html>`))
	})

	_, err := svc.Ask(context.Background(), "pergunta", "estoque vazio")
	require.Error(t, err)
}

func TestAskExigeChave(t *testing.T) {
	svc := NewGroqService("", "")
	_, err := svc.Ask(context.Background(), "pergunta", "estoque vazio")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}

func TestModelPadrao(t *testing.T) {
	svc := NewGroqService("chave", "")
	assert.Equal(t, DefaultModel, svc.model)
}
