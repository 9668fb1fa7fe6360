package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/application/flow"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
	pkgjwt "github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/jwt"
)

const testSecret = "segredo-do-gateway"

func TestRenderEntregaViewEDevolveReferencia(t *testing.T) {
	var got renderRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(renderResponse{ChatID: 42, MessageID: 101})
	}))
	t.Cleanup(srv.Close)

	r := NewWebhookRenderer(srv.URL, testSecret, "estoque-bot-test")
	view := flow.View{
		Text: "Escolha a categoria de saída:",
		Options: []flow.Option{
			{Label: "Cafés", Data: "category:out:cafes"},
		},
		Edit: &entity.MessageRef{ChatID: 42, MessageID: 100},
	}

	ref, err := r.Render(context.Background(), 42, view)
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, int64(101), ref.MessageID)

	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "Escolha a categoria de saída:", got.Text)
	require.Len(t, got.Options, 1)
	assert.Equal(t, "category:out:cafes", got.Options[0].Data)
	require.NotNil(t, got.Edit)
	assert.Equal(t, int64(100), got.Edit.MessageID)

	// A entrega sai autenticada com o segredo compartilhado.
	require.True(t, len(auth) > len("Bearer "))
	gateway, err := pkgjwt.Parse(testSecret, auth[len("Bearer "):])
	require.NoError(t, err)
	assert.Equal(t, "estoque-bot", gateway)
}

func TestRenderPropagaErroHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("gateway fora do ar"))
	}))
	t.Cleanup(srv.Close)

	r := NewWebhookRenderer(srv.URL, testSecret, "estoque-bot-test")
	_, err := r.Render(context.Background(), 1, flow.View{Text: "oi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestRenderSemMensagemDevolveNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	r := NewWebhookRenderer(srv.URL, testSecret, "estoque-bot-test")
	ref, err := r.Render(context.Background(), 1, flow.View{Text: "oi"})
	require.NoError(t, err)
	assert.Nil(t, ref)
}
