package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/application/flow"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
	apphttp "github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/interfaces/http"
	pkgjwt "github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/jwt"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "estoque-bot-test"
)

// fakeController grava os eventos recebidos do webhook.
type fakeController struct {
	selections []flow.Selection
	texts      []string
	err        error
}

func (f *fakeController) HandleSelection(_ context.Context, _ int64, sel flow.Selection) error {
	f.selections = append(f.selections, sel)
	return f.err
}

func (f *fakeController) HandleText(_ context.Context, _ int64, text string, _ *entity.MessageRef) error {
	f.texts = append(f.texts, text)
	return f.err
}

func buildTestApp(controller *fakeController) *fiber.App {
	app := fiber.New()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	apphttp.Router(app, apphttp.RouterDeps{
		Gateway:   apphttp.NewGatewayHandler(controller, log),
		JWTSecret: testJWTSecret,
	})
	return app
}

func gatewayToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, "telegram", testIssuer, 60)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doPost(t *testing.T, app *fiber.App, path, authHeader, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticação
// ──────────────────────────────────────────────────────────────────────────────

func TestWebhookSemTokenDevolve401(t *testing.T) {
	app := buildTestApp(&fakeController{})

	resp := doPost(t, app, "/gateway/selection", "", `{"user_id":1,"data":"menu:estoque"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWebhookComTokenInvalidoDevolve401(t *testing.T) {
	app := buildTestApp(&fakeController{})

	resp := doPost(t, app, "/gateway/selection", "Bearer lixo", `{"user_id":1,"data":"menu:estoque"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWebhookComFormatoErradoDevolve401(t *testing.T) {
	app := buildTestApp(&fakeController{})

	resp := doPost(t, app, "/gateway/selection", "Token xyz", `{"user_id":1,"data":"menu:estoque"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestHealthzNaoExigeToken(t *testing.T) {
	app := buildTestApp(&fakeController{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eventos
// ──────────────────────────────────────────────────────────────────────────────

func TestSelecaoValidaChegaAoControlador(t *testing.T) {
	controller := &fakeController{}
	app := buildTestApp(controller)

	body := `{"user_id":42,"data":"category:out:cafes","chat_id":42,"message_id":7}`
	resp := doPost(t, app, "/gateway/selection", gatewayToken(t), body)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	require.Len(t, controller.selections, 1)
	sel := controller.selections[0]
	assert.Equal(t, flow.SelectionCategory, sel.Kind)
	assert.Equal(t, "out", sel.Direction)
	assert.Equal(t, "cafes", sel.Payload)
	require.NotNil(t, sel.Message)
	assert.Equal(t, int64(7), sel.Message.MessageID)
}

func TestSelecaoComCallbackMalformadoDevolve400(t *testing.T) {
	controller := &fakeController{}
	app := buildTestApp(controller)

	resp := doPost(t, app, "/gateway/selection", gatewayToken(t), `{"user_id":42,"data":"foo:bar"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, controller.selections)
}

func TestSelecaoSemUserIDDevolve400(t *testing.T) {
	app := buildTestApp(&fakeController{})

	resp := doPost(t, app, "/gateway/selection", gatewayToken(t), `{"data":"menu:estoque"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTextoValidoChegaAoControlador(t *testing.T) {
	controller := &fakeController{}
	app := buildTestApp(controller)

	resp := doPost(t, app, "/gateway/text", gatewayToken(t), `{"user_id":42,"text":"12,5"}`)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	assert.Equal(t, []string{"12,5"}, controller.texts)
}

func TestFalhaDoControladorDevolve500(t *testing.T) {
	controller := &fakeController{err: errors.New("store indisponível")}
	app := buildTestApp(controller)

	resp := doPost(t, app, "/gateway/text", gatewayToken(t), `{"user_id":42,"text":"oi"}`)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
