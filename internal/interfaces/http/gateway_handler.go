package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/application/flow"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/entity"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/logger"
)

// FlowController é a fatia do controlador de fluxo consumida pelo webhook.
type FlowController interface {
	HandleSelection(ctx context.Context, userID int64, sel flow.Selection) error
	HandleText(ctx context.Context, userID int64, text string, msg *entity.MessageRef) error
}

// GatewayHandler recebe os eventos do gateway de mensagens: seleções (botões)
// e mensagens de texto livre.
type GatewayHandler struct {
	controller FlowController
	log        *logger.Logger
}

func NewGatewayHandler(controller FlowController, log *logger.Logger) *GatewayHandler {
	return &GatewayHandler{controller: controller, log: log}
}

// selectionRequest evento de botão. Data é o token de callback gerado pelas
// Views; ChatID/MessageID localizam a mensagem cujo teclado foi tocado.
type selectionRequest struct {
	UserID    int64  `json:"user_id"`
	Data      string `json:"data"`
	ChatID    int64  `json:"chat_id"`
	MessageID int64  `json:"message_id"`
}

// textRequest mensagem de texto livre do usuário.
type textRequest struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

type ackResponse struct {
	Status string `json:"status"`
}

// HandleSelection POST /gateway/selection
func (h *GatewayHandler) HandleSelection(c *fiber.Ctx) error {
	var req selectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if req.UserID == 0 || req.Data == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "user_id e data são obrigatórios"})
	}

	var msg *entity.MessageRef
	if req.MessageID != 0 {
		msg = &entity.MessageRef{ChatID: req.ChatID, MessageID: req.MessageID}
	}

	sel, err := flow.ParseSelectionData(req.Data, msg)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_CALLBACK", Message: err.Error()})
	}

	if err := h.controller.HandleSelection(c.Context(), req.UserID, sel); err != nil {
		h.log.Error().Err(err).Int64("user_id", req.UserID).Str("data", req.Data).Msg("falha ao processar seleção")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Code: "FLOW_ERROR", Message: "falha ao processar o evento"})
	}
	return c.Status(fiber.StatusAccepted).JSON(ackResponse{Status: "ok"})
}

// HandleText POST /gateway/text
func (h *GatewayHandler) HandleText(c *fiber.Ctx) error {
	var req textRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if req.UserID == 0 || req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "user_id e text são obrigatórios"})
	}

	if err := h.controller.HandleText(c.Context(), req.UserID, req.Text, nil); err != nil {
		h.log.Error().Err(err).Int64("user_id", req.UserID).Msg("falha ao processar texto")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Code: "FLOW_ERROR", Message: "falha ao processar o evento"})
	}
	return c.Status(fiber.StatusAccepted).JSON(ackResponse{Status: "ok"})
}
