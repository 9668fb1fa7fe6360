package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/jwt"
)

// LocalGateway key do identificador do gateway autenticado em c.Locals.
const LocalGateway = "gateway"

// ErrorResponse corpo padrão de erro do webhook.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AuthMiddleware valida o Bearer Token JWT do gateway de mensagens e expõe o
// identificador do gateway em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		gateway, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalGateway, gateway)
		return c.Next()
	}
}

// GetGateway devolve o gateway autenticado (após o middleware).
func GetGateway(c *fiber.Ctx) string {
	v := c.Locals(LocalGateway)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
