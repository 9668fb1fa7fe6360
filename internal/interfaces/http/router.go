package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	Gateway   *GatewayHandler
	JWTSecret string
}

// Router registra as rotas do webhook do gateway.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Eventos do gateway (protegido por Bearer Token)
	gateway := app.Group("/gateway", AuthMiddleware(deps.JWTSecret))
	gateway.Post("/selection", deps.Gateway.HandleSelection)
	gateway.Post("/text", deps.Gateway.HandleText)
}
