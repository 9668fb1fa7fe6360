package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/application/flow"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/application/ledger"
	infraai "github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/infrastructure/ai"
	infragateway "github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/infrastructure/gateway"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/infrastructure/memory"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/infrastructure/postgres"
	infraredis "github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/infrastructure/redis"
	httpRouter "github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/interfaces/http"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/config"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparar schema")
	}

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	promoRepo := postgres.NewPromoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	ledgerSvc := ledger.NewService(txRunner, productRepo, movementRepo, promoRepo)

	// Sessões: Redis quando configurado (várias instâncias); memória caso
	// contrário.
	var sessions flow.SessionStore
	if cfg.Redis.Addr != "" {
		client, err := infraredis.NewClient(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao Redis")
		}
		defer client.Close()
		ttl := time.Duration(cfg.Redis.SessionTTL) * time.Minute
		sessions = infraredis.NewSessionStore(client, ttl)
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("sessões em Redis")
	} else {
		sessions = memory.NewSessionStore()
		log.Info().Msg("sessões em memória")
	}

	var renderer flow.Renderer
	if cfg.Gateway.CallbackURL != "" {
		renderer = infragateway.NewWebhookRenderer(cfg.Gateway.CallbackURL, cfg.JWT.Secret, cfg.JWT.Issuer)
	} else {
		renderer = infragateway.NewLogRenderer(log)
		log.Warn().Msg("GATEWAY_CALLBACK_URL vazio: mensagens só vão para o log")
	}

	assistant := infraai.NewGroqService(cfg.Assistant.APIKey, cfg.Assistant.Model)

	controller := flow.NewController(ledgerSvc, sessions, renderer, assistant, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Gateway:   httpRouter.NewGatewayHandler(controller, log),
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}
}
