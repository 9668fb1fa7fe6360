package main

import (
	"context"
	"time"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/infrastructure/postgres"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/config"
	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/pkg/logger"
)

// Popula o catálogo inicial: cria o schema e insere (ou atualiza) os produtos
// da torrefação, preservando os saldos existentes. Idempotente.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparar schema")
	}
	if err := postgres.SeedProducts(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("popular catálogo")
	}

	log.Info().Msg("catálogo populado")
}
