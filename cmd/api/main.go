package main

import (
	"context"
	"log"
	"time"

	_ "github.com/prefeitura-rio/app-opinion-feed/docs"
	"github.com/prefeitura-rio/app-opinion-feed/internal/api/routes"
	"github.com/prefeitura-rio/app-opinion-feed/internal/config"
	"github.com/prefeitura-rio/app-opinion-feed/internal/observability"
	"github.com/prefeitura-rio/app-opinion-feed/internal/opinion"
	"go.uber.org/zap"
)

// @title           Opinion Feed API
// @version         1.0
// @description     Feed de inteligência anotado com mercados de previsão, com fallback para feed de demonstração
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {

	cfg := config.LoadConfig()

	logger, err := observability.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	shutdownTracer, err := observability.InitTracer(context.Background(), cfg, logger)
	if err != nil {
		logger.Warn("Tracing indisponível, seguindo sem traces", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			logger.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	svc, provider := opinion.NewFromConfig(cfg, logger)

	r := routes.SetupRouter(cfg, svc, provider, logger)

	logger.Info("Servidor iniciado", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("Erro ao iniciar servidor", zap.Error(err))
	}
}
