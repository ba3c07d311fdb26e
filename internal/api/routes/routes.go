package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-opinion-feed/internal/api/handlers"
	"github.com/prefeitura-rio/app-opinion-feed/internal/config"
	middlewares "github.com/prefeitura-rio/app-opinion-feed/internal/middleware"
	"github.com/prefeitura-rio/app-opinion-feed/internal/opinion"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// SetupRouter registra as rotas do feed de opinião.
// provider pode ser nil quando o arquivo de inteligência está desabilitado.
func SetupRouter(cfg *config.Config, svc *opinion.Service, provider opinion.IntelligenceProvider, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(middlewares.RequestTiming(logger))

	var archive opinion.HealthChecker
	if checker, ok := provider.(opinion.HealthChecker); ok {
		archive = checker
	}

	healthHandler := handlers.NewHealthHandler(archive, svc.Catalog(), logger)
	opinionHandler := handlers.NewOpinionHandler(svc, cfg, logger)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	api := r.Group("/api/v1")
	{
		op := api.Group("/opinion")
		op.GET("/categories", opinionHandler.GetCategories)
		op.GET("/feed", opinionHandler.GetFeed)
		op.GET("/markets", opinionHandler.ListMarkets)
		op.GET("/topics/:topic_id", opinionHandler.GetTopic)
		op.GET("/topics/:topic_id/feed", opinionHandler.GetTopicFeed)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
