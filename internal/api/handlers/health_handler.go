package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-opinion-feed/internal/opinion"
	"go.uber.org/zap"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	archive opinion.HealthChecker
	catalog *opinion.Catalog
	logger  *zap.Logger
}

// NewHealthHandler cria um novo handler de health check.
// archive pode ser nil quando o arquivo de inteligência está desabilitado.
func NewHealthHandler(archive opinion.HealthChecker, catalog *opinion.Catalog, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		archive: archive,
		catalog: catalog,
		logger:  logger,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (arquivo de inteligência acessível ou desabilitado)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	// Catálogo vazio não bloqueia tráfego: o feed apenas fica vazio
	if h.catalog != nil && h.catalog.Len() > 0 {
		response.Checks["catalog"] = "ok"
	} else {
		response.Checks["catalog"] = "empty"
	}

	if h.archive == nil {
		response.Checks["archive"] = "disabled"
	} else if err := h.archive.Health(ctx); err != nil {
		h.logger.Warn("Archive health check failed", zap.Error(err))
		response.Checks["archive"] = "failed"
		response.Status = "not_ready"
		response.Error = "Archive not available"
	} else {
		response.Checks["archive"] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
