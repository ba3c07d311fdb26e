package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-opinion-feed/internal/config"
	"github.com/prefeitura-rio/app-opinion-feed/internal/models"
	"github.com/prefeitura-rio/app-opinion-feed/internal/opinion"
	"github.com/prefeitura-rio/app-opinion-feed/internal/utils"
	"go.uber.org/zap"
)

// OpinionHandler expõe o feed de opinião
type OpinionHandler struct {
	service      *opinion.Service
	validator    *validator.Validate
	logger       *zap.Logger
	defaultLimit int
	maxLimit     int
	sampleLimit  int
}

// NewOpinionHandler cria o handler com os limites da configuração
func NewOpinionHandler(service *opinion.Service, cfg *config.Config, logger *zap.Logger) *OpinionHandler {
	return &OpinionHandler{
		service:      service,
		validator:    validator.New(),
		logger:       logger,
		defaultLimit: cfg.FeedDefaultLimit,
		maxLimit:     cfg.FeedMaxLimit,
		sampleLimit:  cfg.MarketsSampleLimit,
	}
}

// FeedQuery são os parâmetros do feed
type FeedQuery struct {
	Category string `form:"category"`
	Limit    *int   `form:"limit"`
}

// MarketsQuery são os parâmetros dos cards de mercado
type MarketsQuery struct {
	Category    string `form:"category"`
	SampleLimit *int   `form:"sample_limit"`
}

// CategoriesResponse lista as categorias do catálogo
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// FeedResponse é a resposta do feed
type FeedResponse struct {
	Items []models.FeedItem `json:"items"`
	Count int               `json:"count"`
}

// MarketsResponse é a resposta dos cards de mercado
type MarketsResponse struct {
	Markets []models.MarketCard `json:"markets"`
	Count   int                 `json:"count"`
}

// TopicFeedResponse traz o tópico (objeto vazio quando desconhecido) e sua linha do tempo
type TopicFeedResponse struct {
	Topic interface{}       `json:"topic"`
	Items []models.FeedItem `json:"items"`
}

// GetCategories godoc
// @Summary Lista as categorias de mercados
// @Description Retorna "All" seguido das categorias do catálogo em ordem alfabética
// @Tags opinion
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Router /api/v1/opinion/categories [get]
func (h *OpinionHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{Categories: h.service.GetCategories()})
}

// GetFeed godoc
// @Summary Feed de inteligência anotado com mercados de opinião
// @Description Consulta o arquivo de inteligência e usa o feed de demonstração quando o arquivo não retorna itens.
// @Description A categoria é comparada sem diferenciar maiúsculas e acentos.
// @Tags opinion
// @Produce json
// @Param category query string false "Categoria (default: All)"
// @Param limit query int false "Quantidade máxima de itens" minimum(1)
// @Success 200 {object} FeedResponse
// @Failure 400 {object} map[string]interface{} "Parâmetros inválidos"
// @Router /api/v1/opinion/feed [get]
func (h *OpinionHandler) GetFeed(c *gin.Context) {
	var q FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, "Parâmetros inválidos", err)
		return
	}

	limit, ok := h.resolveLimit(c, "limit", q.Limit, h.defaultLimit, h.maxLimit)
	if !ok {
		return
	}

	items := h.service.GetFeed(c.Request.Context(), h.resolveCategory(q.Category), limit)
	c.JSON(http.StatusOK, FeedResponse{Items: items, Count: len(items)})
}

// ListMarkets godoc
// @Summary Cards de mercado com atividade recente
// @Description Um card por tópico do catálogo na categoria, com contagem e manchete mais recente da amostra do feed
// @Tags opinion
// @Produce json
// @Param category query string false "Categoria (default: All)"
// @Param sample_limit query int false "Tamanho da amostra do feed" minimum(1)
// @Success 200 {object} MarketsResponse
// @Failure 400 {object} map[string]interface{} "Parâmetros inválidos"
// @Router /api/v1/opinion/markets [get]
func (h *OpinionHandler) ListMarkets(c *gin.Context) {
	var q MarketsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, "Parâmetros inválidos", err)
		return
	}

	maxSample := h.maxLimit
	if h.sampleLimit > maxSample {
		maxSample = h.sampleLimit
	}
	sampleLimit, ok := h.resolveLimit(c, "sample_limit", q.SampleLimit, h.sampleLimit, maxSample)
	if !ok {
		return
	}

	cards := h.service.ListMarkets(c.Request.Context(), h.resolveCategory(q.Category), sampleLimit)
	c.JSON(http.StatusOK, MarketsResponse{Markets: cards, Count: len(cards)})
}

// GetTopic godoc
// @Summary Busca um tópico do catálogo
// @Tags opinion
// @Produce json
// @Param topic_id path string true "ID do tópico"
// @Success 200 {object} models.Topic
// @Failure 404 {object} map[string]string
// @Router /api/v1/opinion/topics/{topic_id} [get]
func (h *OpinionHandler) GetTopic(c *gin.Context) {
	topicID := c.Param("topic_id")

	topic, ok := h.service.GetTopic(topicID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tópico não encontrado", "topic_id": topicID})
		return
	}

	c.JSON(http.StatusOK, topic)
}

// GetTopicFeed godoc
// @Summary Linha do tempo de um tópico
// @Description Itens do feed anotados com o tópico, ignorando categoria. Tópico desconhecido retorna objeto vazio e lista vazia.
// @Tags opinion
// @Produce json
// @Param topic_id path string true "ID do tópico"
// @Param limit query int false "Quantidade máxima de itens" minimum(1)
// @Success 200 {object} TopicFeedResponse
// @Failure 400 {object} map[string]interface{} "Parâmetros inválidos"
// @Router /api/v1/opinion/topics/{topic_id}/feed [get]
func (h *OpinionHandler) GetTopicFeed(c *gin.Context) {
	var q FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, "Parâmetros inválidos", err)
		return
	}

	limit, ok := h.resolveLimit(c, "limit", q.Limit, h.defaultLimit, h.maxLimit)
	if !ok {
		return
	}

	topicID := c.Param("topic_id")
	topic, items := h.service.GetTopicFeed(c.Request.Context(), topicID, limit)

	response := TopicFeedResponse{Topic: topic, Items: items}
	if topic.TopicID == "" {
		response.Topic = gin.H{}
	}
	c.JSON(http.StatusOK, response)
}

// resolveLimit aplica o default e valida o intervalo 1..max
func (h *OpinionHandler) resolveLimit(c *gin.Context, field string, value *int, defaultValue, maxValue int) (int, bool) {
	if value == nil {
		return defaultValue, true
	}
	if err := h.validator.Var(*value, fmt.Sprintf("min=1,max=%d", maxValue)); err != nil {
		h.badRequest(c, fmt.Sprintf("Parâmetro %s inválido", field), withField(field, err))
		return 0, false
	}
	return *value, true
}

func (h *OpinionHandler) resolveCategory(category string) string {
	if category == "" {
		return models.AllCategories
	}
	return utils.ResolveCategory(category, h.service.GetCategories())
}

// fieldError carrega o nome do parâmetro junto do erro de validação
type fieldError struct {
	field string
	err   error
}

func (e fieldError) Error() string { return e.field + ": " + e.err.Error() }
func (e fieldError) Unwrap() error { return e.err }

func withField(field string, err error) error {
	return fieldError{field: field, err: err}
}

func (h *OpinionHandler) badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   message,
		"details": validationDetails(err),
	})
}

// validationDetails converte erros do validator em detalhes por campo
func validationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	field := ""
	var fe fieldError
	if errors.As(err, &fe) {
		field = fe.field
	}

	details := make([]gin.H, 0, len(verrs))
	for _, v := range verrs {
		name := field
		if name == "" {
			name = v.Field()
		}
		details = append(details, gin.H{
			"field": name,
			"rule":  v.Tag(),
			"param": v.Param(),
		})
	}
	return details
}
