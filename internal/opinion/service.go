// Package opinion monta o feed de anotações de mercados de previsão a partir do
// arquivo de inteligência, com fallback para um feed de demonstração empacotado.
//
// Nenhuma operação pública retorna erro: arquivos ausentes, dados inválidos e falhas
// do provedor são registrados no log e resultam em respostas vazias ou no feed de
// demonstração.
package opinion

import (
	"context"

	"github.com/prefeitura-rio/app-opinion-feed/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/prefeitura-rio/app-opinion-feed/internal/opinion")

// Service é o ponto de entrada do feed de opinião
type Service struct {
	catalog *Catalog
	builder *FeedBuilder
	logger  *zap.Logger
}

// NewService cria o serviço sobre um catálogo já carregado
func NewService(catalog *Catalog, provider IntelligenceProvider, opts BuilderOptions, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog: catalog,
		builder: NewFeedBuilder(provider, NewExtractor(catalog), opts, logger),
		logger:  logger,
	}
}

// Catalog expõe o catálogo somente leitura
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// GetCategories lista as categorias disponíveis, com "All" primeiro
func (s *Service) GetCategories() []string {
	return s.catalog.Categories()
}

// GetTopic busca um tópico pelo id
func (s *Service) GetTopic(topicID string) (models.Topic, bool) {
	return s.catalog.Get(topicID)
}

// GetFeed tenta o arquivo primeiro e usa a demonstração quando ele não traz nada.
// Erro do provedor e resultado vazio são tratados da mesma forma.
func (s *Service) GetFeed(ctx context.Context, category string, limit int) []models.FeedItem {
	ctx, span := tracer.Start(ctx, "opinion.get_feed")
	defer span.End()

	filter := Filter{Category: normalizeCategory(category)}
	items := s.builder.BuildFromArchive(ctx, filter, limit)
	fromDemo := len(items) == 0
	if fromDemo {
		items = s.builder.BuildFromDemo(ctx, filter, limit)
	}

	span.SetAttributes(attribute.Bool("opinion.demo_fallback", fromDemo), attribute.Int("opinion.items", len(items)))
	s.logger.Debug("Opinion feed built",
		zap.String("category", filter.Category),
		zap.Int("items", len(items)),
		zap.Bool("demo_fallback", fromDemo),
	)
	return items
}

// GetTopicFeed retorna o tópico (vazio quando desconhecido) e a linha do tempo dele.
// A categoria é ignorada.
func (s *Service) GetTopicFeed(ctx context.Context, topicID string, limit int) (models.Topic, []models.FeedItem) {
	ctx, span := tracer.Start(ctx, "opinion.get_topic_feed")
	defer span.End()

	topic, _ := s.catalog.Get(topicID)
	filter := Filter{TopicID: topicID}

	items := s.builder.BuildFromArchive(ctx, filter, limit)
	fromDemo := len(items) == 0
	if fromDemo {
		items = s.builder.BuildFromDemo(ctx, filter, limit)
	}

	span.SetAttributes(
		attribute.String("opinion.topic_id", topicID),
		attribute.Bool("opinion.demo_fallback", fromDemo),
		attribute.Int("opinion.items", len(items)),
	)
	return topic, items
}

func normalizeCategory(category string) string {
	if category == "" {
		return models.AllCategories
	}
	return category
}
