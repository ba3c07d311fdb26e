package opinion

import (
	"context"

	"github.com/prefeitura-rio/app-opinion-feed/internal/models"
	"go.opentelemetry.io/otel/attribute"
)

type topicActivity struct {
	count       int
	headline    string
	publishedAt string
}

// ListMarkets monta um card por tópico da categoria, com a contagem de itens
// recentes do feed e a manchete mais nova. A ordem segue o catálogo.
func (s *Service) ListMarkets(ctx context.Context, category string, sampleLimit int) []models.MarketCard {
	ctx, span := tracer.Start(ctx, "opinion.list_markets")
	defer span.End()

	category = normalizeCategory(category)
	feed := s.GetFeed(ctx, category, sampleLimit)

	// O feed já vem do mais novo para o mais antigo: a primeira ocorrência é a mais recente
	activity := make(map[string]*topicActivity)
	for _, item := range feed {
		for _, ann := range item.OpinionAnnotations {
			stats, ok := activity[ann.TopicID]
			if !ok {
				stats = &topicActivity{headline: item.Title, publishedAt: item.PublishedAt}
				activity[ann.TopicID] = stats
			}
			stats.count++
		}
	}

	cards := []models.MarketCard{}
	for _, topic := range s.catalog.Topics() {
		if !topic.HasCategory(category) {
			continue
		}
		cards = append(cards, newMarketCard(topic, activity[topic.TopicID]))
	}

	span.SetAttributes(attribute.Int("opinion.markets", len(cards)), attribute.Int("opinion.sample", len(feed)))
	return cards
}

func newMarketCard(topic models.Topic, stats *topicActivity) models.MarketCard {
	card := models.MarketCard{
		TopicID:          topic.TopicID,
		MarketTitle:      topic.MarketTitle,
		EventArchetype:   topic.EventArchetype,
		OpinionMarketURL: topic.OpinionMarketURL,
		UICategories:     topic.UICategories,
		Domains:          topic.Domains,
	}
	if stats != nil {
		headline, publishedAt := stats.headline, stats.publishedAt
		card.RecentCount = stats.count
		card.LatestHeadline = &headline
		card.LatestPublishedAt = &publishedAt
	}
	return card
}
