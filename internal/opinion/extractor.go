package opinion

import (
	"github.com/prefeitura-rio/app-opinion-feed/internal/models"
)

// DefaultMarketTitle é usado quando o tópico não tem título
const DefaultMarketTitle = "Opinion market"

// Filter restringe as anotações aceitas. Campos vazios não filtram.
type Filter struct {
	Category string
	TopicID  string
}

func (f Filter) allows(topicID string) bool {
	return f.TopicID == "" || f.TopicID == topicID
}

// Extractor resolve anotações brutas contra o catálogo
type Extractor struct {
	catalog *Catalog
}

// NewExtractor cria um extrator ligado ao catálogo
func NewExtractor(catalog *Catalog) *Extractor {
	return &Extractor{catalog: catalog}
}

// Extract retorna as anotações do documento que passam pelos filtros.
// Referências a tópicos desconhecidos são descartadas sem erro.
func (e *Extractor) Extract(doc models.IntelligenceDocument, filter Filter) []models.EnrichedAnnotation {
	return e.resolve(doc.RawAnnotations(), filter)
}

func (e *Extractor) resolve(raw []models.RawAnnotation, filter Filter) []models.EnrichedAnnotation {
	annotations := make([]models.EnrichedAnnotation, 0, len(raw))
	for _, ann := range raw {
		enriched, ok := e.enrich(ann, filter)
		if ok {
			annotations = append(annotations, enriched)
		}
	}
	return annotations
}

func (e *Extractor) enrich(ann models.RawAnnotation, filter Filter) (models.EnrichedAnnotation, bool) {
	topicID := ann.TopicID()
	if topicID == "" || !filter.allows(topicID) {
		return models.EnrichedAnnotation{}, false
	}

	topic, ok := e.catalog.Get(topicID)
	if !ok || !topic.HasCategory(filter.Category) {
		return models.EnrichedAnnotation{}, false
	}

	title := topic.MarketTitle
	if title == "" {
		title = DefaultMarketTitle
	}
	url := ann.MarketURL()
	if url == "" {
		url = topic.OpinionMarketURL
	}

	return models.EnrichedAnnotation{
		TopicID:          topicID,
		MarketTitle:      title,
		SentimentForYes:  ann.Sentiment(),
		ImpactLevel:      ann.ImpactLevel(),
		Reason:           ann.Reason(),
		OpinionMarketURL: url,
		UICategories:     topic.UICategories,
	}, true
}
