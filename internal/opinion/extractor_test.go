package opinion

import (
	"testing"

	"github.com/prefeitura-rio/app-opinion-feed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *Extractor {
	logger, _ := observedLogger()
	return NewExtractor(LoadCatalog(writeFile(t, "topics.json", sampleTopics), logger))
}

func TestExtractFieldVariants(t *testing.T) {
	extractor := newTestExtractor(t)

	docs := parseDocs(t, `[
		{"prediction_annotations": [{"topic_id": "t1", "sentiment_for_yes": "yes", "impact_level": "high", "reason": "poll"}]},
		{"APPENDIX": {"prediction_annotations": [{"market_id": "t1", "verdict": "yes", "impact": "high", "note": "poll"}]}}
	]`)

	for _, doc := range docs {
		annotations := extractor.Extract(doc, Filter{})
		require.Len(t, annotations, 1)

		ann := annotations[0]
		assert.Equal(t, "t1", ann.TopicID)
		assert.Equal(t, "Will X happen?", ann.MarketTitle)
		assert.Equal(t, []string{"Politics"}, ann.UICategories)
		assert.Equal(t, "yes", ann.SentimentForYes)
		assert.Equal(t, "high", ann.ImpactLevel)
		assert.Equal(t, "poll", ann.Reason)
		assert.Equal(t, "https://opinion.example/t1", ann.OpinionMarketURL)
	}
}

func TestExtractDefaultsAndOverrides(t *testing.T) {
	extractor := newTestExtractor(t)

	doc := parseDocs(t, `[{"prediction_annotations": [
		{"topic_id": "t4"},
		{"topic_id": "t1", "opinion_market_url": "https://override.example"}
	]}]`)[0]

	annotations := extractor.Extract(doc, Filter{})
	require.Len(t, annotations, 2)

	assert.Equal(t, DefaultMarketTitle, annotations[0].MarketTitle)
	assert.Equal(t, "unknown", annotations[0].ImpactLevel)
	assert.Equal(t, "", annotations[0].Reason)
	assert.Nil(t, annotations[0].SentimentForYes)

	assert.Equal(t, "https://override.example", annotations[1].OpinionMarketURL)
}

func TestExtractFilters(t *testing.T) {
	extractor := newTestExtractor(t)

	doc := parseDocs(t, `[{"prediction_annotations": [
		{"topic_id": "t1"},
		{"topic_id": "t2"},
		{"topic_id": "t9"},
		{"topic_id": ""},
		{"market_id": 3}
	]}]`)[0]

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"sem filtro", Filter{}, []string{"t1", "t2", "3"}},
		{"All equivale a sem filtro", Filter{Category: models.AllCategories}, []string{"t1", "t2", "3"}},
		{"categoria", Filter{Category: "Crypto"}, []string{"t2"}},
		{"categoria sem tópicos", Filter{Category: "Weather"}, []string{}},
		{"tópico", Filter{TopicID: "3"}, []string{"3"}},
		{"tópico e categoria incompatíveis", Filter{TopicID: "t1", Category: "Sports"}, []string{}},
		{"tópico desconhecido", Filter{TopicID: "t9"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, ann := range extractor.Extract(doc, tt.filter) {
				got = append(got, ann.TopicID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractNoAnnotations(t *testing.T) {
	extractor := newTestExtractor(t)

	annotations := extractor.Extract(models.IntelligenceDocument{"TITLE": "sem mercados"}, Filter{})
	assert.NotNil(t, annotations)
	assert.Empty(t, annotations)
}
