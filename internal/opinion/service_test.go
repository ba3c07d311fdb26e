package opinion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prefeitura-rio/app-opinion-feed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioDoc = `[{
	"UUID": "u-1",
	"TITLE": "Poll shows X ahead",
	"INFORMANT": "https://news.example/x",
	"SUMMARY": "A new poll",
	"PUB_TIME": "2024-01-01T12:00:00Z",
	"prediction_annotations": [{"topic_id": "t1", "sentiment_for_yes": "yes", "impact_level": "high"}]
}]`

const demoFeed = `[
	{
		"uuid": "demo-1",
		"title": "Demo headline",
		"published_at": "2023-05-01 10:00 UTC",
		"opinion_annotations": [
			{"topic_id": "t2", "market_title": "stale title", "sentiment_for_yes": "no", "impact_level": "low"},
			{"topic_id": "t9"}
		]
	},
	{
		"uuid": "demo-2",
		"title": "Only unknown topics",
		"opinion_annotations": [{"topic_id": "t9"}]
	},
	{
		"uuid": "demo-3",
		"title": "Politics demo",
		"source": "Wire",
		"summary": "resumo",
		"link": "https://demo.example/3",
		"opinion_annotations": [{"topic_id": "t1", "verdict": "yes"}]
	}
]`

func TestGetFeedScenario(t *testing.T) {
	provider := &fakeProvider{docs: parseDocs(t, scenarioDoc)}
	svc, _ := newTestService(t, provider, demoFeed)

	feed := svc.GetFeed(context.Background(), "", 10)

	require.Len(t, feed, 1)
	item := feed[0]
	assert.Equal(t, "u-1", item.UUID)
	assert.Equal(t, "Poll shows X ahead", item.Title)
	assert.Equal(t, "https://news.example/x", item.Source)
	assert.Equal(t, "https://news.example/x", item.Link)
	assert.Equal(t, "A new poll", item.Summary)
	assert.Equal(t, "2024-01-01 12:00 UTC", item.PublishedAt)
	require.Len(t, item.OpinionAnnotations, 1)
	assert.Equal(t, "Will X happen?", item.OpinionAnnotations[0].MarketTitle)
	assert.Equal(t, 30, provider.lastLimit, "over-fetch de limit*3")
}

func TestGetFeedCategoryMismatchFallsBackToDemo(t *testing.T) {
	provider := &fakeProvider{docs: parseDocs(t, scenarioDoc)}

	t.Run("sem demo", func(t *testing.T) {
		svc, _ := newTestService(t, provider, "")
		assert.Empty(t, svc.GetFeed(context.Background(), "Sports", 10))
	})

	t.Run("demo também filtrado", func(t *testing.T) {
		svc, _ := newTestService(t, provider, demoFeed)
		assert.Empty(t, svc.GetFeed(context.Background(), "Sports", 10))
	})
}

func TestGetFeedFallsBackWhenProviderFails(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	svc, logs := newTestService(t, provider, demoFeed)

	feed := svc.GetFeed(context.Background(), "All", 10)

	require.Len(t, feed, 2)
	assert.Equal(t, "demo-1", feed[0].UUID)
	assert.Equal(t, "demo-3", feed[1].UUID)
	assert.Equal(t, 1, logs.FilterMessage("Opinion feed query failed").Len())
}

func TestGetFeedFallsBackWhenArchiveEmpty(t *testing.T) {
	provider := &fakeProvider{docs: parseDocs(t, `[{"TITLE": "no annotations"}]`)}
	svc, _ := newTestService(t, provider, demoFeed)

	feed := svc.GetFeed(context.Background(), "", 10)
	require.Len(t, feed, 2)
	assert.Equal(t, 1, provider.calls)
}

func TestGetFeedWithoutProvider(t *testing.T) {
	svc, _ := newTestService(t, nil, demoFeed)

	feed := svc.GetFeed(context.Background(), "Crypto", 10)
	require.Len(t, feed, 1)
	assert.Equal(t, "demo-1", feed[0].UUID)
}

func TestDemoFeedRejoinsCatalog(t *testing.T) {
	svc, _ := newTestService(t, nil, demoFeed)

	feed := svc.GetFeed(context.Background(), "", 10)
	require.Len(t, feed, 2)

	first := feed[0]
	assert.Equal(t, DefaultDemoSource, first.Source)
	assert.Equal(t, "2023-05-01 10:00 UTC", first.PublishedAt)
	require.Len(t, first.OpinionAnnotations, 1, "tópico desconhecido é descartado")
	assert.Equal(t, "BTC above 100k?", first.OpinionAnnotations[0].MarketTitle)
	assert.Equal(t, []string{"Crypto", "Economy"}, first.OpinionAnnotations[0].UICategories)
	assert.Equal(t, "no", first.OpinionAnnotations[0].SentimentForYes)

	second := feed[1]
	assert.Equal(t, "Wire", second.Source)
	assert.Equal(t, "resumo", second.Summary)
	assert.Equal(t, "https://demo.example/3", second.Link)
	assert.Equal(t, "", second.PublishedAt)
}

func TestDemoFeedLimitAndErrors(t *testing.T) {
	t.Run("limite preserva ordem do arquivo", func(t *testing.T) {
		svc, _ := newTestService(t, nil, demoFeed)
		feed := svc.GetFeed(context.Background(), "", 1)
		require.Len(t, feed, 1)
		assert.Equal(t, "demo-1", feed[0].UUID)
	})

	t.Run("arquivo ausente", func(t *testing.T) {
		svc, logs := newTestService(t, nil, "")
		assert.Empty(t, svc.GetFeed(context.Background(), "", 10))
		assert.Equal(t, 1, logs.FilterMessage("Opinion demo feed missing").Len())
	})

	t.Run("arquivo inválido", func(t *testing.T) {
		svc, logs := newTestService(t, nil, `{"broken": `)
		assert.Empty(t, svc.GetFeed(context.Background(), "", 10))
		assert.Equal(t, 1, logs.FilterMessage("Failed to load demo feed").Len())
	})
}

func TestArchiveDropsUnknownTopicDocuments(t *testing.T) {
	provider := &fakeProvider{docs: parseDocs(t, `[
		{"TITLE": "only unknown", "PUB_TIME": "2024-01-02", "prediction_annotations": [{"topic_id": "t9"}]},
		{"TITLE": "mixed", "PUB_TIME": "2024-01-01", "prediction_annotations": [{"topic_id": "t9"}, {"topic_id": "t2"}]}
	]`)}
	svc, _ := newTestService(t, provider, "")

	feed := svc.GetFeed(context.Background(), "", 10)
	require.Len(t, feed, 1)
	assert.Equal(t, "mixed", feed[0].Title)
	require.Len(t, feed[0].OpinionAnnotations, 1)
	assert.Equal(t, "t2", feed[0].OpinionAnnotations[0].TopicID)
}

func TestArchiveOrderingAndLimit(t *testing.T) {
	provider := &fakeProvider{docs: parseDocs(t, `[
		{"TITLE": "no time", "prediction_annotations": [{"topic_id": "t1"}]},
		{"TITLE": "old", "PUB_TIME": "2023-06-01T08:00:00Z", "prediction_annotations": [{"topic_id": "t1"}]},
		{"TITLE": "bad time", "PUB_TIME": "yesterday", "prediction_annotations": [{"topic_id": "t2"}]},
		{"TITLE": "new", "TIME": 1704110400, "prediction_annotations": [{"topic_id": "t2"}]},
		{"TITLE": "beyond limit", "PUB_TIME": "2030-01-01", "prediction_annotations": [{"topic_id": "t2"}]}
	]`)}
	svc, _ := newTestService(t, provider, "")

	feed := svc.GetFeed(context.Background(), "", 4)

	titles := []string{}
	for _, item := range feed {
		titles = append(titles, item.Title)
	}
	assert.Equal(t, []string{"new", "old", "no time", "bad time"}, titles)
	assert.Equal(t, "", feed[2].PublishedAt)
	assert.Equal(t, "", feed[3].PublishedAt)
	assert.Equal(t, 12, provider.lastLimit)
}

func TestArchiveSummaryMarkdown(t *testing.T) {
	provider := &fakeProvider{docs: parseDocs(t, `[
		{"TITLE": "md", "SUMMARY": "**Breaking**: [vote](https://x) passed", "prediction_annotations": [{"topic_id": "t1"}]}
	]`)}
	logger, _ := observedLogger()
	catalog := LoadCatalog(writeFile(t, "topics.json", sampleTopics), logger)

	plain := NewService(catalog, provider, BuilderOptions{StripMarkdown: true}, logger)
	raw := NewService(catalog, provider, BuilderOptions{}, logger)

	assert.Equal(t, "Breaking: vote passed", plain.GetFeed(context.Background(), "", 5)[0].Summary)
	assert.Equal(t, "**Breaking**: [vote](https://x) passed", raw.GetFeed(context.Background(), "", 5)[0].Summary)
}

func TestNonPositiveLimit(t *testing.T) {
	provider := &fakeProvider{docs: parseDocs(t, scenarioDoc)}
	svc, _ := newTestService(t, provider, demoFeed)

	assert.Empty(t, svc.GetFeed(context.Background(), "", 0))
	assert.Equal(t, 0, provider.calls)
}

func TestGetTopicFeed(t *testing.T) {
	provider := &fakeProvider{docs: parseDocs(t, `[
		{"TITLE": "both", "PUB_TIME": "2024-01-01", "prediction_annotations": [{"topic_id": "t1"}, {"topic_id": "t2"}]},
		{"TITLE": "only t2", "PUB_TIME": "2024-01-02", "prediction_annotations": [{"topic_id": "t2"}]}
	]`)}
	svc, _ := newTestService(t, provider, demoFeed)

	topic, feed := svc.GetTopicFeed(context.Background(), "t1", 10)
	assert.Equal(t, "Will X happen?", topic.MarketTitle)
	require.Len(t, feed, 1)
	assert.Equal(t, "both", feed[0].Title)
	require.Len(t, feed[0].OpinionAnnotations, 1)
	assert.Equal(t, "t1", feed[0].OpinionAnnotations[0].TopicID)

	t.Run("tópico desconhecido", func(t *testing.T) {
		topic, feed := svc.GetTopicFeed(context.Background(), "t9", 10)
		assert.Equal(t, models.Topic{}, topic)
		assert.Empty(t, feed)
	})

	t.Run("fallback para demo", func(t *testing.T) {
		svc, _ := newTestService(t, &fakeProvider{err: fmt.Errorf("timeout")}, demoFeed)
		_, feed := svc.GetTopicFeed(context.Background(), "t1", 10)
		require.Len(t, feed, 1)
		assert.Equal(t, "demo-3", feed[0].UUID)
	})
}

func TestGetCategoriesAndTopic(t *testing.T) {
	svc, _ := newTestService(t, nil, "")

	assert.Equal(t, []string{"All", "Crypto", "Economy", "Politics", "Sports"}, svc.GetCategories())

	topic, ok := svc.GetTopic("t2")
	require.True(t, ok)
	assert.Equal(t, "BTC above 100k?", topic.MarketTitle)

	_, ok = svc.GetTopic("t9")
	assert.False(t, ok)
}
