package opinion

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/prefeitura-rio/app-opinion-feed/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const sampleTopics = `[
	{"topic_id": "t1", "market_title": "Will X happen?", "ui_categories": ["Politics"], "opinion_market_url": "https://opinion.example/t1", "event_archetype": "binary", "domains": ["gov"]},
	{"topic_id": "t2", "market_title": "BTC above 100k?", "ui_categories": ["Crypto", "Economy"]},
	{"market_id": 3, "title": "Legacy market", "ui_categories": ["Sports"]},
	{"topic_id": "t4", "ui_categories": ["Politics"]}
]`

// fakeProvider simula o arquivo de inteligência
type fakeProvider struct {
	docs      []models.IntelligenceDocument
	err       error
	calls     int
	lastLimit int
}

func (f *fakeProvider) QueryIntelligence(_ context.Context, _, _, limit int) ([]models.IntelligenceDocument, models.QueryMeta, error) {
	f.calls++
	f.lastLimit = limit
	if f.err != nil {
		return nil, models.QueryMeta{}, f.err
	}
	return f.docs, models.QueryMeta{Found: len(f.docs), Pages: 1}, nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func parseDocs(t *testing.T, raw string) []models.IntelligenceDocument {
	t.Helper()
	var docs []models.IntelligenceDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &docs))
	return docs
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func newTestService(t *testing.T, provider IntelligenceProvider, demoFeed string) (*Service, *observer.ObservedLogs) {
	t.Helper()
	logger, logs := observedLogger()
	catalog := LoadCatalog(writeFile(t, "topics.json", sampleTopics), logger)

	demoPath := filepath.Join(t.TempDir(), "missing_demo.json")
	if demoFeed != "" {
		demoPath = writeFile(t, "demo.json", demoFeed)
	}

	return NewService(catalog, provider, BuilderOptions{DemoFeedPath: demoPath}, logger), logs
}
