package opinion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/prefeitura-rio/app-opinion-feed/internal/models"
	"github.com/prefeitura-rio/app-opinion-feed/internal/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// DefaultDemoSource é a fonte exibida para itens de demonstração sem source
const DefaultDemoSource = "Demo source"

// FeedBuilder converte documentos do arquivo ou do feed de demonstração em itens do feed
type FeedBuilder struct {
	provider      IntelligenceProvider
	extractor     *Extractor
	demoFeedPath  string
	overfetch     int
	stripMarkdown bool
	logger        *zap.Logger
}

// BuilderOptions configura o FeedBuilder
type BuilderOptions struct {
	DemoFeedPath  string
	Overfetch     int
	StripMarkdown bool
}

// NewFeedBuilder cria o builder. provider pode ser nil: nesse caso o arquivo
// nunca retorna itens e o feed cai sempre na demonstração.
func NewFeedBuilder(provider IntelligenceProvider, extractor *Extractor, opts BuilderOptions, logger *zap.Logger) *FeedBuilder {
	if opts.Overfetch < 1 {
		opts.Overfetch = 3
	}
	return &FeedBuilder{
		provider:      provider,
		extractor:     extractor,
		demoFeedPath:  opts.DemoFeedPath,
		overfetch:     opts.Overfetch,
		stripMarkdown: opts.StripMarkdown,
		logger:        logger,
	}
}

// BuildFromArchive consulta o provedor e monta até limit itens, do mais recente
// para o mais antigo. Falhas do provedor resultam em lista vazia.
func (b *FeedBuilder) BuildFromArchive(ctx context.Context, filter Filter, limit int) []models.FeedItem {
	ctx, span := tracer.Start(ctx, "opinion.build_from_archive")
	defer span.End()
	span.SetAttributes(
		attribute.String("opinion.category", filter.Category),
		attribute.String("opinion.topic_id", filter.TopicID),
		attribute.Int("opinion.limit", limit),
	)

	items := []models.FeedItem{}
	if limit <= 0 {
		return items
	}

	fetch := limit * b.overfetch
	if limit > math.MaxInt/b.overfetch {
		fetch = math.MaxInt
	}
	docs, err := b.queryArchive(ctx, fetch)
	if errors.Is(err, ErrProviderUnavailable) {
		span.SetAttributes(attribute.Bool("opinion.archive_disabled", true))
		b.logger.Debug("Opinion archive disabled, skipping query")
		return items
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "archive query failed")
		b.logger.Error("Opinion feed query failed", zap.Int("limit", fetch), zap.Error(err))
		return items
	}

	for _, doc := range docs {
		if item, ok := b.fromDocument(doc, filter); ok {
			items = append(items, item)
		}
		if len(items) >= limit {
			break
		}
	}

	// Timestamps ausentes viram "" e ficam no fim
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt > items[j].PublishedAt
	})

	span.SetAttributes(
		attribute.Int("opinion.documents", len(docs)),
		attribute.Int("opinion.items", len(items)),
	)
	return items
}

func (b *FeedBuilder) queryArchive(ctx context.Context, limit int) (docs []models.IntelligenceDocument, err error) {
	if b.provider == nil {
		return nil, ErrProviderUnavailable
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provedor entrou em pânico: %v", r)
		}
	}()
	docs, _, err = b.provider.QueryIntelligence(ctx, 0, 0, limit)
	return docs, err
}

func (b *FeedBuilder) fromDocument(doc models.IntelligenceDocument, filter Filter) (models.FeedItem, bool) {
	annotations := b.extractor.Extract(doc, filter)
	if len(annotations) == 0 {
		return models.FeedItem{}, false
	}

	summary := doc.Summary()
	if b.stripMarkdown {
		summary = utils.StripMarkdown(summary)
	}

	return models.FeedItem{
		UUID:               doc.UUID(),
		Title:              doc.Title(),
		Source:             doc.Source(),
		Summary:            summary,
		PublishedAt:        formatPublishedRaw(doc.PublishedRaw()),
		OpinionAnnotations: annotations,
		Link:               doc.Link(),
	}, true
}

// BuildFromDemo lê o feed de demonstração e refaz as anotações contra o catálogo
// atual. A ordem do arquivo é mantida.
func (b *FeedBuilder) BuildFromDemo(ctx context.Context, filter Filter, limit int) []models.FeedItem {
	_, span := tracer.Start(ctx, "opinion.build_from_demo")
	defer span.End()

	items := []models.FeedItem{}
	if limit <= 0 {
		return items
	}

	entries, err := readDemoFeed(b.demoFeedPath)
	switch {
	case errors.Is(err, ErrFileNotFound):
		b.logger.Warn("Opinion demo feed missing", zap.String("path", b.demoFeedPath))
		return items
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "demo feed load failed")
		b.logger.Error("Failed to load demo feed", zap.String("path", b.demoFeedPath), zap.Error(err))
		return items
	}

	for _, entry := range entries {
		raw := models.IntelligenceDocument{models.FieldAnnotations: entry["opinion_annotations"]}
		annotations := b.extractor.resolve(raw.RawAnnotations(), filter)
		if len(annotations) == 0 {
			continue
		}
		items = append(items, models.FeedItem{
			UUID:               entry.FirstString("uuid"),
			Title:              entry.FirstString("title"),
			Source:             entry.StringOr(DefaultDemoSource, "source"),
			Summary:            entry.FirstString("summary"),
			PublishedAt:        entry.FirstString("published_at"),
			OpinionAnnotations: annotations,
			Link:               entry.FirstString("link"),
		})
		if len(items) >= limit {
			break
		}
	}

	span.SetAttributes(attribute.Int("opinion.items", len(items)))
	return items
}

func readDemoFeed(path string) ([]models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("erro ao ler feed de demonstração: %w", err)
	}

	var entries []models.Record
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDemoFeed, err)
	}
	return entries, nil
}
