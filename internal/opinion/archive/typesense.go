// Package archive implementa provedores do arquivo de inteligência.
package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/prefeitura-rio/app-opinion-feed/internal/config"
	"github.com/prefeitura-rio/app-opinion-feed/internal/models"
	"github.com/prefeitura-rio/app-opinion-feed/internal/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
)

// MaxPerPage é o limite de documentos por página do Typesense
const MaxPerPage = 250

// maxPages evita laços longos quando o limite pedido é muito grande
const maxPages = 40

// TypesenseProvider consulta documentos de inteligência numa collection do Typesense
type TypesenseProvider struct {
	client         *typesense.Client
	sortBy         string
	thresholdField string
	timeout        time.Duration
}

// NewTypesenseProvider cria o provedor a partir da configuração do arquivo
func NewTypesenseProvider(cfg config.ArchiveConfig) *TypesenseProvider {
	return &TypesenseProvider{
		client:         typesense.NewClient(cfg),
		sortBy:         cfg.SortBy,
		thresholdField: cfg.ThresholdField,
		timeout:        cfg.Timeout,
	}
}

// QueryIntelligence busca até limit documentos a partir do deslocamento skip.
// O threshold só é aplicado quando um campo de threshold está configurado.
func (p *TypesenseProvider) QueryIntelligence(ctx context.Context, threshold, skip, limit int) ([]models.IntelligenceDocument, models.QueryMeta, error) {
	meta := models.QueryMeta{}
	docs := []models.IntelligenceDocument{}
	if limit <= 0 {
		return docs, meta, nil
	}
	if skip < 0 {
		skip = 0
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	perPage := limit
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	page := skip/perPage + 1
	drop := skip % perPage

	for len(docs) < limit && meta.Pages < maxPages {
		result, err := p.client.GetClient().Collection(p.client.Collection()).Documents().Search(ctx, p.searchParams(threshold, page, perPage))
		if err != nil {
			return nil, meta, fmt.Errorf("erro ao consultar arquivo %s (página %d): %w", p.client.Collection(), page, err)
		}
		meta.Pages++
		if result.Found != nil {
			meta.Found = *result.Found
		}

		hits := 0
		if result.Hits != nil {
			for _, hit := range *result.Hits {
				hits++
				if drop > 0 {
					drop--
					continue
				}
				if hit.Document == nil || len(docs) >= limit {
					continue
				}
				docs = append(docs, models.IntelligenceDocument(*hit.Document))
			}
		}

		if hits < perPage {
			break
		}
		page++
	}

	return docs, meta, nil
}

func (p *TypesenseProvider) searchParams(threshold, page, perPage int) *api.SearchCollectionParams {
	params := &api.SearchCollectionParams{
		Q:       pointer.String("*"),
		Page:    pointer.Int(page),
		PerPage: pointer.Int(perPage),
	}
	if p.sortBy != "" {
		params.SortBy = pointer.String(p.sortBy)
	}
	if p.thresholdField != "" && threshold > 0 {
		params.FilterBy = pointer.String(fmt.Sprintf("%s:>=%d", p.thresholdField, threshold))
	}
	return params
}

// Health verifica se o Typesense responde
func (p *TypesenseProvider) Health(ctx context.Context) error {
	return p.client.Health(ctx)
}
