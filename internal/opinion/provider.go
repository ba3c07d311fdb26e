package opinion

import (
	"context"

	"github.com/prefeitura-rio/app-opinion-feed/internal/models"
)

// IntelligenceProvider é o serviço de consulta ao arquivo de inteligência.
// Só o limit e os documentos retornados são usados pelo feed.
type IntelligenceProvider interface {
	QueryIntelligence(ctx context.Context, threshold, skip, limit int) ([]models.IntelligenceDocument, models.QueryMeta, error)
}

// HealthChecker é implementado por provedores que sabem verificar conectividade
type HealthChecker interface {
	Health(ctx context.Context) error
}
