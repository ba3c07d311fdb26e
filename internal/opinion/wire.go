package opinion

import (
	"github.com/prefeitura-rio/app-opinion-feed/internal/config"
	"github.com/prefeitura-rio/app-opinion-feed/internal/opinion/archive"
	"go.uber.org/zap"
)

// NewFromConfig carrega o catálogo e conecta o provedor configurado.
// O provedor retornado é nil quando o arquivo está desabilitado.
func NewFromConfig(cfg *config.Config, logger *zap.Logger) (*Service, IntelligenceProvider) {
	catalog := LoadCatalog(cfg.TopicsPath, logger)

	var provider IntelligenceProvider
	if cfg.Archive.Enabled {
		provider = archive.NewTypesenseProvider(cfg.Archive)
		logger.Info("Opinion archive enabled",
			zap.String("server", cfg.Archive.ServerURL()),
			zap.String("collection", cfg.Archive.Collection),
		)
	} else {
		logger.Info("Opinion archive disabled, serving demo feed only")
	}

	svc := NewService(catalog, provider, BuilderOptions{
		DemoFeedPath:  cfg.DemoFeedPath,
		Overfetch:     cfg.ArchiveOverfetch,
		StripMarkdown: cfg.StripMarkdown,
	}, logger)
	return svc, provider
}
