package opinion

import "errors"

var (
	ErrFileNotFound        = errors.New("arquivo não encontrado")
	ErrInvalidCatalog      = errors.New("catálogo de tópicos inválido")
	ErrInvalidDemoFeed     = errors.New("feed de demonstração inválido")
	ErrProviderUnavailable = errors.New("provedor de inteligência não configurado")
)
