// Package typesense cria clientes do Typesense a partir da configuração do arquivo.
package typesense

import (
	"context"
	"fmt"
	"time"

	"github.com/prefeitura-rio/app-opinion-feed/internal/config"
	"github.com/typesense/typesense-go/v3/typesense"
)

// defaultHealthTimeout é usado quando a configuração não define timeout
const defaultHealthTimeout = 2 * time.Second

type Client struct {
	client     *typesense.Client
	collection string
	timeout    time.Duration
}

func NewClient(cfg config.ArchiveConfig) *Client {
	opts := []typesense.ClientOption{
		typesense.WithServer(cfg.ServerURL()),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, typesense.WithConnectionTimeout(cfg.Timeout))
	}

	return &Client{
		client:     typesense.NewClient(opts...),
		collection: cfg.Collection,
		timeout:    cfg.Timeout,
	}
}

// GetClient retorna o cliente do Typesense
func (c *Client) GetClient() *typesense.Client {
	return c.client
}

// Collection retorna o nome da collection configurada
func (c *Client) Collection() string {
	return c.collection
}

// Health verifica se o Typesense responde
func (c *Client) Health(ctx context.Context) error {
	timeout := c.timeout
	if timeout <= 0 || timeout > defaultHealthTimeout {
		timeout = defaultHealthTimeout
	}

	healthy, err := c.client.Health(ctx, timeout)
	if err != nil {
		return fmt.Errorf("typesense indisponível: %w", err)
	}
	if !healthy {
		return fmt.Errorf("typesense reportou estado não saudável")
	}
	return nil
}
