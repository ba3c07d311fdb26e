package opinion

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/prefeitura-rio/app-opinion-feed/internal/models"
	"go.uber.org/zap"
)

// Catalog guarda os tópicos de mercado carregados na inicialização.
// É imutável depois de construído, então pode ser compartilhado entre requests.
type Catalog struct {
	topics map[string]models.Topic
	order  []string
}

// NewCatalog monta um catálogo a partir de tópicos já resolvidos.
// Ids repetidos mantêm a posição da primeira ocorrência e o valor da última.
func NewCatalog(topics []models.Topic) *Catalog {
	c := &Catalog{
		topics: make(map[string]models.Topic, len(topics)),
		order:  make([]string, 0, len(topics)),
	}
	for _, t := range topics {
		if _, exists := c.topics[t.TopicID]; !exists {
			c.order = append(c.order, t.TopicID)
		}
		c.topics[t.TopicID] = t
	}
	return c
}

// LoadCatalog lê o catálogo do disco. Nunca falha: arquivo ausente ou inválido
// resulta em catálogo vazio e o problema fica no log.
func LoadCatalog(path string, logger *zap.Logger) *Catalog {
	topics, err := readTopics(path, logger)
	switch {
	case errors.Is(err, ErrFileNotFound):
		logger.Warn("Opinion topics file not found", zap.String("path", path))
		return NewCatalog(nil)
	case err != nil:
		logger.Error("Failed to load opinion topics", zap.String("path", path), zap.Error(err))
		return NewCatalog(nil)
	}

	logger.Info("Opinion topics loaded", zap.String("path", path), zap.Int("topics", len(topics)))
	return NewCatalog(topics)
}

func readTopics(path string, logger *zap.Logger) ([]models.Topic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("erro ao ler catálogo: %w", err)
	}

	var entries []json.RawMessage
	if err := decodeJSON(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	topics := make([]models.Topic, 0, len(entries))
	for i, raw := range entries {
		var rec models.Record
		if err := decodeJSON(raw, &rec); err != nil || rec == nil {
			return nil, fmt.Errorf("%w: entrada %d não é um objeto", ErrInvalidCatalog, i)
		}
		topic, ok := models.TopicFromRecord(rec)
		if !ok {
			logger.Warn("Skipping opinion topic without topic_id/market_id", zap.Int("index", i))
			continue
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

// decodeJSON preserva números como json.Number para que ids grandes não percam precisão
func decodeJSON(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// Get busca um tópico pelo id normalizado
func (c *Catalog) Get(topicID string) (models.Topic, bool) {
	t, ok := c.topics[topicID]
	return t, ok
}

// Topics retorna os tópicos na ordem do arquivo
func (c *Catalog) Topics() []models.Topic {
	out := make([]models.Topic, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.topics[id])
	}
	return out
}

// Len retorna o número de tópicos
func (c *Catalog) Len() int {
	return len(c.order)
}

// Categories retorna "All" seguido das demais categorias em ordem lexicográfica
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	for _, t := range c.topics {
		for _, cat := range t.UICategories {
			if cat != "" && cat != models.AllCategories {
				seen[cat] = struct{}{}
			}
		}
	}

	rest := make([]string, 0, len(seen))
	for cat := range seen {
		rest = append(rest, cat)
	}
	sort.Strings(rest)

	return append([]string{models.AllCategories}, rest...)
}
