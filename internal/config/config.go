// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - LOG_LEVEL: Nível de log zap (default: info)
//   - LOG_FORMAT: json ou console (default: json)
//
// ## Opinion feed
//   - OPINION_TOPICS_PATH: Catálogo de mercados (default: static/data/opinion_topics.json)
//   - OPINION_DEMO_FEED_PATH: Feed de demonstração (default: static/data/opinion_demo_feed.json)
//   - OPINION_FEED_DEFAULT_LIMIT: Limite padrão do feed (default: 50)
//   - OPINION_FEED_MAX_LIMIT: Limite máximo aceito na API (default: 200)
//   - OPINION_MARKETS_SAMPLE_LIMIT: Amostra usada nos cards de mercado (default: 200)
//   - OPINION_ARCHIVE_OVERFETCH: Fator de over-fetch da consulta ao arquivo (default: 3)
//   - OPINION_STRIP_MARKDOWN: Converte resumos do arquivo em texto puro (default: false)
//
// ## Arquivo de inteligência (Typesense)
//   - ARCHIVE_ENABLED: Consulta o arquivo antes do feed de demonstração (default: true)
//   - TYPESENSE_HOST / TYPESENSE_PORT / TYPESENSE_API_KEY / TYPESENSE_PROTOCOL
//   - ARCHIVE_COLLECTION: Collection com os documentos (default: intelligence_archive)
//   - ARCHIVE_SORT_BY: sort_by repassado ao Typesense (default: vazio)
//   - ARCHIVE_THRESHOLD_FIELD: Campo usado para o threshold (default: vazio, threshold ignorado)
//   - ARCHIVE_TIMEOUT_SECONDS: Timeout da consulta (default: 10)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita OpenTelemetry (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
//   - TRACING_SAMPLE_RATIO: Fração de traces amostrados, 0..1 (default: 1)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	LogLevel   string
	LogFormat  string

	// Opinion feed
	TopicsPath         string
	DemoFeedPath       string
	FeedDefaultLimit   int
	FeedMaxLimit       int
	MarketsSampleLimit int
	ArchiveOverfetch   int
	StripMarkdown      bool

	Archive ArchiveConfig

	// Tracing configuration
	TracingEnabled     bool
	TracingEndpoint    string
	TracingSampleRatio float64
}

// ArchiveConfig contém a configuração do provedor de inteligência arquivada
type ArchiveConfig struct {
	Enabled bool

	TypesenseHost     string
	TypesensePort     string
	TypesenseAPIKey   string
	TypesenseProtocol string

	Collection     string
	SortBy         string
	ThresholdField string
	Timeout        time.Duration
}

// ServerURL monta a URL base do Typesense
func (a ArchiveConfig) ServerURL() string {
	return fmt.Sprintf("%s://%s:%s", a.TypesenseProtocol, a.TypesenseHost, a.TypesensePort)
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "json"),

		TopicsPath:         getEnv("OPINION_TOPICS_PATH", "static/data/opinion_topics.json"),
		DemoFeedPath:       getEnv("OPINION_DEMO_FEED_PATH", "static/data/opinion_demo_feed.json"),
		FeedDefaultLimit:   getEnvInt("OPINION_FEED_DEFAULT_LIMIT", 50),
		FeedMaxLimit:       getEnvInt("OPINION_FEED_MAX_LIMIT", 200),
		MarketsSampleLimit: getEnvInt("OPINION_MARKETS_SAMPLE_LIMIT", 200),
		ArchiveOverfetch:   getEnvInt("OPINION_ARCHIVE_OVERFETCH", 3),
		StripMarkdown:      getEnvBool("OPINION_STRIP_MARKDOWN", false),

		Archive: ArchiveConfig{
			Enabled:           getEnvBool("ARCHIVE_ENABLED", true),
			TypesenseHost:     getEnv("TYPESENSE_HOST", "localhost"),
			TypesensePort:     getEnv("TYPESENSE_PORT", "8108"),
			TypesenseAPIKey:   getEnv("TYPESENSE_API_KEY", ""),
			TypesenseProtocol: getEnv("TYPESENSE_PROTOCOL", "http"),
			Collection:        getEnv("ARCHIVE_COLLECTION", "intelligence_archive"),
			SortBy:            strings.TrimSpace(getEnv("ARCHIVE_SORT_BY", "")),
			ThresholdField:    strings.TrimSpace(getEnv("ARCHIVE_THRESHOLD_FIELD", "")),
			Timeout:           time.Duration(getEnvInt("ARCHIVE_TIMEOUT_SECONDS", 10)) * time.Second,
		},

		// Tracing configuration
		TracingEnabled:     getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint:    getEnv("TRACING_ENDPOINT", "localhost:4317"),
		TracingSampleRatio: getEnvFloat("TRACING_SAMPLE_RATIO", 1),
	}

	// Valores inválidos voltam para o default em vez de abortar
	if cfg.FeedDefaultLimit < 1 {
		cfg.FeedDefaultLimit = 50
	}
	if cfg.FeedMaxLimit < cfg.FeedDefaultLimit {
		cfg.FeedMaxLimit = cfg.FeedDefaultLimit
	}
	if cfg.MarketsSampleLimit < 1 {
		cfg.MarketsSampleLimit = 200
	}
	if cfg.ArchiveOverfetch < 1 {
		cfg.ArchiveOverfetch = 3
	}
	if cfg.TracingSampleRatio < 0 || cfg.TracingSampleRatio > 1 {
		cfg.TracingSampleRatio = 1
	}
	if cfg.Archive.Timeout <= 0 {
		cfg.Archive.Timeout = 10 * time.Second
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
