// Package docs registra o documento OpenAPI servido em /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Prefeitura do Rio de Janeiro",
            "url": "https://prefeitura.rio",
            "email": "contato@prefeitura.rio"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/opinion/categories": {
            "get": {
                "description": "Retorna \"All\" seguido das categorias do catálogo em ordem alfabética",
                "produces": ["application/json"],
                "tags": ["opinion"],
                "summary": "Lista as categorias de mercados",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CategoriesResponse"}}
                }
            }
        },
        "/api/v1/opinion/feed": {
            "get": {
                "description": "Consulta o arquivo de inteligência e usa o feed de demonstração quando o arquivo não retorna itens.",
                "produces": ["application/json"],
                "tags": ["opinion"],
                "summary": "Feed de inteligência anotado com mercados de opinião",
                "parameters": [
                    {"type": "string", "description": "Categoria (default: All)", "name": "category", "in": "query"},
                    {"minimum": 1, "type": "integer", "description": "Quantidade máxima de itens", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.FeedResponse"}},
                    "400": {"description": "Parâmetros inválidos", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/opinion/markets": {
            "get": {
                "description": "Um card por tópico do catálogo na categoria, com contagem e manchete mais recente da amostra do feed",
                "produces": ["application/json"],
                "tags": ["opinion"],
                "summary": "Cards de mercado com atividade recente",
                "parameters": [
                    {"type": "string", "description": "Categoria (default: All)", "name": "category", "in": "query"},
                    {"minimum": 1, "type": "integer", "description": "Tamanho da amostra do feed", "name": "sample_limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MarketsResponse"}},
                    "400": {"description": "Parâmetros inválidos", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/opinion/topics/{topic_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["opinion"],
                "summary": "Busca um tópico do catálogo",
                "parameters": [
                    {"type": "string", "description": "ID do tópico", "name": "topic_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Topic"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/opinion/topics/{topic_id}/feed": {
            "get": {
                "description": "Itens do feed anotados com o tópico, ignorando categoria. Tópico desconhecido retorna objeto vazio e lista vazia.",
                "produces": ["application/json"],
                "tags": ["opinion"],
                "summary": "Linha do tempo de um tópico",
                "parameters": [
                    {"type": "string", "description": "ID do tópico", "name": "topic_id", "in": "path", "required": true},
                    {"minimum": 1, "type": "integer", "description": "Quantidade máxima de itens", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TopicFeedResponse"}},
                    "400": {"description": "Parâmetros inválidos", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/liveness": {
            "get": {
                "description": "Verifica se a aplicação está viva (sem checagem de dependências externas)",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe endpoint",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/readiness": {
            "get": {
                "description": "Verifica se a aplicação está pronta para receber tráfego (arquivo de inteligência acessível ou desabilitado)",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe endpoint",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CategoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handlers.FeedResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.FeedItem"}}
            }
        },
        "handlers.MarketsResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "markets": {"type": "array", "items": {"$ref": "#/definitions/models.MarketCard"}}
            }
        },
        "handlers.TopicFeedResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.FeedItem"}},
                "topic": {}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {"type": "object", "additionalProperties": {"type": "string"}},
                "error": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "integer"}
            }
        },
        "models.Topic": {
            "type": "object",
            "properties": {
                "domains": {"type": "array", "items": {"type": "string"}},
                "event_archetype": {"type": "string"},
                "market_title": {"type": "string"},
                "opinion_market_url": {"type": "string"},
                "topic_id": {"type": "string"},
                "ui_categories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.EnrichedAnnotation": {
            "type": "object",
            "properties": {
                "impact_level": {"type": "string"},
                "market_title": {"type": "string"},
                "opinion_market_url": {"type": "string"},
                "reason": {"type": "string"},
                "sentiment_for_yes": {},
                "topic_id": {"type": "string"},
                "ui_categories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.FeedItem": {
            "type": "object",
            "properties": {
                "link": {"type": "string"},
                "opinion_annotations": {"type": "array", "items": {"$ref": "#/definitions/models.EnrichedAnnotation"}},
                "published_at": {"type": "string"},
                "source": {"type": "string"},
                "summary": {"type": "string"},
                "title": {"type": "string"},
                "uuid": {"type": "string"}
            }
        },
        "models.MarketCard": {
            "type": "object",
            "properties": {
                "domains": {"type": "array", "items": {"type": "string"}},
                "event_archetype": {"type": "string"},
                "latest_headline": {"type": "string"},
                "latest_published_at": {"type": "string"},
                "market_title": {"type": "string"},
                "opinion_market_url": {"type": "string"},
                "recent_count": {"type": "integer"},
                "topic_id": {"type": "string"},
                "ui_categories": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Opinion Feed API",
	Description:      "Feed de inteligência anotado com mercados de previsão, com fallback para feed de demonstração",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
