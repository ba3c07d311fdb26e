package models

// AllCategories é a categoria universal. Nunca é gravada nos tópicos.
const AllCategories = "All"

// Campos dos documentos do arquivo de inteligência
const (
	FieldUUID        = "UUID"
	FieldPubTime     = "PUB_TIME"
	FieldTime        = "TIME"
	FieldAppendix    = "APPENDIX"
	FieldAnnotations = "prediction_annotations"

	// AppendixTimeArchived marca o momento de arquivamento dentro do APPENDIX
	AppendixTimeArchived = "__TIME_ARCHIVED__"
)

// Topic representa um mercado de previsão do catálogo
type Topic struct {
	TopicID          string   `json:"topic_id"`
	MarketTitle      string   `json:"market_title"`
	EventArchetype   string   `json:"event_archetype"`
	OpinionMarketURL string   `json:"opinion_market_url"`
	UICategories     []string `json:"ui_categories"`
	Domains          []string `json:"domains"`
}

// HasCategory indica se o tópico pertence à categoria (All casa com tudo)
func (t *Topic) HasCategory(category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	for _, c := range t.UICategories {
		if c == category {
			return true
		}
	}
	return false
}

// TopicFromRecord monta um Topic a partir de uma entrada do catálogo.
// O id vem de topic_id, ou market_id quando topic_id está ausente.
func TopicFromRecord(r Record) (Topic, bool) {
	id := r.FirstString("topic_id", "market_id")
	if id == "" {
		return Topic{}, false
	}
	return Topic{
		TopicID:          id,
		MarketTitle:      r.FirstString("market_title", "title"),
		EventArchetype:   r.FirstString("event_archetype"),
		OpinionMarketURL: r.FirstString("opinion_market_url"),
		UICategories:     r.Strings("ui_categories"),
		Domains:          r.Strings("domains"),
	}, true
}

// IntelligenceDocument é um documento do arquivo de inteligência
type IntelligenceDocument Record

func (d IntelligenceDocument) rec() Record { return Record(d) }

func (d IntelligenceDocument) UUID() string {
	return d.rec().FirstString(FieldUUID, "uuid")
}

func (d IntelligenceDocument) Title() string {
	return d.rec().StringOr("Untitled intel", "TITLE", "EVENT_TITLE", "title")
}

func (d IntelligenceDocument) Source() string {
	return d.rec().StringOr("Unknown", "INFORMANT", "SOURCE", "source")
}

func (d IntelligenceDocument) Summary() string {
	return d.rec().FirstString("SUMMARY", "EVENT_BRIEF", "EVENT_TEXT", "summary", "brief", "text")
}

func (d IntelligenceDocument) Link() string {
	return d.rec().FirstString("URL", "INFORMANT", "url", "link")
}

// Appendix retorna o APPENDIX ou um Record vazio
func (d IntelligenceDocument) Appendix() Record {
	if a := d.rec().Sub(FieldAppendix); a != nil {
		return a
	}
	return Record{}
}

// PublishedRaw retorna o valor bruto do horário de publicação:
// PUB_TIME, depois TIME, depois o marcador de arquivamento do APPENDIX.
func (d IntelligenceDocument) PublishedRaw() interface{} {
	if v := d.rec().First(FieldPubTime, FieldTime); v != nil {
		return v
	}
	return d.Appendix().First(AppendixTimeArchived)
}

// RawAnnotations localiza as anotações de mercado embutidas no documento.
// Aceita lista direta ou um container com "topics"/"markets".
func (d IntelligenceDocument) RawAnnotations() []RawAnnotation {
	raw := d.Appendix().First(FieldAnnotations)
	if raw == nil {
		raw = d.rec().First(FieldAnnotations)
	}
	if container := AsRecord(raw); container != nil {
		raw = container.First("topics", "markets")
	}
	return toAnnotations(raw)
}

func toAnnotations(raw interface{}) []RawAnnotation {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	out := make([]RawAnnotation, 0, len(list))
	for _, item := range list {
		if r := AsRecord(item); r != nil {
			out = append(out, RawAnnotation(r))
		}
	}
	return out
}

// RawAnnotation é uma anotação de mercado como veio do upstream
type RawAnnotation Record

func (a RawAnnotation) rec() Record { return Record(a) }

func (a RawAnnotation) TopicID() string {
	return a.rec().FirstString("topic_id", "market_id")
}

// Sentiment pode ser texto ou número, conforme o produtor
func (a RawAnnotation) Sentiment() interface{} {
	return a.rec().First("sentiment_for_yes", "verdict")
}

func (a RawAnnotation) ImpactLevel() string {
	return a.rec().StringOr("unknown", "impact_level", "impact")
}

func (a RawAnnotation) Reason() string {
	return a.rec().FirstString("reason", "note")
}

func (a RawAnnotation) MarketURL() string {
	return a.rec().FirstString("opinion_market_url")
}

// EnrichedAnnotation é a anotação já resolvida contra o catálogo
type EnrichedAnnotation struct {
	TopicID          string      `json:"topic_id"`
	MarketTitle      string      `json:"market_title"`
	SentimentForYes  interface{} `json:"sentiment_for_yes"`
	ImpactLevel      string      `json:"impact_level"`
	Reason           string      `json:"reason"`
	OpinionMarketURL string      `json:"opinion_market_url"`
	UICategories     []string    `json:"ui_categories"`
}

// FeedItem é um item do feed pronto para a UI
type FeedItem struct {
	UUID               string               `json:"uuid"`
	Title              string               `json:"title"`
	Source             string               `json:"source"`
	Summary            string               `json:"summary"`
	PublishedAt        string               `json:"published_at"`
	OpinionAnnotations []EnrichedAnnotation `json:"opinion_annotations"`
	Link               string               `json:"link"`
}

// MarketCard resume um mercado com a atividade recente do feed
type MarketCard struct {
	TopicID           string   `json:"topic_id"`
	MarketTitle       string   `json:"market_title"`
	EventArchetype    string   `json:"event_archetype"`
	OpinionMarketURL  string   `json:"opinion_market_url"`
	UICategories      []string `json:"ui_categories"`
	Domains           []string `json:"domains"`
	RecentCount       int      `json:"recent_count"`
	LatestHeadline    *string  `json:"latest_headline"`
	LatestPublishedAt *string  `json:"latest_published_at"`
}

// QueryMeta descreve uma consulta ao arquivo
type QueryMeta struct {
	Found int `json:"found"`
	Pages int `json:"pages"`
}
