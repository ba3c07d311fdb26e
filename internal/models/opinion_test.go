package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, raw string) Record {
	t.Helper()
	var r Record
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	return r
}

func TestRecordFirstSkipsEmptyValues(t *testing.T) {
	r := Record{"a": "", "b": 0.0, "c": nil, "d": "valor", "e": "outro"}

	assert.Equal(t, "valor", r.First("a", "b", "c", "d", "e"))
	assert.Nil(t, r.First("a", "b", "x"))
	assert.Equal(t, "fallback", r.StringOr("fallback", "a"))
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{"t1", "t1"},
		{42.0, "42"},
		{json.Number("1001"), "1001"},
		{7, "7"},
		{nil, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Stringify(tt.in))
	}
}

func TestTopicFromRecord(t *testing.T) {
	t.Run("topic_id numérico", func(t *testing.T) {
		topic, ok := TopicFromRecord(decodeRecord(t, `{"topic_id": 12, "market_title": "M"}`))
		require.True(t, ok)
		assert.Equal(t, "12", topic.TopicID)
		assert.Equal(t, []string{}, topic.UICategories)
	})

	t.Run("fallback para market_id e title", func(t *testing.T) {
		topic, ok := TopicFromRecord(decodeRecord(t, `{"market_id": "m-9", "title": "Legacy", "ui_categories": ["Crypto", 3]}`))
		require.True(t, ok)
		assert.Equal(t, "m-9", topic.TopicID)
		assert.Equal(t, "Legacy", topic.MarketTitle)
		assert.Equal(t, []string{"Crypto"}, topic.UICategories)
	})

	t.Run("sem identificador", func(t *testing.T) {
		_, ok := TopicFromRecord(decodeRecord(t, `{"market_title": "órfão"}`))
		assert.False(t, ok)
	})
}

func TestTopicHasCategory(t *testing.T) {
	topic := Topic{UICategories: []string{"Politics"}}

	assert.True(t, topic.HasCategory(""))
	assert.True(t, topic.HasCategory(AllCategories))
	assert.True(t, topic.HasCategory("Politics"))
	assert.False(t, topic.HasCategory("Sports"))
}

func TestIntelligenceDocumentFallbacks(t *testing.T) {
	doc := IntelligenceDocument(decodeRecord(t, `{
		"EVENT_TITLE": "Evento",
		"SOURCE": "wire",
		"EVENT_BRIEF": "breve",
		"INFORMANT": "",
		"TIME": "2024-01-01",
		"APPENDIX": {"__TIME_ARCHIVED__": 1700000000}
	}`))

	assert.Equal(t, "Evento", doc.Title())
	assert.Equal(t, "wire", doc.Source())
	assert.Equal(t, "breve", doc.Summary())
	assert.Equal(t, "", doc.Link())
	assert.Equal(t, "2024-01-01", doc.PublishedRaw())

	empty := IntelligenceDocument{}
	assert.Equal(t, "Untitled intel", empty.Title())
	assert.Equal(t, "Unknown", empty.Source())
	assert.Nil(t, empty.PublishedRaw())

	archivedOnly := IntelligenceDocument(decodeRecord(t, `{"APPENDIX": {"__TIME_ARCHIVED__": 1700000000}}`))
	assert.Equal(t, 1700000000.0, archivedOnly.PublishedRaw())
}

func TestRawAnnotationsLocations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "appendix tem prioridade",
			doc:  `{"APPENDIX": {"prediction_annotations": [{"topic_id": "a"}]}, "prediction_annotations": [{"topic_id": "b"}]}`,
			want: []string{"a"},
		},
		{
			name: "top-level",
			doc:  `{"prediction_annotations": [{"market_id": "b"}]}`,
			want: []string{"b"},
		},
		{
			name: "container com topics",
			doc:  `{"prediction_annotations": {"topics": [{"topic_id": "c"}], "markets": [{"topic_id": "x"}]}}`,
			want: []string{"c"},
		},
		{
			name: "container com markets",
			doc:  `{"APPENDIX": {"prediction_annotations": {"markets": [{"topic_id": "d"}, "lixo"]}}}`,
			want: []string{"d"},
		},
		{
			name: "sem anotações",
			doc:  `{"TITLE": "nada"}`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := IntelligenceDocument(decodeRecord(t, tt.doc))
			got := []string{}
			for _, ann := range doc.RawAnnotations() {
				got = append(got, ann.TopicID())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRawAnnotationFieldVariants(t *testing.T) {
	a := RawAnnotation(decodeRecord(t, `{"market_id": 5, "verdict": "no", "impact": "low", "note": "n"}`))
	assert.Equal(t, "5", a.TopicID())
	assert.Equal(t, "no", a.Sentiment())
	assert.Equal(t, "low", a.ImpactLevel())
	assert.Equal(t, "n", a.Reason())

	b := RawAnnotation(decodeRecord(t, `{"topic_id": "t"}`))
	assert.Nil(t, b.Sentiment())
	assert.Equal(t, "unknown", b.ImpactLevel())
	assert.Equal(t, "", b.Reason())
	assert.Equal(t, "", b.MarketURL())
}
