package opinion

import (
	"encoding/json"
	"math"
	"time"
)

// PublishedLayout é o formato exibido no feed. Ordenar a string equivale a
// ordenar cronologicamente.
const PublishedLayout = "2006-01-02 15:04 UTC"

// publishedInputLayouts são tentados em ordem; o primeiro que casar vence.
// Horários sem offset são tratados como UTC.
var publishedInputLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05Z07:00",
}

// Limites do epoch em segundos para anos de quatro dígitos (0001-01-01 .. 9999-12-31 23:59:59 UTC)
const (
	minEpochSeconds = -62135596800
	maxEpochSeconds = 253402300799
)

// ParsePublished interpreta o horário de publicação de um documento.
// Aceita time.Time, epoch em segundos (UTC) ou string em um dos formatos conhecidos.
// Horários fora dos anos 1..9999 em UTC são rejeitados.
func ParsePublished(value interface{}) (time.Time, bool) {
	t, ok := parsePublished(value)
	if !ok || !inPublishedRange(t) {
		return time.Time{}, false
	}
	return t, true
}

func inPublishedRange(t time.Time) bool {
	year := t.UTC().Year()
	return year >= 1 && year <= 9999
}

func parsePublished(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case float64:
		return fromEpoch(v)
	case int:
		return fromEpoch(float64(v))
	case int64:
		return fromEpoch(float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return fromEpoch(f)
	case string:
		for _, layout := range publishedInputLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func fromEpoch(seconds float64) (time.Time, bool) {
	if math.IsNaN(seconds) || seconds < minEpochSeconds || seconds >= maxEpochSeconds+1 {
		return time.Time{}, false
	}
	sec, frac := math.Modf(seconds)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC(), true
}

// FormatPublished renderiza em UTC no formato do feed; ausente vira ""
func FormatPublished(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return t.UTC().Format(PublishedLayout)
}

// formatPublishedRaw combina parse e formatação
func formatPublishedRaw(value interface{}) string {
	return FormatPublished(ParsePublished(value))
}
