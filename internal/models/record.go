package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record é um documento JSON sem schema fixo. Os upstreams mudam nomes de campo
// entre versões, então os acessos passam por cadeias de fallback.
type Record map[string]interface{}

// First retorna o primeiro valor "preenchido" entre as chaves, na ordem dada.
// Valores vazios (nil, "", 0, false, listas e mapas vazios) são pulados.
func (r Record) First(keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := r[key]; ok && IsPresent(v) {
			return v
		}
	}
	return nil
}

// FirstString é First convertido para string, ou "" quando nada foi encontrado
func (r Record) FirstString(keys ...string) string {
	return Stringify(r.First(keys...))
}

// StringOr retorna FirstString ou o fallback
func (r Record) StringOr(fallback string, keys ...string) string {
	if s := r.FirstString(keys...); s != "" {
		return s
	}
	return fallback
}

// Sub retorna o objeto aninhado em key, ou nil
func (r Record) Sub(key string) Record {
	return AsRecord(r[key])
}

// Strings lê uma lista de strings, ignorando itens que não são texto
func (r Record) Strings(key string) []string {
	list, ok := r[key].([]interface{})
	if !ok {
		if typed, ok := r[key].([]string); ok {
			return append([]string(nil), typed...)
		}
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// AsRecord converte v em Record quando v é um objeto JSON
func AsRecord(v interface{}) Record {
	switch m := v.(type) {
	case Record:
		return m
	case map[string]interface{}:
		return Record(m)
	}
	return nil
}

// IsPresent segue a noção de "valor preenchido" dos produtores upstream
func IsPresent(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	case float32:
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case []interface{}:
		return len(val) > 0
	case map[string]interface{}:
		return len(val) > 0
	case Record:
		return len(val) > 0
	}
	return true
}

// Stringify normaliza identificadores numéricos ou textuais para string
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	}
	return fmt.Sprint(v)
}
