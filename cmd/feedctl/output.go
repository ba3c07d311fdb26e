package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeOutput serializa v em JSON indentado ou YAML.
// O YAML passa por JSON antes para manter os nomes de campo das tags json.
func writeOutput(w io.Writer, format string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar saída: %w", err)
	}

	if format != formatYAML {
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("erro ao converter saída: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("erro ao gerar yaml: %w", err)
	}
	return enc.Close()
}
