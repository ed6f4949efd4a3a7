package cmd

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// renderSettings expands template expressions in an inline JSON document
// using the sprig function map, so secrets can come from the environment:
//
//	--secure-json-data '{"apiToken": "{{ env "GRAFANA_APP_TOKEN" }}"}'
func renderSettings(name, raw string) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(raw)
	if err != nil {
		return "", fmt.Errorf("template parse error in %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return "", fmt.Errorf("template execute error in %s: %w", name, err)
	}
	return buf.String(), nil
}
