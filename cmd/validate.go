package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Settings documents must be JSON objects; Grafana answers anything else
// with an opaque 422, so catch it before the first POST.
const settingsSchema = `{"type": "object"}`

// parseSettings renders, schema-checks and decodes an inline JSON document.
func parseSettings(name, raw string) (map[string]interface{}, error) {
	rendered, err := renderSettings(name, raw)
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(settingsSchema),
		gojsonschema.NewStringLoader(rendered),
	)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid JSON: %w", name, err)
	}
	if !result.Valid() {
		var errs []string
		for _, e := range result.Errors() {
			errs = append(errs, e.String())
		}
		return nil, fmt.Errorf("%s: %s", name, strings.Join(errs, "; "))
	}

	var out map[string]interface{}
	if err := json.Unmarshal([]byte(rendered), &out); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
