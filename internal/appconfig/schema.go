// internal/appconfig/schema.go
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema constrains the config file before unmarshaling, so a typo'd
// key or out-of-range value fails with a schema message instead of being
// silently dropped.
var configSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"reps": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"number": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"warmup": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
		"seed": map[string]any{
			"type": "integer",
		},
		"confidence": map[string]any{
			"type":             "number",
			"minimum":          0,
			"exclusiveMinimum": true,
			"maximum":          1,
			"exclusiveMaximum": true,
		},
		"percentiles": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 100,
			},
		},
		"file1":      map[string]any{"type": "string"},
		"file2":      map[string]any{"type": "string"},
		"exportJson": map[string]any{"type": "string"},
		"noColor":    map[string]any{"type": "boolean"},
		"debug":      map[string]any{"type": "boolean"},
		"logFile":    map[string]any{"type": "string"},
	},
}

// ValidateRaw validates raw config JSON against the embedded schema.
func ValidateRaw(raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}
