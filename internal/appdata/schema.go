package appdata

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var stringList = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var educationFieldsSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":              map[string]any{"type": "string", "minLength": 1},
			"name":            map[string]any{"type": "string", "minLength": 1},
			"description":     map[string]any{"type": "string"},
			"levels":          stringList,
			"specializations": stringList,
		},
		"required": []any{"id", "name"},
	},
}

var formStructureSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":    map[string]any{"type": "string"},
				"title": map[string]any{"type": "string"},
				"fields": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name":        map[string]any{"type": "string", "minLength": 1},
							"label":       map[string]any{"type": "string"},
							"type":        map[string]any{"type": "string", "enum": []any{"text", "select"}},
							"options":     stringList,
							"placeholder": map[string]any{"type": "string"},
						},
						"required": []any{"name", "label", "type"},
					},
				},
			},
			"required": []any{"id", "title", "fields"},
		},
	},
}

var quizSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":       map[string]any{"type": "string", "minLength": 1},
				"question": map[string]any{"type": "string", "minLength": 1},
				"options":  map[string]any{"type": "array", "minItems": 2, "items": map[string]any{"type": "string"}},
				"category": map[string]any{"type": "string"},
			},
			"required": []any{"id", "question", "options"},
		},
	},
}

// decodeValidated checks raw against def and then decodes it into v.
func decodeValidated(name string, def map[string]any, raw []byte, v any) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	// The compiler wants plain decoded JSON, not Go literals.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("marshal schema for %s: %w", name, err)
	}
	var defDoc any
	if err := json.Unmarshal(defBytes, &defDoc); err != nil {
		return fmt.Errorf("parse schema for %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://careerwise/%s", name)
	if err := c.AddResource(schemaURL, defDoc); err != nil {
		return fmt.Errorf("add schema for %s: %w", name, err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema for %s: %w", name, err)
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
