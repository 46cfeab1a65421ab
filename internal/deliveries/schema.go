package deliveries

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildDeliverySchema returns the JSON-Schema (draft 2020-12 subset) for a
// normalized DeliveryRecord payload. All eight keys are required; price_num is
// injected during normalization when absent, so it is required here too.
func BuildDeliverySchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"delivery":        map[string]any{"type": "string", "enum": []string{"yes", "no"}},
			"price_num":       map[string]any{"type": "number", "minimum": 0.0},
			"description":     map[string]any{"type": "string"},
			"order_id":        map[string]any{"type": "string"},
			"delivery_date":   map[string]any{"type": "string", "pattern": `^(\d{4}-\d{2}-\d{2})?$`},
			"store":           map[string]any{"type": "string"},
			"tracking_number": map[string]any{"type": "string"},
			"carrier":         map[string]any{"type": "string"},
		},
		"required": []string{
			"delivery", "price_num", "description", "order_id",
			"delivery_date", "store", "tracking_number", "carrier",
		},
	}
}

// ValidateAgainstSchema validates data against schemaMap.
func ValidateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
