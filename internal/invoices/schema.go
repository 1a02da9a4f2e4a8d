package invoices

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// the serialized invoice record. Every boundary that transports records
// (HTTP body, tool result, export file) must preserve this exact shape.
func BuildInvoiceJSONSchema() map[string]any {
	amountProp := map[string]any{"type": "number", "minimum": 0.0}
	lineItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string"},
			"quantity":    map[string]any{"type": "number"},
			"unit_price":  map[string]any{"type": "number"},
			"amount":      map[string]any{"type": "number"},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"file_name":        map[string]any{"type": "string", "minLength": 1},
			"invoice_number":   map[string]any{"type": "string"},
			"invoice_date":     map[string]any{"type": "string"},
			"due_date":         map[string]any{"type": "string"},
			"vendor_name":      map[string]any{"type": "string"},
			"vendor_address":   map[string]any{"type": "string"},
			"customer_name":    map[string]any{"type": "string"},
			"customer_address": map[string]any{"type": "string"},
			"subtotal":         amountProp,
			"tax_amount":       amountProp,
			"total_amount":     amountProp,
			"currency":         map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"line_items":       map[string]any{"type": "array", "items": lineItem},
			"raw_text":         map[string]any{"type": "string"},
			"confidence_score": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"file_name", "total_amount", "currency", "confidence_score"},
	}
}

// ValidateInvoiceJSON validates a serialized record against the invoice schema.
func ValidateInvoiceJSON(data []byte) error {
	b, err := json.Marshal(BuildInvoiceJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("invoice.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("invoice.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match invoice schema: %w", err)
	}
	return nil
}
