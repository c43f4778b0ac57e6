package ocrexpense

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/finbot-vn/finbot/constants"
)

// BuildExpenseJSONSchema returns the canonical expense schema (JSON-Schema
// draft 2020-12 subset) as a generic map. It is handed to the vision provider
// as a structured-output constraint and compiled locally for contract checks.
func BuildExpenseJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"required":             []string{"transaction_date", "amount", "category"},
		"additionalProperties": false,
		"properties": map[string]any{
			"transaction_date": map[string]any{
				"type":    "string",
				"pattern": `^\d{4}-\d{2}-\d{2}$`,
			},
			"amount": map[string]any{
				"type":                 "object",
				"required":             []string{"value", "currency"},
				"additionalProperties": false,
				"properties": map[string]any{
					"value":    map[string]any{"type": "integer", "minimum": 0},
					"currency": map[string]any{"type": "string", "enum": []string{"VND"}},
				},
			},
			"category": map[string]any{
				"type":                 "object",
				"required":             []string{"code", "name"},
				"additionalProperties": false,
				"properties": map[string]any{
					"code": map[string]any{"type": "string", "enum": constants.CategoryCodes()},
					"name": map[string]any{"type": "string", "minLength": 1},
				},
			},
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"required":             []string{"name"},
					"additionalProperties": false,
					"properties": map[string]any{
						"name": map[string]any{"type": "string", "minLength": 1},
						"qty":  map[string]any{"type": "integer", "minimum": 1},
					},
				},
			},
			"meta": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"needs_review": map[string]any{"type": "boolean"},
					"warnings": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

// CompileExpenseSchema compiles the canonical schema for use with
// jsonschema.Schema.Validate.
func CompileExpenseSchema() (*jsonschema.Schema, error) {
	b, err := json.Marshal(BuildExpenseJSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("expense.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("expense.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
