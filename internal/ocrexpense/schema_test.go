package ocrexpense

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundtrip pushes a map through JSON so numbers take their decoded float64
// form, the same shape the compiled schema sees in production.
func roundtrip(t *testing.T, m map[string]any) any {
	t.Helper()
	b, err := json.Marshal(m)
	require.NoError(t, err)
	var out any
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestCompiledSchemaAcceptsCanonicalObject(t *testing.T) {
	schema, err := CompileExpenseSchema()
	require.NoError(t, err)

	assert.NoError(t, schema.Validate(roundtrip(t, canonicalExpense())))
}

func TestCompiledSchemaRejectsBadObjects(t *testing.T) {
	schema, err := CompileExpenseSchema()
	require.NoError(t, err)

	bad := canonicalExpense()
	bad["extra"] = true
	assert.Error(t, schema.Validate(roundtrip(t, bad)))

	bad = canonicalExpense()
	bad["amount"] = map[string]any{"value": -1, "currency": "VND"}
	assert.Error(t, schema.Validate(roundtrip(t, bad)))

	bad = canonicalExpense()
	bad["category"] = map[string]any{"code": "XXX", "name": "x"}
	assert.Error(t, schema.Validate(roundtrip(t, bad)))
}

// The local validator and the compiled schema must agree on post-processor
// output, since the validator's verdict gates persistence.
func TestValidatorAgreesWithCompiledSchema(t *testing.T) {
	schema, err := CompileExpenseSchema()
	require.NoError(t, err)

	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	v := NewValidator()

	raws := []map[string]any{
		rawExpense("1.234.567đ", "FNB"),
		rawExpense(-42, "XXX"),
		{
			"amount":   map[string]any{"value": "abc"},
			"category": map[string]any{"code": "grab"},
			"items":    []any{map[string]any{"name": "ride", "qty": 1.0}},
		},
	}
	for _, raw := range raws {
		result, err := p.PostProcess(raw, Hints{})
		require.NoError(t, err)

		assert.True(t, v.Validate(result).Valid)
		assert.NoError(t, schema.Validate(roundtrip(t, result)))
	}
}
