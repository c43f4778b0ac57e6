package ocrexpense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canonicalExpense() map[string]any {
	return map[string]any{
		"transaction_date": "2024-03-15",
		"amount":           map[string]any{"value": 45000, "currency": "VND"},
		"category":         map[string]any{"code": "FNB", "name": "Ăn uống"},
		"items": []any{
			map[string]any{"name": "Cà phê sữa", "qty": 2},
		},
		"meta": map[string]any{"needs_review": false, "warnings": []any{}},
	}
}

func TestValidateAcceptsCanonicalObject(t *testing.T) {
	outcome := NewValidator().Validate(canonicalExpense())
	assert.True(t, outcome.Valid)
	assert.Empty(t, outcome.Errors)
}

func TestValidateNonObjectInput(t *testing.T) {
	v := NewValidator()
	for _, data := range []any{nil, "a string", 42, []any{}} {
		outcome := v.Validate(data)
		assert.False(t, outcome.Valid)
		assert.Equal(t, []string{"data must be an object"}, outcome.Errors)
	}
}

func TestValidateMissingRequiredFields(t *testing.T) {
	outcome := NewValidator().Validate(map[string]any{})
	assert.False(t, outcome.Valid)
	assert.Equal(t, []string{
		"missing required field: transaction_date",
		"missing required field: amount",
		"missing required field: category",
	}, outcome.Errors)
}

func TestValidateTransactionDate(t *testing.T) {
	v := NewValidator()
	tests := []struct {
		name string
		date any
		want string
	}{
		{"wrong type", 20240315, "transaction_date must be a string"},
		{"wrong pattern", "15/03/2024", "transaction_date must match pattern YYYY-MM-DD"},
		{"impossible date", "2024-13-45", "transaction_date must be a valid date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := canonicalExpense()
			obj["transaction_date"] = tt.date
			outcome := v.Validate(obj)
			assert.False(t, outcome.Valid)
			assert.Equal(t, []string{tt.want}, outcome.Errors)
		})
	}
}

func TestValidateAmount(t *testing.T) {
	v := NewValidator()
	tests := []struct {
		name   string
		amount any
		want   []string
	}{
		{"not an object", "45000", []string{"amount must be an object"}},
		{"missing value", map[string]any{"currency": "VND"}, []string{"amount.value is required"}},
		{"negative value", map[string]any{"value": -1, "currency": "VND"}, []string{"amount.value must be a non-negative integer"}},
		{"fractional value", map[string]any{"value": 12.5, "currency": "VND"}, []string{"amount.value must be a non-negative integer"}},
		{"missing currency", map[string]any{"value": 1}, []string{"amount.currency is required"}},
		{"wrong currency", map[string]any{"value": 1, "currency": "USD"}, []string{`amount.currency must be "VND"`}},
		{"extra key", map[string]any{"value": 1, "currency": "VND", "cents": 0}, []string{"amount.cents is not allowed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := canonicalExpense()
			obj["amount"] = tt.amount
			outcome := v.Validate(obj)
			assert.False(t, outcome.Valid)
			assert.Equal(t, tt.want, outcome.Errors)
		})
	}
}

func TestValidateCategory(t *testing.T) {
	v := NewValidator()

	obj := canonicalExpense()
	obj["category"] = map[string]any{"code": "XXX", "name": "whatever"}
	outcome := v.Validate(obj)
	assert.False(t, outcome.Valid)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, "category.code must be one of: FNB, GRO, TRA, UTI, ENT, OTH", outcome.Errors[0])

	obj["category"] = map[string]any{"code": "FNB", "name": ""}
	outcome = v.Validate(obj)
	assert.Equal(t, []string{"category.name must be a non-empty string"}, outcome.Errors)
}

func TestValidateItems(t *testing.T) {
	v := NewValidator()

	obj := canonicalExpense()
	obj["items"] = []any{
		map[string]any{"name": "ok", "qty": 1},
		"not an object",
		map[string]any{"qty": 2},
		map[string]any{"name": "bad qty", "qty": 0},
		map[string]any{"name": "extra", "qty": 1, "price": 5000},
	}
	outcome := v.Validate(obj)
	assert.False(t, outcome.Valid)
	assert.Equal(t, []string{
		"items[1] must be an object",
		"items[2].name is required",
		"items[3].qty must be a positive integer",
		"items[4].price is not allowed",
	}, outcome.Errors)
}

func TestValidateMeta(t *testing.T) {
	v := NewValidator()

	obj := canonicalExpense()
	obj["meta"] = map[string]any{
		"needs_review": "yes",
		"warnings":     []any{"fine", 3},
		"source":       "ocr",
	}
	outcome := v.Validate(obj)
	assert.Equal(t, []string{
		"meta.needs_review must be a boolean",
		"meta.warnings[1] must be a string",
		"meta.source is not allowed",
	}, outcome.Errors)
}

func TestValidateRejectsUnknownTopLevelKeys(t *testing.T) {
	obj := canonicalExpense()
	obj["extra"] = true
	obj["another"] = 1
	outcome := NewValidator().Validate(obj)
	assert.False(t, outcome.Valid)
	assert.Equal(t, []string{
		"additional property not allowed: another",
		"additional property not allowed: extra",
	}, outcome.Errors)
}

func TestValidateAccumulatesAcrossFields(t *testing.T) {
	obj := map[string]any{
		"transaction_date": "nope",
		"amount":           map[string]any{"value": -1, "currency": "USD"},
		"category":         map[string]any{"code": "XXX", "name": ""},
		"junk":             true,
	}
	outcome := NewValidator().Validate(obj)
	assert.False(t, outcome.Valid)
	assert.Equal(t, []string{
		"transaction_date must match pattern YYYY-MM-DD",
		"amount.value must be a non-negative integer",
		`amount.currency must be "VND"`,
		"category.code must be one of: FNB, GRO, TRA, UTI, ENT, OTH",
		"category.name must be a non-empty string",
		"additional property not allowed: junk",
	}, outcome.Errors)
}

func TestValidateFloatIntegersAccepted(t *testing.T) {
	// JSON decoding yields float64 for all numbers; whole floats must pass.
	obj := canonicalExpense()
	obj["amount"] = map[string]any{"value": 45000.0, "currency": "VND"}
	obj["items"] = []any{map[string]any{"name": "x", "qty": 2.0}}
	outcome := NewValidator().Validate(obj)
	assert.True(t, outcome.Valid, "errors: %v", outcome.Errors)
}
