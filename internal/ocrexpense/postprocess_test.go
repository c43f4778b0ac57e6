package ocrexpense

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedProcessor pins "now" so date defaulting is deterministic.
func fixedProcessor(t *testing.T, tz string, now time.Time) *PostProcessor {
	t.Helper()
	p := NewPostProcessor(tz, testLogger())
	p.now = func() time.Time { return now }
	return p
}

func rawExpense(amountValue, categoryCode any) map[string]any {
	return map[string]any{
		"transaction_date": "2024-03-15",
		"amount":           map[string]any{"value": amountValue, "currency": "VND"},
		"category":         map[string]any{"code": categoryCode, "name": "Ăn uống"},
	}
}

func TestPostProcessShapeGate(t *testing.T) {
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Now())

	tests := []struct {
		name  string
		raw   map[string]any
		field string
	}{
		{"missing amount", map[string]any{"category": map[string]any{"code": "FNB"}}, "amount"},
		{"amount not an object", map[string]any{"amount": "45000", "category": map[string]any{"code": "FNB"}}, "amount"},
		{"amount without value", map[string]any{"amount": map[string]any{"currency": "VND"}, "category": map[string]any{"code": "FNB"}}, "amount.value"},
		{"missing category", map[string]any{"amount": map[string]any{"value": 1}}, "category"},
		{"category without code", map[string]any{"amount": map[string]any{"value": 1}, "category": map[string]any{"name": "x"}}, "category.code"},
		{"empty object", map[string]any{}, "amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.PostProcess(tt.raw, Hints{})
			require.Error(t, err)
			assert.Nil(t, result)
			var mfe *MissingFieldError
			require.ErrorAs(t, err, &mfe)
			assert.Equal(t, tt.field, mfe.Field)
		})
	}
}

func TestPostProcessAmountNormalization(t *testing.T) {
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Now())

	tests := []struct {
		name string
		in   any
		want int64
	}{
		{"vietnamese thousands separators", "1.234.567đ", 1234567},
		{"comma separators and dong sign", "45,000 ₫", 45000},
		{"plain digits string", "120000", 120000},
		{"whitespace", " 99 000 ", 99000},
		{"unparseable string", "abc", 0},
		{"negative string", "-5", 0},
		{"negative number", float64(-5), 0},
		{"fractional number truncates", 12500.75, 12500},
		{"integer", 3000, 3000},
		{"null value", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.PostProcess(rawExpense(tt.in, "FNB"), Hints{})
			require.NoError(t, err)
			amount := result["amount"].(map[string]any)
			assert.Equal(t, tt.want, amount["value"])
			assert.Equal(t, "VND", amount["currency"])
		})
	}
}

func TestPostProcessForcesVNDCurrency(t *testing.T) {
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Now())

	raw := rawExpense(50000, "FNB")
	raw["amount"].(map[string]any)["currency"] = "USD"
	result, err := p.PostProcess(raw, Hints{})
	require.NoError(t, err)
	assert.Equal(t, "VND", result["amount"].(map[string]any)["currency"])
}

func TestPostProcessDateDefaulting(t *testing.T) {
	// 18:30 UTC is already the next day in Ho Chi Minh City (UTC+7).
	now := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", now)

	tests := []struct {
		name string
		date any
	}{
		{"missing", nil},
		{"not a date", "not-a-date"},
		{"impossible date", "2024-13-45"},
		{"empty string", ""},
		{"wrong type", 20240315},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawExpense(1000, "FNB")
			if tt.date == nil {
				delete(raw, "transaction_date")
			} else {
				raw["transaction_date"] = tt.date
			}
			result, err := p.PostProcess(raw, Hints{})
			require.NoError(t, err)
			assert.Equal(t, "2024-03-16", result["transaction_date"])
			meta := result["meta"].(map[string]any)
			assert.Equal(t, true, meta["needs_review"])
			assert.Contains(t, meta["warnings"], WarnDateDefaulted)
		})
	}
}

func TestPostProcessValidDatePreserved(t *testing.T) {
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	result, err := p.PostProcess(rawExpense(1000, "FNB"), Hints{})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", result["transaction_date"])
	meta := result["meta"].(map[string]any)
	assert.Equal(t, false, meta["needs_review"])
	assert.Empty(t, meta["warnings"])
}

func TestPostProcessHintTimezone(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", now)

	raw := rawExpense(1000, "FNB")
	delete(raw, "transaction_date")

	// UTC hint keeps the UTC calendar date.
	result, err := p.PostProcess(raw, Hints{Timezone: "UTC"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", result["transaction_date"])

	// An unloadable hint falls back to the default timezone.
	result, err = p.PostProcess(raw, Hints{Timezone: "Not/AZone"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-16", result["transaction_date"])
}

func TestPostProcessHighAmountGuard(t *testing.T) {
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Now())

	result, err := p.PostProcess(rawExpense(HighAmountThreshold, "FNB"), Hints{})
	require.NoError(t, err)
	meta := result["meta"].(map[string]any)
	assert.NotContains(t, meta["warnings"], WarnAmountSeemsHigh)

	result, err = p.PostProcess(rawExpense(HighAmountThreshold+1, "FNB"), Hints{})
	require.NoError(t, err)
	meta = result["meta"].(map[string]any)
	assert.Equal(t, true, meta["needs_review"])
	assert.Contains(t, meta["warnings"], WarnAmountSeemsHigh)
}

func TestPostProcessUnknownCategory(t *testing.T) {
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Now())

	raw := rawExpense(1000, "XXX")
	raw["category"].(map[string]any)["name"] = ""
	result, err := p.PostProcess(raw, Hints{})
	require.NoError(t, err)

	category := result["category"].(map[string]any)
	assert.Equal(t, "OTH", category["code"])
	assert.NotEmpty(t, category["name"])
	assert.Equal(t, true, result["meta"].(map[string]any)["needs_review"])
}

func TestPostProcessItemCleanup(t *testing.T) {
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Now())

	raw := rawExpense(1000, "FNB")
	raw["items"] = []any{
		map[string]any{"name": "", "qty": 2},
		map[string]any{"name": "Bread", "qty": 0},
		map[string]any{"name": "  Milk  "},
		"not an item",
		map[string]any{"name": "Eggs", "qty": 3.0, "price": 12000},
	}
	result, err := p.PostProcess(raw, Hints{})
	require.NoError(t, err)

	items := result["items"].([]any)
	require.Len(t, items, 3)
	assert.Equal(t, map[string]any{"name": "Bread", "qty": 1}, items[0])
	assert.Equal(t, map[string]any{"name": "Milk", "qty": 1}, items[1])
	assert.Equal(t, map[string]any{"name": "Eggs", "qty": 3}, items[2])
}

func TestPostProcessItemsNotArray(t *testing.T) {
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Now())

	raw := rawExpense(1000, "FNB")
	raw["items"] = "two coffees"
	result, err := p.PostProcess(raw, Hints{})
	require.NoError(t, err)
	assert.Equal(t, []any{}, result["items"])
}

func TestPostProcessWarningDedupAndCap(t *testing.T) {
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Now())

	raw := rawExpense(1000, "FNB")
	raw["meta"] = map[string]any{
		"needs_review": true,
		"warnings":     []any{"w1", "w2", "w1", "w3", "w4"},
	}
	result, err := p.PostProcess(raw, Hints{})
	require.NoError(t, err)

	meta := result["meta"].(map[string]any)
	assert.Equal(t, []any{"w1", "w2", "w3"}, meta["warnings"])
}

func TestPostProcessPrunesUnknownKeys(t *testing.T) {
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Now())

	raw := rawExpense(1000, "FNB")
	raw["merchant"] = "Circle K"
	raw["confidence"] = 0.93
	result, err := p.PostProcess(raw, Hints{})
	require.NoError(t, err)

	assert.NotContains(t, result, "merchant")
	assert.NotContains(t, result, "confidence")
}

func TestPostProcessInputNotMutated(t *testing.T) {
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Now())

	raw := rawExpense("1.234.567đ", "food")
	_, err := p.PostProcess(raw, Hints{})
	require.NoError(t, err)

	assert.Equal(t, "1.234.567đ", raw["amount"].(map[string]any)["value"])
	assert.Equal(t, "food", raw["category"].(map[string]any)["code"])
}

// Any raw object that survives the shape gate must post-process into a
// schema-valid result.
func TestPostProcessOutputAlwaysValidates(t *testing.T) {
	p := fixedProcessor(t, "Asia/Ho_Chi_Minh", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	v := NewValidator()

	raws := []map[string]any{
		rawExpense("1.234.567đ", "FNB"),
		rawExpense(-42, "XXX"),
		{
			"amount":   map[string]any{"value": "abc"},
			"category": map[string]any{"code": 17},
			"items":    "garbage",
			"meta":     "also garbage",
			"extra":    true,
		},
		{
			"transaction_date": "2024-13-45",
			"amount":           map[string]any{"value": 99999999999.0},
			"category":         map[string]any{"code": "gro", "name": ""},
			"items": []any{
				map[string]any{"name": "x", "qty": -3},
				nil,
			},
		},
	}
	for _, raw := range raws {
		result, err := p.PostProcess(raw, Hints{})
		require.NoError(t, err)
		outcome := v.Validate(result)
		assert.True(t, outcome.Valid, "errors: %v", outcome.Errors)
	}
}
