package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbot-vn/finbot/internal/ocrexpense"
)

func TestBuildSummary(t *testing.T) {
	r := ocrexpense.Result{
		TransactionDate: "2024-03-15",
		Amount:          ocrexpense.Amount{Value: 1234567, Currency: "VND"},
		Category:        ocrexpense.Category{Code: "FNB", Name: "Ăn uống"},
		Items: []ocrexpense.Item{
			{Name: "Cà phê sữa", Qty: 2},
			{Name: "Bánh mì"},
		},
		Meta: ocrexpense.Meta{
			NeedsReview: true,
			Warnings:    []string{ocrexpense.WarnAmountSeemsHigh},
		},
	}

	want := "📄 OCR Result:\n" +
		"📅 Date: 2024-03-15\n" +
		"💰 Amount: 1,234,567 VND\n" +
		"🏷️ Category: Ăn uống (FNB)\n" +
		"🛒 Items:\n" +
		"  - Cà phê sữa (qty: 2)\n" +
		"  - Bánh mì (qty: 1)\n" +
		"⚠️ Warnings:\n" +
		"  - amount_seems_high"
	assert.Equal(t, want, BuildSummary(r))
}

func TestBuildSummaryWithoutItemsOrWarnings(t *testing.T) {
	r := ocrexpense.Result{
		TransactionDate: "2024-03-15",
		Amount:          ocrexpense.Amount{Value: 900, Currency: "VND"},
		Category:        ocrexpense.Category{Code: "OTH", Name: "Khác"},
	}
	s := BuildSummary(r)
	assert.NotContains(t, s, "🛒 Items:")
	assert.NotContains(t, s, "⚠️ Warnings:")
	assert.Contains(t, s, "💰 Amount: 900 VND")
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{45000, "45,000"},
		{1234567, "1,234,567"},
		{10000000, "10,000,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupDigits(tt.in))
	}
}

func TestEstimateWordCount(t *testing.T) {
	r := ocrexpense.Result{
		Category: ocrexpense.Category{Name: "Hóa đơn & Tiện ích"},
		Items:    []ocrexpense.Item{{Name: "Tiền điện tháng 3"}},
		Meta:     ocrexpense.Meta{Warnings: []string{"amount_seems_high"}},
	}
	// 5 + 4 + 1
	assert.Equal(t, 10, estimateWordCount(r))
}
