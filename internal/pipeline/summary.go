package pipeline

import (
	"fmt"
	"strings"

	"github.com/finbot-vn/finbot/internal/ocrexpense"
)

// BuildSummary renders the human-readable conversation context for a
// canonical expense result: date, amount, category, itemized list and any
// warnings.
func BuildSummary(r ocrexpense.Result) string {
	parts := []string{
		"📄 OCR Result:",
		fmt.Sprintf("📅 Date: %s", r.TransactionDate),
		fmt.Sprintf("💰 Amount: %s %s", groupDigits(r.Amount.Value), r.Amount.Currency),
		fmt.Sprintf("🏷️ Category: %s (%s)", r.Category.Name, r.Category.Code),
	}

	if len(r.Items) > 0 {
		parts = append(parts, "🛒 Items:")
		for _, item := range r.Items {
			qty := item.Qty
			if qty < 1 {
				qty = 1
			}
			parts = append(parts, fmt.Sprintf("  - %s (qty: %d)", item.Name, qty))
		}
	}

	if len(r.Meta.Warnings) > 0 {
		parts = append(parts, "⚠️ Warnings:")
		for _, w := range r.Meta.Warnings {
			parts = append(parts, fmt.Sprintf("  - %s", w))
		}
	}

	return strings.Join(parts, "\n")
}

// groupDigits formats n with comma thousands separators.
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// estimateWordCount approximates the textual weight of a result from its
// category name, item names and warnings.
func estimateWordCount(r ocrexpense.Result) int {
	parts := []string{r.Category.Name}
	for _, item := range r.Items {
		parts = append(parts, item.Name)
	}
	parts = append(parts, r.Meta.Warnings...)
	return len(strings.Fields(strings.Join(parts, " ")))
}
