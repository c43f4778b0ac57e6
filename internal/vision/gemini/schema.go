package gemini

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/finbot-vn/finbot/constants"
	"github.com/finbot-vn/finbot/internal/ocrexpense"
)

// buildResponseSchema mirrors the canonical expense schema in the provider's
// structured-output dialect so the model is constrained to valid shapes.
func buildResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"transaction_date": {
				Type:        genai.TypeString,
				Description: "Transaction date in YYYY-MM-DD format",
			},
			"amount": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"value": {
						Type:        genai.TypeInteger,
						Description: "Total amount as integer VND",
					},
					"currency": {
						Type:        genai.TypeString,
						Description: "Currency code, always 'VND'",
					},
				},
				Required: []string{"value", "currency"},
			},
			"category": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"code": {
						Type:        genai.TypeString,
						Enum:        constants.CategoryCodes(),
						Description: "Expense category code",
					},
					"name": {
						Type:        genai.TypeString,
						Description: "Category name in Vietnamese",
					},
				},
				Required: []string{"code", "name"},
			},
			"items": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {Type: genai.TypeString, Description: "Item name"},
						"qty":  {Type: genai.TypeInteger, Description: "Quantity, at least 1"},
					},
					Required: []string{"name"},
				},
			},
		},
		Required: []string{"amount", "category"},
	}
}

// buildExpensePrompt assembles the extraction instructions, folding in the
// caller's hints.
func buildExpensePrompt(hints ocrexpense.Hints) string {
	var b strings.Builder
	b.WriteString("You are an expense extraction engine for Vietnamese receipts.\n\n")
	b.WriteString("Task:\n")
	b.WriteString("- Read the attached receipt image.\n")
	b.WriteString("- Extract the transaction date, the final total paid, the expense category and the purchased items.\n")
	b.WriteString("- Amounts are Vietnamese Dong (VND), integer values, no decimals.\n")
	b.WriteString(fmt.Sprintf("- category.code must be one of: %s.\n", strings.Join(constants.CategoryCodes(), ", ")))
	b.WriteString("- If the date is unreadable, omit transaction_date entirely. Never invent a date.\n")

	if hints.Language != "" {
		b.WriteString(fmt.Sprintf("- The receipt language is likely %q.\n", hints.Language))
	}
	if hints.ItemsExpected {
		b.WriteString("- The receipt is expected to contain line items; extract them all.\n")
	} else {
		b.WriteString("- Extract line items only when they are clearly legible.\n")
	}

	b.WriteString("\nReturn ONLY a JSON object matching the response schema.\n")
	return b.String()
}
