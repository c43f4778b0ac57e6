package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbot-vn/finbot/internal/ocrexpense"
)

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced without language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  \n{\"a\":1}", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanModelJSON(tt.in))
		})
	}
}

func TestBuildExpensePromptIncludesHints(t *testing.T) {
	p := buildExpensePrompt(ocrexpense.Hints{Language: "vi", ItemsExpected: true})
	assert.Contains(t, p, `"vi"`)
	assert.Contains(t, p, "expected to contain line items")

	p = buildExpensePrompt(ocrexpense.Hints{})
	assert.Contains(t, p, "only when they are clearly legible")
}
