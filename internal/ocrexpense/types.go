package ocrexpense

import (
	"encoding/json"
	"fmt"
)

// Hints is optional caller-supplied context influencing extraction and
// date defaulting. Immutable input; never modified by the pipeline.
type Hints struct {
	Language      string `json:"language,omitempty"`
	Timezone      string `json:"timezone,omitempty"` // IANA name, e.g. "Asia/Ho_Chi_Minh"
	ItemsExpected bool   `json:"items_expected,omitempty"`
	Debug         bool   `json:"debug,omitempty"`
}

// Outcome is the validator's report. Valid is true only when Errors is empty.
type Outcome struct {
	Valid  bool
	Errors []string
}

// Warning tokens attached by post-processing stages.
const (
	WarnDateDefaulted       = "date_defaulted_to_extraction"
	WarnAmountSeemsHigh     = "amount_seems_high"
	WarnPostProcessingError = "post_processing_error"
)

// HighAmountThreshold is the plausibility cutoff in VND. Amounts above it are
// flagged for review; see the cash/change guard note in postprocess.go.
const HighAmountThreshold = 10_000_000

// MaxWarnings caps meta.warnings after dedup.
const MaxWarnings = 3

// Amount is the normalized money field. Currency is always "VND".
type Amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

type Category struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Item struct {
	Name string `json:"name"`
	Qty  int    `json:"qty,omitempty"`
}

type Meta struct {
	NeedsReview bool     `json:"needs_review"`
	Warnings    []string `json:"warnings"`
}

// Result is the canonical expense record: the decoded form of a
// post-processed, schema-valid extraction.
type Result struct {
	TransactionDate string   `json:"transaction_date"`
	Amount          Amount   `json:"amount"`
	Category        Category `json:"category"`
	Items           []Item   `json:"items,omitempty"`
	Meta            Meta     `json:"meta"`
}

// DecodeResult converts a canonical map (post-processed and validated) into
// the typed form used for persistence and summaries.
func DecodeResult(m map[string]any) (Result, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return Result{}, fmt.Errorf("decode result: %w", err)
	}
	var r Result
	if err := json.Unmarshal(b, &r); err != nil {
		return Result{}, fmt.Errorf("decode result: %w", err)
	}
	return r, nil
}

// ToMap is the inverse of DecodeResult, used when replaying a stored result
// back into the conversation context.
func (r Result) ToMap() map[string]any {
	m := map[string]any{
		"transaction_date": r.TransactionDate,
		"amount": map[string]any{
			"value":    r.Amount.Value,
			"currency": r.Amount.Currency,
		},
		"category": map[string]any{
			"code": r.Category.Code,
			"name": r.Category.Name,
		},
		"meta": map[string]any{
			"needs_review": r.Meta.NeedsReview,
			"warnings":     r.Meta.Warnings,
		},
	}
	if r.Items != nil {
		items := make([]any, 0, len(r.Items))
		for _, it := range r.Items {
			items = append(items, map[string]any{"name": it.Name, "qty": it.Qty})
		}
		m["items"] = items
	}
	return m
}

// MissingFieldError is the fatal Stage-1 gate failure: a mandatory identity
// field (amount or category) is absent from the raw extraction and has no
// safe default.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("post-processing: missing required field %q", e.Field)
}
