package ocrexpense

import (
	"fmt"
	"sort"
	"strings"

	"github.com/finbot-vn/finbot/constants"
)

// Validator performs a strict structural check of a candidate object against
// the closed canonical expense schema. It holds no mutable state and never
// panics outward; every violation found is accumulated into the outcome in
// fixed field order (transaction_date, amount, category, items, meta, then
// unknown top-level keys).
//
// It is callable on any value, not just post-processor output, so it doubles
// as a reusable contract check.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

var allowedTopLevel = map[string]struct{}{
	"transaction_date": {},
	"amount":           {},
	"category":         {},
	"items":            {},
	"meta":             {},
}

var requiredTopLevel = []string{"transaction_date", "amount", "category"}

// Validate reports every schema violation in data. It does not short-circuit
// and it converts internal failures into a single error entry rather than
// panicking.
func (v *Validator) Validate(data any) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Outcome{Valid: false, Errors: []string{fmt.Sprintf("validation error: %v", r)}}
		}
	}()

	obj, ok := data.(map[string]any)
	if !ok {
		return Outcome{Valid: false, Errors: []string{"data must be an object"}}
	}

	var errs []string
	for _, field := range requiredTopLevel {
		if _, ok := obj[field]; !ok {
			errs = append(errs, fmt.Sprintf("missing required field: %s", field))
		}
	}

	if raw, ok := obj["transaction_date"]; ok {
		errs = append(errs, validateTransactionDate(raw)...)
	}
	if raw, ok := obj["amount"]; ok {
		errs = append(errs, validateAmount(raw)...)
	}
	if raw, ok := obj["category"]; ok {
		errs = append(errs, validateCategory(raw)...)
	}
	if raw, ok := obj["items"]; ok {
		errs = append(errs, validateItems(raw)...)
	}
	if raw, ok := obj["meta"]; ok {
		errs = append(errs, validateMeta(raw)...)
	}

	errs = append(errs, extraKeyErrors(obj, allowedTopLevel, "")...)

	return Outcome{Valid: len(errs) == 0, Errors: errs}
}

func validateTransactionDate(raw any) []string {
	s, ok := raw.(string)
	if !ok {
		return []string{"transaction_date must be a string"}
	}
	var errs []string
	if !reYMD.MatchString(s) {
		errs = append(errs, "transaction_date must match pattern YYYY-MM-DD")
	}
	if !isValidDate(s) {
		errs = append(errs, "transaction_date must be a valid date")
	}
	// a pattern failure subsumes the calendar check; report it alone
	if len(errs) == 2 {
		errs = errs[:1]
	}
	return errs
}

var allowedAmountKeys = map[string]struct{}{"value": {}, "currency": {}}

func validateAmount(raw any) []string {
	obj, ok := raw.(map[string]any)
	if !ok {
		return []string{"amount must be an object"}
	}
	var errs []string
	if value, ok := obj["value"]; !ok {
		errs = append(errs, "amount.value is required")
	} else if n, ok := asInteger(value); !ok || n < 0 {
		errs = append(errs, "amount.value must be a non-negative integer")
	}
	if currency, ok := obj["currency"]; !ok {
		errs = append(errs, "amount.currency is required")
	} else if currency != "VND" {
		errs = append(errs, "amount.currency must be \"VND\"")
	}
	return append(errs, extraKeyErrors(obj, allowedAmountKeys, "amount.")...)
}

var allowedCategoryKeys = map[string]struct{}{"code": {}, "name": {}}

func validateCategory(raw any) []string {
	obj, ok := raw.(map[string]any)
	if !ok {
		return []string{"category must be an object"}
	}
	var errs []string
	if code, ok := obj["code"]; !ok {
		errs = append(errs, "category.code is required")
	} else if s, ok := code.(string); !ok || !constants.IsCategoryCode(s) {
		errs = append(errs, fmt.Sprintf("category.code must be one of: %s", strings.Join(constants.CategoryCodes(), ", ")))
	}
	if name, ok := obj["name"]; !ok {
		errs = append(errs, "category.name is required")
	} else if s, ok := name.(string); !ok || len(s) < 1 {
		errs = append(errs, "category.name must be a non-empty string")
	}
	return append(errs, extraKeyErrors(obj, allowedCategoryKeys, "category.")...)
}

var allowedItemKeys = map[string]struct{}{"name": {}, "qty": {}}

func validateItems(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return []string{"items must be an array"}
	}
	var errs []string
	for i, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("items[%d] must be an object", i))
			continue
		}
		if name, ok := obj["name"]; !ok {
			errs = append(errs, fmt.Sprintf("items[%d].name is required", i))
		} else if s, ok := name.(string); !ok || len(s) < 1 {
			errs = append(errs, fmt.Sprintf("items[%d].name must be a non-empty string", i))
		}
		if qty, ok := obj["qty"]; ok {
			if n, ok := asInteger(qty); !ok || n < 1 {
				errs = append(errs, fmt.Sprintf("items[%d].qty must be a positive integer", i))
			}
		}
		errs = append(errs, extraKeyErrors(obj, allowedItemKeys, fmt.Sprintf("items[%d].", i))...)
	}
	return errs
}

var allowedMetaKeys = map[string]struct{}{"needs_review": {}, "warnings": {}}

func validateMeta(raw any) []string {
	obj, ok := raw.(map[string]any)
	if !ok {
		return []string{"meta must be an object"}
	}
	var errs []string
	if nr, ok := obj["needs_review"]; ok {
		if _, ok := nr.(bool); !ok {
			errs = append(errs, "meta.needs_review must be a boolean")
		}
	}
	if raw, ok := obj["warnings"]; ok {
		if list, ok := raw.([]any); !ok {
			errs = append(errs, "meta.warnings must be an array")
		} else {
			for i, w := range list {
				if _, ok := w.(string); !ok {
					errs = append(errs, fmt.Sprintf("meta.warnings[%d] must be a string", i))
				}
			}
		}
	}
	return append(errs, extraKeyErrors(obj, allowedMetaKeys, "meta.")...)
}

// extraKeyErrors reports keys of obj outside the allowed set, sorted so the
// report is deterministic. prefix is empty for top-level keys.
func extraKeyErrors(obj map[string]any, allowed map[string]struct{}, prefix string) []string {
	var extras []string
	for k := range obj {
		if _, ok := allowed[k]; !ok {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	errs := make([]string, 0, len(extras))
	for _, k := range extras {
		if prefix == "" {
			errs = append(errs, fmt.Sprintf("additional property not allowed: %s", k))
		} else {
			errs = append(errs, fmt.Sprintf("%s%s is not allowed", prefix, k))
		}
	}
	return errs
}

// asInteger accepts the integer representations JSON decoding can produce.
// Floats count only when they carry no fractional part.
func asInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}
