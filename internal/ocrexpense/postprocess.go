package ocrexpense

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/finbot-vn/finbot/constants"
)

// PostProcessor deterministically turns a raw extraction (arbitrary-shaped
// JSON object) into a canonical expense result. Rules run as an ordered,
// non-reversible sequence; each stage receives the previous stage's output
// and returns a new value, so no hidden state survives a call.
//
// It is pure with respect to its inputs: no I/O, no retained state, safe for
// concurrent use.
type PostProcessor struct {
	defaultTZ *time.Location
	logger    *slog.Logger
	now       func() time.Time
}

// NewPostProcessor builds a post-processor with the given default timezone
// (IANA name) for date defaulting. An unloadable zone falls back to UTC.
func NewPostProcessor(defaultTimezone string, logger *slog.Logger) *PostProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	tz, err := time.LoadLocation(defaultTimezone)
	if err != nil {
		logger.Warn("ocr.postprocess.bad_default_timezone", "timezone", defaultTimezone, "err", err)
		tz = time.UTC
	}
	return &PostProcessor{defaultTZ: tz, logger: logger, now: time.Now}
}

// PostProcess applies the rule stages to raw and returns the canonical map.
//
// The Stage-1 shape gate is the only fatal path: a raw extraction without
// amount.value or category.code has no safe substitute and returns a
// *MissingFieldError. Any unexpected panic in a later stage is recovered into
// a degraded result flagged needs_review with a sentinel warning.
func (p *PostProcessor) PostProcess(raw map[string]any, hints Hints) (result map[string]any, err error) {
	if gateErr := checkShapeGate(raw); gateErr != nil {
		return nil, gateErr
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("ocr.postprocess.recovered", "panic", r)
			result = degradedResult(result)
			err = nil
		}
	}()

	result = shallowClone(raw)
	result = normalizeAmount(result)
	result = normalizeCategory(result)
	result = p.defaultDate(result, hints)
	result = guardHighAmount(result)
	result = cleanupItems(result)
	result = finalizeMeta(result)
	return result, nil
}

// checkShapeGate requires amount (object with "value") and category (object
// with "code") to be present. These are identity fields; everything else has
// a safe correction.
func checkShapeGate(raw map[string]any) error {
	amount, ok := raw["amount"].(map[string]any)
	if !ok {
		return &MissingFieldError{Field: "amount"}
	}
	if _, ok := amount["value"]; !ok {
		return &MissingFieldError{Field: "amount.value"}
	}
	category, ok := raw["category"].(map[string]any)
	if !ok {
		return &MissingFieldError{Field: "category"}
	}
	if _, ok := category["code"]; !ok {
		return &MissingFieldError{Field: "category.code"}
	}
	return nil
}

var reAmountNoise = regexp.MustCompile(`[.,₫đ\s]`)
var reDigits = regexp.MustCompile(`^\d+$`)

// normalizeAmount coerces amount.value to a non-negative integer and forces
// the currency to VND. Strings lose thousands separators and currency
// symbols first; anything unparseable becomes 0.
func normalizeAmount(m map[string]any) map[string]any {
	out := shallowClone(m)

	var value int64
	switch v := m["amount"].(map[string]any)["value"].(type) {
	case string:
		cleaned := reAmountNoise.ReplaceAllString(v, "")
		if reDigits.MatchString(cleaned) {
			if n, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
				value = n
			}
		}
	case float64:
		value = int64(v)
	case int:
		value = int64(v)
	case int64:
		value = v
	}
	if value < 0 {
		value = 0
	}

	out["amount"] = map[string]any{"value": value, "currency": "VND"}
	return out
}

// normalizeCategory canonicalizes category.code against the fixed taxonomy
// and fills a display name when the extraction left it blank. Unknown codes
// collapse to OTH and flag the record for review.
func normalizeCategory(m map[string]any) map[string]any {
	out := shallowClone(m)
	in := m["category"].(map[string]any)

	code, _ := in["code"].(string)
	canon, known := constants.Canonicalize(code)
	name, _ := in["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		name = constants.CategoryName(canon)
	}

	out["category"] = map[string]any{"code": string(canon), "name": name}
	if !known {
		out = withReviewFlag(out, "")
	}
	return out
}

var reYMD = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// isValidDate reports whether s is YYYY-MM-DD and a real calendar date.
func isValidDate(s string) bool {
	if !reYMD.MatchString(s) {
		return false
	}
	_, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	return err == nil
}

// defaultDate replaces a missing or invalid transaction_date with "today" in
// the hint timezone (default timezone otherwise). Every substitution attaches
// the defaulting warning and forces needs_review; this is never skipped.
func (p *PostProcessor) defaultDate(m map[string]any, hints Hints) map[string]any {
	if date, ok := m["transaction_date"].(string); ok && isValidDate(date) {
		return m
	}

	tz := p.defaultTZ
	if hints.Timezone != "" {
		if loc, err := time.LoadLocation(hints.Timezone); err == nil {
			tz = loc
		} else {
			p.logger.Warn("ocr.postprocess.bad_hint_timezone", "timezone", hints.Timezone, "err", err)
		}
	}

	out := shallowClone(m)
	out["transaction_date"] = p.now().In(tz).Format("2006-01-02")
	return withReviewFlag(out, WarnDateDefaulted)
}

// guardHighAmount flags implausibly large totals for review.
//
// This is a placeholder for a cash/change cross-check against the raw receipt
// text (payment method, tendered cash, change given). The raw text is not
// available at this stage, so only the normalized amount is bounds-checked.
func guardHighAmount(m map[string]any) map[string]any {
	value, _ := m["amount"].(map[string]any)["value"].(int64)
	if value <= HighAmountThreshold {
		return m
	}
	return withReviewFlag(shallowClone(m), WarnAmountSeemsHigh)
}

// cleanupItems drops entries that are not objects or have an empty trimmed
// name, coerces qty to an integer >= 1, and keeps only {name, qty} per item.
// Relative order of surviving items is preserved.
func cleanupItems(m map[string]any) map[string]any {
	out := shallowClone(m)

	items, ok := m["items"].([]any)
	if !ok {
		out["items"] = []any{}
		return out
	}

	cleaned := make([]any, 0, len(items))
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name, _ := item["name"].(string)
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cleaned = append(cleaned, map[string]any{"name": name, "qty": coerceQty(item["qty"])})
	}
	out["items"] = cleaned
	return out
}

func coerceQty(v any) int {
	switch q := v.(type) {
	case int:
		if q >= 1 {
			return q
		}
	case int64:
		if q >= 1 {
			return int(q)
		}
	case float64:
		if q >= 1 && q == float64(int64(q)) {
			return int(q)
		}
	}
	return 1
}

// finalizeMeta guarantees meta exists with a boolean needs_review and a
// deduplicated warning list (first occurrence wins, capped at MaxWarnings).
// It also prunes any key outside the canonical top-level set.
func finalizeMeta(m map[string]any) map[string]any {
	out := make(map[string]any, 5)
	for _, k := range []string{"transaction_date", "amount", "category", "items"} {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}

	meta, _ := m["meta"].(map[string]any)
	needsReview, _ := meta["needs_review"].(bool)

	warnings := []string{}
	if raw, ok := meta["warnings"].([]any); ok {
		seen := make(map[string]struct{}, len(raw))
		for _, w := range raw {
			s, ok := w.(string)
			if !ok || strings.TrimSpace(s) == "" {
				continue
			}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			warnings = append(warnings, s)
			if len(warnings) == MaxWarnings {
				break
			}
		}
	}

	out["meta"] = map[string]any{
		"needs_review": needsReview,
		"warnings":     toAnySlice(warnings),
	}
	return out
}

// withReviewFlag returns a copy of m with needs_review forced true and, when
// token is non-empty, the warning appended. Dedup happens in finalizeMeta.
func withReviewFlag(m map[string]any, token string) map[string]any {
	out := shallowClone(m)

	meta := map[string]any{}
	if prev, ok := m["meta"].(map[string]any); ok {
		for k, v := range prev {
			meta[k] = v
		}
	}
	meta["needs_review"] = true

	warnings := []any{}
	if prev, ok := meta["warnings"].([]any); ok {
		warnings = append(warnings, prev...)
	}
	if token != "" {
		warnings = append(warnings, token)
	}
	meta["warnings"] = warnings

	out["meta"] = meta
	return out
}

// degradedResult is the recovery value for an unexpected failure in stages
// 2..6: whatever partial result existed, flagged for review with the
// sentinel warning.
func degradedResult(partial map[string]any) map[string]any {
	out := shallowClone(partial)
	if out == nil {
		out = map[string]any{}
	}
	out["meta"] = map[string]any{
		"needs_review": true,
		"warnings":     []any{WarnPostProcessingError},
	}
	return out
}

func shallowClone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
