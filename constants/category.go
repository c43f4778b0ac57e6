package constants

import (
	"strings"
)

// CategoryCode is the fixed expense taxonomy stored on results and transactions.
type CategoryCode string

const (
	FoodAndBeverage CategoryCode = "FNB"
	Groceries       CategoryCode = "GRO"
	Transport       CategoryCode = "TRA"
	Utilities       CategoryCode = "UTI"
	Entertainment   CategoryCode = "ENT"
	Other           CategoryCode = "OTH"
)

var allCategoryCodes = []CategoryCode{
	FoodAndBeverage,
	Groceries,
	Transport,
	Utilities,
	Entertainment,
	Other,
}

// categoryNames are the default Vietnamese display names per code.
var categoryNames = map[CategoryCode]string{
	FoodAndBeverage: "Ăn uống",
	Groceries:       "Tạp hóa",
	Transport:       "Di chuyển",
	Utilities:       "Hóa đơn & Tiện ích",
	Entertainment:   "Giải trí",
	Other:           "Khác",
}

func CategoryCodes() []string {
	result := make([]string, len(allCategoryCodes))
	for i, c := range allCategoryCodes {
		result[i] = string(c)
	}
	return result
}

// IsCategoryCode reports whether s is one of the six canonical codes.
func IsCategoryCode(s string) bool {
	for _, c := range allCategoryCodes {
		if s == string(c) {
			return true
		}
	}
	return false
}

// CategoryName returns the display name for a code, falling back to the
// "Other" label for unknown codes.
func CategoryName(code CategoryCode) string {
	if n, ok := categoryNames[code]; ok {
		return n
	}
	return categoryNames[Other]
}

// Canonicalize maps a free-form label onto a canonical code.
func Canonicalize(input string) (CategoryCode, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToUpper(strings.TrimSpace(input))
	if IsCategoryCode(normalized) {
		return CategoryCode(normalized), true
	}

	// synonyms map
	synonyms := map[string]CategoryCode{
		"FOOD":          FoodAndBeverage,
		"RESTAURANT":    FoodAndBeverage,
		"CAFE":          FoodAndBeverage,
		"GROCERY":       Groceries,
		"SUPERMARKET":   Groceries,
		"TAXI":          Transport,
		"GRAB":          Transport,
		"FUEL":          Transport,
		"ELECTRICITY":   Utilities,
		"WATER":         Utilities,
		"INTERNET":      Utilities,
		"CINEMA":        Entertainment,
		"ENTERTAINMENT": Entertainment,
	}
	if code, ok := synonyms[normalized]; ok {
		return code, true
	}

	return Other, false
}
