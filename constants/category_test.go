package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in    string
		want  CategoryCode
		known bool
	}{
		{"FNB", FoodAndBeverage, true},
		{"fnb", FoodAndBeverage, true},
		{" gro ", Groceries, true},
		{"grab", Transport, true},
		{"SUPERMARKET", Groceries, true},
		{"electricity", Utilities, true},
		{"", Other, false},
		{"XXX", Other, false},
		{"mystery", Other, false},
	}
	for _, tt := range tests {
		got, known := Canonicalize(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.known, known, "input %q", tt.in)
	}
}

func TestCategoryNameFallsBackToOther(t *testing.T) {
	assert.Equal(t, "Khác", CategoryName("BOGUS"))
	assert.Equal(t, "Ăn uống", CategoryName(FoodAndBeverage))
}

func TestContentTypeForExt(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentTypeForExt(".pdf"))
	assert.Equal(t, "image/jpeg", ContentTypeForExt(".JPG"))
	assert.Equal(t, "image/jpeg", ContentTypeForExt("jpeg"))
	assert.Equal(t, "image/webp", ContentTypeForExt(".webp"))
	assert.Equal(t, "", ContentTypeForExt(".txt"))
}

func TestMapContentTypeToFormat(t *testing.T) {
	assert.Equal(t, PDF, MapContentTypeToFormat("application/pdf"))
	assert.Equal(t, IMAGE, MapContentTypeToFormat("image/png"))
	assert.Equal(t, "", MapContentTypeToFormat("text/plain"))
}
