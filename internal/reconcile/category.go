package reconcile

import "fmt"

// Category identifies a spending category. Within one budget period at most
// one allocation may exist per category.
type Category string

const (
	CategoryGroceries     Category = "GROCERIES"
	CategoryRent          Category = "RENT"
	CategoryUtilities     Category = "UTILITIES"
	CategoryTransport     Category = "TRANSPORT"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryHealthcare    Category = "HEALTHCARE"
	CategoryDiningOut     Category = "DINING_OUT"
	CategoryEducation     Category = "EDUCATION"
	CategorySavings       Category = "SAVINGS"
	CategoryOther         Category = "OTHER"
)

var allCategories = map[Category]struct{}{
	CategoryGroceries:     {},
	CategoryRent:          {},
	CategoryUtilities:     {},
	CategoryTransport:     {},
	CategoryEntertainment: {},
	CategoryHealthcare:    {},
	CategoryDiningOut:     {},
	CategoryEducation:     {},
	CategorySavings:       {},
	CategoryOther:         {},
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := allCategories[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}
