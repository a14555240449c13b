package reconcile

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Allocation is one category's planned spending ceiling within a period.
// Remaining is derived: allocated minus the period's matching ledger spend.
type Allocation struct {
	Category  Category
	Allocated decimal.Decimal
	Remaining decimal.Decimal
}

// DuplicateCategoryError reports a replacement list carrying the same
// category more than once.
type DuplicateCategoryError struct {
	Category Category
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("duplicate category %s in allocation list", e.Category)
}

// MergeReplace builds a fresh allocation list from a full replacement input.
// The input order is preserved. Remaining is provisionally set equal to
// Allocated; Recompute overwrites it immediately afterwards. No ledger
// access happens here.
func MergeReplace(in []Allocation) ([]Allocation, error) {
	seen := make(map[Category]struct{}, len(in))
	out := make([]Allocation, 0, len(in))
	for _, a := range in {
		if _, ok := seen[a.Category]; ok {
			return nil, &DuplicateCategoryError{Category: a.Category}
		}
		seen[a.Category] = struct{}{}
		out = append(out, Allocation{
			Category:  a.Category,
			Allocated: a.Allocated,
			Remaining: a.Allocated,
		})
	}
	return out, nil
}

// Upsert returns a new allocation list with the given category set to the
// given allocated amount. An existing entry is replaced in place, keeping
// its position; otherwise a new entry is appended. The input slice is never
// mutated.
func Upsert(existing []Allocation, category Category, allocated decimal.Decimal) []Allocation {
	out := make([]Allocation, len(existing), len(existing)+1)
	copy(out, existing)
	for i := range out {
		if out[i].Category == category {
			out[i].Allocated = allocated
			out[i].Remaining = allocated
			return out
		}
	}
	return append(out, Allocation{
		Category:  category,
		Allocated: allocated,
		Remaining: allocated,
	})
}
