// Package reconcile holds the budget reconciliation engine: pure functions
// that keep a period's category allocations and totals consistent with the
// expense ledger. All derived values are recomputed from allocated amounts
// and ledger sums, never from previously stored remainders, so every
// function here is idempotent.
package reconcile

import "github.com/shopspring/decimal"

// Result is the outcome of one recompute pass.
type Result struct {
	Allocations    []Allocation
	TotalBudget    decimal.Decimal
	TotalRemaining decimal.Decimal
}

// Recompute derives remaining balances and totals for a finalized allocation
// list given the period's per-category ledger sums. Categories absent from
// spent count as zero. Remaining may go negative; overspend is representable
// and never clamped. A new slice is returned; the input is untouched.
func Recompute(allocs []Allocation, spent map[Category]decimal.Decimal) Result {
	out := make([]Allocation, len(allocs))
	totalBudget := decimal.Zero
	totalRemaining := decimal.Zero
	for i, a := range allocs {
		remaining := a.Allocated.Sub(spent[a.Category])
		out[i] = Allocation{
			Category:  a.Category,
			Allocated: a.Allocated,
			Remaining: remaining,
		}
		totalBudget = totalBudget.Add(a.Allocated)
		totalRemaining = totalRemaining.Add(remaining)
	}
	return Result{
		Allocations:    out,
		TotalBudget:    totalBudget,
		TotalRemaining: totalRemaining,
	}
}
