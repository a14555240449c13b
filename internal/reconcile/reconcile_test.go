package reconcile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// -- MergeReplace tests --

func TestMergeReplace_PreservesOrderAndSetsProvisionalRemaining(t *testing.T) {
	in := []Allocation{
		{Category: CategoryRent, Allocated: dec("1000")},
		{Category: CategoryGroceries, Allocated: dec("450.50")},
		{Category: CategoryTransport, Allocated: dec("120")},
	}

	out, err := MergeReplace(in)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, CategoryRent, out[0].Category)
	assert.Equal(t, CategoryGroceries, out[1].Category)
	assert.Equal(t, CategoryTransport, out[2].Category)
	for i := range out {
		assert.True(t, out[i].Remaining.Equal(out[i].Allocated), "provisional remaining equals allocated")
	}
}

func TestMergeReplace_DuplicateCategory(t *testing.T) {
	in := []Allocation{
		{Category: CategoryGroceries, Allocated: dec("200")},
		{Category: CategoryRent, Allocated: dec("900")},
		{Category: CategoryGroceries, Allocated: dec("300")},
	}

	out, err := MergeReplace(in)
	assert.Nil(t, out)

	var dupErr *DuplicateCategoryError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, CategoryGroceries, dupErr.Category)
}

func TestMergeReplace_Empty(t *testing.T) {
	out, err := MergeReplace(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// -- Upsert tests --

func TestUpsert_AppendsNewCategory(t *testing.T) {
	existing := []Allocation{
		{Category: CategoryRent, Allocated: dec("1000"), Remaining: dec("700")},
	}

	out := Upsert(existing, CategoryGroceries, dec("400"))
	require.Len(t, out, 2)
	assert.Equal(t, CategoryRent, out[0].Category)
	assert.Equal(t, CategoryGroceries, out[1].Category)
	assert.True(t, out[1].Allocated.Equal(dec("400")))
}

func TestUpsert_ReplacesInPlace(t *testing.T) {
	existing := []Allocation{
		{Category: CategoryRent, Allocated: dec("1000"), Remaining: dec("700")},
		{Category: CategoryGroceries, Allocated: dec("400"), Remaining: dec("400")},
	}

	out := Upsert(existing, CategoryRent, dec("1200"))
	require.Len(t, out, 2)
	assert.Equal(t, CategoryRent, out[0].Category, "position preserved")
	assert.True(t, out[0].Allocated.Equal(dec("1200")))
}

func TestUpsert_DoesNotMutateInput(t *testing.T) {
	existing := []Allocation{
		{Category: CategoryRent, Allocated: dec("1000"), Remaining: dec("1000")},
	}

	_ = Upsert(existing, CategoryRent, dec("9999"))
	assert.True(t, existing[0].Allocated.Equal(dec("1000")))
}

// -- Recompute tests --

func TestRecompute_SumConsistency(t *testing.T) {
	allocs := []Allocation{
		{Category: CategoryRent, Allocated: dec("1000")},
		{Category: CategoryGroceries, Allocated: dec("450.50")},
		{Category: CategoryTransport, Allocated: dec("120")},
	}
	spent := map[Category]decimal.Decimal{
		CategoryRent:      dec("300"),
		CategoryGroceries: dec("500.25"),
	}

	res := Recompute(allocs, spent)
	require.Len(t, res.Allocations, 3)

	assert.True(t, res.Allocations[0].Remaining.Equal(dec("700")))
	assert.True(t, res.Allocations[1].Remaining.Equal(dec("-49.75")), "overspend stays negative")
	assert.True(t, res.Allocations[2].Remaining.Equal(dec("120")), "no postings means full remaining")

	assert.True(t, res.TotalBudget.Equal(dec("1570.50")))
	assert.True(t, res.TotalRemaining.Equal(dec("770.25")))

	// Invariants: totals equal the column sums.
	sumAllocated := decimal.Zero
	sumRemaining := decimal.Zero
	for _, a := range res.Allocations {
		sumAllocated = sumAllocated.Add(a.Allocated)
		sumRemaining = sumRemaining.Add(a.Remaining)
	}
	assert.True(t, res.TotalBudget.Equal(sumAllocated))
	assert.True(t, res.TotalRemaining.Equal(sumRemaining))
}

func TestRecompute_Idempotent(t *testing.T) {
	allocs := []Allocation{
		{Category: CategoryRent, Allocated: dec("1000")},
		{Category: CategoryGroceries, Allocated: dec("250")},
	}
	spent := map[Category]decimal.Decimal{
		CategoryRent: dec("333.33"),
	}

	first := Recompute(allocs, spent)
	second := Recompute(first.Allocations, spent)

	require.Len(t, second.Allocations, len(first.Allocations))
	for i := range first.Allocations {
		assert.True(t, second.Allocations[i].Allocated.Equal(first.Allocations[i].Allocated))
		assert.True(t, second.Allocations[i].Remaining.Equal(first.Allocations[i].Remaining))
	}
	assert.True(t, second.TotalBudget.Equal(first.TotalBudget))
	assert.True(t, second.TotalRemaining.Equal(first.TotalRemaining))
}

func TestRecompute_CrossCategoryIndependence(t *testing.T) {
	allocs := []Allocation{
		{Category: CategoryRent, Allocated: dec("1000")},
		{Category: CategoryGroceries, Allocated: dec("400")},
	}

	before := Recompute(allocs, nil)
	after := Recompute(allocs, map[Category]decimal.Decimal{
		CategoryGroceries: dec("150"),
	})

	assert.True(t, before.Allocations[0].Remaining.Equal(after.Allocations[0].Remaining),
		"groceries posting must not change rent remaining")
	assert.True(t, after.Allocations[1].Remaining.Equal(dec("250")))
}

func TestRecompute_LedgerDrivenRoundTrip(t *testing.T) {
	allocs := []Allocation{{Category: CategoryRent, Allocated: dec("1000")}}

	empty := Recompute(allocs, nil)
	assert.True(t, empty.TotalRemaining.Equal(dec("1000")))

	withPosting := Recompute(allocs, map[Category]decimal.Decimal{CategoryRent: dec("300")})
	assert.True(t, withPosting.Allocations[0].Remaining.Equal(dec("700")))
	assert.True(t, withPosting.TotalRemaining.Equal(dec("700")))

	// Deleting the posting restores the original remaining.
	restored := Recompute(withPosting.Allocations, nil)
	assert.True(t, restored.Allocations[0].Remaining.Equal(dec("1000")))
	assert.True(t, restored.TotalRemaining.Equal(dec("1000")))
}

func TestRecompute_EmptyBudget(t *testing.T) {
	res := Recompute(nil, map[Category]decimal.Decimal{CategoryRent: dec("50")})
	assert.Empty(t, res.Allocations)
	assert.True(t, res.TotalBudget.Equal(decimal.Zero))
	assert.True(t, res.TotalRemaining.Equal(decimal.Zero))
}

// -- Period tests --

func TestPeriodPrevious_Rollover(t *testing.T) {
	prev := Period{Month: 1, Year: 2024}.Previous()
	assert.Equal(t, Period{Month: 12, Year: 2023}, prev)
}

func TestPeriodPrevious_MidYear(t *testing.T) {
	prev := Period{Month: 7, Year: 2024}.Previous()
	assert.Equal(t, Period{Month: 6, Year: 2024}, prev)
}

func TestPeriodOf_UTCCalendar(t *testing.T) {
	// 2024-06-01T00:30+02:00 is 2024-05-31T22:30 UTC: the posting belongs
	// to May, the month the ledger sums it under.
	offset := time.FixedZone("CEST", 2*60*60)
	p := PeriodOf(time.Date(2024, 6, 1, 0, 30, 0, 0, offset))
	assert.Equal(t, Period{Month: 5, Year: 2024}, p)

	p = PeriodOf(time.Date(2024, 5, 31, 23, 30, 0, 0, time.FixedZone("EDT", -4*60*60)))
	assert.Equal(t, Period{Month: 6, Year: 2024}, p)
}

func TestPeriodValidate(t *testing.T) {
	assert.NoError(t, Period{Month: 12, Year: 2024}.Validate())
	assert.Error(t, Period{Month: 0, Year: 2024}.Validate())
	assert.Error(t, Period{Month: 13, Year: 2024}.Validate())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("GROCERIES")
	require.NoError(t, err)
	assert.Equal(t, CategoryGroceries, c)

	_, err = ParseCategory("groceries")
	assert.Error(t, err)
}
