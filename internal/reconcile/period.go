package reconcile

import (
	"fmt"
	"time"
)

// Period identifies one budgeting cycle: a single month of a single year.
// Together with a user ID it addresses at most one budget.
type Period struct {
	Month int
	Year  int
}

// PeriodOf returns the period containing t on the UTC calendar. Ledger
// grouping uses the same convention, so a posting near a month boundary in
// an offset timezone lands in the same period its amount is summed under.
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// Validate checks the month range.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("month %d out of range", p.Month)
	}
	return nil
}

// Previous returns the calendar month before p, rolling January back to
// December of the prior year.
func (p Period) Previous() Period {
	if p.Month == 1 {
		return Period{Month: 12, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}
