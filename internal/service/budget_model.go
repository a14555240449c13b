package service

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
)

// Budget represents a budget in the service layer: one (user, month, year)
// period with its ordered category allocations and derived totals.
type Budget struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Month          int
	Year           int
	TotalBudget    decimal.Decimal
	TotalRemaining decimal.Decimal
	Categories     []reconcile.Allocation
}

// BudgetPeriod is one (month, year) pair a user holds a budget for.
type BudgetPeriod struct {
	Month int
	Year  int
}

func budgetFromStorage(row *budget.Budget) *Budget {
	return &Budget{
		ID:             row.ID,
		UserID:         row.UserID,
		Month:          row.Month,
		Year:           row.Year,
		TotalBudget:    row.TotalBudget,
		TotalRemaining: row.TotalRemaining,
		Categories:     row.Categories,
	}
}
