package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
)

// UpsertCategory adds or updates a single category allocation within one
// period's budget, creating an empty budget first when the period has none.
// The existing allocation keeps its position; a new one is appended.
type UpsertCategory struct {
	UserID    uuid.UUID
	Month     int
	Year      int
	Category  reconcile.Category
	Allocated decimal.Decimal

	// Result holds the persisted, reconciled budget after Perform succeeds.
	Result *budget.Budget
}

func (a *UpsertCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := (reconcile.Period{Month: a.Month, Year: a.Year}).Validate(); err != nil {
		return &service.BudgetOperationError{Op: "upsert category", Err: err}
	}

	if err := requireUser(ctx, writer, "upsert category", a.UserID); err != nil {
		return err
	}

	b, err := writer.Budget.FindByPeriodForUpdate(ctx, a.UserID, a.Month, a.Year)
	if err != nil {
		return &service.BudgetOperationError{Op: "upsert category", Err: err}
	}
	if b == nil {
		b = &budget.Budget{
			UserID:         a.UserID,
			Month:          a.Month,
			Year:           a.Year,
			TotalBudget:    decimal.Zero,
			TotalRemaining: decimal.Zero,
		}
	}

	b.Categories = reconcile.Upsert(b.Categories, a.Category, a.Allocated)

	if err := reconcileAndSave(ctx, writer, b); err != nil {
		return err
	}
	a.Result = b
	return nil
}
