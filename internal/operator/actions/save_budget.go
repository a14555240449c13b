package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
)

// SaveBudget creates or fully replaces the budget for one (user, month,
// year): the incoming allocation list replaces any existing categories, then
// the period is reconciled against the ledger. A duplicate category in the
// input rejects the whole operation before any mutation.
type SaveBudget struct {
	UserID      uuid.UUID
	Month       int
	Year        int
	Allocations []reconcile.Allocation

	// Result holds the persisted, reconciled budget after Perform succeeds.
	Result *budget.Budget
}

func (a *SaveBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := (reconcile.Period{Month: a.Month, Year: a.Year}).Validate(); err != nil {
		return &service.BudgetOperationError{Op: "save budget", Err: err}
	}

	merged, err := reconcile.MergeReplace(a.Allocations)
	if err != nil {
		return err
	}

	if err := requireUser(ctx, writer, "save budget", a.UserID); err != nil {
		return err
	}

	// Keep the existing budget's identity when replacing.
	existing, err := writer.Budget.FindByPeriodForUpdate(ctx, a.UserID, a.Month, a.Year)
	if err != nil {
		return &service.BudgetOperationError{Op: "save budget", Err: err}
	}

	b := &budget.Budget{
		UserID:     a.UserID,
		Month:      a.Month,
		Year:       a.Year,
		Categories: merged,
	}
	if existing != nil {
		b.ID = existing.ID
	}

	if err := reconcileAndSave(ctx, writer, b); err != nil {
		return err
	}
	a.Result = b
	return nil
}
