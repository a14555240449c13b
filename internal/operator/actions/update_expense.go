package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// UpdateExpense overwrites a posting's category, amount, description and
// date. When the date moves the posting into a different month, both the
// old and the new period are reconciled.
type UpdateExpense struct {
	ID          uuid.UUID
	Category    reconcile.Category
	Amount      decimal.Decimal
	Description string
	ExpenseDate time.Time
}

func (a *UpdateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Expense.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return &service.BudgetOperationError{Op: "update expense", Err: err}
	}
	if existing == nil {
		return service.ErrExpenseNotFound
	}

	existing.Category = a.Category
	existing.Amount = a.Amount
	existing.Description = a.Description
	oldPeriod := reconcile.PeriodOf(existing.ExpenseDate)
	existing.ExpenseDate = a.ExpenseDate

	if err := writer.Expense.Update(ctx, existing); err != nil {
		return &service.BudgetOperationError{Op: "update expense", Err: err}
	}

	newPeriod := reconcile.PeriodOf(a.ExpenseDate)
	if err := reconcilePeriod(ctx, writer, existing.UserID, newPeriod.Month, newPeriod.Year); err != nil {
		return err
	}
	if oldPeriod != newPeriod {
		return reconcilePeriod(ctx, writer, existing.UserID, oldPeriod.Month, oldPeriod.Year)
	}
	return nil
}
