package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteExpense removes a posting and reconciles its period's budget, which
// restores the deleted amount to the matching category's remaining balance.
type DeleteExpense struct {
	ID uuid.UUID
}

func (a *DeleteExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Expense.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return &service.BudgetOperationError{Op: "delete expense", Err: err}
	}
	if existing == nil {
		return service.ErrExpenseNotFound
	}

	if _, err := writer.Expense.Delete(ctx, a.ID); err != nil {
		return &service.BudgetOperationError{Op: "delete expense", Err: err}
	}

	p := reconcile.PeriodOf(existing.ExpenseDate)
	return reconcilePeriod(ctx, writer, existing.UserID, p.Month, p.Year)
}
