package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
)

// reconcileAndSave is the single reconciliation point for every mutation
// path: it derives remaining balances and totals for b from the period's
// ledger sums and persists the result. Runs inside the action's transaction,
// so a failure leaves the prior persisted state untouched.
func reconcileAndSave(ctx context.Context, writer *storage.Writer, b *budget.Budget) error {
	spent, err := writer.Expense.SumByCategory(ctx, b.UserID, b.Month, b.Year)
	if err != nil {
		return &service.BudgetOperationError{Op: "ledger aggregation", Err: err}
	}

	res := reconcile.Recompute(b.Categories, spent)
	b.Categories = res.Allocations
	b.TotalBudget = res.TotalBudget
	b.TotalRemaining = res.TotalRemaining

	if err := writer.Budget.Save(ctx, b); err != nil {
		return &service.BudgetOperationError{Op: "persist budget", Err: err}
	}
	return nil
}

// reconcilePeriod reconciles the budget matching one (user, month, year)
// after a ledger change. A period without a budget is a normal no-op, not
// an error.
func reconcilePeriod(ctx context.Context, writer *storage.Writer, userID uuid.UUID, month, year int) error {
	b, err := writer.Budget.FindByPeriodForUpdate(ctx, userID, month, year)
	if err != nil {
		return &service.BudgetOperationError{Op: "locate budget", Err: err}
	}
	if b == nil {
		return nil
	}
	return reconcileAndSave(ctx, writer, b)
}

// requireUser fails the surrounding operation when the referenced user does
// not exist.
func requireUser(ctx context.Context, writer *storage.Writer, op string, userID uuid.UUID) error {
	exists, err := writer.User.Exists(ctx, userID)
	if err != nil {
		return &service.BudgetOperationError{Op: op, Err: err}
	}
	if !exists {
		return &service.BudgetOperationError{Op: op, Err: service.ErrUserNotFound}
	}
	return nil
}
