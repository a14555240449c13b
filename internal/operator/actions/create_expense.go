package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/expense"
)

// CreateExpense records a new expense posting and reconciles the matching
// budget, if the posting's period has one.
type CreateExpense struct {
	UserID      uuid.UUID
	Category    reconcile.Category
	Amount      decimal.Decimal
	Description string
	ExpenseDate time.Time

	// ResultID holds the new posting's id after Perform succeeds.
	ResultID uuid.UUID
}

func (a *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := requireUser(ctx, writer, "create expense", a.UserID); err != nil {
		return err
	}

	id, err := writer.Expense.Insert(ctx, &expense.ExpenseCreate{
		UserID:      a.UserID,
		Category:    a.Category,
		Amount:      a.Amount,
		Description: a.Description,
		ExpenseDate: a.ExpenseDate,
	})
	if err != nil {
		return &service.BudgetOperationError{Op: "create expense", Err: err}
	}
	a.ResultID = id

	p := reconcile.PeriodOf(a.ExpenseDate)
	return reconcilePeriod(ctx, writer, a.UserID, p.Month, p.Year)
}
