package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/storage/expense"
)

// Expense represents an expense posting in the service layer.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    reconcile.Category
	Amount      decimal.Decimal
	Description string
	ExpenseDate time.Time
	CreatedAt   time.Time
}

func expenseFromStorage(row *expense.Expense) *Expense {
	return &Expense{
		ID:          row.ID,
		UserID:      row.UserID,
		Category:    row.Category,
		Amount:      row.Amount,
		Description: row.Description,
		ExpenseDate: row.ExpenseDate,
		CreatedAt:   row.CreatedAt,
	}
}
