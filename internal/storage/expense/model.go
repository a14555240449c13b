package expense

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
)

// Expense represents one expense posting: a dated, categorized amount
// belonging to a user.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    reconcile.Category
	Amount      decimal.Decimal
	Description string
	ExpenseDate time.Time
	CreatedAt   time.Time
}

// ExpenseCreate is the input for recording a new expense posting.
type ExpenseCreate struct {
	UserID      uuid.UUID
	Category    reconcile.Category
	Amount      decimal.Decimal
	Description string
	ExpenseDate time.Time
}

// ExpenseFilter narrows List results. Nil month/year means all periods.
type ExpenseFilter struct {
	Month *int
	Year  *int
}

// ITable defines read-side expense storage operations. SumByCategory is the
// ledger aggregation the reconciliation engine is driven by.
type ITable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	List(ctx context.Context, userID uuid.UUID, filter *ExpenseFilter) ([]*Expense, error)
	SumByCategory(ctx context.Context, userID uuid.UUID, month, year int) (map[reconcile.Category]decimal.Decimal, error)
}

// ITxTable defines write-side expense storage operations.
type ITxTable interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Expense, error)
	Insert(ctx context.Context, create *ExpenseCreate) (uuid.UUID, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	SumByCategory(ctx context.Context, userID uuid.UUID, month, year int) (map[reconcile.Category]decimal.Decimal, error)
}
