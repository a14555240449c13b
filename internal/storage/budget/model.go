package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
)

// Budget represents a budget record: one per (user, month, year), with its
// ordered category allocations.
type Budget struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Month          int
	Year           int
	TotalBudget    decimal.Decimal
	TotalRemaining decimal.Decimal
	Categories     []reconcile.Allocation
	CreatedAt      time.Time
}

// PeriodRef is one (month, year) pair a user holds a budget for.
type PeriodRef struct {
	Month int
	Year  int
}

// ITable defines read-side budget storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	FindByPeriod(ctx context.Context, userID uuid.UUID, month, year int) (*Budget, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Budget, error)
	ListPeriods(ctx context.Context, userID uuid.UUID) ([]PeriodRef, error)
	AnnualTotal(ctx context.Context, userID uuid.UUID, year int) (decimal.Decimal, error)
	MonthlyTotals(ctx context.Context, userID uuid.UUID, year int) (map[int]decimal.Decimal, error)
}

// ITxTable defines write-side budget storage operations, always run inside a
// transaction so reconciliation persists all-or-nothing.
type ITxTable interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Budget, error)
	FindByPeriodForUpdate(ctx context.Context, userID uuid.UUID, month, year int) (*Budget, error)
	Save(ctx context.Context, b *Budget) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
