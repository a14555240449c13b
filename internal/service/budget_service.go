package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// BudgetService handles the read-side budget operations: lookups, listings
// and summary aggregates. Mutations go through the operator so they run
// serialized inside one transaction.
type BudgetService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{
		storage: store,
		now:     time.Now,
	}
}

// GetBudgetByID retrieves a budget by id.
func (s *BudgetService) GetBudgetByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	row, err := s.storage.Budgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrBudgetNotFound
	}
	return budgetFromStorage(row), nil
}

// GetBudgetForPeriod retrieves the budget for one (user, month, year).
func (s *BudgetService) GetBudgetForPeriod(ctx context.Context, userID uuid.UUID, month, year int) (*Budget, error) {
	row, err := s.storage.Budgets.FindByPeriod(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrBudgetNotFound
	}
	return budgetFromStorage(row), nil
}

// ListBudgetsForUser returns all of a user's budgets.
func (s *BudgetService) ListBudgetsForUser(ctx context.Context, userID uuid.UUID) ([]*Budget, error) {
	rows, err := s.storage.Budgets.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	budgets := make([]*Budget, len(rows))
	for i, row := range rows {
		budgets[i] = budgetFromStorage(row)
	}
	return budgets, nil
}

// ListPeriods returns the (month, year) pairs the user holds budgets for.
func (s *BudgetService) ListPeriods(ctx context.Context, userID uuid.UUID) ([]BudgetPeriod, error) {
	refs, err := s.storage.Budgets.ListPeriods(ctx, userID)
	if err != nil {
		return nil, err
	}
	periods := make([]BudgetPeriod, len(refs))
	for i, ref := range refs {
		periods[i] = BudgetPeriod{Month: ref.Month, Year: ref.Year}
	}
	return periods, nil
}

// AnnualTotal sums total_budget across a user's budgets in a year. Zero when
// the user has no budgets that year.
func (s *BudgetService) AnnualTotal(ctx context.Context, userID uuid.UUID, year int) (decimal.Decimal, error) {
	return s.storage.Budgets.AnnualTotal(ctx, userID, year)
}

// MonthlyAggregate maps month to total_budget for a user's budgets in a
// year. Months without a budget are absent, not zero.
func (s *BudgetService) MonthlyAggregate(ctx context.Context, userID uuid.UUID, year int) (map[int]decimal.Decimal, error) {
	return s.storage.Budgets.MonthlyTotals(ctx, userID, year)
}

// CurrentMonthSummary returns the budget for the calendar month containing
// the current time.
func (s *BudgetService) CurrentMonthSummary(ctx context.Context, userID uuid.UUID) (*Budget, error) {
	p := reconcile.PeriodOf(s.now())
	return s.GetBudgetForPeriod(ctx, userID, p.Month, p.Year)
}

// PreviousMonthSummary returns the budget for the calendar month before the
// current one, rolling January back to December of the prior year.
func (s *BudgetService) PreviousMonthSummary(ctx context.Context, userID uuid.UUID) (*Budget, error) {
	p := reconcile.PeriodOf(s.now()).Previous()
	return s.GetBudgetForPeriod(ctx, userID, p.Month, p.Year)
}
