package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/expense"
)

// mockExpenseTable is a mock for expense.ITable.
type mockExpenseTable struct {
	mock.Mock
}

var _ expense.ITable = (*mockExpenseTable)(nil)

func (m *mockExpenseTable) FindByID(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*expense.Expense)
	return e, args.Error(1)
}

func (m *mockExpenseTable) List(ctx context.Context, userID uuid.UUID, filter *expense.ExpenseFilter) ([]*expense.Expense, error) {
	args := m.Called(ctx, userID, filter)
	rows, _ := args.Get(0).([]*expense.Expense)
	return rows, args.Error(1)
}

func (m *mockExpenseTable) SumByCategory(ctx context.Context, userID uuid.UUID, month, year int) (map[reconcile.Category]decimal.Decimal, error) {
	args := m.Called(ctx, userID, month, year)
	sums, _ := args.Get(0).(map[reconcile.Category]decimal.Decimal)
	return sums, args.Error(1)
}

func TestGetExpense_NotFound(t *testing.T) {
	mockTable := &mockExpenseTable{}
	svc := NewExpenseService(&storage.Storage{Expenses: mockTable})

	id := uuid.Must(uuid.NewV4())
	mockTable.On("FindByID", mock.Anything, id).Return(nil, nil)

	e, err := svc.GetExpense(context.Background(), id)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestListExpenses_PeriodFilter(t *testing.T) {
	mockTable := &mockExpenseTable{}
	svc := NewExpenseService(&storage.Storage{Expenses: mockTable})

	userID := uuid.Must(uuid.NewV4())
	month, year := 5, 2024
	mockTable.On("List", mock.Anything, userID, mock.MatchedBy(func(f *expense.ExpenseFilter) bool {
		return f != nil && *f.Month == 5 && *f.Year == 2024
	})).Return([]*expense.Expense{
		{
			ID:          uuid.Must(uuid.NewV4()),
			UserID:      userID,
			Category:    reconcile.CategoryGroceries,
			Amount:      decimal.RequireFromString("42.50"),
			ExpenseDate: time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC),
		},
	}, nil)

	expenses, err := svc.ListExpenses(context.Background(), userID, &month, &year)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, reconcile.CategoryGroceries, expenses[0].Category)
}
