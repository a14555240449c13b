package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/expense"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// mockBudgetTx is a mock for budget.ITxTable.
type mockBudgetTx struct {
	mock.Mock
}

var _ budget.ITxTable = (*mockBudgetTx)(nil)

func (m *mockBudgetTx) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*budget.Budget, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*budget.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetTx) FindByPeriodForUpdate(ctx context.Context, userID uuid.UUID, month, year int) (*budget.Budget, error) {
	args := m.Called(ctx, userID, month, year)
	b, _ := args.Get(0).(*budget.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetTx) Save(ctx context.Context, b *budget.Budget) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBudgetTx) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// mockExpenseTx is a mock for expense.ITxTable.
type mockExpenseTx struct {
	mock.Mock
}

var _ expense.ITxTable = (*mockExpenseTx)(nil)

func (m *mockExpenseTx) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*expense.Expense)
	return e, args.Error(1)
}

func (m *mockExpenseTx) Insert(ctx context.Context, create *expense.ExpenseCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockExpenseTx) Update(ctx context.Context, e *expense.Expense) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockExpenseTx) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockExpenseTx) SumByCategory(ctx context.Context, userID uuid.UUID, month, year int) (map[reconcile.Category]decimal.Decimal, error) {
	args := m.Called(ctx, userID, month, year)
	sums, _ := args.Get(0).(map[reconcile.Category]decimal.Decimal)
	return sums, args.Error(1)
}

// mockUserTable is a mock for user.ITable.
type mockUserTable struct {
	mock.Mock
}

var _ user.ITable = (*mockUserTable)(nil)

func (m *mockUserTable) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockUserTable) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// newTestWriter builds a Writer over the mocks. Actions never commit or
// roll back themselves, so the nil transaction is never touched.
func newTestWriter(b *mockBudgetTx, e *mockExpenseTx, u *mockUserTable) *storage.Writer {
	return &storage.Writer{
		Budget:  b,
		Expense: e,
		User:    u,
	}
}
