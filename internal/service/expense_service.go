package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/expense"
)

// ExpenseService handles read-side expense ledger operations.
type ExpenseService struct {
	storage *storage.Storage
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage) *ExpenseService {
	return &ExpenseService{storage: store}
}

// GetExpense retrieves a posting by id.
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error) {
	row, err := s.storage.Expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrExpenseNotFound
	}
	return expenseFromStorage(row), nil
}

// ListExpenses returns a user's postings, optionally narrowed to one period.
func (s *ExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID, month, year *int) ([]*Expense, error) {
	var filter *expense.ExpenseFilter
	if month != nil && year != nil {
		filter = &expense.ExpenseFilter{Month: month, Year: year}
	}
	rows, err := s.storage.Expenses.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	expenses := make([]*Expense, len(rows))
	for i, row := range rows {
		expenses[i] = expenseFromStorage(row)
	}
	return expenses, nil
}
