package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds all read-side business logic services.
type Service struct {
	Budget  *BudgetService
	Expense *ExpenseService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Budget:  NewBudgetService(store),
		Expense: NewExpenseService(store),
	}
}
