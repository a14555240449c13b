package service

import (
	"errors"
	"fmt"
)

var (
	// ErrBudgetNotFound is returned when no budget exists for the requested
	// id or period.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrExpenseNotFound is returned when no expense posting exists for the
	// requested id.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrUserNotFound is returned when a budget operation references a user
	// that does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// BudgetOperationError wraps a failure inside a budget mutation or its
// reconciliation. The transaction is rolled back, so the previously
// persisted state stays authoritative.
type BudgetOperationError struct {
	Op  string
	Err error
}

func (e *BudgetOperationError) Error() string {
	return fmt.Sprintf("budget operation %s: %v", e.Op, e.Err)
}

func (e *BudgetOperationError) Unwrap() error {
	return e.Err
}
