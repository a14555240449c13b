package storage

import (
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/expense"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

type Reader struct {
	Budgets  *budget.Reader
	Expenses *expense.Reader
	Users    *user.Reader
}

func NewReader(exec sqlconfig.Executor) *Reader {
	return &Reader{
		Budgets:  budget.NewReader(exec),
		Expenses: expense.NewReader(exec),
		Users:    user.NewReader(exec),
	}
}
