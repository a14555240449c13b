package storage

import (
	"database/sql"

	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/expense"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// Writer groups the per-table writers of one transaction. An action performs
// its whole read-modify-write against a single Writer so reconciliation is
// all-or-nothing. Table fields are interfaces so action tests can swap in
// mocks without a database.
type Writer struct {
	tx      *sql.Tx
	Budget  budget.ITxTable
	Expense expense.ITxTable
	User    user.ITable
}

func NewWriter(tx *sql.Tx) Writer {
	return Writer{
		tx:      tx,
		Budget:  budget.NewWriter(tx),
		Expense: expense.NewWriter(tx),
		User:    user.NewReader(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
