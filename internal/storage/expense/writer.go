package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

var _ ITxTable = (*Writer)(nil)

// Writer provides transactional write access to expenses.
type Writer struct {
	tx *sql.Tx
	Reader
}

// NewWriter creates a Writer bound to the given transaction.
func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx:     tx,
		Reader: Reader{exec: tx},
	}
}

// FindByIDForUpdate retrieves a posting and locks its row. Returns
// (nil, nil) when absent.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Expense, error) {
	row := w.tx.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1 FOR UPDATE`, id)
	return scanExpense(row)
}

// Insert records a new posting and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *ExpenseCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate expense id: %w", err)
	}

	_, err = w.tx.ExecContext(ctx,
		`INSERT INTO expenses (id, user_id, category, amount, description, expense_date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, create.UserID, create.Category.String(), create.Amount,
		create.Description, create.ExpenseDate)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert expense: %w", err)
	}
	return id, nil
}

// Update overwrites a posting's mutable fields.
func (w *Writer) Update(ctx context.Context, e *Expense) error {
	res, err := w.tx.ExecContext(ctx,
		`UPDATE expenses
		 SET category = $2, amount = $3, description = $4, expense_date = $5
		 WHERE id = $1`,
		e.ID, e.Category.String(), e.Amount, e.Description, e.ExpenseDate)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a posting. Reports whether a row existed.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := w.tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
