package budget

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

var _ ITxTable = (*Writer)(nil)

// Writer provides transactional write access to budgets. Embedding Reader
// lets the same transaction read its own uncommitted rows.
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

// FindByIDForUpdate retrieves a budget by id and locks its row for the
// remainder of the transaction. Returns (nil, nil) when absent.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Budget, error) {
	row := w.tx.QueryRowContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE id = $1 FOR UPDATE`, id)
	return w.scanBudget(ctx, row)
}

// FindByPeriodForUpdate retrieves and locks the budget for one period.
// Returns (nil, nil) when the user has no budget for that period.
func (w *Writer) FindByPeriodForUpdate(ctx context.Context, userID uuid.UUID, month, year int) (*Budget, error) {
	row := w.tx.QueryRowContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets
		 WHERE user_id = $1 AND month = $2 AND year = $3 FOR UPDATE`,
		userID, month, year)
	return w.scanBudget(ctx, row)
}

// Save upserts the budget row keyed on (user_id, month, year) and replaces
// its category list atomically. b.ID is filled with the persisted id.
func (w *Writer) Save(ctx context.Context, b *Budget) error {
	if b.ID.IsNil() {
		id, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("generate budget id: %w", err)
		}
		b.ID = id
	}

	err := w.tx.QueryRowContext(ctx,
		`INSERT INTO budgets (id, user_id, month, year, total_budget, total_remaining)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, month, year) DO UPDATE
		 SET total_budget = EXCLUDED.total_budget,
		     total_remaining = EXCLUDED.total_remaining
		 RETURNING id`,
		b.ID, b.UserID, b.Month, b.Year, b.TotalBudget, b.TotalRemaining,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}

	if _, err := w.tx.ExecContext(ctx,
		`DELETE FROM budget_categories WHERE budget_id = $1`, b.ID); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}

	for i, a := range b.Categories {
		if _, err := w.tx.ExecContext(ctx,
			`INSERT INTO budget_categories (budget_id, category, allocated, remaining, position)
			 VALUES ($1, $2, $3, $4, $5)`,
			b.ID, a.Category.String(), a.Allocated, a.Remaining, i,
		); err != nil {
			return fmt.Errorf("insert category %s: %w", a.Category, err)
		}
	}
	return nil
}

// Delete removes a budget and, via cascade, its categories. Reports whether
// a row existed.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := w.tx.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete budget: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
