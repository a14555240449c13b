package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

var _ ITable = (*Reader)(nil)

// Reader provides read access to the expenses table.
type Reader struct {
	exec sqlconfig.Executor
}

// NewReader creates a Reader running against the given executor.
func NewReader(exec sqlconfig.Executor) *Reader {
	return &Reader{exec: exec}
}

const expenseColumns = `id, user_id, category, amount, description, expense_date, created_at`

// FindByID retrieves an expense posting. Returns (nil, nil) when absent.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Expense, error) {
	row := r.exec.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)
	return scanExpense(row)
}

// List returns a user's postings, newest first, optionally narrowed to one
// (month, year) period.
func (r *Reader) List(ctx context.Context, userID uuid.UUID, filter *ExpenseFilter) ([]*Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1`
	args := []any{userID}
	if filter != nil && filter.Month != nil && filter.Year != nil {
		query += ` AND EXTRACT(MONTH FROM expense_date AT TIME ZONE 'UTC') = $2` +
			` AND EXTRACT(YEAR FROM expense_date AT TIME ZONE 'UTC') = $3`
		args = append(args, *filter.Month, *filter.Year)
	}
	query += ` ORDER BY expense_date DESC, created_at DESC`

	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e := &Expense{}
		var category string
		if err := rows.Scan(&e.ID, &e.UserID, &category, &e.Amount,
			&e.Description, &e.ExpenseDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Category = reconcile.Category(category)
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// SumByCategory aggregates a user's postings for one (month, year) into
// per-category sums using exact decimal addition on the database side.
// Categories with no postings are absent from the map. Months are taken on
// the UTC calendar regardless of the session timezone, matching PeriodOf.
func (r *Reader) SumByCategory(ctx context.Context, userID uuid.UUID, month, year int) (map[reconcile.Category]decimal.Decimal, error) {
	rows, err := r.exec.QueryContext(ctx,
		`SELECT category, SUM(amount)
		 FROM expenses
		 WHERE user_id = $1
		   AND EXTRACT(MONTH FROM expense_date AT TIME ZONE 'UTC') = $2
		   AND EXTRACT(YEAR FROM expense_date AT TIME ZONE 'UTC') = $3
		 GROUP BY category`,
		userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("sum expenses by category: %w", err)
	}
	defer rows.Close()

	sums := make(map[reconcile.Category]decimal.Decimal)
	for rows.Next() {
		var category string
		var sum decimal.Decimal
		if err := rows.Scan(&category, &sum); err != nil {
			return nil, fmt.Errorf("scan category sum: %w", err)
		}
		sums[reconcile.Category(category)] = sum
	}
	return sums, rows.Err()
}

func scanExpense(row *sql.Row) (*Expense, error) {
	e := &Expense{}
	var category string
	err := row.Scan(&e.ID, &e.UserID, &category, &e.Amount,
		&e.Description, &e.ExpenseDate, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan expense: %w", err)
	}
	e.Category = reconcile.Category(category)
	return e, nil
}
