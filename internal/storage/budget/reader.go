package budget

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

// Reader provides read access to the budgets and budget_categories tables.
type Reader struct {
	exec sqlconfig.Executor
}

// NewReader creates a Reader running against the given executor.
func NewReader(exec sqlconfig.Executor) *Reader {
	return &Reader{exec: exec}
}

const budgetColumns = `id, user_id, month, year, total_budget, total_remaining, created_at`

// FindByID retrieves a budget with its categories. Returns (nil, nil) when
// no budget exists for the id.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	row := r.exec.QueryRowContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE id = $1`, id)
	return r.scanBudget(ctx, row)
}

// FindByPeriod retrieves the budget for one (user, month, year). Returns
// (nil, nil) when the user has no budget for that period.
func (r *Reader) FindByPeriod(ctx context.Context, userID uuid.UUID, month, year int) (*Budget, error) {
	row := r.exec.QueryRowContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = $1 AND month = $2 AND year = $3`,
		userID, month, year)
	return r.scanBudget(ctx, row)
}

// ListByUser returns all of a user's budgets with their categories, most
// recent period first.
func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Budget, error) {
	rows, err := r.exec.QueryContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = $1 ORDER BY year DESC, month DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*Budget
	for rows.Next() {
		b := &Budget{}
		if err := rows.Scan(&b.ID, &b.UserID, &b.Month, &b.Year,
			&b.TotalBudget, &b.TotalRemaining, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, b := range budgets {
		categories, err := r.loadCategories(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		b.Categories = categories
	}
	return budgets, nil
}

// ListPeriods returns the (month, year) pairs the user holds budgets for.
func (r *Reader) ListPeriods(ctx context.Context, userID uuid.UUID) ([]PeriodRef, error) {
	rows, err := r.exec.QueryContext(ctx,
		`SELECT month, year FROM budgets WHERE user_id = $1 ORDER BY year, month`, userID)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	defer rows.Close()

	var periods []PeriodRef
	for rows.Next() {
		var p PeriodRef
		if err := rows.Scan(&p.Month, &p.Year); err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// AnnualTotal sums total_budget across all of a user's budgets in a year.
// Returns zero when the user has no budgets that year.
func (r *Reader) AnnualTotal(ctx context.Context, userID uuid.UUID, year int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.exec.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_budget), 0) FROM budgets WHERE user_id = $1 AND year = $2`,
		userID, year).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("annual total: %w", err)
	}
	return total, nil
}

// MonthlyTotals maps month to total_budget for a user's budgets in a year.
// Months without a budget are absent from the map.
func (r *Reader) MonthlyTotals(ctx context.Context, userID uuid.UUID, year int) (map[int]decimal.Decimal, error) {
	rows, err := r.exec.QueryContext(ctx,
		`SELECT month, total_budget FROM budgets WHERE user_id = $1 AND year = $2`,
		userID, year)
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[int]decimal.Decimal)
	for rows.Next() {
		var month int
		var total decimal.Decimal
		if err := rows.Scan(&month, &total); err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		totals[month] = total
	}
	return totals, rows.Err()
}

// scanBudget scans a single budget row and loads its categories. The writer
// reuses it for its SELECT ... FOR UPDATE variants.
func (r *Reader) scanBudget(ctx context.Context, row *sql.Row) (*Budget, error) {
	b := &Budget{}
	err := row.Scan(&b.ID, &b.UserID, &b.Month, &b.Year,
		&b.TotalBudget, &b.TotalRemaining, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan budget: %w", err)
	}

	categories, err := r.loadCategories(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	b.Categories = categories
	return b, nil
}

func (r *Reader) loadCategories(ctx context.Context, budgetID uuid.UUID) ([]reconcile.Allocation, error) {
	rows, err := r.exec.QueryContext(ctx,
		`SELECT category, allocated, remaining
		 FROM budget_categories WHERE budget_id = $1 ORDER BY position`, budgetID)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	defer rows.Close()

	var allocations []reconcile.Allocation
	for rows.Next() {
		var a reconcile.Allocation
		var category string
		if err := rows.Scan(&category, &a.Allocated, &a.Remaining); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		a.Category = reconcile.Category(category)
		allocations = append(allocations, a)
	}
	return allocations, rows.Err()
}
