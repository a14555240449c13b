package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteBudget removes a budget by id. The expense ledger is never touched:
// a budget has no ownership over postings.
type DeleteBudget struct {
	ID uuid.UUID
}

func (a *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	existed, err := writer.Budget.Delete(ctx, a.ID)
	if err != nil {
		return &service.BudgetOperationError{Op: "delete budget", Err: err}
	}
	if !existed {
		return service.ErrBudgetNotFound
	}
	return nil
}
