package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is one unit of budget or ledger mutation, performed inside a
// single transaction by the operator.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
