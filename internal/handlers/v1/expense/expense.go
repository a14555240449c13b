package expense

import (
	"context"
	"time"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// actionProcessor dispatches write actions through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Expense is the API response model for an expense posting.
// It is used only for responses, not for request bodies.
type Expense struct {
	ID          string `json:"id" doc:"Expense UUID"`
	UserID      string `json:"userID" doc:"Owning user UUID"`
	Category    string `json:"category" doc:"Spending category"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Description string `json:"description" doc:"Free-form description"`
	ExpenseDate string `json:"expenseDate" doc:"RFC3339 posting date"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func expenseFromService(e *service.Expense) Expense {
	return Expense{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Category:    e.Category.String(),
		Amount:      e.Amount.String(),
		Description: e.Description,
		ExpenseDate: e.ExpenseDate.Format(time.RFC3339),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
