package budget

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/service"
	storagebudget "github.com/carson-networks/finance-tracker/internal/storage/budget"
)

// actionProcessor dispatches write actions through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CategoryAllocation is the API model for one category's allocation.
type CategoryAllocation struct {
	Category  string `json:"category" doc:"Spending category"`
	Allocated string `json:"allocated" doc:"Planned decimal amount for the category"`
	Remaining string `json:"remaining" doc:"Allocated minus the period's matching expenses; may be negative"`
}

// Budget is the API response model for a budget.
type Budget struct {
	ID             string               `json:"id" doc:"Budget UUID"`
	UserID         string               `json:"userID" doc:"Owning user UUID"`
	Month          int                  `json:"month" doc:"Budget month (1-12)"`
	Year           int                  `json:"year" doc:"Budget year"`
	TotalBudget    string               `json:"totalBudget" doc:"Sum of all allocated amounts"`
	TotalRemaining string               `json:"totalRemaining" doc:"Sum of all remaining amounts"`
	Categories     []CategoryAllocation `json:"categories" doc:"Ordered category allocations"`
}

func budgetFromService(b *service.Budget) Budget {
	return budgetResponse(b.ID.String(), b.UserID.String(), b.Month, b.Year,
		b.TotalBudget.String(), b.TotalRemaining.String(), b.Categories)
}

func budgetFromStorage(b *storagebudget.Budget) Budget {
	return budgetResponse(b.ID.String(), b.UserID.String(), b.Month, b.Year,
		b.TotalBudget.String(), b.TotalRemaining.String(), b.Categories)
}

func budgetResponse(id, userID string, month, year int, totalBudget, totalRemaining string, categories []reconcile.Allocation) Budget {
	resp := Budget{
		ID:             id,
		UserID:         userID,
		Month:          month,
		Year:           year,
		TotalBudget:    totalBudget,
		TotalRemaining: totalRemaining,
		Categories:     make([]CategoryAllocation, len(categories)),
	}
	for i, a := range categories {
		resp.Categories[i] = CategoryAllocation{
			Category:  a.Category.String(),
			Allocated: a.Allocated.String(),
			Remaining: a.Remaining.String(),
		}
	}
	return resp
}

// mapBudgetError translates domain failures into HTTP status errors.
func mapBudgetError(err error, fallback string) error {
	var dupErr *reconcile.DuplicateCategoryError
	switch {
	case errors.As(err, &dupErr):
		return huma.NewError(http.StatusBadRequest, dupErr.Error())
	case errors.Is(err, service.ErrBudgetNotFound):
		return huma.NewError(http.StatusNotFound, "budget not found")
	case errors.Is(err, service.ErrUserNotFound):
		return huma.NewError(http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrExpenseNotFound):
		return huma.NewError(http.StatusNotFound, "expense not found")
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}
