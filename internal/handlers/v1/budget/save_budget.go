package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/reconcile"
)

// SaveBudgetAllocation is one (category, allocated) pair in a save request.
type SaveBudgetAllocation struct {
	Category  string `json:"category" required:"true" doc:"Spending category"`
	Allocated string `json:"allocated" required:"true" doc:"Positive decimal amount"`
}

// SaveBudgetBody is the request body for creating or replacing a budget.
type SaveBudgetBody struct {
	UserID     string                 `json:"userID" required:"true" doc:"Owning user UUID"`
	Month      int                    `json:"month" required:"true" minimum:"1" maximum:"12" doc:"Budget month"`
	Year       int                    `json:"year" required:"true" doc:"Budget year"`
	Categories []SaveBudgetAllocation `json:"categories" required:"true" doc:"Full category list; replaces any existing one"`
}

// SaveBudgetInput is the Huma input for saving a budget.
type SaveBudgetInput struct {
	Body SaveBudgetBody
}

// SaveBudgetOutput is the Huma output for saving a budget.
type SaveBudgetOutput struct {
	Body Budget
}

// SaveBudgetHandler handles PUT /v1/budget.
type SaveBudgetHandler struct {
	Operator actionProcessor
}

// NewSaveBudgetHandler creates a new SaveBudgetHandler.
func NewSaveBudgetHandler(op actionProcessor) *SaveBudgetHandler {
	return &SaveBudgetHandler{Operator: op}
}

// Register registers the save budget endpoint with the Huma API.
func (h *SaveBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "save-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budget",
		Summary:     "Create or replace a budget",
		Description: "Creates or fully replaces the budget for one user and month, then reconciles it against the expense ledger.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

// parseSaveBudgetInput parses and validates the API input.
func parseSaveBudgetInput(input *SaveBudgetInput) (uuid.UUID, []reconcile.Allocation, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	allocations := make([]reconcile.Allocation, len(input.Body.Categories))
	for i, c := range input.Body.Categories {
		category, err := reconcile.ParseCategory(c.Category)
		if err != nil {
			return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid category", err)
		}
		allocated, err := decimal.NewFromString(c.Allocated)
		if err != nil {
			return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid allocated amount", err)
		}
		if !allocated.IsPositive() {
			return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "allocated amount must be positive")
		}
		allocations[i] = reconcile.Allocation{Category: category, Allocated: allocated}
	}
	return userID, allocations, nil
}

func (h *SaveBudgetHandler) handle(ctx context.Context, input *SaveBudgetInput) (*SaveBudgetOutput, error) {
	userID, allocations, err := parseSaveBudgetInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.SaveBudget{
		UserID:      userID,
		Month:       input.Body.Month,
		Year:        input.Body.Year,
		Allocations: allocations,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, mapBudgetError(err, "failed to save budget")
	}

	return &SaveBudgetOutput{Body: budgetFromStorage(action.Result)}, nil
}
