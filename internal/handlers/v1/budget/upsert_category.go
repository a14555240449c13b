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

// UpsertCategoryBody is the request body for adding or updating one
// category allocation.
type UpsertCategoryBody struct {
	UserID    string `json:"userID" required:"true" doc:"Owning user UUID"`
	Month     int    `json:"month" required:"true" minimum:"1" maximum:"12" doc:"Budget month"`
	Year      int    `json:"year" required:"true" doc:"Budget year"`
	Category  string `json:"category" required:"true" doc:"Spending category"`
	Allocated string `json:"allocated" required:"true" doc:"Positive decimal amount"`
}

// UpsertCategoryInput is the Huma input for upserting a category.
type UpsertCategoryInput struct {
	Body UpsertCategoryBody
}

// UpsertCategoryOutput is the Huma output for upserting a category.
type UpsertCategoryOutput struct {
	Body Budget
}

// UpsertCategoryHandler handles POST /v1/budget/category.
type UpsertCategoryHandler struct {
	Operator actionProcessor
}

// NewUpsertCategoryHandler creates a new UpsertCategoryHandler.
func NewUpsertCategoryHandler(op actionProcessor) *UpsertCategoryHandler {
	return &UpsertCategoryHandler{Operator: op}
}

// Register registers the upsert category endpoint with the Huma API.
func (h *UpsertCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-budget-category",
		Method:      http.MethodPost,
		Path:        "/v1/budget/category",
		Summary:     "Add or update a budget category",
		Description: "Adds or updates one category allocation within a period's budget, creating the budget when the period has none.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

// parseUpsertCategoryInput parses and validates the API input.
func parseUpsertCategoryInput(input *UpsertCategoryInput) (uuid.UUID, reconcile.Category, decimal.Decimal, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return uuid.Nil, "", decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	category, err := reconcile.ParseCategory(input.Body.Category)
	if err != nil {
		return uuid.Nil, "", decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid category", err)
	}
	allocated, err := decimal.NewFromString(input.Body.Allocated)
	if err != nil {
		return uuid.Nil, "", decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid allocated amount", err)
	}
	if !allocated.IsPositive() {
		return uuid.Nil, "", decimal.Zero, huma.NewError(http.StatusBadRequest, "allocated amount must be positive")
	}
	return userID, category, allocated, nil
}

func (h *UpsertCategoryHandler) handle(ctx context.Context, input *UpsertCategoryInput) (*UpsertCategoryOutput, error) {
	userID, category, allocated, err := parseUpsertCategoryInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.UpsertCategory{
		UserID:    userID,
		Month:     input.Body.Month,
		Year:      input.Body.Year,
		Category:  category,
		Allocated: allocated,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, mapBudgetError(err, "failed to upsert budget category")
	}

	return &UpsertCategoryOutput{Body: budgetFromStorage(action.Result)}, nil
}
