package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// budgetGetter is the interface for budget lookups.
type budgetGetter interface {
	GetBudgetByID(ctx context.Context, id uuid.UUID) (*service.Budget, error)
	GetBudgetForPeriod(ctx context.Context, userID uuid.UUID, month, year int) (*service.Budget, error)
}

// GetBudgetInput is the Huma input for fetching a budget by id.
type GetBudgetInput struct {
	ID string `path:"id" doc:"Budget UUID"`
}

// GetBudgetOutput is the Huma output for fetching a budget.
type GetBudgetOutput struct {
	Body Budget
}

// GetPeriodBudgetInput is the Huma input for fetching a budget by period.
type GetPeriodBudgetInput struct {
	UserID string `query:"userID" required:"true" doc:"Owning user UUID"`
	Month  int    `query:"month" required:"true" minimum:"1" maximum:"12" doc:"Budget month"`
	Year   int    `query:"year" required:"true" doc:"Budget year"`
}

// GetBudgetHandler handles the budget lookup endpoints.
type GetBudgetHandler struct {
	BudgetService budgetGetter
}

// NewGetBudgetHandler creates a new GetBudgetHandler.
func NewGetBudgetHandler(svc budgetGetter) *GetBudgetHandler {
	return &GetBudgetHandler{BudgetService: svc}
}

// Register registers the budget lookup endpoints with the Huma API.
func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budget/{id}",
		Summary:     "Get budget by id",
		Tags:        []string{"Budgets"},
	}, h.handleByID)
	huma.Register(api, huma.Operation{
		OperationID: "get-period-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budget",
		Summary:     "Get budget for one user and month",
		Tags:        []string{"Budgets"},
	}, h.handleByPeriod)
}

func (h *GetBudgetHandler) handleByID(ctx context.Context, input *GetBudgetInput) (*GetBudgetOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}

	b, err := h.BudgetService.GetBudgetByID(ctx, id)
	if err != nil {
		return nil, mapBudgetError(err, "failed to get budget")
	}
	return &GetBudgetOutput{Body: budgetFromService(b)}, nil
}

func (h *GetBudgetHandler) handleByPeriod(ctx context.Context, input *GetPeriodBudgetInput) (*GetBudgetOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	b, err := h.BudgetService.GetBudgetForPeriod(ctx, userID, input.Month, input.Year)
	if err != nil {
		return nil, mapBudgetError(err, "failed to get budget")
	}
	return &GetBudgetOutput{Body: budgetFromService(b)}, nil
}
