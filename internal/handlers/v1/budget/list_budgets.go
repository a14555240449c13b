package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// budgetLister is the interface for listing a user's budgets and periods.
type budgetLister interface {
	ListBudgetsForUser(ctx context.Context, userID uuid.UUID) ([]*service.Budget, error)
	ListPeriods(ctx context.Context, userID uuid.UUID) ([]service.BudgetPeriod, error)
}

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	UserID string `query:"userID" required:"true" doc:"Owning user UUID"`
}

// ListBudgetsResponseBody is the response body for listing budgets.
type ListBudgetsResponseBody struct {
	Budgets []Budget `json:"budgets" doc:"All of the user's budgets"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

// BudgetPeriod is the API model for one month a user holds a budget for.
type BudgetPeriod struct {
	Month int `json:"month" doc:"Budget month (1-12)"`
	Year  int `json:"year" doc:"Budget year"`
}

// ListPeriodsResponseBody is the response body for listing budget periods.
type ListPeriodsResponseBody struct {
	Periods []BudgetPeriod `json:"periods" doc:"Months the user holds budgets for"`
}

// ListPeriodsOutput is the Huma output for listing budget periods.
type ListPeriodsOutput struct {
	Body ListPeriodsResponseBody
}

// ListBudgetsHandler handles the budget listing endpoints.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the budget listing endpoints with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budget/list",
		Summary:     "List budgets",
		Tags:        []string{"Budgets"},
	}, h.handleList)
	huma.Register(api, huma.Operation{
		OperationID: "list-budget-periods",
		Method:      http.MethodGet,
		Path:        "/v1/budget/periods",
		Summary:     "List budget periods",
		Tags:        []string{"Budgets"},
	}, h.handlePeriods)
}

func (h *ListBudgetsHandler) handleList(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	budgets, err := h.BudgetService.ListBudgetsForUser(ctx, userID)
	if err != nil {
		return nil, mapBudgetError(err, "failed to list budgets")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("budgetCount", len(budgets))
	}

	resp := ListBudgetsResponseBody{Budgets: make([]Budget, len(budgets))}
	for i, b := range budgets {
		resp.Budgets[i] = budgetFromService(b)
	}
	return &ListBudgetsOutput{Body: resp}, nil
}

func (h *ListBudgetsHandler) handlePeriods(ctx context.Context, input *ListBudgetsInput) (*ListPeriodsOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	periods, err := h.BudgetService.ListPeriods(ctx, userID)
	if err != nil {
		return nil, mapBudgetError(err, "failed to list budget periods")
	}

	resp := ListPeriodsResponseBody{Periods: make([]BudgetPeriod, len(periods))}
	for i, p := range periods {
		resp.Periods[i] = BudgetPeriod{Month: p.Month, Year: p.Year}
	}
	return &ListPeriodsOutput{Body: resp}, nil
}
