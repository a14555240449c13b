package budget

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// budgetSummarizer is the interface for budget summary aggregates.
type budgetSummarizer interface {
	AnnualTotal(ctx context.Context, userID uuid.UUID, year int) (decimal.Decimal, error)
	MonthlyAggregate(ctx context.Context, userID uuid.UUID, year int) (map[int]decimal.Decimal, error)
	CurrentMonthSummary(ctx context.Context, userID uuid.UUID) (*service.Budget, error)
	PreviousMonthSummary(ctx context.Context, userID uuid.UUID) (*service.Budget, error)
}

// AnnualSummaryInput is the Huma input for the year-scoped summaries.
type AnnualSummaryInput struct {
	UserID string `query:"userID" required:"true" doc:"Owning user UUID"`
	Year   int    `query:"year" required:"true" doc:"Year to aggregate"`
}

// AnnualTotalResponseBody is the response body for the annual total.
type AnnualTotalResponseBody struct {
	Total string `json:"total" doc:"Sum of totalBudget across the user's budgets in the year; zero when none"`
}

// AnnualTotalOutput is the Huma output for the annual total.
type AnnualTotalOutput struct {
	Body AnnualTotalResponseBody
}

// MonthlyAggregateResponseBody is the response body for the monthly aggregate.
type MonthlyAggregateResponseBody struct {
	Months map[string]string `json:"months" doc:"Month number to totalBudget; months without a budget are absent"`
}

// MonthlyAggregateOutput is the Huma output for the monthly aggregate.
type MonthlyAggregateOutput struct {
	Body MonthlyAggregateResponseBody
}

// MonthSummaryInput is the Huma input for the current/previous month summaries.
type MonthSummaryInput struct {
	UserID string `query:"userID" required:"true" doc:"Owning user UUID"`
}

// SummaryHandler handles the budget summary endpoints.
type SummaryHandler struct {
	BudgetService budgetSummarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc budgetSummarizer) *SummaryHandler {
	return &SummaryHandler{BudgetService: svc}
}

// Register registers the summary endpoints with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "annual-budget-total",
		Method:      http.MethodGet,
		Path:        "/v1/budget/summary/annual",
		Summary:     "Annual budget total",
		Tags:        []string{"Budgets"},
	}, h.handleAnnual)
	huma.Register(api, huma.Operation{
		OperationID: "monthly-budget-aggregate",
		Method:      http.MethodGet,
		Path:        "/v1/budget/summary/monthly",
		Summary:     "Monthly budget aggregate",
		Tags:        []string{"Budgets"},
	}, h.handleMonthly)
	huma.Register(api, huma.Operation{
		OperationID: "current-month-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budget/summary/current",
		Summary:     "Current month budget",
		Tags:        []string{"Budgets"},
	}, h.handleCurrent)
	huma.Register(api, huma.Operation{
		OperationID: "previous-month-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budget/summary/previous",
		Summary:     "Previous month budget",
		Tags:        []string{"Budgets"},
	}, h.handlePrevious)
}

func (h *SummaryHandler) handleAnnual(ctx context.Context, input *AnnualSummaryInput) (*AnnualTotalOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	total, err := h.BudgetService.AnnualTotal(ctx, userID, input.Year)
	if err != nil {
		return nil, mapBudgetError(err, "failed to compute annual total")
	}
	return &AnnualTotalOutput{Body: AnnualTotalResponseBody{Total: total.String()}}, nil
}

func (h *SummaryHandler) handleMonthly(ctx context.Context, input *AnnualSummaryInput) (*MonthlyAggregateOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	totals, err := h.BudgetService.MonthlyAggregate(ctx, userID, input.Year)
	if err != nil {
		return nil, mapBudgetError(err, "failed to compute monthly aggregate")
	}

	months := make(map[string]string, len(totals))
	for month, total := range totals {
		months[strconv.Itoa(month)] = total.String()
	}
	return &MonthlyAggregateOutput{Body: MonthlyAggregateResponseBody{Months: months}}, nil
}

func (h *SummaryHandler) handleCurrent(ctx context.Context, input *MonthSummaryInput) (*GetBudgetOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	b, err := h.BudgetService.CurrentMonthSummary(ctx, userID)
	if err != nil {
		return nil, mapBudgetError(err, "failed to get current month budget")
	}
	return &GetBudgetOutput{Body: budgetFromService(b)}, nil
}

func (h *SummaryHandler) handlePrevious(ctx context.Context, input *MonthSummaryInput) (*GetBudgetOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	b, err := h.BudgetService.PreviousMonthSummary(ctx, userID)
	if err != nil {
		return nil, mapBudgetError(err, "failed to get previous month budget")
	}
	return &GetBudgetOutput{Body: budgetFromService(b)}, nil
}
