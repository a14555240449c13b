package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// expenseLister is the read surface the list handler needs.
type expenseLister interface {
	ListExpenses(ctx context.Context, userID uuid.UUID, month, year *int) ([]*service.Expense, error)
}

// ListExpensesInput is the Huma input for listing expenses.
type ListExpensesInput struct {
	UserID string `query:"userID" required:"true" doc:"Owning user UUID"`
	Month  int    `query:"month" doc:"Calendar month 1-12, narrows to one period with year"`
	Year   int    `query:"year" doc:"Calendar year, narrows to one period with month"`
}

// ListExpensesResponseBody is the response body for listing expenses.
type ListExpensesResponseBody struct {
	Expenses []Expense `json:"expenses" doc:"Expense postings, newest first"`
}

// ListExpensesOutput is the Huma output for listing expenses.
type ListExpensesOutput struct {
	Body ListExpensesResponseBody
}

// ListExpensesHandler handles GET /v1/expense/list.
type ListExpensesHandler struct {
	Expenses expenseLister
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(expenses expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{Expenses: expenses}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expense/list",
		Summary:     "List expenses",
		Description: "Lists a user's expense postings, optionally narrowed to one month.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var month, year *int
	if input.Month != 0 || input.Year != 0 {
		if input.Month < 1 || input.Month > 12 || input.Year == 0 {
			return nil, huma.NewError(http.StatusBadRequest, "month and year must be provided together, month in 1-12")
		}
		month, year = &input.Month, &input.Year
	}

	rows, err := h.Expenses.ListExpenses(ctx, userID, month, year)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list expenses", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("expenseCount", len(rows))
	}

	out := &ListExpensesOutput{}
	out.Body.Expenses = make([]Expense, len(rows))
	for i, row := range rows {
		out.Body.Expenses[i] = expenseFromService(row)
	}
	return out, nil
}
