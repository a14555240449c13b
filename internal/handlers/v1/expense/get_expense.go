package expense

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// expenseGetter is the read surface the get handler needs.
type expenseGetter interface {
	GetExpense(ctx context.Context, id uuid.UUID) (*service.Expense, error)
}

// GetExpenseInput is the Huma input for fetching one expense.
type GetExpenseInput struct {
	ID string `path:"id" doc:"Expense UUID"`
}

// GetExpenseOutput is the Huma output for fetching one expense.
type GetExpenseOutput struct {
	Body Expense
}

// GetExpenseHandler handles GET /v1/expense/{id}.
type GetExpenseHandler struct {
	Expenses expenseGetter
}

// NewGetExpenseHandler creates a new GetExpenseHandler.
func NewGetExpenseHandler(expenses expenseGetter) *GetExpenseHandler {
	return &GetExpenseHandler{Expenses: expenses}
}

// Register registers the get expense endpoint with the Huma API.
func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/v1/expense/{id}",
		Summary:     "Get expense",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *GetExpenseInput) (*GetExpenseOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}

	row, err := h.Expenses.GetExpense(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "expense not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get expense", err)
	}
	return &GetExpenseOutput{Body: expenseFromService(row)}, nil
}
