package expense

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateExpenseBody is the request body for updating an expense.
type UpdateExpenseBody struct {
	Category    string `json:"category" required:"true" doc:"Spending category"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Description string `json:"description" doc:"Free-form description"`
	ExpenseDate string `json:"expenseDate" required:"true" doc:"RFC3339 posting date"`
}

// UpdateExpenseInput is the Huma input for updating an expense.
type UpdateExpenseInput struct {
	ID   string `path:"id" doc:"Expense UUID"`
	Body UpdateExpenseBody
}

// UpdateExpenseOutput is the Huma output for updating an expense.
type UpdateExpenseOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// UpdateExpenseHandler handles PUT /v1/expense/{id}.
type UpdateExpenseHandler struct {
	Operator actionProcessor
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(op actionProcessor) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{Operator: op}
}

// Register registers the update expense endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPut,
		Path:        "/v1/expense/{id}",
		Summary:     "Update expense",
		Description: "Updates an expense posting and reconciles every affected month's budget.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}
	category, err := reconcile.ParseCategory(input.Body.Category)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return nil, huma.NewError(http.StatusBadRequest, "amount must be positive")
	}
	expenseDate, err := time.Parse(time.RFC3339, input.Body.ExpenseDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expenseDate", err)
	}

	action := &actions.UpdateExpense{
		ID:          id,
		Category:    category,
		Amount:      amount,
		Description: input.Body.Description,
		ExpenseDate: expenseDate,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "expense not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update expense", err)
	}
	return &UpdateExpenseOutput{Status: http.StatusOK}, nil
}
