package expense

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// DeleteExpenseInput is the Huma input for deleting an expense.
type DeleteExpenseInput struct {
	ID string `path:"id" doc:"Expense UUID"`
}

// DeleteExpenseOutput is the Huma output for deleting an expense.
type DeleteExpenseOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// DeleteExpenseHandler handles DELETE /v1/expense/{id}.
type DeleteExpenseHandler struct {
	Operator actionProcessor
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(op actionProcessor) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{Operator: op}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expense",
		Method:      http.MethodDelete,
		Path:        "/v1/expense/{id}",
		Summary:     "Delete expense",
		Description: "Deletes an expense posting and reconciles its month's budget, if one exists.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}

	if err := h.Operator.Process(ctx, &actions.DeleteExpense{ID: id}); err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "expense not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete expense", err)
	}
	return &DeleteExpenseOutput{Status: http.StatusNoContent}, nil
}
