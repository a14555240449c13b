package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// DeleteBudgetInput is the Huma input for deleting a budget.
type DeleteBudgetInput struct {
	ID string `path:"id" doc:"Budget UUID"`
}

// DeleteBudgetOutput is the Huma output for deleting a budget.
type DeleteBudgetOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// DeleteBudgetHandler handles DELETE /v1/budget/{id}.
type DeleteBudgetHandler struct {
	Operator actionProcessor
}

// NewDeleteBudgetHandler creates a new DeleteBudgetHandler.
func NewDeleteBudgetHandler(op actionProcessor) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{Operator: op}
}

// Register registers the delete budget endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget",
		Method:      http.MethodDelete,
		Path:        "/v1/budget/{id}",
		Summary:     "Delete budget",
		Description: "Deletes a budget by id. The expense ledger is never touched.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}

	if err := h.Operator.Process(ctx, &actions.DeleteBudget{ID: id}); err != nil {
		return nil, mapBudgetError(err, "failed to delete budget")
	}
	return &DeleteBudgetOutput{Status: http.StatusNoContent}, nil
}
