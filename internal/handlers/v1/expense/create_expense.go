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

// CreateExpenseBody is the request body for recording an expense.
type CreateExpenseBody struct {
	UserID      string `json:"userID" required:"true" doc:"Owning user UUID"`
	Category    string `json:"category" required:"true" doc:"Spending category"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Description string `json:"description" doc:"Free-form description"`
	ExpenseDate string `json:"expenseDate" doc:"RFC3339 posting date, defaults to now"`
}

// CreateExpenseInput is the Huma input for recording an expense.
type CreateExpenseInput struct {
	Body CreateExpenseBody
}

// CreateExpenseResponseBody is the response body for recording an expense.
type CreateExpenseResponseBody struct {
	ID string `json:"id" doc:"New expense UUID"`
}

// CreateExpenseOutput is the Huma output for recording an expense.
type CreateExpenseOutput struct {
	Body CreateExpenseResponseBody
}

// CreateExpenseHandler handles POST /v1/expense.
type CreateExpenseHandler struct {
	Operator actionProcessor
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(op actionProcessor) *CreateExpenseHandler {
	return &CreateExpenseHandler{Operator: op}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-expense",
		Method:      http.MethodPost,
		Path:        "/v1/expense",
		Summary:     "Record expense",
		Description: "Records a new expense posting and reconciles the matching month's budget, if one exists.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

// parseCreateExpenseInput parses and validates the API input.
func parseCreateExpenseInput(input *CreateExpenseInput) (uuid.UUID, reconcile.Category, decimal.Decimal, time.Time, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return uuid.Nil, "", decimal.Zero, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	category, err := reconcile.ParseCategory(input.Body.Category)
	if err != nil {
		return uuid.Nil, "", decimal.Zero, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid category", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return uuid.Nil, "", decimal.Zero, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return uuid.Nil, "", decimal.Zero, time.Time{}, huma.NewError(http.StatusBadRequest, "amount must be positive")
	}

	expenseDate := time.Now()
	if input.Body.ExpenseDate != "" {
		expenseDate, err = time.Parse(time.RFC3339, input.Body.ExpenseDate)
		if err != nil {
			return uuid.Nil, "", decimal.Zero, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid expenseDate", err)
		}
	}
	return userID, category, amount, expenseDate, nil
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	userID, category, amount, expenseDate, err := parseCreateExpenseInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateExpense{
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		Description: input.Body.Description,
		ExpenseDate: expenseDate,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "user not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create expense", err)
	}

	return &CreateExpenseOutput{Body: CreateExpenseResponseBody{ID: action.ResultID.String()}}, nil
}
