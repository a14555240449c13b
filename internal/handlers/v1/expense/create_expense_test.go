package expense

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// mockActionProcessor is a mock for actionProcessor.
type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// newCreateExpenseAPI registers the handler against a humatest API and returns it.
func newCreateExpenseAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateExpenseHandler(op).Register(api)
	return api
}

// -- parseCreateExpenseInput unit tests --

func TestParseCreateExpenseInput_ValidInput(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	expenseDate := "2025-04-15T10:30:00Z"

	input := &CreateExpenseInput{
		Body: CreateExpenseBody{
			UserID:      userID.String(),
			Category:    "DINING_OUT",
			Amount:      "42.75",
			Description: "Dinner out",
			ExpenseDate: expenseDate,
		},
	}

	parsedUserID, parsedCategory, parsedAmount, parsedDate, err := parseCreateExpenseInput(input)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsedUserID)
	assert.Equal(t, reconcile.CategoryDiningOut, parsedCategory)
	assert.True(t, parsedAmount.Equal(decimal.RequireFromString("42.75")))
	expectedDate, _ := time.Parse(time.RFC3339, expenseDate)
	assert.True(t, parsedDate.Equal(expectedDate))
}

func TestParseCreateExpenseInput_DateDefaultsToNow(t *testing.T) {
	input := &CreateExpenseInput{
		Body: CreateExpenseBody{
			UserID:   uuid.Must(uuid.NewV4()).String(),
			Category: "GROCERIES",
			Amount:   "10.00",
		},
	}

	before := time.Now()
	_, _, _, parsedDate, err := parseCreateExpenseInput(input)
	assert.NoError(t, err)
	assert.False(t, parsedDate.Before(before))
}

func TestParseCreateExpenseInput_NonPositiveAmount(t *testing.T) {
	input := &CreateExpenseInput{
		Body: CreateExpenseBody{
			UserID:   uuid.Must(uuid.NewV4()).String(),
			Category: "GROCERIES",
			Amount:   "0",
		},
	}

	_, _, _, _, err := parseCreateExpenseInput(input)
	assert.Error(t, err)
}

func TestParseCreateExpenseInput_UnknownCategory(t *testing.T) {
	input := &CreateExpenseInput{
		Body: CreateExpenseBody{
			UserID:   uuid.Must(uuid.NewV4()).String(),
			Category: "MYSTERY",
			Amount:   "10.00",
		},
	}

	_, _, _, _, err := parseCreateExpenseInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateExpense_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	expenseID := uuid.Must(uuid.NewV4())

	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateExpense)
		return ok && create.UserID == userID &&
			create.Category == reconcile.CategoryDiningOut &&
			create.Amount.Equal(decimal.RequireFromString("42.75"))
	})).Run(func(args mock.Arguments) {
		create := args.Get(1).(*actions.CreateExpense)
		create.ResultID = expenseID
	}).Return(nil)

	resp := newCreateExpenseAPI(t, mockOp).Post("/v1/expense", CreateExpenseBody{
		UserID:      userID.String(),
		Category:    "DINING_OUT",
		Amount:      "42.75",
		Description: "Dinner out",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CreateExpenseResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, expenseID.String(), body.ID)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateExpense_UserNotFound(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(&service.BudgetOperationError{Op: "verify user", Err: service.ErrUserNotFound})

	resp := newCreateExpenseAPI(t, mockOp).Post("/v1/expense", CreateExpenseBody{
		UserID:   uuid.Must(uuid.NewV4()).String(),
		Category: "DINING_OUT",
		Amount:   "42.75",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateExpense_MissingRequiredFields(t *testing.T) {
	mockOp := new(mockActionProcessor)

	// Huma schema validation rejects the request before the handler runs.
	resp := newCreateExpenseAPI(t, mockOp).Post("/v1/expense", CreateExpenseBody{
		UserID: uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}
