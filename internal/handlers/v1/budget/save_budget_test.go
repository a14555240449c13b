package budget

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/reconcile"
	"github.com/carson-networks/finance-tracker/internal/service"
	storagebudget "github.com/carson-networks/finance-tracker/internal/storage/budget"
)

// mockActionProcessor is a mock for actionProcessor.
type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// newSaveBudgetAPI registers the handler against a humatest API and returns it.
func newSaveBudgetAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSaveBudgetHandler(op).Register(api)
	return api
}

// -- parseSaveBudgetInput unit tests --

func TestParseSaveBudgetInput_ValidInput(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	input := &SaveBudgetInput{
		Body: SaveBudgetBody{
			UserID: userID.String(),
			Month:  3,
			Year:   2025,
			Categories: []SaveBudgetAllocation{
				{Category: "GROCERIES", Allocated: "450.00"},
				{Category: "RENT", Allocated: "1200"},
			},
		},
	}

	parsedUserID, allocations, err := parseSaveBudgetInput(input)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsedUserID)
	assert.Len(t, allocations, 2)
	assert.Equal(t, reconcile.CategoryGroceries, allocations[0].Category)
	assert.True(t, allocations[0].Allocated.Equal(decimal.RequireFromString("450.00")))
	assert.Equal(t, reconcile.CategoryRent, allocations[1].Category)
	assert.True(t, allocations[1].Allocated.Equal(decimal.RequireFromString("1200")))
}

func TestParseSaveBudgetInput_InvalidUserID(t *testing.T) {
	input := &SaveBudgetInput{
		Body: SaveBudgetBody{
			UserID:     "not-a-uuid",
			Month:      3,
			Year:       2025,
			Categories: []SaveBudgetAllocation{{Category: "RENT", Allocated: "1200"}},
		},
	}

	_, _, err := parseSaveBudgetInput(input)
	assert.Error(t, err)
}

func TestParseSaveBudgetInput_UnknownCategory(t *testing.T) {
	input := &SaveBudgetInput{
		Body: SaveBudgetBody{
			UserID:     uuid.Must(uuid.NewV4()).String(),
			Month:      3,
			Year:       2025,
			Categories: []SaveBudgetAllocation{{Category: "LOTTERY", Allocated: "5"}},
		},
	}

	_, _, err := parseSaveBudgetInput(input)
	assert.Error(t, err)
}

func TestParseSaveBudgetInput_NonPositiveAllocation(t *testing.T) {
	input := &SaveBudgetInput{
		Body: SaveBudgetBody{
			UserID:     uuid.Must(uuid.NewV4()).String(),
			Month:      3,
			Year:       2025,
			Categories: []SaveBudgetAllocation{{Category: "RENT", Allocated: "-10"}},
		},
	}

	_, _, err := parseSaveBudgetInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_SaveBudget_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	budgetID := uuid.Must(uuid.NewV4())

	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		save, ok := a.(*actions.SaveBudget)
		return ok && save.UserID == userID && save.Month == 3 && save.Year == 2025 &&
			len(save.Allocations) == 2
	})).Run(func(args mock.Arguments) {
		save := args.Get(1).(*actions.SaveBudget)
		save.Result = &storagebudget.Budget{
			ID:             budgetID,
			UserID:         userID,
			Month:          3,
			Year:           2025,
			TotalBudget:    decimal.RequireFromString("1650"),
			TotalRemaining: decimal.RequireFromString("1650"),
			Categories: []reconcile.Allocation{
				{Category: reconcile.CategoryGroceries, Allocated: decimal.RequireFromString("450"), Remaining: decimal.RequireFromString("450")},
				{Category: reconcile.CategoryRent, Allocated: decimal.RequireFromString("1200"), Remaining: decimal.RequireFromString("1200")},
			},
		}
	}).Return(nil)

	resp := newSaveBudgetAPI(t, mockOp).Put("/v1/budget", SaveBudgetBody{
		UserID: userID.String(),
		Month:  3,
		Year:   2025,
		Categories: []SaveBudgetAllocation{
			{Category: "GROCERIES", Allocated: "450"},
			{Category: "RENT", Allocated: "1200"},
		},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Budget
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, budgetID.String(), body.ID)
	assert.Equal(t, "1650", body.TotalBudget)
	assert.Len(t, body.Categories, 2)
	assert.Equal(t, "GROCERIES", body.Categories[0].Category)
	mockOp.AssertExpectations(t)
}

func TestHTTP_SaveBudget_DuplicateCategory(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(&reconcile.DuplicateCategoryError{Category: reconcile.CategoryRent})

	resp := newSaveBudgetAPI(t, mockOp).Put("/v1/budget", SaveBudgetBody{
		UserID: uuid.Must(uuid.NewV4()).String(),
		Month:  3,
		Year:   2025,
		Categories: []SaveBudgetAllocation{
			{Category: "RENT", Allocated: "1200"},
			{Category: "RENT", Allocated: "900"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_SaveBudget_UserNotFound(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(&service.BudgetOperationError{Op: "verify user", Err: service.ErrUserNotFound})

	resp := newSaveBudgetAPI(t, mockOp).Put("/v1/budget", SaveBudgetBody{
		UserID:     uuid.Must(uuid.NewV4()).String(),
		Month:      3,
		Year:       2025,
		Categories: []SaveBudgetAllocation{{Category: "RENT", Allocated: "1200"}},
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_SaveBudget_InvalidUserID(t *testing.T) {
	mockOp := new(mockActionProcessor)

	resp := newSaveBudgetAPI(t, mockOp).Put("/v1/budget", SaveBudgetBody{
		UserID:     "not-a-uuid",
		Month:      3,
		Year:       2025,
		Categories: []SaveBudgetAllocation{{Category: "RENT", Allocated: "1200"}},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_SaveBudget_MonthOutOfRange(t *testing.T) {
	mockOp := new(mockActionProcessor)

	// Huma schema validation rejects the request before the handler runs.
	resp := newSaveBudgetAPI(t, mockOp).Put("/v1/budget", SaveBudgetBody{
		UserID:     uuid.Must(uuid.NewV4()).String(),
		Month:      13,
		Year:       2025,
		Categories: []SaveBudgetAllocation{{Category: "RENT", Allocated: "1200"}},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}
