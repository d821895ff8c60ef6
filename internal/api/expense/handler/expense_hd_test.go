package expenseHandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/mrniteshray/ExpenseTracker/internal/api/expense"
	"github.com/mrniteshray/ExpenseTracker/internal/entity"
	"github.com/mrniteshray/ExpenseTracker/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeExpenseService struct {
	record  entity.Expense
	records []entity.Expense
	summary expense.DashboardSummaryResponse
	err     error
}

func (f *fakeExpenseService) CreateExpense(_ context.Context, _ expense.CreateExpenseRequest) (entity.Expense, error) {
	return f.record, f.err
}

func (f *fakeExpenseService) GetExpenseByID(_ context.Context, _ string, _ string) (entity.Expense, error) {
	return f.record, f.err
}

func (f *fakeExpenseService) UpdateExpense(_ context.Context, _ string, _ string, _ expense.UpdateExpenseRequest) (entity.Expense, error) {
	return f.record, f.err
}

func (f *fakeExpenseService) DeleteExpense(_ context.Context, _ string, _ string) error {
	return f.err
}

func (f *fakeExpenseService) ListExpenses(_ context.Context, _ expense.ListExpensesQuery) ([]entity.Expense, error) {
	return f.records, f.err
}

func (f *fakeExpenseService) DashboardSummary(_ context.Context, _ string) (expense.DashboardSummaryResponse, error) {
	return f.summary, f.err
}

func newTestApp(service *fakeExpenseService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	handler := New(logger, validator.New(), middleware.New(logger), service)
	handler.Start(app)
	return app
}

func sampleExpense() entity.Expense {
	return entity.Expense{
		ID:          "EXP000001",
		UserID:      "user-1",
		Amount:      12.5,
		Description: "groceries",
		Date:        "2024-03-10",
		Category:    "food",
		CreatedAt:   "2024-03-10T08:00:00.000000Z",
		UpdatedAt:   "2024-03-10T08:00:00.000000Z",
	}
}

func jsonBody(t *testing.T, payload interface{}) *bytes.Reader {
	encoded, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewReader(encoded)
}

func TestCreateExpenseHandler(t *testing.T) {
	app := newTestApp(&fakeExpenseService{record: sampleExpense()})

	req := httptest.NewRequest(fiber.MethodPost, "/expenses", jsonBody(t, expense.CreateExpenseRequest{
		Amount:      12.5,
		Description: "groceries",
		Date:        "2024-03-10",
		Category:    "food",
		UserID:      "user-1",
	}))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var got expense.ExpenseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "EXP000001", got.ID)
	assert.Equal(t, 12.5, got.Amount)
}

func TestCreateExpenseHandlerValidation(t *testing.T) {
	app := newTestApp(&fakeExpenseService{})

	testCases := []struct {
		name string
		req  expense.CreateExpenseRequest
	}{
		{
			name: "zero amount",
			req: expense.CreateExpenseRequest{
				Amount: 0, Description: "x", Date: "2024-03-10", Category: "food", UserID: "user-1",
			},
		},
		{
			name: "negative amount",
			req: expense.CreateExpenseRequest{
				Amount: -1, Description: "x", Date: "2024-03-10", Category: "food", UserID: "user-1",
			},
		},
		{
			name: "missing description",
			req: expense.CreateExpenseRequest{
				Amount: 1, Date: "2024-03-10", Category: "food", UserID: "user-1",
			},
		},
		{
			name: "bad date format",
			req: expense.CreateExpenseRequest{
				Amount: 1, Description: "x", Date: "10/03/2024", Category: "food", UserID: "user-1",
			},
		},
		{
			name: "missing user",
			req: expense.CreateExpenseRequest{
				Amount: 1, Description: "x", Date: "2024-03-10", Category: "food",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/expenses", jsonBody(t, tc.req))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGetExpenseHandler(t *testing.T) {
	app := newTestApp(&fakeExpenseService{record: sampleExpense()})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/expenses/EXP000001?user_id=user-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetExpenseHandlerMissingUserID(t *testing.T) {
	app := newTestApp(&fakeExpenseService{record: sampleExpense()})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/expenses/EXP000001", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetExpenseHandlerNotFound(t *testing.T) {
	app := newTestApp(&fakeExpenseService{err: expense.ErrExpenseNotFound})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/expenses/missing?user_id=user-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetExpenseHandlerForbidden(t *testing.T) {
	app := newTestApp(&fakeExpenseService{err: expense.ErrExpenseNotOwned})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/expenses/EXP000001?user_id=user-2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUpdateExpenseHandler(t *testing.T) {
	app := newTestApp(&fakeExpenseService{record: sampleExpense()})

	amount := 20.0
	req := httptest.NewRequest(fiber.MethodPut, "/expenses/EXP000001?user_id=user-1",
		jsonBody(t, expense.UpdateExpenseRequest{Amount: &amount}))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUpdateExpenseHandlerEmptyBody(t *testing.T) {
	app := newTestApp(&fakeExpenseService{record: sampleExpense()})

	req := httptest.NewRequest(fiber.MethodPut, "/expenses/EXP000001?user_id=user-1",
		bytes.NewReader([]byte(`{}`)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "update with no fields still succeeds")
}

func TestDeleteExpenseHandler(t *testing.T) {
	app := newTestApp(&fakeExpenseService{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/expenses/EXP000001?user_id=user-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got expense.DeleteExpenseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Success)
	assert.Equal(t, "Expense deleted", got.Message)
}

func TestDeleteExpenseHandlerNotFound(t *testing.T) {
	app := newTestApp(&fakeExpenseService{err: expense.ErrExpenseNotFound})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/expenses/missing?user_id=user-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListExpensesHandler(t *testing.T) {
	app := newTestApp(&fakeExpenseService{records: []entity.Expense{sampleExpense()}})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/expenses?user_id=user-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got []expense.ExpenseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "EXP000001", got[0].ID)
}

func TestListExpensesHandlerEmptyIsArray(t *testing.T) {
	app := newTestApp(&fakeExpenseService{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/expenses?user_id=user-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body), "empty list must serialize as [], not null")
}

func TestListExpensesHandlerMissingUserID(t *testing.T) {
	app := newTestApp(&fakeExpenseService{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/expenses", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
