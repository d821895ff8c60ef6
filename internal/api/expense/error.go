package expense

import (
	"net/http"

	"github.com/mrniteshray/ExpenseTracker/pkg/response"
)

var (
	ErrExpenseNotFound    = response.NewError(http.StatusNotFound, "expense not found")
	ErrExpenseNotOwned    = response.NewError(http.StatusForbidden, "not authorized")
	ErrInvalidAmount      = response.NewError(http.StatusBadRequest, "amount must be greater than zero")
	ErrInvalidDescription = response.NewError(http.StatusBadRequest, "description must be between 1 and 500 characters")
	ErrInvalidDate        = response.NewError(http.StatusBadRequest, "date must be a calendar date in YYYY-MM-DD format")
	ErrCreateExpense      = response.NewError(http.StatusInternalServerError, "failed to create expense")
	ErrUpdateExpense      = response.NewError(http.StatusInternalServerError, "failed to update expense")
	ErrDeleteExpense      = response.NewError(http.StatusInternalServerError, "failed to delete expense")
	ErrListExpenses       = response.NewError(http.StatusInternalServerError, "failed to list expenses")
	ErrDashboardSummary   = response.NewError(http.StatusInternalServerError, "failed to build dashboard summary")
)
