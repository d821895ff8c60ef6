package expenseHandler

import (
	"errors"
	"time"

	"github.com/mrniteshray/ExpenseTracker/internal/api/expense"
	"github.com/mrniteshray/ExpenseTracker/internal/entity"
	contextPkg "github.com/mrniteshray/ExpenseTracker/pkg/context"
	"github.com/mrniteshray/ExpenseTracker/pkg/handlerUtil"
	"github.com/mrniteshray/ExpenseTracker/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func toExpenseResponse(record entity.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:          record.ID,
		Amount:      record.Amount,
		Description: record.Description,
		Date:        record.Date,
		Category:    record.Category,
		UserID:      record.UserID,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func (h *ExpenseHandler) CreateExpense(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create expense request")

	var req expense.CreateExpenseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	created, err := h.expenseService.CreateExpense(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_expense")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, toExpenseResponse(created))
	}
}

func (h *ExpenseHandler) GetExpenseByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get expense by ID request")

	id := ctx.Params("id")
	userID := ctx.Query("user_id")
	if userID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("user_id query parameter is required"), ctx.Path())
	}

	record, err := h.expenseService.GetExpenseByID(c, id, userID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_expense")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, toExpenseResponse(record))
	}
}

func (h *ExpenseHandler) UpdateExpense(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update expense request")

	id := ctx.Params("id")
	userID := ctx.Query("user_id")
	if userID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("user_id query parameter is required"), ctx.Path())
	}

	var req expense.UpdateExpenseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	updated, err := h.expenseService.UpdateExpense(c, id, userID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_expense")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, toExpenseResponse(updated))
	}
}

func (h *ExpenseHandler) DeleteExpense(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete expense request")

	id := ctx.Params("id")
	userID := ctx.Query("user_id")
	if userID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("user_id query parameter is required"), ctx.Path())
	}

	if err := h.expenseService.DeleteExpense(c, id, userID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_expense")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, expense.DeleteExpenseResponse{
			Success: true,
			Message: "Expense deleted",
		})
	}
}

func (h *ExpenseHandler) ListExpenses(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list expenses request")

	query := expense.ListExpensesQuery{
		UserID:    ctx.Query("user_id"),
		Category:  ctx.Query("category"),
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	records, err := h.expenseService.ListExpenses(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_expenses")
	}

	responses := make([]expense.ExpenseResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toExpenseResponse(record))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, responses)
	}
}
