package expenseHandler

import (
	"errors"
	"time"

	contextPkg "github.com/mrniteshray/ExpenseTracker/pkg/context"
	"github.com/mrniteshray/ExpenseTracker/pkg/handlerUtil"
	"github.com/mrniteshray/ExpenseTracker/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ExpenseHandler) DashboardSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing dashboard summary request")

	userID := ctx.Query("user_id")
	if userID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("user_id query parameter is required"), ctx.Path())
	}

	summary, err := h.expenseService.DashboardSummary(c, userID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "dashboard_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, summary)
	}
}
