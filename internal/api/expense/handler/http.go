package expenseHandler

import (
	expenseService "github.com/mrniteshray/ExpenseTracker/internal/api/expense/service"
	"github.com/mrniteshray/ExpenseTracker/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ExpenseHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	expenseService expenseService.IExpenseService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	expenseService expenseService.IExpenseService,
) *ExpenseHandler {
	return &ExpenseHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		expenseService: expenseService,
	}
}

func (h *ExpenseHandler) Start(srv fiber.Router) {
	expenses := srv.Group("/expenses")

	expenses.Post("/", h.CreateExpense)
	expenses.Get("/", h.ListExpenses)
	expenses.Get("/:id", h.GetExpenseByID)
	expenses.Put("/:id", h.UpdateExpense)
	expenses.Delete("/:id", h.DeleteExpense)

	srv.Get("/dashboard/summary", h.DashboardSummary)
}
