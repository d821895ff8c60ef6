package expenseService

import (
	"github.com/mrniteshray/ExpenseTracker/internal/api/expense"
	expenseRepository "github.com/mrniteshray/ExpenseTracker/internal/api/expense/repository"
	"github.com/mrniteshray/ExpenseTracker/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IExpenseService interface {
	CreateExpense(ctx context.Context, req expense.CreateExpenseRequest) (entity.Expense, error)
	GetExpenseByID(ctx context.Context, id string, userID string) (entity.Expense, error)
	UpdateExpense(ctx context.Context, id string, userID string, req expense.UpdateExpenseRequest) (entity.Expense, error)
	DeleteExpense(ctx context.Context, id string, userID string) error
	ListExpenses(ctx context.Context, query expense.ListExpensesQuery) ([]entity.Expense, error)
	DashboardSummary(ctx context.Context, userID string) (expense.DashboardSummaryResponse, error)
}

type expenseService struct {
	log               *logrus.Logger
	expenseRepository expenseRepository.Repository
}

func NewExpenseService(log *logrus.Logger, er expenseRepository.Repository) IExpenseService {
	return &expenseService{
		log:               log,
		expenseRepository: er,
	}
}
