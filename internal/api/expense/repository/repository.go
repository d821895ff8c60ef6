package expenseRepository

import (
	"github.com/mrniteshray/ExpenseTracker/internal/entity"
	"github.com/mrniteshray/ExpenseTracker/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/supabase-community/supabase-go"
	"golang.org/x/net/context"
)

const expensesTable = "expenses"

// Repository is the narrow interface over the Expense Store. The store only
// supports equality-filtered retrieval, so date ranges are never pushed down
// here; callers filter in memory.
type Repository interface {
	Create(ctx context.Context, expense entity.Expense) (entity.Expense, error)
	GetByID(ctx context.Context, id string) (entity.Expense, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	GetByUser(ctx context.Context, userID string, category string) ([]entity.Expense, error)
}

func New(client *supabase.Client, log *logrus.Logger, utils utils.IUtils) Repository {
	return &repository{
		client: client,
		log:    log,
		utils:  utils,
	}
}

type repository struct {
	client *supabase.Client
	log    *logrus.Logger
	utils  utils.IUtils
}
