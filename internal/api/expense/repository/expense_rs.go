package expenseRepository

import (
	"encoding/json"
	"time"

	"github.com/mrniteshray/ExpenseTracker/internal/api/expense"
	"github.com/mrniteshray/ExpenseTracker/internal/entity"
	contextPkg "github.com/mrniteshray/ExpenseTracker/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (r *repository) Create(c context.Context, record entity.Expense) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)

	id, err := r.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate expense ID")
		return entity.Expense{}, err
	}
	record.ID = id

	data, _, err := r.client.From(expensesTable).
		Insert(record, false, "", "", "").
		Execute()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to insert expense")
		return entity.Expense{}, err
	}

	var created []entity.Expense
	if err := json.Unmarshal(data, &created); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to parse inserted expense")
		return entity.Expense{}, err
	}
	if len(created) > 0 {
		return created[0], nil
	}

	return record, nil
}

func (r *repository) GetByID(c context.Context, id string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)

	data, _, err := r.client.From(expensesTable).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get expense by ID")
		return entity.Expense{}, err
	}

	var records []entity.Expense
	if err := json.Unmarshal(data, &records); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to parse expense")
		return entity.Expense{}, err
	}

	if len(records) == 0 {
		return entity.Expense{}, expense.ErrExpenseNotFound
	}

	return records[0], nil
}

func (r *repository) Patch(c context.Context, id string, fields map[string]interface{}) error {
	requestID := contextPkg.GetRequestID(c)

	_, _, err := r.client.From(expensesTable).
		Update(fields, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to patch expense")
		return err
	}

	return nil
}

func (r *repository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	_, _, err := r.client.From(expensesTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete expense")
		return err
	}

	return nil
}

func (r *repository) GetByUser(c context.Context, userID string, category string) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)

	query := r.client.From(expensesTable).
		Select("*", "", false).
		Eq("user_id", userID)

	if category != "" {
		query = query.Eq("category", category)
	}

	data, _, err := query.Execute()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to query expenses by user")
		return nil, err
	}

	var records []entity.Expense
	if err := json.Unmarshal(data, &records); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to parse expenses")
		return nil, err
	}

	return records, nil
}
