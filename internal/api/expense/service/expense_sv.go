package expenseService

import (
	"sort"
	"time"

	"github.com/mrniteshray/ExpenseTracker/internal/api/expense"
	"github.com/mrniteshray/ExpenseTracker/internal/entity"
	contextPkg "github.com/mrniteshray/ExpenseTracker/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// authorize is the single ownership check applied before any read, update or
// delete of a fetched record. Existence is confirmed before this runs, so a
// non-owner probing a live record gets 403 while a dead one gets 404; that
// ordering leaks existence and is kept to match the original API contract.
func authorize(record entity.Expense, userID string) error {
	if record.UserID != userID {
		return expense.ErrExpenseNotOwned
	}
	return nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req expense.CreateExpenseRequest) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	now := entity.FormatTimestamp(time.Now())
	record := entity.Expense{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Constraints are checked before any store interaction.
	if err := record.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid expense data")
		return entity.Expense{}, err
	}

	created, err := s.expenseRepository.Create(ctx, record)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create expense")
		return entity.Expense{}, expense.ErrCreateExpense
	}

	return created, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, id string, userID string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	record, err := s.expenseRepository.GetByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get expense by ID")
		return entity.Expense{}, err
	}

	if err := authorize(record, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"expense_user_id": record.UserID,
			"request_user_id": userID,
		}).Warn("Expense does not belong to user")
		return entity.Expense{}, err
	}

	return record, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, id string, userID string, req expense.UpdateExpenseRequest) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	existing, err := s.expenseRepository.GetByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get existing expense")
		return entity.Expense{}, err
	}

	if err := authorize(existing, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"expense_user_id": existing.UserID,
			"request_user_id": userID,
		}).Warn("Expense does not belong to user")
		return entity.Expense{}, err
	}

	// Merge/patch semantics: only present fields change, updated_at is
	// always refreshed.
	fields := map[string]interface{}{}
	if req.Amount != nil {
		existing.Amount = *req.Amount
		fields["amount"] = *req.Amount
	}
	if req.Description != nil {
		existing.Description = *req.Description
		fields["description"] = *req.Description
	}
	if req.Date != nil {
		existing.Date = *req.Date
		fields["date"] = *req.Date
	}
	if req.Category != nil {
		existing.Category = *req.Category
		fields["category"] = *req.Category
	}
	fields["updated_at"] = entity.FormatTimestamp(time.Now())

	if err := existing.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid expense data")
		return entity.Expense{}, err
	}

	if err := s.expenseRepository.Patch(ctx, id, fields); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to patch expense")
		return entity.Expense{}, expense.ErrUpdateExpense
	}

	// Re-fetch so the caller sees exactly what the store holds.
	updated, err := s.expenseRepository.GetByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to re-fetch updated expense")
		return entity.Expense{}, expense.ErrUpdateExpense
	}

	return updated, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	existing, err := s.expenseRepository.GetByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get existing expense")
		return err
	}

	if err := authorize(existing, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"expense_user_id": existing.UserID,
			"request_user_id": userID,
		}).Warn("Expense does not belong to user")
		return err
	}

	// Hard delete, no tombstone. A second delete of the same id fails the
	// existence check above with NotFound; this endpoint is not idempotent.
	if err := s.expenseRepository.Delete(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete expense")
		return expense.ErrDeleteExpense
	}

	return nil
}

func (s *expenseService) ListExpenses(ctx context.Context, query expense.ListExpensesQuery) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(ctx)

	records, err := s.expenseRepository.GetByUser(ctx, query.UserID, query.Category)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    query.UserID,
			"error":      err.Error(),
		}).Error("Failed to get expenses by user")
		return nil, expense.ErrListExpenses
	}

	// The store only supports equality filters, so the date range is applied
	// here over every matching record. O(n) in the user's expense count; a
	// known scaling limit since neither pagination nor indexing is in scope.
	filtered := make([]entity.Expense, 0, len(records))
	for _, record := range records {
		if query.StartDate != "" && record.Date < query.StartDate {
			continue
		}
		if query.EndDate != "" && record.Date > query.EndDate {
			continue
		}
		filtered = append(filtered, record)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date > filtered[j].Date
		}
		return filtered[i].ID > filtered[j].ID
	})

	return filtered, nil
}
