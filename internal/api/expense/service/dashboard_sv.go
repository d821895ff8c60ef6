package expenseService

import (
	"math"
	"sort"

	"github.com/mrniteshray/ExpenseTracker/internal/api/expense"
	contextPkg "github.com/mrniteshray/ExpenseTracker/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DashboardSummary scans all of the user's expenses in a single pass,
// accumulating per-category and overall totals at full precision. Rounding
// to 2 decimal places happens only on the way out; rounding partial sums
// first would drift from the true total.
func (s *expenseService) DashboardSummary(ctx context.Context, userID string) (expense.DashboardSummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	records, err := s.expenseRepository.GetByUser(ctx, userID, "")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get expenses for dashboard")
		return expense.DashboardSummaryResponse{}, expense.ErrDashboardSummary
	}

	type accumulator struct {
		total float64
		count int
	}

	perCategory := map[string]*accumulator{}
	var overallTotal float64
	totalCount := 0

	for _, record := range records {
		acc, ok := perCategory[record.Category]
		if !ok {
			acc = &accumulator{}
			perCategory[record.Category] = acc
		}
		acc.total += record.Amount
		acc.count++
		overallTotal += record.Amount
		totalCount++
	}

	summaries := make([]expense.CategorySummary, 0, len(perCategory))
	for category, acc := range perCategory {
		summaries = append(summaries, expense.CategorySummary{
			Category:    category,
			TotalAmount: round2(acc.total),
			Count:       acc.count,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalAmount != summaries[j].TotalAmount {
			return summaries[i].TotalAmount > summaries[j].TotalAmount
		}
		return summaries[i].Category < summaries[j].Category
	})

	return expense.DashboardSummaryResponse{
		OverallTotal: round2(overallTotal),
		TotalCount:   totalCount,
		PerCategory:  summaries,
	}, nil
}
