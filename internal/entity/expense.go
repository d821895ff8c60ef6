package entity

import (
	"time"
	"unicode/utf8"

	"github.com/mrniteshray/ExpenseTracker/internal/api/expense"
)

// TimestampLayout is the fixed-width UTC layout used for created_at and
// updated_at. Fixed width keeps the stored strings lexicographically ordered.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// DateLayout is the calendar-date layout for the expense date field. The
// fixed-width ISO format is what makes lexicographic range filtering valid.
const DateLayout = "2006-01-02"

const (
	DescriptionMinLength = 1
	DescriptionMaxLength = 500
)

type Expense struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (e *Expense) Validate() error {
	if e.Amount <= 0 {
		return expense.ErrInvalidAmount
	}

	// Length bounds are in characters, not bytes, so multibyte text is not
	// penalized.
	if length := utf8.RuneCountInString(e.Description); length < DescriptionMinLength || length > DescriptionMaxLength {
		return expense.ErrInvalidDescription
	}

	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return expense.ErrInvalidDate
	}

	return nil
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
