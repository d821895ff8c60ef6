package expense

type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required,min=1,max=500"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Category    string  `json:"category" validate:"required"`
	UserID      string  `json:"user_id" validate:"required"`
}

// UpdateExpenseRequest carries a partial field set; nil means "leave
// untouched". Present fields are validated against the same constraints
// as creation.
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	Description *string  `json:"description" validate:"omitempty,min=1,max=500"`
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Category    *string  `json:"category"`
}

type ListExpensesQuery struct {
	UserID    string `json:"user_id" validate:"required"`
	Category  string `json:"category"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	UserID      string  `json:"user_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type DeleteExpenseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CategorySummary struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
	Count       int     `json:"count"`
}

type DashboardSummaryResponse struct {
	OverallTotal float64           `json:"overall_total"`
	TotalCount   int               `json:"total_count"`
	PerCategory  []CategorySummary `json:"per_category"`
}
