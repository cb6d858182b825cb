package model

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a single spend record owned by exactly one user.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      float64
	// Category is nil for uncategorized expenses.
	Category  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExpenseDraft holds raw client input for a new expense. Amount keeps the
// textual form so it can be coerced and validated in one place.
type ExpenseDraft struct {
	Description string
	Amount      string
	Category    *string
}

// ExpensePatch describes a partial update; nil fields stay unchanged.
type ExpensePatch struct {
	Description *string
	Amount      *string
	Category    *string
}

// IsEmpty reports whether the patch carries no fields.
func (p ExpensePatch) IsEmpty() bool {
	return p.Description == nil && p.Amount == nil && p.Category == nil
}

// ExpenseChanges is a validated patch ready to be persisted.
type ExpenseChanges struct {
	Description   *string
	Amount        *float64
	Category      *string
	ClearCategory bool
}

// CategorySpend is the spend total of one category; nil Category groups
// uncategorized expenses.
type CategorySpend struct {
	Category *string
	Total    float64
}

// ExpenseStats aggregates spend of a user.
type ExpenseStats struct {
	TotalSpent         float64
	SpendingByCategory []CategorySpend
}
