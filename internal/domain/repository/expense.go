package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/expense-tracker/internal/domain/model"
)

// ExpenseRepository describes persistence of expenses. Every method taking
// an expense id also takes the owner id and must filter by both.
type ExpenseRepository interface {
	Create(ctx context.Context, userID uuid.UUID, description string, amount float64, category *string) (*model.Expense, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Expense, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*model.Expense, error)
	Update(ctx context.Context, userID, id uuid.UUID, changes model.ExpenseChanges) (*model.Expense, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	CategoryTotals(ctx context.Context, userID uuid.UUID) ([]model.CategorySpend, error)
}
