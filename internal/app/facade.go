package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/expense-tracker/internal/domain/model"
	"github.com/polkiloo/expense-tracker/internal/usecase"
)

// HealthChecker reports readiness of a backing dependency.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ExpenseFacade is the single entry point of the HTTP layer into the use cases.
type ExpenseFacade struct {
	auth     *usecase.AuthUseCase
	expenses *usecase.ExpenseUseCase
	health   HealthChecker
}

func NewExpenseFacade(auth *usecase.AuthUseCase, expenses *usecase.ExpenseUseCase, health HealthChecker) *ExpenseFacade {
	return &ExpenseFacade{auth: auth, expenses: expenses, health: health}
}

func (f *ExpenseFacade) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, username, email, password)
}

func (f *ExpenseFacade) Login(ctx context.Context, email, password string) (string, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *ExpenseFacade) ParseToken(token string) (uuid.UUID, error) {
	return f.auth.ParseToken(token)
}

func (f *ExpenseFacade) CreateExpense(ctx context.Context, userID uuid.UUID, draft model.ExpenseDraft) (*model.Expense, error) {
	return f.expenses.Create(ctx, userID, draft)
}

func (f *ExpenseFacade) Expenses(ctx context.Context, userID uuid.UUID) ([]model.Expense, error) {
	return f.expenses.List(ctx, userID)
}

func (f *ExpenseFacade) Expense(ctx context.Context, userID uuid.UUID, id string) (*model.Expense, error) {
	return f.expenses.Get(ctx, userID, id)
}

func (f *ExpenseFacade) UpdateExpense(ctx context.Context, userID uuid.UUID, id string, patch model.ExpensePatch) (*model.Expense, error) {
	return f.expenses.Update(ctx, userID, id, patch)
}

func (f *ExpenseFacade) DeleteExpense(ctx context.Context, userID uuid.UUID, id string) error {
	return f.expenses.Delete(ctx, userID, id)
}

func (f *ExpenseFacade) Stats(ctx context.Context, userID uuid.UUID) (*model.ExpenseStats, error) {
	return f.expenses.Stats(ctx, userID)
}

// HealthCheck succeeds when no checker is configured.
func (f *ExpenseFacade) HealthCheck(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
