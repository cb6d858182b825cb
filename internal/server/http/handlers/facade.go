package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/expense-tracker/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (uuid.UUID, error)
}

// ExpenseFacade encapsulates expense operations exposed via HTTP.
type ExpenseFacade interface {
	CreateExpense(ctx context.Context, userID uuid.UUID, draft model.ExpenseDraft) (*model.Expense, error)
	Expenses(ctx context.Context, userID uuid.UUID) ([]model.Expense, error)
	Expense(ctx context.Context, userID uuid.UUID, id string) (*model.Expense, error)
	UpdateExpense(ctx context.Context, userID uuid.UUID, id string, patch model.ExpensePatch) (*model.Expense, error)
	DeleteExpense(ctx context.Context, userID uuid.UUID, id string) error
	Stats(ctx context.Context, userID uuid.UUID) (*model.ExpenseStats, error)
}

// HealthFacade reports readiness of backing services.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// ExpenseTrackerFacade aggregates the full set of operations used across handlers.
type ExpenseTrackerFacade interface {
	AuthFacade
	ExpenseFacade
	HealthFacade
}
