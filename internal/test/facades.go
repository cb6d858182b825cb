package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/expense-tracker/internal/domain/model"
)

// ExpenseFacadeStub provides controllable behaviour for expense endpoints.
type ExpenseFacadeStub struct {
	CreateFn func(context.Context, uuid.UUID, model.ExpenseDraft) (*model.Expense, error)
	ListFn   func(context.Context, uuid.UUID) ([]model.Expense, error)
	GetFn    func(context.Context, uuid.UUID, string) (*model.Expense, error)
	UpdateFn func(context.Context, uuid.UUID, string, model.ExpensePatch) (*model.Expense, error)
	DeleteFn func(context.Context, uuid.UUID, string) error
	StatsFn  func(context.Context, uuid.UUID) (*model.ExpenseStats, error)
}

// CreateExpense delegates to provided function or echoes the draft.
func (s ExpenseFacadeStub) CreateExpense(ctx context.Context, userID uuid.UUID, draft model.ExpenseDraft) (*model.Expense, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, draft)
	}
	return &model.Expense{ID: uuid.New(), UserID: userID, Description: draft.Description, Amount: 1, Category: draft.Category, CreatedAt: time.Unix(0, 0).UTC(), UpdatedAt: time.Unix(0, 0).UTC()}, nil
}

// Expenses returns predefined expenses for given user.
func (s ExpenseFacadeStub) Expenses(ctx context.Context, userID uuid.UUID) ([]model.Expense, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.Expense{}, nil
}

// Expense returns a single expense.
func (s ExpenseFacadeStub) Expense(ctx context.Context, userID uuid.UUID, id string) (*model.Expense, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID, id)
	}
	return &model.Expense{ID: uuid.New(), UserID: userID}, nil
}

// UpdateExpense applies a patch.
func (s ExpenseFacadeStub) UpdateExpense(ctx context.Context, userID uuid.UUID, id string, patch model.ExpensePatch) (*model.Expense, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, id, patch)
	}
	return &model.Expense{ID: uuid.New(), UserID: userID}, nil
}

// DeleteExpense removes an expense.
func (s ExpenseFacadeStub) DeleteExpense(ctx context.Context, userID uuid.UUID, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	return nil
}

// Stats returns spending statistics.
func (s ExpenseFacadeStub) Stats(ctx context.Context, userID uuid.UUID) (*model.ExpenseStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx, userID)
	}
	return &model.ExpenseStats{SpendingByCategory: []model.CategorySpend{}}, nil
}

// HealthCheckerStub reports configured health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

// ExpenseTrackerFacadeStub aggregates facade dependencies for HTTP layer tests.
type ExpenseTrackerFacadeStub struct {
	AuthFacadeStub
	ExpenseFacadeStub
	HealthCheckerStub
}
