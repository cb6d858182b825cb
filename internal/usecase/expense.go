package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/expense-tracker/internal/domain/errors"
	"github.com/polkiloo/expense-tracker/internal/domain/model"
	"github.com/polkiloo/expense-tracker/internal/domain/repository"
)

const (
	reasonExpenseFields    = "Must provide description and amount"
	reasonEmptyDescription = "Description must not be empty"
)

// ExpenseUseCase manages expenses on behalf of their owner. Every operation
// takes the owner id from the authenticated caller.
type ExpenseUseCase struct {
	expenses repository.ExpenseRepository
}

// NewExpenseUseCase constructs ExpenseUseCase.
func NewExpenseUseCase(expenses repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenses: expenses}
}

// Create validates the draft and stores a new expense owned by ownerID.
func (u *ExpenseUseCase) Create(ctx context.Context, ownerID uuid.UUID, draft model.ExpenseDraft) (*model.Expense, error) {
	description := strings.TrimSpace(draft.Description)
	if description == "" || strings.TrimSpace(draft.Amount) == "" {
		return nil, domainErrors.Validation(reasonExpenseFields)
	}

	amount, err := ParseAmount(draft.Amount)
	if err != nil {
		return nil, err
	}
	// Zero in any spelling ("0", "0.00", "-0") counts as a missing amount.
	if amount == 0 {
		return nil, domainErrors.Validation(reasonExpenseFields)
	}

	return u.expenses.Create(ctx, ownerID, description, amount, normalizeCategory(draft.Category))
}

// List returns every expense of the owner.
func (u *ExpenseUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]model.Expense, error) {
	return u.expenses.ListByUser(ctx, ownerID)
}

// Get returns a single expense. Expenses of other users are reported as not found.
func (u *ExpenseUseCase) Get(ctx context.Context, ownerID uuid.UUID, rawID string) (*model.Expense, error) {
	id, err := parseExpenseID(rawID)
	if err != nil {
		return nil, err
	}
	return u.expenses.Get(ctx, ownerID, id)
}

// Update applies the present fields of patch and returns the stored result.
func (u *ExpenseUseCase) Update(ctx context.Context, ownerID uuid.UUID, rawID string, patch model.ExpensePatch) (*model.Expense, error) {
	id, err := parseExpenseID(rawID)
	if err != nil {
		return nil, err
	}

	changes, err := buildChanges(patch)
	if err != nil {
		return nil, err
	}

	current, err := u.expenses.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	return u.expenses.Update(ctx, ownerID, id, changes)
}

// Delete removes the expense permanently.
func (u *ExpenseUseCase) Delete(ctx context.Context, ownerID uuid.UUID, rawID string) error {
	id, err := parseExpenseID(rawID)
	if err != nil {
		return err
	}
	return u.expenses.Delete(ctx, ownerID, id)
}

// Stats aggregates the owner's spend overall and per category. Categories are
// ordered by total descending, then by name with uncategorized last.
func (u *ExpenseUseCase) Stats(ctx context.Context, ownerID uuid.UUID) (*model.ExpenseStats, error) {
	totals, err := u.expenses.CategoryTotals(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats := &model.ExpenseStats{SpendingByCategory: make([]model.CategorySpend, 0, len(totals))}
	for _, t := range totals {
		stats.TotalSpent += t.Total
		stats.SpendingByCategory = append(stats.SpendingByCategory, t)
	}

	sort.SliceStable(stats.SpendingByCategory, func(i, j int) bool {
		a, b := stats.SpendingByCategory[i], stats.SpendingByCategory[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		switch {
		case a.Category == nil:
			return false
		case b.Category == nil:
			return true
		default:
			return *a.Category < *b.Category
		}
	})

	return stats, nil
}

func buildChanges(patch model.ExpensePatch) (model.ExpenseChanges, error) {
	var changes model.ExpenseChanges

	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		if description == "" {
			return changes, domainErrors.Validation(reasonEmptyDescription)
		}
		changes.Description = &description
	}

	if patch.Amount != nil {
		amount, err := ParseAmount(*patch.Amount)
		if err != nil {
			return changes, err
		}
		changes.Amount = &amount
	}

	if patch.Category != nil {
		changes.Category = normalizeCategory(patch.Category)
		changes.ClearCategory = changes.Category == nil
	}

	return changes, nil
}
