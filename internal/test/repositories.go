package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/expense-tracker/internal/domain/errors"
	"github.com/polkiloo/expense-tracker/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[uuid.UUID]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[uuid.UUID]*model.User),
	}
}

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[uuid.UUID]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ExpenseRepositoryStub keeps expenses in memory and filters every lookup
// by owner, mirroring the SQL store.
type ExpenseRepositoryStub struct {
	mu    sync.Mutex
	items map[uuid.UUID]model.Expense
	clock time.Time
	Err   error
}

// NewExpenseRepositoryStub constructs an empty in-memory expense store.
func NewExpenseRepositoryStub() *ExpenseRepositoryStub {
	return &ExpenseRepositoryStub{
		items: make(map[uuid.UUID]model.Expense),
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *ExpenseRepositoryStub) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

// Create stores a new expense for userID.
func (s *ExpenseRepositoryStub) Create(ctx context.Context, userID uuid.UUID, description string, amount float64, category *string) (*model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	now := s.tick()
	exp := model.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Category:    cloneString(category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.items[exp.ID] = exp
	return &exp, nil
}

// ListByUser returns the user's expenses in creation order.
func (s *ExpenseRepositoryStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Expense, 0)
	for _, exp := range s.items {
		if exp.UserID == userID {
			result = append(result, exp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

// Get returns the expense when it exists and belongs to userID.
func (s *ExpenseRepositoryStub) Get(ctx context.Context, userID, id uuid.UUID) (*model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	exp, ok := s.items[id]
	if !ok || exp.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return &exp, nil
}

// Update applies changes to an owned expense.
func (s *ExpenseRepositoryStub) Update(ctx context.Context, userID, id uuid.UUID, changes model.ExpenseChanges) (*model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	exp, ok := s.items[id]
	if !ok || exp.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	if changes.Description != nil {
		exp.Description = *changes.Description
	}
	if changes.Amount != nil {
		exp.Amount = *changes.Amount
	}
	if changes.Category != nil {
		exp.Category = cloneString(changes.Category)
	} else if changes.ClearCategory {
		exp.Category = nil
	}
	exp.UpdatedAt = s.tick()
	s.items[id] = exp
	return &exp, nil
}

// Delete removes an owned expense.
func (s *ExpenseRepositoryStub) Delete(ctx context.Context, userID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	exp, ok := s.items[id]
	if !ok || exp.UserID != userID {
		return domainErrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// CategoryTotals sums the user's expenses per category in no particular order.
func (s *ExpenseRepositoryStub) CategoryTotals(ctx context.Context, userID uuid.UUID) ([]model.CategorySpend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var uncategorized *model.CategorySpend
	byName := make(map[string]*model.CategorySpend)
	for _, exp := range s.items {
		if exp.UserID != userID {
			continue
		}
		if exp.Category == nil {
			if uncategorized == nil {
				uncategorized = &model.CategorySpend{}
			}
			uncategorized.Total += exp.Amount
			continue
		}
		entry, ok := byName[*exp.Category]
		if !ok {
			entry = &model.CategorySpend{Category: cloneString(exp.Category)}
			byName[*exp.Category] = entry
		}
		entry.Total += exp.Amount
	}

	result := make([]model.CategorySpend, 0, len(byName)+1)
	for _, entry := range byName {
		result = append(result, *entry)
	}
	if uncategorized != nil {
		result = append(result, *uncategorized)
	}
	return result, nil
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
