package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/expense-tracker/internal/domain/model"
)

var errAmountType = errors.New("amount must be a number or a string")

// Amount keeps the textual form of a client supplied amount. It accepts both
// JSON numbers and strings; numeric validation happens in the usecase layer.
type Amount string

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errAmountType
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*a = Amount(n.String())
		return nil
	default:
		return errAmountType
	}
}

// CreateExpenseRequest describes a new expense payload.
type CreateExpenseRequest struct {
	Description string  `json:"description"`
	Amount      *Amount `json:"amount"`
	Category    *string `json:"category"`
}

// Draft converts the request into domain input.
func (r CreateExpenseRequest) Draft() model.ExpenseDraft {
	draft := model.ExpenseDraft{Description: r.Description, Category: r.Category}
	if r.Amount != nil {
		draft.Amount = string(*r.Amount)
	}
	return draft
}

// UpdateExpenseRequest describes a partial update; absent fields are nil.
type UpdateExpenseRequest struct {
	Description *string `json:"description"`
	Amount      *Amount `json:"amount"`
	Category    *string `json:"category"`
}

// Patch converts the request into domain input.
func (r UpdateExpenseRequest) Patch() model.ExpensePatch {
	patch := model.ExpensePatch{Description: r.Description, Category: r.Category}
	if r.Amount != nil {
		amount := string(*r.Amount)
		patch.Amount = &amount
	}
	return patch
}

// ExpenseResponse is the wire form of an expense.
type ExpenseResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewExpenseResponse maps a domain expense.
func NewExpenseResponse(e model.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// NewExpenseList maps a slice of expenses, never returning nil.
func NewExpenseList(expenses []model.Expense) []ExpenseResponse {
	resp := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, NewExpenseResponse(e))
	}
	return resp
}

// ExpenseMutationResponse is returned after create and update.
type ExpenseMutationResponse struct {
	Message string          `json:"message"`
	Expense ExpenseResponse `json:"expense"`
}

// CategorySpendResponse is the spend of one category; null means uncategorized.
type CategorySpendResponse struct {
	Category *string `json:"category"`
	Amount   float64 `json:"amount"`
}

// StatsResponse summarizes spend of the caller.
type StatsResponse struct {
	TotalSpent         float64                 `json:"total_spent"`
	SpendingByCategory []CategorySpendResponse `json:"spending_by_category"`
}

// NewStatsResponse maps domain stats.
func NewStatsResponse(s model.ExpenseStats) StatsResponse {
	resp := StatsResponse{
		TotalSpent:         s.TotalSpent,
		SpendingByCategory: make([]CategorySpendResponse, 0, len(s.SpendingByCategory)),
	}
	for _, c := range s.SpendingByCategory {
		resp.SpendingByCategory = append(resp.SpendingByCategory, CategorySpendResponse{Category: c.Category, Amount: c.Total})
	}
	return resp
}
