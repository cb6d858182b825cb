package usecase

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/expense-tracker/internal/domain/errors"
)

// ParseAmount coerces the textual amount into a finite float. Only decimal
// notation is accepted; hex floats and digit separators are rejected.
func ParseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if !isDecimalNumber(raw) {
		return 0, domainErrors.ErrInvalidAmount
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, domainErrors.ErrInvalidAmount
	}
	return value, nil
}

func isDecimalNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}

func parseExpenseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, domainErrors.ErrInvalidID
	}
	return id, nil
}

func normalizeCategory(category *string) *string {
	if category == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*category)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
