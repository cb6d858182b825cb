package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account owning expenses.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
