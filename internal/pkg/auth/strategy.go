package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidToken covers missing, malformed, expired and badly signed tokens.
var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues identity tokens and verifies them back to a user id.
type Strategy interface {
	IssueToken(userID uuid.UUID) (string, error)
	ParseToken(token string) (uuid.UUID, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
