package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/expense-tracker/internal/domain/errors"
	"github.com/polkiloo/expense-tracker/internal/domain/model"
	"github.com/polkiloo/expense-tracker/internal/domain/repository"
	pkgAuth "github.com/polkiloo/expense-tracker/internal/pkg/auth"
)

const (
	reasonRegisterFields = "Must provide username, email, and password"
	reasonLoginFields    = "Must provide email and password"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	// dummyHash is compared on unknown emails so both login failures pay
	// the same hashing cost.
	dummyHash string
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	dummy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		dummy = ""
	}
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, dummyHash: dummy}
}

// Register creates a new user. Only the bcrypt hash of the password is stored.
func (u *AuthUseCase) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, domainErrors.Validation(reasonRegisterFields)
	}

	_, err := u.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainErrors.ErrAlreadyExists
	case !errors.Is(err, domainErrors.ErrNotFound):
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, username, email, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}

	return usr, nil
}

// Login validates credentials and returns a signed access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domainErrors.Validation(reasonLoginFields)
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			_ = u.hasher.Compare(u.dummyHash, password)
			return "", domainErrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return "", domainErrors.ErrInvalidCredentials
	}

	return u.tokens.IssueToken(usr.ID)
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
