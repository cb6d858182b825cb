package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/expense-tracker/internal/domain/errors"
	"github.com/polkiloo/expense-tracker/internal/server/http/dto"
	"github.com/polkiloo/expense-tracker/internal/server/http/middleware"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgInvalidAmount = "Amount must be a number"
	msgInvalidID     = "Invalid expense id"
	msgEmailTaken    = "Email already exists"
	msgBadLogin      = "Invalid email or password"
	msgNotFound      = "Expense not found"
	msgInternal      = "Internal server error"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) uuid.UUID {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return uuid.Nil
	}
	id, _ := val.(uuid.UUID)
	return id
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.MessageResponse{Message: message})
}

// respondError maps domain errors onto HTTP statuses. Unknown errors are
// attached to the context so the request logger records them.
func respondError(c *gin.Context, err error) {
	var vErr *domainErrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondMessage(c, http.StatusBadRequest, vErr.Reason)
	case errors.Is(err, domainErrors.ErrInvalidAmount):
		respondMessage(c, http.StatusBadRequest, msgInvalidAmount)
	case errors.Is(err, domainErrors.ErrInvalidID):
		respondMessage(c, http.StatusBadRequest, msgInvalidID)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		respondMessage(c, http.StatusConflict, msgEmailTaken)
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		respondMessage(c, http.StatusUnauthorized, msgBadLogin)
	case errors.Is(err, domainErrors.ErrNotFound):
		respondMessage(c, http.StatusNotFound, msgNotFound)
	default:
		_ = c.Error(err)
		respondMessage(c, http.StatusInternalServerError, msgInternal)
	}
}
