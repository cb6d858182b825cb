package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/expense-tracker/internal/domain/errors"
	"github.com/polkiloo/expense-tracker/internal/metrics"
	"github.com/polkiloo/expense-tracker/internal/server/http/dto"
	"github.com/polkiloo/expense-tracker/internal/server/http/middleware"
)

const msgRegistered = "User registered successfully"

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if _, err := h.facade.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, msgRegistered)
}

// Login handles POST /user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			metrics.RecordAuthFailure(metrics.ReasonInvalidCredentials)
		}
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token})
}
