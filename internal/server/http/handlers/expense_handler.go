package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/expense-tracker/internal/server/http/dto"
)

const (
	msgExpenseAdded   = "Expense added successfully"
	msgExpenseUpdated = "Expense updated successfully"
	msgExpenseDeleted = "Expense deleted successfully"
)

// ExpenseHandler manages expense endpoints of the authenticated user.
type ExpenseHandler struct {
	facade ExpenseFacade
}

// NewExpenseHandler constructs ExpenseHandler.
func NewExpenseHandler(facade ExpenseFacade) *ExpenseHandler {
	return &ExpenseHandler{facade: facade}
}

// Create handles POST /expenses/.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	expense, err := h.facade.CreateExpense(c.Request.Context(), CurrentUserID(c), req.Draft())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ExpenseMutationResponse{
		Message: msgExpenseAdded,
		Expense: dto.NewExpenseResponse(*expense),
	})
}

// List handles GET /expenses/.
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.facade.Expenses(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewExpenseList(expenses))
}

// Get handles GET /expenses/:id.
func (h *ExpenseHandler) Get(c *gin.Context) {
	expense, err := h.facade.Expense(c.Request.Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewExpenseResponse(*expense))
}

// Update handles PUT /expenses/:id.
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	expense, err := h.facade.UpdateExpense(c.Request.Context(), CurrentUserID(c), c.Param("id"), req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExpenseMutationResponse{
		Message: msgExpenseUpdated,
		Expense: dto.NewExpenseResponse(*expense),
	})
}

// Delete handles DELETE /expenses/:id.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteExpense(c.Request.Context(), CurrentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, msgExpenseDeleted)
}

// Stats handles GET /expenses/stats.
func (h *ExpenseHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStatsResponse(*stats))
}
