package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/SscSPs/kas_kelas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
	}
}

// registerExpenseRoutes registers all expense-related routes.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.POST("", h.createExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Description Records money spent out of the class fund. The expense reduces the saldo.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// getExpense godoc
// @Summary Get an expense by ID
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListExpensesResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses))
}

// updateExpense godoc
// @Summary Update an expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Expense ID"
// @Param   expense body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Param   id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}
