package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/application/service"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/dto/request"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/dto/response"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles recording an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateExpenseInput{
		Category:      req.Category,
		Amount:        req.Amount,
		PaymentMethod: enum.ExpenseMethod(req.PaymentMethod),
		Description:   req.Description,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// List handles listing expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.expenseService.ListExpenses(
		c.Request.Context(),
		params,
		c.Query("category"),
		parseDate(c.Query("from")),
		parseDate(c.Query("to")),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// Get handles fetching a single expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// Update handles updating an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req request.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateExpenseInput{
		ID:          id,
		Date:        req.Date,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.PaymentMethod != nil {
		method := enum.ExpenseMethod(*req.PaymentMethod)
		input.PaymentMethod = &method
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles deleting an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense deleted successfully", nil)
}

// GetSummary handles aggregating expenses per payment method for a window
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	summary, err := h.expenseService.GetSummary(
		c.Request.Context(),
		parseDate(c.Query("from")),
		parseDate(c.Query("to")),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense summary retrieved successfully", summary)
}
