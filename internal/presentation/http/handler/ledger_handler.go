package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/application/service"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/dto/request"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/dto/response"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
)

// LedgerHandler handles customer ledger HTTP requests
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// Create handles creating a ledger
func (h *LedgerHandler) Create(c *gin.Context) {
	var req request.CreateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ledger, err := h.ledgerService.CreateLedger(c.Request.Context(), &service.CreateLedgerInput{
		Name:                    req.Name,
		Phone:                   req.Phone,
		LedgerType:              enum.LedgerType(req.LedgerType),
		OpeningAmount:           req.OpeningAmount,
		OpeningGoldFineWeight:   req.OpeningGoldFineWeight,
		OpeningSilverFineWeight: req.OpeningSilverFineWeight,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ledger created successfully", ledger)
}

// List handles listing ledgers
func (h *LedgerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.ledgerService.ListLedgers(
		c.Request.Context(),
		params,
		c.Query("search"),
		enum.LedgerType(c.Query("ledger_type")),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Ledgers retrieved successfully", result)
}

// Get handles fetching a single ledger
func (h *LedgerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	ledger, err := h.ledgerService.GetLedger(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger retrieved successfully", ledger)
}

// Update handles updating a ledger's identity fields
func (h *LedgerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	var req request.UpdateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ledger, err := h.ledgerService.UpdateLedger(c.Request.Context(), &service.UpdateLedgerInput{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger updated successfully", ledger)
}

// Delete handles deleting a ledger
func (h *LedgerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	if err := h.ledgerService.DeleteLedger(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger deleted successfully", nil)
}

// GetBalance returns the ledger's live balance. The perspective query decides
// whose debt positive numbers express; the default is the customer view.
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	perspective := ledgerbook.CustomerLiability
	if c.Query("perspective") == string(ledgerbook.ShopLiability) {
		perspective = ledgerbook.ShopLiability
	}

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), id, perspective)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Balance retrieved successfully", balance)
}

// GetTransactions returns the ledger's merged voucher and settlement history
func (h *LedgerHandler) GetTransactions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	transactions, err := h.ledgerService.GetTransactions(
		c.Request.Context(),
		id,
		parseDate(c.Query("from")),
		parseDate(c.Query("to")),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transactions retrieved successfully", gin.H{
		"transactions": transactions,
	})
}

// GetStatement returns the ledger's statement for a date window
func (h *LedgerHandler) GetStatement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	statement, err := h.ledgerService.GetStatement(
		c.Request.Context(),
		id,
		parseDate(c.Query("from")),
		parseDate(c.Query("to")),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Statement retrieved successfully", statement)
}

// Recalculate replays the ledger's full history and rewrites the live balance
func (h *LedgerHandler) Recalculate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	ledger, err := h.ledgerService.RecalculateBalance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Balance recalculated successfully", ledger)
}

// DeleteAllVouchers wipes the ledger's vouchers and resets the balance to
// the opening balance
func (h *LedgerHandler) DeleteAllVouchers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	removed, err := h.ledgerService.DeleteAllVouchers(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vouchers deleted successfully", gin.H{
		"deleted_count": removed,
	})
}
