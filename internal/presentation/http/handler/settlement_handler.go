package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/application/service"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/dto/request"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/dto/response"
)

// SettlementHandler handles settlement HTTP requests
type SettlementHandler struct {
	settlementService *service.SettlementService
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlementService *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

// Create handles recording a settlement
func (h *SettlementHandler) Create(c *gin.Context) {
	var req request.CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ledgerID, err := uuid.Parse(req.LedgerID)
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	input := &service.CreateSettlementInput{
		LedgerID:  ledgerID,
		MetalType: enum.MetalType(req.MetalType),
		MetalRate: req.MetalRate,
		FineGiven: req.FineGiven,
		Amount:    req.Amount,
		Narration: req.Narration,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	settlement, err := h.settlementService.CreateSettlement(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Settlement recorded successfully", settlement)
}

// Get handles fetching a single settlement
func (h *SettlementHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid settlement ID")
		return
	}

	settlement, err := h.settlementService.GetSettlement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settlement retrieved successfully", settlement)
}

// ListByLedger handles listing a ledger's settlements
func (h *SettlementHandler) ListByLedger(c *gin.Context) {
	ledgerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	settlements, err := h.settlementService.ListSettlements(c.Request.Context(), ledgerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settlements retrieved successfully", gin.H{
		"settlements": settlements,
	})
}

// Delete handles deleting a settlement and recalculating the ledger balance
func (h *SettlementHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid settlement ID")
		return
	}

	if err := h.settlementService.DeleteSettlement(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settlement deleted successfully", nil)
}

// Calculate resolves the rate/fine/amount triple for the entry form
func (h *SettlementHandler) Calculate(c *gin.Context) {
	var req request.CalculateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result := h.settlementService.Calculate(&service.CalculateInput{
		MetalRate: req.MetalRate,
		FineGiven: req.FineGiven,
		Amount:    req.Amount,
	})

	response.OK(c, "Calculation completed", result)
}
