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

// VoucherHandler handles voucher HTTP requests
type VoucherHandler struct {
	voucherService *service.VoucherService
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(voucherService *service.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

// Create handles creating a voucher
func (h *VoucherHandler) Create(c *gin.Context) {
	var req request.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ledgerID, err := uuid.Parse(req.LedgerID)
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	input := &service.CreateVoucherInput{
		LedgerID:     ledgerID,
		VoucherType:  enum.VoucherType(req.VoucherType),
		PaymentType:  enum.PaymentType(req.PaymentType),
		StoneAmount:  req.StoneAmount,
		FineAmount:   req.FineAmount,
		Total:        req.Total,
		CashReceived: req.CashReceived,
		GoldRate:     req.GoldRate,
		SilverRate:   req.SilverRate,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.VoucherItemInput{
			ItemName:    item.ItemName,
			MetalType:   enum.MetalType(item.MetalType),
			Pieces:      item.Pieces,
			GrossWeight: item.GrossWeight,
			LessWeight:  item.LessWeight,
			NetWeight:   item.NetWeight,
			Wastage:     item.Wastage,
			FineWeight:  item.FineWeight,
			LabourRate:  item.LabourRate,
			Amount:      item.Amount,
		})
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Voucher created successfully", voucher)
}

// List handles listing vouchers
func (h *VoucherHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.voucherService.ListVouchers(
		c.Request.Context(),
		params,
		c.Query("search"),
		parseDate(c.Query("from")),
		parseDate(c.Query("to")),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Vouchers retrieved successfully", result)
}

// Get handles fetching a single voucher with its items
func (h *VoucherHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	voucher, err := h.voucherService.GetVoucher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Voucher retrieved successfully", voucher)
}

// GetBalanceDetails returns the bill's before/after balance panel
func (h *VoucherHandler) GetBalanceDetails(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	details, err := h.voucherService.GetBalanceDetails(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Balance details retrieved successfully", details)
}

// Delete handles deleting a voucher and recalculating the ledger balance
func (h *VoucherHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	if err := h.voucherService.DeleteVoucher(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Voucher deleted successfully", nil)
}
