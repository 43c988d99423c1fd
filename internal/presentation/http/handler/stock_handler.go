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

// StockHandler handles stock HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Create handles creating a stock item
func (h *StockHandler) Create(c *gin.Context) {
	var req request.CreateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.stockService.CreateStockItem(c.Request.Context(), &service.CreateStockItemInput{
		ItemName:    req.ItemName,
		MetalType:   enum.MetalType(req.MetalType),
		Pieces:      req.Pieces,
		GrossWeight: req.GrossWeight,
		FineWeight:  req.FineWeight,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock item created successfully", item)
}

// List handles listing stock items
func (h *StockHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.stockService.ListStockItems(
		c.Request.Context(),
		params,
		c.Query("search"),
		enum.MetalType(c.Query("metal_type")),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock items retrieved successfully", result)
}

// Get handles fetching a single stock item
func (h *StockHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid stock item ID")
		return
	}

	item, err := h.stockService.GetStockItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock item retrieved successfully", item)
}

// Update handles updating a stock item
func (h *StockHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid stock item ID")
		return
	}

	var req request.UpdateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.stockService.UpdateStockItem(c.Request.Context(), &service.UpdateStockItemInput{
		ID:          id,
		ItemName:    req.ItemName,
		Pieces:      req.Pieces,
		GrossWeight: req.GrossWeight,
		FineWeight:  req.FineWeight,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock item updated successfully", item)
}

// Delete handles deleting a stock item
func (h *StockHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid stock item ID")
		return
	}

	if err := h.stockService.DeleteStockItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock item deleted successfully", nil)
}

// GetSummary handles aggregating stock per metal type
func (h *StockHandler) GetSummary(c *gin.Context) {
	summary, err := h.stockService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock summary retrieved successfully", gin.H{
		"summary": summary,
	})
}
