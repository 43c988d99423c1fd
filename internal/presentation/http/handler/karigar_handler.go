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

// KarigarHandler handles karigar account HTTP requests
type KarigarHandler struct {
	karigarService *service.KarigarService
}

// NewKarigarHandler creates a new karigar handler
func NewKarigarHandler(karigarService *service.KarigarService) *KarigarHandler {
	return &KarigarHandler{karigarService: karigarService}
}

// Create handles creating a karigar
func (h *KarigarHandler) Create(c *gin.Context) {
	var req request.CreateKarigarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	karigar, err := h.karigarService.CreateKarigar(c.Request.Context(), &service.CreateKarigarInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Karigar created successfully", karigar)
}

// List handles listing karigars
func (h *KarigarHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.karigarService.ListKarigars(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Karigars retrieved successfully", result)
}

// GetAccount handles fetching a karigar's entries and outstanding balance
func (h *KarigarHandler) GetAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid karigar ID")
		return
	}

	account, err := h.karigarService.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Karigar account retrieved successfully", account)
}

// Update handles updating a karigar
func (h *KarigarHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid karigar ID")
		return
	}

	var req request.UpdateKarigarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	karigar, err := h.karigarService.UpdateKarigar(c.Request.Context(), &service.UpdateKarigarInput{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Karigar updated successfully", karigar)
}

// Delete handles deleting a karigar
func (h *KarigarHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid karigar ID")
		return
	}

	if err := h.karigarService.DeleteKarigar(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Karigar deleted successfully", nil)
}

// AddEntry handles recording a metal movement on a karigar account
func (h *KarigarHandler) AddEntry(c *gin.Context) {
	karigarID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid karigar ID")
		return
	}

	var req request.AddKarigarEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.AddEntryInput{
		KarigarID:   karigarID,
		Kind:        enum.KarigarEntryKind(req.Kind),
		MetalType:   enum.MetalType(req.MetalType),
		GrossWeight: req.GrossWeight,
		Wastage:     req.Wastage,
		FineWeight:  req.FineWeight,
		Narration:   req.Narration,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	entry, err := h.karigarService.AddEntry(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Entry recorded successfully", entry)
}

// DeleteEntry handles removing a karigar entry
func (h *KarigarHandler) DeleteEntry(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		response.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.karigarService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Entry deleted successfully", nil)
}
