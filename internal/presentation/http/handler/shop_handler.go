package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/application/service"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/dto/request"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/dto/response"
)

// ShopHandler handles shop HTTP requests
type ShopHandler struct {
	shopService *service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// Create handles provisioning a new shop with its owner (super admin)
func (h *ShopHandler) Create(c *gin.Context) {
	var req request.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.shopService.CreateShop(c.Request.Context(), &service.CreateShopInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		GSTIN:         req.GSTIN,
		OwnerName:     req.OwnerName,
		OwnerUsername: req.OwnerUsername,
		OwnerPassword: req.OwnerPassword,
		LicenseDays:   req.LicenseDays,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Shop created successfully", gin.H{
		"shop": output.Shop,
		"owner": gin.H{
			"id":       output.Owner.ID,
			"username": output.Owner.Username,
		},
	})
}

// List handles listing all shops (super admin)
func (h *ShopHandler) List(c *gin.Context) {
	shops, err := h.shopService.ListShops(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shops retrieved successfully", gin.H{
		"shops": shops,
	})
}

// GetCurrent handles fetching the authenticated user's shop
func (h *ShopHandler) GetCurrent(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "Shop context required")
		return
	}

	shop, err := h.shopService.GetShop(c.Request.Context(), shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop retrieved successfully", shop)
}

// UpdateCurrent handles updating the authenticated user's shop identity
func (h *ShopHandler) UpdateCurrent(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "Shop context required")
		return
	}

	var req request.UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shop, err := h.shopService.UpdateShop(c.Request.Context(), &service.UpdateShopInput{
		ID:      shopID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		GSTIN:   req.GSTIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop updated successfully", shop)
}

// UpdateSettings handles updating the authenticated user's shop settings
func (h *ShopHandler) UpdateSettings(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == uuid.Nil {
		response.BadRequest(c, "Shop context required")
		return
	}

	var req request.UpdateShopSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shop, err := h.shopService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		ID:                  shopID,
		GSTEnabled:          req.GSTEnabled,
		CGSTRate:            req.CGSTRate,
		SGSTRate:            req.SGSTRate,
		BillPrefix:          req.BillPrefix,
		GSTBillPrefix:       req.GSTBillPrefix,
		Currency:            req.Currency,
		Theme:               req.Theme,
		WhatsAppCountryCode: req.WhatsAppCountryCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop settings updated successfully", shop)
}

// RenewLicense handles extending a shop's license (super admin)
func (h *ShopHandler) RenewLicense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid shop ID")
		return
	}

	var req request.RenewLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	shop, err := h.shopService.RenewLicense(c.Request.Context(), id, req.Days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "License renewed successfully", gin.H{
		"shop": gin.H{
			"id":                 shop.ID,
			"name":               shop.Name,
			"license_expires_at": shop.LicenseExpiresAt,
		},
	})
}

// Delete handles deleting a shop (super admin)
func (h *ShopHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid shop ID")
		return
	}

	if err := h.shopService.DeleteShop(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop deleted successfully", nil)
}
