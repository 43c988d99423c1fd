package request

// CreateShopRequest represents a shop provisioning request (super admin)
type CreateShopRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	GSTIN         *string `json:"gstin" binding:"omitempty,max=20"`
	OwnerName     string  `json:"owner_name" binding:"required,min=2,max=255"`
	OwnerUsername string  `json:"owner_username" binding:"required,min=3,max=255"`
	OwnerPassword string  `json:"owner_password" binding:"required,min=8"`
	LicenseDays   int     `json:"license_days" binding:"omitempty,min=1"`
}

// UpdateShopRequest represents a shop identity update request
type UpdateShopRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address"`
	GSTIN   *string `json:"gstin" binding:"omitempty,max=20"`
}

// UpdateShopSettingsRequest represents a shop settings update request
type UpdateShopSettingsRequest struct {
	GSTEnabled          *bool    `json:"gst_enabled"`
	CGSTRate            *float64 `json:"cgst_rate" binding:"omitempty,min=0,max=100"`
	SGSTRate            *float64 `json:"sgst_rate" binding:"omitempty,min=0,max=100"`
	BillPrefix          *string  `json:"bill_prefix" binding:"omitempty,max=20"`
	GSTBillPrefix       *string  `json:"gst_bill_prefix" binding:"omitempty,max=20"`
	Currency            *string  `json:"currency" binding:"omitempty,max=10"`
	Theme               *string  `json:"theme" binding:"omitempty,max=50"`
	WhatsAppCountryCode *string  `json:"whatsapp_country_code" binding:"omitempty,max=5"`
}

// RenewLicenseRequest represents a license renewal request (super admin)
type RenewLicenseRequest struct {
	Days int `json:"days" binding:"required,min=1"`
}
