package request

import "time"

// VoucherItemRequest represents one line item on a voucher
type VoucherItemRequest struct {
	ItemName    string  `json:"item_name" binding:"required,max=255"`
	MetalType   string  `json:"metal_type" binding:"required,oneof=gold silver"`
	Pieces      int     `json:"pieces" binding:"omitempty,min=1"`
	GrossWeight float64 `json:"gross_weight" binding:"min=0"`
	LessWeight  float64 `json:"less_weight" binding:"min=0"`
	NetWeight   float64 `json:"net_weight" binding:"min=0"`
	Wastage     float64 `json:"wastage" binding:"min=0"`
	FineWeight  float64 `json:"fine_weight" binding:"min=0"`
	LabourRate  float64 `json:"labour_rate" binding:"min=0"`
	Amount      float64 `json:"amount" binding:"min=0"`
}

// CreateVoucherRequest represents a voucher creation request
type CreateVoucherRequest struct {
	LedgerID     string               `json:"ledger_id" binding:"required,uuid"`
	Date         *time.Time           `json:"date"`
	VoucherType  string               `json:"voucher_type" binding:"omitempty,oneof=sale purchase"`
	PaymentType  string               `json:"payment_type"`
	Items        []VoucherItemRequest `json:"items" binding:"dive"`
	StoneAmount  float64              `json:"stone_amount"`
	FineAmount   float64              `json:"fine_amount"`
	Total        *float64             `json:"total"`
	CashReceived float64              `json:"cash_received" binding:"min=0"`
	GoldRate     float64              `json:"gold_rate" binding:"min=0"`
	SilverRate   float64              `json:"silver_rate" binding:"min=0"`
}

// VoucherFilterRequest represents voucher list filter parameters
type VoucherFilterRequest struct {
	Search  string `form:"search"`
	From    string `form:"from"`
	To      string `form:"to"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
