package request

import "time"

// CreateSettlementRequest represents a settlement creation request
type CreateSettlementRequest struct {
	LedgerID  string     `json:"ledger_id" binding:"required,uuid"`
	Date      *time.Time `json:"date"`
	MetalType string     `json:"metal_type" binding:"required,oneof=gold silver"`
	MetalRate float64    `json:"metal_rate" binding:"min=0"`
	FineGiven float64    `json:"fine_given" binding:"min=0"`
	Amount    float64    `json:"amount" binding:"min=0"`
	Narration *string    `json:"narration"`
}

// CalculateSettlementRequest represents the entry form helper request. Fine
// and amount are pointers so the server can tell which field was edited last.
type CalculateSettlementRequest struct {
	MetalRate float64  `json:"metal_rate" binding:"min=0"`
	FineGiven *float64 `json:"fine_given"`
	Amount    *float64 `json:"amount"`
}
