package request

// CreateLedgerRequest represents a ledger creation request
type CreateLedgerRequest struct {
	Name                    string  `json:"name" binding:"required,min=2,max=255"`
	Phone                   *string `json:"phone" binding:"omitempty,max=50"`
	LedgerType              string  `json:"ledger_type" binding:"omitempty,oneof=regular gst"`
	OpeningAmount           float64 `json:"opening_amount"`
	OpeningGoldFineWeight   float64 `json:"opening_gold_fine_weight"`
	OpeningSilverFineWeight float64 `json:"opening_silver_fine_weight"`
}

// UpdateLedgerRequest represents a ledger update request. Balances are not
// part of it; they only move through vouchers and settlements.
type UpdateLedgerRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}

// LedgerFilterRequest represents ledger list filter parameters
type LedgerFilterRequest struct {
	Search     string `form:"search"`
	LedgerType string `form:"ledger_type" binding:"omitempty,oneof=regular gst"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// DateRangeRequest represents a from/to date window in yyyy-mm-dd form
type DateRangeRequest struct {
	From string `form:"from"`
	To   string `form:"to"`
}
