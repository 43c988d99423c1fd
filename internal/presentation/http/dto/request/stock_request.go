package request

// CreateStockItemRequest represents a stock item creation request
type CreateStockItemRequest struct {
	ItemName    string  `json:"item_name" binding:"required,min=2,max=255"`
	MetalType   string  `json:"metal_type" binding:"required,oneof=gold silver"`
	Pieces      int     `json:"pieces" binding:"omitempty,min=0"`
	GrossWeight float64 `json:"gross_weight" binding:"min=0"`
	FineWeight  float64 `json:"fine_weight" binding:"min=0"`
}

// UpdateStockItemRequest represents a stock item update request
type UpdateStockItemRequest struct {
	ItemName    *string  `json:"item_name" binding:"omitempty,min=2,max=255"`
	Pieces      *int     `json:"pieces" binding:"omitempty,min=0"`
	GrossWeight *float64 `json:"gross_weight" binding:"omitempty,min=0"`
	FineWeight  *float64 `json:"fine_weight" binding:"omitempty,min=0"`
}

// StockFilterRequest represents stock list filter parameters
type StockFilterRequest struct {
	Search    string `form:"search"`
	MetalType string `form:"metal_type" binding:"omitempty,oneof=gold silver"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
