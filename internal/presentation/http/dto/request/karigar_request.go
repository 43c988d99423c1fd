package request

import "time"

// CreateKarigarRequest represents a karigar creation request
type CreateKarigarRequest struct {
	Name  string  `json:"name" binding:"required,min=2,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}

// UpdateKarigarRequest represents a karigar update request
type UpdateKarigarRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
}

// AddKarigarEntryRequest represents a metal movement on a karigar account
type AddKarigarEntryRequest struct {
	Kind        string     `json:"kind" binding:"required,oneof=issue receive"`
	Date        *time.Time `json:"date"`
	MetalType   string     `json:"metal_type" binding:"required,oneof=gold silver"`
	GrossWeight float64    `json:"gross_weight" binding:"min=0"`
	Wastage     float64    `json:"wastage" binding:"min=0"`
	FineWeight  float64    `json:"fine_weight" binding:"required,gt=0"`
	Narration   *string    `json:"narration"`
}
