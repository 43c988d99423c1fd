package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"gorm.io/gorm"
)

// StockItem is a tray/category of metal stock held by the shop.
type StockItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShopID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"shop_id"`
	ItemName    string         `gorm:"size:255;not null" json:"item_name"`
	MetalType   enum.MetalType `gorm:"size:20;not null" json:"metal_type"`
	Pieces      int            `gorm:"default:0" json:"pieces"`
	GrossWeight float64        `gorm:"default:0" json:"gross_weight"`
	FineWeight  float64        `gorm:"default:0" json:"fine_weight"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock item
func (si *StockItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockItem model
func (StockItem) TableName() string {
	return "stock_items"
}
