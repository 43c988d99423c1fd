package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Settlement is a true settlement-collection record: the customer hands over
// fine metal (or its cash value) to clear part of their balance, with no
// accompanying sale of goods. Legacy settlements stored as vouchers are a
// separate shape handled by ledgerbook.Classify.
type Settlement struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShopID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"shop_id"`
	LedgerID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"ledger_id"`
	Date      time.Time      `gorm:"not null;index" json:"date"`
	MetalType enum.MetalType `gorm:"size:20;not null" json:"metal_type"`
	MetalRate float64        `gorm:"default:0" json:"metal_rate"`
	FineGiven float64        `gorm:"default:0" json:"fine_given"`
	Amount    float64        `gorm:"default:0" json:"amount"`
	Narration *string        `gorm:"type:text" json:"narration,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shop   Shop    `gorm:"foreignKey:ShopID" json:"-"`
	Ledger *Ledger `gorm:"foreignKey:LedgerID" json:"ledger,omitempty"`
}

// BeforeCreate generates a UUID before creating a new settlement
func (s *Settlement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Settlement model
func (Settlement) TableName() string {
	return "settlements"
}
