package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Expense is a shop outgoing. Cash expenses feed the cash-in-hand figure on
// the dashboard; they never touch customer ledgers.
type Expense struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ShopID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"shop_id"`
	Date          time.Time          `gorm:"not null;index" json:"date"`
	Category      string             `gorm:"size:100;not null" json:"category"`
	Amount        float64            `gorm:"not null" json:"amount"`
	PaymentMethod enum.ExpenseMethod `gorm:"size:20;default:'cash'" json:"payment_method"`
	Description   *string            `gorm:"type:text" json:"description,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
