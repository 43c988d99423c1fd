package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"gorm.io/gorm"
)

// OpeningBalance is the point the running-balance replay starts from.
// Positive values mean the shop owes the customer (shop liability), the
// same sign convention as the live balance fields on Ledger.
type OpeningBalance struct {
	Amount           float64 `gorm:"default:0" json:"amount"`
	GoldFineWeight   float64 `gorm:"default:0" json:"gold_fine_weight"`
	SilverFineWeight float64 `gorm:"default:0" json:"silver_fine_weight"`
}

// Ledger is a per-customer running account of cash and fine-metal balances.
//
// The cash side exists in two historical shapes: the split
// CashBalance/CreditBalance pair on newer rows, and the single legacy Amount
// on older ones. Both shapes are live in production data, so the split fields
// are nullable and Amount is kept as the fallback; reconciliation picks
// between them (ledgerbook.AmountBalance).
type Ledger struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ShopID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	Phone      *string         `gorm:"size:50" json:"phone,omitempty"`
	LedgerType enum.LedgerType `gorm:"size:20;default:'regular'" json:"ledger_type"`

	// Live balances, shop-liability perspective.
	CashBalance      *float64 `json:"cash_balance,omitempty"`
	CreditBalance    *float64 `json:"credit_balance,omitempty"`
	Amount           float64  `gorm:"default:0" json:"amount"`
	GoldFineWeight   float64  `gorm:"default:0" json:"gold_fine_weight"`
	SilverFineWeight float64  `gorm:"default:0" json:"silver_fine_weight"`

	OpeningBalance OpeningBalance `gorm:"embedded;embeddedPrefix:opening_" json:"opening_balance"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shop        Shop         `gorm:"foreignKey:ShopID" json:"-"`
	Vouchers    []Voucher    `gorm:"foreignKey:LedgerID" json:"-"`
	Settlements []Settlement `gorm:"foreignKey:LedgerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ledger
func (l *Ledger) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Ledger model
func (Ledger) TableName() string {
	return "ledgers"
}
