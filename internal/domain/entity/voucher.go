package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Voucher is a billed transaction on a ledger: a sale or purchase of items,
// or, for the legacy settlement payment types, a settlement stored in voucher
// shape (see enum.PaymentType).
//
// Total is nullable: when present it is authoritative; when absent the total
// is derived from items + stone + fine amounts. Both shapes occur in
// migrated data.
type Voucher struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ShopID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"shop_id"`
	LedgerID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"ledger_id"`
	BillNo      string           `gorm:"size:100;not null;index" json:"bill_no"`
	Date        time.Time        `gorm:"not null;index" json:"date"`
	VoucherType enum.VoucherType `gorm:"size:20;default:'sale'" json:"voucher_type"`
	InvoiceType enum.InvoiceType `gorm:"size:20;default:'normal'" json:"invoice_type"`
	PaymentType enum.PaymentType `gorm:"size:30;default:'cash'" json:"payment_type"`

	StoneAmount  float64  `gorm:"default:0" json:"stone_amount"`
	FineAmount   float64  `gorm:"default:0" json:"fine_amount"`
	Total        *float64 `json:"total,omitempty"`
	CashReceived float64  `gorm:"default:0" json:"cash_received"`
	GoldRate     float64  `gorm:"default:0" json:"gold_rate"`
	SilverRate   float64  `gorm:"default:0" json:"silver_rate"`

	// OldBalance is the pre-split legacy field; BalanceSnapshot supersedes it.
	OldBalance      *float64         `json:"old_balance,omitempty"`
	BalanceSnapshot *BalanceSnapshot `gorm:"type:jsonb;serializer:json" json:"balance_snapshot,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shop   Shop          `gorm:"foreignKey:ShopID" json:"-"`
	Ledger *Ledger       `gorm:"foreignKey:LedgerID" json:"ledger,omitempty"`
	Items  []VoucherItem `gorm:"foreignKey:VoucherID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new voucher
func (v *Voucher) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Voucher model
func (Voucher) TableName() string {
	return "vouchers"
}

// BalanceSnapshot records the ledger's balance as it stood when the voucher
// was created. Fields are nullable because partially populated snapshots
// exist in migrated data.
type BalanceSnapshot struct {
	OldBalance OldBalanceSnapshot `json:"old_balance"`
}

// OldBalanceSnapshot is the pre-transaction balance inside a snapshot.
type OldBalanceSnapshot struct {
	TotalAmount      *float64 `json:"total_amount,omitempty"`
	GoldFineWeight   *float64 `json:"gold_fine_weight,omitempty"`
	SilverFineWeight *float64 `json:"silver_fine_weight,omitempty"`
}

// Scan implements the sql.Scanner interface for BalanceSnapshot
func (bs *BalanceSnapshot) Scan(value interface{}) error {
	if value == nil {
		*bs = BalanceSnapshot{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan BalanceSnapshot: unsupported type")
	}

	return json.Unmarshal(bytes, bs)
}

// Value implements the driver.Valuer interface for BalanceSnapshot
func (bs BalanceSnapshot) Value() (driver.Value, error) {
	return json.Marshal(bs)
}

// VoucherItem is one line item on a voucher. Wastage is the melting
// percentage applied on top of net weight when deriving fine weight.
type VoucherItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VoucherID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"voucher_id"`
	ItemName    string         `gorm:"size:255;not null" json:"item_name"`
	MetalType   enum.MetalType `gorm:"size:20;not null" json:"metal_type"`
	Pieces      int            `gorm:"default:1" json:"pieces"`
	GrossWeight float64        `gorm:"default:0" json:"gross_weight"`
	LessWeight  float64        `gorm:"default:0" json:"less_weight"`
	NetWeight   float64        `gorm:"default:0" json:"net_weight"`
	Wastage     float64        `gorm:"default:0" json:"wastage"`
	FineWeight  float64        `gorm:"default:0" json:"fine_weight"`
	LabourRate  float64        `gorm:"default:0" json:"labour_rate"`
	Amount      float64        `gorm:"default:0" json:"amount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// Relationships
	Voucher Voucher `gorm:"foreignKey:VoucherID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new voucher item
func (vi *VoucherItem) BeforeCreate(tx *gorm.DB) error {
	if vi.ID == uuid.Nil {
		vi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VoucherItem model
func (VoucherItem) TableName() string {
	return "voucher_items"
}
