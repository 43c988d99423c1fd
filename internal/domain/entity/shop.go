package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop represents one jewellery shop. All ledgers, vouchers, expenses,
// karigars and stock belong to exactly one shop.
type Shop struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Slug             string         `gorm:"size:255;unique;not null" json:"slug"`
	Phone            *string        `gorm:"size:50" json:"phone,omitempty"`
	Address          *string        `gorm:"type:text" json:"address,omitempty"`
	GSTIN            *string        `gorm:"size:20;column:gstin" json:"gstin,omitempty"`
	OwnerID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Settings         ShopSettings   `gorm:"type:jsonb;serializer:json" json:"settings"`
	LicenseExpiresAt *time.Time     `json:"license_expires_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new shop
func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shop model
func (Shop) TableName() string {
	return "shops"
}

// LicenseValid reports whether the shop's license covers the given moment.
// A shop without an expiry date is treated as unlicensed-forever (valid).
func (s *Shop) LicenseValid(at time.Time) bool {
	if s.LicenseExpiresAt == nil {
		return true
	}
	return at.Before(*s.LicenseExpiresAt)
}

// ShopSettings holds per-shop billing configuration
type ShopSettings struct {
	// GST configuration
	GSTEnabled bool    `json:"gst_enabled"`
	CGSTRate   float64 `json:"cgst_rate,omitempty"`
	SGSTRate   float64 `json:"sgst_rate,omitempty"`

	// Billing
	BillPrefix    string `json:"bill_prefix,omitempty"`
	GSTBillPrefix string `json:"gst_bill_prefix,omitempty"`
	Currency      string `json:"currency,omitempty"`

	// Appearance
	Theme string `json:"theme,omitempty"`

	// Share links
	WhatsAppCountryCode string `json:"whatsapp_country_code,omitempty"`
}

// Scan implements the sql.Scanner interface for ShopSettings
func (ss *ShopSettings) Scan(value interface{}) error {
	if value == nil {
		*ss = ShopSettings{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan ShopSettings: unsupported type")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver.Valuer interface for ShopSettings
func (ss ShopSettings) Value() (driver.Value, error) {
	return json.Marshal(ss)
}

// DefaultShopSettings returns default settings for new shops
func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		GSTEnabled:          false,
		CGSTRate:            1.5,
		SGSTRate:            1.5,
		BillPrefix:          "BILL",
		GSTBillPrefix:       "GST",
		Currency:            "INR",
		Theme:               "light",
		WhatsAppCountryCode: "91",
	}
}
