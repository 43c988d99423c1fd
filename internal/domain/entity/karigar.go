package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Karigar is a goldsmith the shop issues raw metal to and receives crafted
// or unused metal back from.
type Karigar struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShopID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shop    Shop           `gorm:"foreignKey:ShopID" json:"-"`
	Entries []KarigarEntry `gorm:"foreignKey:KarigarID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new karigar
func (k *Karigar) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Karigar model
func (Karigar) TableName() string {
	return "karigars"
}

// KarigarEntry is one metal movement on a karigar's account. Issues add to
// the fine weight outstanding with the karigar, receives subtract from it.
type KarigarEntry struct {
	ID          uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	ShopID      uuid.UUID             `gorm:"type:uuid;not null;index" json:"shop_id"`
	KarigarID   uuid.UUID             `gorm:"type:uuid;not null;index" json:"karigar_id"`
	Kind        enum.KarigarEntryKind `gorm:"size:20;not null" json:"kind"`
	Date        time.Time             `gorm:"not null;index" json:"date"`
	MetalType   enum.MetalType        `gorm:"size:20;not null" json:"metal_type"`
	GrossWeight float64               `gorm:"default:0" json:"gross_weight"`
	Wastage     float64               `gorm:"default:0" json:"wastage"`
	FineWeight  float64               `gorm:"default:0" json:"fine_weight"`
	Narration   *string               `gorm:"type:text" json:"narration,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	DeletedAt   gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	Karigar Karigar `gorm:"foreignKey:KarigarID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new karigar entry
func (ke *KarigarEntry) BeforeCreate(tx *gorm.DB) error {
	if ke.ID == uuid.Nil {
		ke.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the KarigarEntry model
func (KarigarEntry) TableName() string {
	return "karigar_entries"
}
