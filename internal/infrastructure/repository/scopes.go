package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// ShopIDKey is the context key for shop ID
	ShopIDKey ctxKey = "shop_id"
	// SkipShopScopeKey is the context key for skipping shop scope (super admin)
	SkipShopScopeKey ctxKey = "skip_shop_scope"
)

// ShopScope returns a GORM scope that filters by shop
// This should be applied to all queries for shop-scoped entities
// If SkipShopScopeKey is true in context (super admin), returns all records
func ShopScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skipScope, ok := ctx.Value(SkipShopScopeKey).(bool); ok && skipScope {
			return db
		}

		shopID, ok := ctx.Value(ShopIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: return no results if shop context missing
			// This prevents accidental cross-shop data access
			return db.Where("1 = 0")
		}
		return db.Where("shop_id = ?", shopID)
	}
}

// WithSkipShopScope adds skip shop scope flag to context (for super admins)
func WithSkipShopScope(ctx context.Context, skip bool) context.Context {
	return context.WithValue(ctx, SkipShopScopeKey, skip)
}

// WithShop adds shop ID to context
func WithShop(ctx context.Context, shopID uuid.UUID) context.Context {
	return context.WithValue(ctx, ShopIDKey, shopID)
}

// GetShopID extracts shop ID from context
func GetShopID(ctx context.Context) (uuid.UUID, bool) {
	shopID, ok := ctx.Value(ShopIDKey).(uuid.UUID)
	return shopID, ok
}
