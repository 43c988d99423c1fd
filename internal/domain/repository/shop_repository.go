package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
)

// ShopRepository defines the interface for shop data operations
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Shop, error)
}
