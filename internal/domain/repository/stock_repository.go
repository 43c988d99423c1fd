package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
)

// StockSummaryResult represents aggregated stock per metal type
type StockSummaryResult struct {
	MetalType   enum.MetalType
	ItemCount   int
	TotalPieces int
	GrossWeight float64
	FineWeight  float64
}

// StockRepository defines the interface for stock item data operations
type StockRepository interface {
	Create(ctx context.Context, item *entity.StockItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StockItem, error)
	Update(ctx context.Context, item *entity.StockItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns the shop's stock items, optionally filtered by metal type.
	List(ctx context.Context, params *pagination.PaginationParams, search string, metalType enum.MetalType) ([]entity.StockItem, int64, error)
	// SummaryByMetal aggregates the shop's stock per metal type.
	SummaryByMetal(ctx context.Context) ([]StockSummaryResult, error)
}
