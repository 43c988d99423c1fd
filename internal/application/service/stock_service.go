package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/domain/repository"
	infraRepo "github.com/jewelsoft/saraf-api/internal/infrastructure/repository"
	"github.com/jewelsoft/saraf-api/pkg/apperror"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
)

// StockService handles metal stock operations
type StockService struct {
	stockRepo repository.StockRepository
}

// NewStockService creates a new stock service
func NewStockService(stockRepo repository.StockRepository) *StockService {
	return &StockService{stockRepo: stockRepo}
}

// CreateStockItemInput represents the create stock item input
type CreateStockItemInput struct {
	ItemName    string
	MetalType   enum.MetalType
	Pieces      int
	GrossWeight float64
	FineWeight  float64
}

// CreateStockItem creates a new stock item
func (s *StockService) CreateStockItem(ctx context.Context, input *CreateStockItemInput) (*entity.StockItem, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}

	if !input.MetalType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid metal type")
	}

	item := &entity.StockItem{
		ShopID:      shopID,
		ItemName:    input.ItemName,
		MetalType:   input.MetalType,
		Pieces:      input.Pieces,
		GrossWeight: input.GrossWeight,
		FineWeight:  input.FineWeight,
	}

	if err := s.stockRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetStockItem retrieves a stock item by ID
func (s *StockService) GetStockItem(ctx context.Context, id uuid.UUID) (*entity.StockItem, error) {
	item, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Stock item")
	}
	return item, nil
}

// ListStockItems lists the shop's stock items
func (s *StockService) ListStockItems(ctx context.Context, params *pagination.PaginationParams, search string, metalType enum.MetalType) (*pagination.PaginatedResult[entity.StockItem], error) {
	items, total, err := s.stockRepo.List(ctx, params, search, metalType)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateStockItemInput represents the update stock item input
type UpdateStockItemInput struct {
	ID          uuid.UUID
	ItemName    *string
	Pieces      *int
	GrossWeight *float64
	FineWeight  *float64
}

// UpdateStockItem updates a stock item
func (s *StockService) UpdateStockItem(ctx context.Context, input *UpdateStockItemInput) (*entity.StockItem, error) {
	item, err := s.GetStockItem(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.ItemName != nil {
		item.ItemName = *input.ItemName
	}
	if input.Pieces != nil {
		item.Pieces = *input.Pieces
	}
	if input.GrossWeight != nil {
		item.GrossWeight = *input.GrossWeight
	}
	if input.FineWeight != nil {
		item.FineWeight = *input.FineWeight
	}

	if err := s.stockRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteStockItem deletes a stock item
func (s *StockService) DeleteStockItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.GetStockItem(ctx, id)
	if err != nil {
		return err
	}
	return s.stockRepo.Delete(ctx, item.ID)
}

// GetSummary aggregates the shop's stock per metal type
func (s *StockService) GetSummary(ctx context.Context) ([]repository.StockSummaryResult, error) {
	return s.stockRepo.SummaryByMetal(ctx)
}
