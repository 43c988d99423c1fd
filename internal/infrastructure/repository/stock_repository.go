package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	domainRepo "github.com/jewelsoft/saraf-api/internal/domain/repository"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
	"gorm.io/gorm"
)

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) Create(ctx context.Context, item *entity.StockItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *stockRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StockItem, error) {
	var item entity.StockItem
	err := r.db.WithContext(ctx).Scopes(ShopScope(ctx)).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *stockRepository) Update(ctx context.Context, item *entity.StockItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *stockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(ShopScope(ctx)).Delete(&entity.StockItem{}, "id = ?", id).Error
}

func (r *stockRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, metalType enum.MetalType) ([]entity.StockItem, int64, error) {
	var items []entity.StockItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockItem{}).Scopes(ShopScope(ctx))

	if metalType != "" {
		query = query.Where("metal_type = ?", metalType)
	}
	if search != "" {
		query = query.Where("item_name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("item_name ASC").
		Find(&items).Error

	return items, total, err
}

func (r *stockRepository) SummaryByMetal(ctx context.Context) ([]domainRepo.StockSummaryResult, error) {
	var results []domainRepo.StockSummaryResult
	err := r.db.WithContext(ctx).Model(&entity.StockItem{}).Scopes(ShopScope(ctx)).
		Select(`metal_type,
			COUNT(*) as item_count,
			COALESCE(SUM(pieces), 0) as total_pieces,
			COALESCE(SUM(gross_weight), 0) as gross_weight,
			COALESCE(SUM(fine_weight), 0) as fine_weight`).
		Group("metal_type").
		Order("metal_type ASC").
		Scan(&results).Error
	return results, err
}
