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

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Create(ctx context.Context, ledger *entity.Ledger) error {
	return r.db.WithContext(ctx).Create(ledger).Error
}

func (r *ledgerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ledger, error) {
	var ledger entity.Ledger
	err := r.db.WithContext(ctx).Scopes(ShopScope(ctx)).First(&ledger, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

func (r *ledgerRepository) GetByPhone(ctx context.Context, phone string) (*entity.Ledger, error) {
	var ledger entity.Ledger
	err := r.db.WithContext(ctx).Scopes(ShopScope(ctx)).First(&ledger, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

func (r *ledgerRepository) Update(ctx context.Context, ledger *entity.Ledger) error {
	return r.db.WithContext(ctx).Save(ledger).Error
}

func (r *ledgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(ShopScope(ctx)).Delete(&entity.Ledger{}, "id = ?", id).Error
}

func (r *ledgerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, ledgerType enum.LedgerType) ([]entity.Ledger, int64, error) {
	var ledgers []entity.Ledger
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Ledger{}).Scopes(ShopScope(ctx))

	if ledgerType != "" {
		query = query.Where("ledger_type = ?", ledgerType)
	}
	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&ledgers).Error

	return ledgers, total, err
}
