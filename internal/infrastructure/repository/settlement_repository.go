package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	domainRepo "github.com/jewelsoft/saraf-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settlementRepository struct {
	db *gorm.DB
}

// NewSettlementRepository creates a new settlement repository
func NewSettlementRepository(db *gorm.DB) domainRepo.SettlementRepository {
	return &settlementRepository{db: db}
}

func (r *settlementRepository) Create(ctx context.Context, settlement *entity.Settlement) error {
	return r.db.WithContext(ctx).Create(settlement).Error
}

func (r *settlementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Settlement, error) {
	var settlement entity.Settlement
	err := r.db.WithContext(ctx).Scopes(ShopScope(ctx)).First(&settlement, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settlement, nil
}

func (r *settlementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(ShopScope(ctx)).Delete(&entity.Settlement{}, "id = ?", id).Error
}

func (r *settlementRepository) ListByLedger(ctx context.Context, ledgerID uuid.UUID) ([]entity.Settlement, error) {
	var settlements []entity.Settlement
	err := r.db.WithContext(ctx).Scopes(ShopScope(ctx)).
		Where("ledger_id = ?", ledgerID).
		Order("date ASC, created_at ASC").
		Find(&settlements).Error
	return settlements, err
}
