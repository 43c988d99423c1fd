package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	domainRepo "github.com/jewelsoft/saraf-api/internal/domain/repository"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
	"gorm.io/gorm"
)

type karigarRepository struct {
	db *gorm.DB
}

// NewKarigarRepository creates a new karigar repository
func NewKarigarRepository(db *gorm.DB) domainRepo.KarigarRepository {
	return &karigarRepository{db: db}
}

func (r *karigarRepository) Create(ctx context.Context, karigar *entity.Karigar) error {
	return r.db.WithContext(ctx).Create(karigar).Error
}

func (r *karigarRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Karigar, error) {
	var karigar entity.Karigar
	err := r.db.WithContext(ctx).Scopes(ShopScope(ctx)).First(&karigar, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &karigar, nil
}

func (r *karigarRepository) Update(ctx context.Context, karigar *entity.Karigar) error {
	return r.db.WithContext(ctx).Save(karigar).Error
}

func (r *karigarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.KarigarEntry{}, "karigar_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Scopes(ShopScope(ctx)).Delete(&entity.Karigar{}, "id = ?", id).Error
	})
}

func (r *karigarRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Karigar, int64, error) {
	var karigars []entity.Karigar
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Karigar{}).Scopes(ShopScope(ctx))

	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&karigars).Error

	return karigars, total, err
}

func (r *karigarRepository) AddEntry(ctx context.Context, entry *entity.KarigarEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *karigarRepository) GetEntry(ctx context.Context, id uuid.UUID) (*entity.KarigarEntry, error) {
	var entry entity.KarigarEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *karigarRepository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.KarigarEntry{}, "id = ?", id).Error
}

func (r *karigarRepository) ListEntries(ctx context.Context, karigarID uuid.UUID) ([]entity.KarigarEntry, error) {
	var entries []entity.KarigarEntry
	err := r.db.WithContext(ctx).
		Where("karigar_id = ?", karigarID).
		Order("date ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}
