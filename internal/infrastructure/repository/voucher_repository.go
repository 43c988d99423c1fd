package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	domainRepo "github.com/jewelsoft/saraf-api/internal/domain/repository"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
	"gorm.io/gorm"
)

type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository creates a new voucher repository
func NewVoucherRepository(db *gorm.DB) domainRepo.VoucherRepository {
	return &voucherRepository{db: db}
}

func (r *voucherRepository) Create(ctx context.Context, voucher *entity.Voucher) error {
	// Items are created in the same transaction through the association.
	return r.db.WithContext(ctx).Create(voucher).Error
}

func (r *voucherRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	var voucher entity.Voucher
	err := r.db.WithContext(ctx).Scopes(ShopScope(ctx)).
		Preload("Items").
		First(&voucher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}

func (r *voucherRepository) Update(ctx context.Context, voucher *entity.Voucher) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(voucher).Error
}

func (r *voucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.VoucherItem{}, "voucher_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Scopes(ShopScope(ctx)).Delete(&entity.Voucher{}, "id = ?", id).Error
	})
}

func (r *voucherRepository) ListByLedger(ctx context.Context, ledgerID uuid.UUID, invoiceType enum.InvoiceType) ([]entity.Voucher, error) {
	var vouchers []entity.Voucher
	query := r.db.WithContext(ctx).Scopes(ShopScope(ctx)).
		Preload("Items").
		Where("ledger_id = ?", ledgerID)

	if invoiceType != "" {
		query = query.Where("invoice_type = ?", invoiceType)
	}

	err := query.Order("date ASC, created_at ASC").Find(&vouchers).Error
	return vouchers, err
}

func (r *voucherRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, from, to time.Time) ([]entity.Voucher, int64, error) {
	var vouchers []entity.Voucher
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Voucher{}).Scopes(ShopScope(ctx))

	if search != "" {
		query = query.Where("bill_no ILIKE ?", "%"+search+"%")
	}
	if !from.IsZero() {
		query = query.Where("date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("date <= ?", to)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Items").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("date DESC, created_at DESC").
		Find(&vouchers).Error

	return vouchers, total, err
}

func (r *voucherRepository) DeleteAllByLedger(ctx context.Context, ledgerID uuid.UUID) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("voucher_id IN (?)",
			tx.Model(&entity.Voucher{}).Select("id").Where("ledger_id = ?", ledgerID),
		).Delete(&entity.VoucherItem{}).Error; err != nil {
			return err
		}

		res := tx.Scopes(ShopScope(ctx)).Where("ledger_id = ?", ledgerID).Delete(&entity.Voucher{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	return removed, err
}

func (r *voucherRepository) LastBillNo(ctx context.Context, voucherType enum.VoucherType, invoiceType enum.InvoiceType) (string, error) {
	var voucher entity.Voucher
	err := r.db.WithContext(ctx).Scopes(ShopScope(ctx)).
		Where("voucher_type = ? AND invoice_type = ?", voucherType, invoiceType).
		Order("created_at DESC").
		First(&voucher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return voucher.BillNo, nil
}
