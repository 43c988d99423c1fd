package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
)

// VoucherRepository defines the interface for voucher data operations
type VoucherRepository interface {
	Create(ctx context.Context, voucher *entity.Voucher) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error)
	Update(ctx context.Context, voucher *entity.Voucher) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByLedger returns a ledger's vouchers with items preloaded, oldest
	// first, restricted to the given invoice type.
	ListByLedger(ctx context.Context, ledgerID uuid.UUID, invoiceType enum.InvoiceType) ([]entity.Voucher, error)
	// List returns the shop's vouchers with page-based pagination, newest
	// first. Zero time bounds leave that side of the window open.
	List(ctx context.Context, params *pagination.PaginationParams, search string, from, to time.Time) ([]entity.Voucher, int64, error)
	// DeleteAllByLedger removes every voucher of a ledger and returns the
	// number of vouchers removed.
	DeleteAllByLedger(ctx context.Context, ledgerID uuid.UUID) (int64, error)
	// LastBillNo returns the most recently issued bill number for the shop
	// and voucher type, empty when none exists yet.
	LastBillNo(ctx context.Context, voucherType enum.VoucherType, invoiceType enum.InvoiceType) (string, error)
}
