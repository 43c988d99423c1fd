package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/domain/repository"
	infraRepo "github.com/jewelsoft/saraf-api/internal/infrastructure/repository"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
	"github.com/jewelsoft/saraf-api/pkg/apperror"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
	"github.com/jewelsoft/saraf-api/pkg/utils"
)

// VoucherService handles voucher (bill) operations
type VoucherService struct {
	voucherRepo repository.VoucherRepository
	ledgerRepo  repository.LedgerRepository
	shopRepo    repository.ShopRepository
	reconciler  *Reconciler
}

// NewVoucherService creates a new voucher service
func NewVoucherService(
	voucherRepo repository.VoucherRepository,
	ledgerRepo repository.LedgerRepository,
	shopRepo repository.ShopRepository,
	reconciler *Reconciler,
) *VoucherService {
	return &VoucherService{
		voucherRepo: voucherRepo,
		ledgerRepo:  ledgerRepo,
		shopRepo:    shopRepo,
		reconciler:  reconciler,
	}
}

// VoucherItemInput represents one line item of a new voucher
type VoucherItemInput struct {
	ItemName    string
	MetalType   enum.MetalType
	Pieces      int
	GrossWeight float64
	LessWeight  float64
	NetWeight   float64
	Wastage     float64
	FineWeight  float64
	LabourRate  float64
	Amount      float64
}

// CreateVoucherInput represents the create voucher input
type CreateVoucherInput struct {
	LedgerID     uuid.UUID
	Date         time.Time
	VoucherType  enum.VoucherType
	PaymentType  enum.PaymentType
	Items        []VoucherItemInput
	StoneAmount  float64
	FineAmount   float64
	Total        *float64
	CashReceived float64
	GoldRate     float64
	SilverRate   float64
}

// CreateVoucher creates a voucher on a ledger and applies it to the live
// balance. The pre-transaction balance is recorded on the voucher as a
// snapshot so later views of the bill do not depend on replay.
func (s *VoucherService) CreateVoucher(ctx context.Context, input *CreateVoucherInput) (*entity.Voucher, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}

	ledger, err := s.ledgerRepo.GetByID(ctx, input.LedgerID)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, apperror.NewNotFoundError("Ledger")
	}

	voucherType := input.VoucherType
	if voucherType == "" {
		voucherType = enum.VoucherSale
	}
	paymentType := input.PaymentType
	if paymentType == "" {
		paymentType = enum.PaymentCash
	}
	if !paymentType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment type")
	}

	for _, item := range input.Items {
		if !item.MetalType.Valid() {
			return nil, apperror.NewBadRequestError("Invalid metal type on item " + item.ItemName)
		}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	invoiceType := ledger.LedgerType.InvoiceType()
	billNo, err := s.nextBillNo(ctx, shopID, voucherType, invoiceType)
	if err != nil {
		return nil, err
	}

	before := ledgerbook.BalanceOf(ledger)
	oldAmount := before.Cash.InexactFloat64()
	oldGold := before.Gold.InexactFloat64()
	oldSilver := before.Silver.InexactFloat64()

	voucher := &entity.Voucher{
		ShopID:       shopID,
		LedgerID:     ledger.ID,
		BillNo:       billNo,
		Date:         date,
		VoucherType:  voucherType,
		InvoiceType:  invoiceType,
		PaymentType:  paymentType,
		StoneAmount:  input.StoneAmount,
		FineAmount:   input.FineAmount,
		Total:        input.Total,
		CashReceived: input.CashReceived,
		GoldRate:     input.GoldRate,
		SilverRate:   input.SilverRate,
		BalanceSnapshot: &entity.BalanceSnapshot{
			OldBalance: entity.OldBalanceSnapshot{
				TotalAmount:      &oldAmount,
				GoldFineWeight:   &oldGold,
				SilverFineWeight: &oldSilver,
			},
		},
	}

	for _, item := range input.Items {
		voucher.Items = append(voucher.Items, entity.VoucherItem{
			ItemName:    item.ItemName,
			MetalType:   item.MetalType,
			Pieces:      item.Pieces,
			GrossWeight: item.GrossWeight,
			LessWeight:  item.LessWeight,
			NetWeight:   item.NetWeight,
			Wastage:     item.Wastage,
			FineWeight:  item.FineWeight,
			LabourRate:  item.LabourRate,
			Amount:      item.Amount,
		})
	}

	if err := s.voucherRepo.Create(ctx, voucher); err != nil {
		return nil, err
	}

	applyToLedger(ledger, ledgerbook.VoucherTxn(voucher))
	if err := s.ledgerRepo.Update(ctx, ledger); err != nil {
		return nil, err
	}

	return voucher, nil
}

// nextBillNo issues the next bill number from the shop's configured prefix
// and the last number of the same voucher and invoice type.
func (s *VoucherService) nextBillNo(ctx context.Context, shopID uuid.UUID, voucherType enum.VoucherType, invoiceType enum.InvoiceType) (string, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return "", err
	}
	if shop == nil {
		return "", apperror.NewNotFoundError("Shop")
	}

	prefix := shop.Settings.BillPrefix
	if invoiceType == enum.InvoiceGST {
		prefix = shop.Settings.GSTBillPrefix
	}
	if prefix == "" {
		prefix = "BILL"
	}
	if voucherType == enum.VoucherPurchase {
		prefix = "P" + prefix
	}

	last, err := s.voucherRepo.LastBillNo(ctx, voucherType, invoiceType)
	if err != nil {
		return "", err
	}
	return utils.NextBillNo(prefix, last), nil
}

// GetVoucher retrieves a voucher by ID
func (s *VoucherService) GetVoucher(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	voucher, err := s.voucherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Voucher")
	}
	return voucher, nil
}

// GetBalanceDetails derives the old/current balance pair shown on a bill
// preview or print.
func (s *VoucherService) GetBalanceDetails(ctx context.Context, id uuid.UUID) (*ledgerbook.BalanceDetails, error) {
	voucher, err := s.GetVoucher(ctx, id)
	if err != nil {
		return nil, err
	}

	ledger, err := s.ledgerRepo.GetByID(ctx, voucher.LedgerID)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, apperror.NewNotFoundError("Ledger")
	}

	details := ledgerbook.BalanceDetailsOf(voucher, ledger)
	return &details, nil
}

// ListVouchers lists the shop's vouchers
func (s *VoucherService) ListVouchers(ctx context.Context, params *pagination.PaginationParams, search string, from, to time.Time) (*pagination.PaginatedResult[entity.Voucher], error) {
	vouchers, total, err := s.voucherRepo.List(ctx, params, search, from, to)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(vouchers, pag), nil
}

// DeleteVoucher removes a voucher and recalculates the ledger balance. A
// delete can invalidate every later snapshot's arithmetic, so the balance is
// rebuilt by full replay rather than by reversing the one voucher.
func (s *VoucherService) DeleteVoucher(ctx context.Context, id uuid.UUID) error {
	voucher, err := s.GetVoucher(ctx, id)
	if err != nil {
		return err
	}

	ledger, err := s.ledgerRepo.GetByID(ctx, voucher.LedgerID)
	if err != nil {
		return err
	}

	if err := s.voucherRepo.Delete(ctx, voucher.ID); err != nil {
		return err
	}

	if ledger != nil {
		if _, err := s.reconciler.Recalculate(ctx, ledger); err != nil {
			return err
		}
	}
	return nil
}
