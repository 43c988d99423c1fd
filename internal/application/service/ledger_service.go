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
)

// LedgerService handles customer ledger operations
type LedgerService struct {
	ledgerRepo  repository.LedgerRepository
	voucherRepo repository.VoucherRepository
	reconciler  *Reconciler
}

// NewLedgerService creates a new ledger service
func NewLedgerService(ledgerRepo repository.LedgerRepository, voucherRepo repository.VoucherRepository, reconciler *Reconciler) *LedgerService {
	return &LedgerService{
		ledgerRepo:  ledgerRepo,
		voucherRepo: voucherRepo,
		reconciler:  reconciler,
	}
}

// CreateLedgerInput represents the create ledger input
type CreateLedgerInput struct {
	Name                    string
	Phone                   *string
	LedgerType              enum.LedgerType
	OpeningAmount           float64
	OpeningGoldFineWeight   float64
	OpeningSilverFineWeight float64
}

// CreateLedger creates a new customer ledger. The live balance starts at the
// opening balance.
func (s *LedgerService) CreateLedger(ctx context.Context, input *CreateLedgerInput) (*entity.Ledger, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}

	ledgerType := input.LedgerType
	if ledgerType == "" {
		ledgerType = enum.LedgerRegular
	}
	if !ledgerType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid ledger type")
	}

	cash := input.OpeningAmount
	ledger := &entity.Ledger{
		ShopID:           shopID,
		Name:             input.Name,
		Phone:            input.Phone,
		LedgerType:       ledgerType,
		CashBalance:      &cash,
		Amount:           input.OpeningAmount,
		GoldFineWeight:   input.OpeningGoldFineWeight,
		SilverFineWeight: input.OpeningSilverFineWeight,
		OpeningBalance: entity.OpeningBalance{
			Amount:           input.OpeningAmount,
			GoldFineWeight:   input.OpeningGoldFineWeight,
			SilverFineWeight: input.OpeningSilverFineWeight,
		},
	}

	if err := s.ledgerRepo.Create(ctx, ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

// GetLedger retrieves a ledger by ID
func (s *LedgerService) GetLedger(ctx context.Context, id uuid.UUID) (*entity.Ledger, error) {
	ledger, err := s.ledgerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, apperror.NewNotFoundError("Ledger")
	}
	return ledger, nil
}

// ListLedgers lists the shop's ledgers
func (s *LedgerService) ListLedgers(ctx context.Context, params *pagination.PaginationParams, search string, ledgerType enum.LedgerType) (*pagination.PaginatedResult[entity.Ledger], error) {
	ledgers, total, err := s.ledgerRepo.List(ctx, params, search, ledgerType)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(ledgers, pag), nil
}

// UpdateLedgerInput represents the update ledger input
type UpdateLedgerInput struct {
	ID    uuid.UUID
	Name  *string
	Phone *string
}

// UpdateLedger updates a ledger's identity fields. Balances are never edited
// directly; they move through vouchers, settlements and recalculation.
func (s *LedgerService) UpdateLedger(ctx context.Context, input *UpdateLedgerInput) (*entity.Ledger, error) {
	ledger, err := s.GetLedger(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		ledger.Name = *input.Name
	}
	if input.Phone != nil {
		ledger.Phone = input.Phone
	}

	if err := s.ledgerRepo.Update(ctx, ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

// DeleteLedger deletes a ledger
func (s *LedgerService) DeleteLedger(ctx context.Context, id uuid.UUID) error {
	ledger, err := s.GetLedger(ctx, id)
	if err != nil {
		return err
	}
	return s.ledgerRepo.Delete(ctx, ledger.ID)
}

// GetBalance returns the ledger's live balance from the requested
// perspective.
func (s *LedgerService) GetBalance(ctx context.Context, id uuid.UUID, perspective ledgerbook.Perspective) (ledgerbook.SignedBalance, error) {
	ledger, err := s.GetLedger(ctx, id)
	if err != nil {
		return ledgerbook.SignedBalance{}, err
	}
	return ledgerbook.BalanceOf(ledger).As(perspective), nil
}

// GetTransactions returns the ledger's merged voucher and settlement history
// inside the window, sorted by date.
func (s *LedgerService) GetTransactions(ctx context.Context, id uuid.UUID, from, to time.Time) ([]ledgerbook.Transaction, error) {
	ledger, err := s.GetLedger(ctx, id)
	if err != nil {
		return nil, err
	}

	txns, err := s.reconciler.Transactions(ctx, ledger)
	if err != nil {
		return nil, err
	}
	return ledgerbook.FilterByDate(txns, from, to), nil
}

// GetStatement builds the ledger's running-balance statement for the window.
func (s *LedgerService) GetStatement(ctx context.Context, id uuid.UUID, from, to time.Time) (*ledgerbook.Statement, error) {
	ledger, err := s.GetLedger(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.reconciler.Statement(ctx, ledger, from, to)
}

// RecalculateBalance replays the full history and persists the result as the
// live balance.
func (s *LedgerService) RecalculateBalance(ctx context.Context, id uuid.UUID) (*entity.Ledger, error) {
	ledger, err := s.GetLedger(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.reconciler.Recalculate(ctx, ledger)
}

// DeleteAllVouchers removes every voucher of the ledger and recalculates the
// balance, returning the number of vouchers removed.
func (s *LedgerService) DeleteAllVouchers(ctx context.Context, id uuid.UUID) (int64, error) {
	ledger, err := s.GetLedger(ctx, id)
	if err != nil {
		return 0, err
	}

	removed, err := s.voucherRepo.DeleteAllByLedger(ctx, ledger.ID)
	if err != nil {
		return 0, err
	}

	if _, err := s.reconciler.Recalculate(ctx, ledger); err != nil {
		return removed, err
	}
	return removed, nil
}
