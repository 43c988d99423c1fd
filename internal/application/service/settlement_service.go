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
	"github.com/shopspring/decimal"
)

// SettlementService handles settlement collection operations
type SettlementService struct {
	settlementRepo repository.SettlementRepository
	ledgerRepo     repository.LedgerRepository
	reconciler     *Reconciler
}

// NewSettlementService creates a new settlement service
func NewSettlementService(
	settlementRepo repository.SettlementRepository,
	ledgerRepo repository.LedgerRepository,
	reconciler *Reconciler,
) *SettlementService {
	return &SettlementService{
		settlementRepo: settlementRepo,
		ledgerRepo:     ledgerRepo,
		reconciler:     reconciler,
	}
}

// CreateSettlementInput represents the create settlement input
type CreateSettlementInput struct {
	LedgerID  uuid.UUID
	Date      time.Time
	MetalType enum.MetalType
	MetalRate float64
	FineGiven float64
	Amount    float64
	Narration *string
}

// CreateSettlement records a settlement collection and applies it to the
// ledger's live balance.
func (s *SettlementService) CreateSettlement(ctx context.Context, input *CreateSettlementInput) (*entity.Settlement, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}

	if !input.MetalType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid metal type")
	}

	ledger, err := s.ledgerRepo.GetByID(ctx, input.LedgerID)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, apperror.NewNotFoundError("Ledger")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	settlement := &entity.Settlement{
		ShopID:    shopID,
		LedgerID:  ledger.ID,
		Date:      date,
		MetalType: input.MetalType,
		MetalRate: input.MetalRate,
		FineGiven: input.FineGiven,
		Amount:    input.Amount,
		Narration: input.Narration,
	}

	if err := s.settlementRepo.Create(ctx, settlement); err != nil {
		return nil, err
	}

	applyToLedger(ledger, ledgerbook.SettlementTxn(settlement))
	if err := s.ledgerRepo.Update(ctx, ledger); err != nil {
		return nil, err
	}

	return settlement, nil
}

// GetSettlement retrieves a settlement by ID
func (s *SettlementService) GetSettlement(ctx context.Context, id uuid.UUID) (*entity.Settlement, error) {
	settlement, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, apperror.NewNotFoundError("Settlement")
	}
	return settlement, nil
}

// ListSettlements lists a ledger's settlements
func (s *SettlementService) ListSettlements(ctx context.Context, ledgerID uuid.UUID) ([]entity.Settlement, error) {
	return s.settlementRepo.ListByLedger(ctx, ledgerID)
}

// DeleteSettlement removes a settlement and recalculates the ledger balance.
func (s *SettlementService) DeleteSettlement(ctx context.Context, id uuid.UUID) error {
	settlement, err := s.GetSettlement(ctx, id)
	if err != nil {
		return err
	}

	ledger, err := s.ledgerRepo.GetByID(ctx, settlement.LedgerID)
	if err != nil {
		return err
	}

	if err := s.settlementRepo.Delete(ctx, settlement.ID); err != nil {
		return err
	}

	if ledger != nil {
		if _, err := s.reconciler.Recalculate(ctx, ledger); err != nil {
			return err
		}
	}
	return nil
}

// CalculateInput represents one edit of the settlement entry form. Setting
// Amount marks it as the driving field; otherwise fine drives.
type CalculateInput struct {
	MetalRate float64
	FineGiven *float64
	Amount    *float64
}

// CalculateOutput is the consistent rate/fine/amount triple after the edit.
type CalculateOutput struct {
	MetalRate float64 `json:"metal_rate"`
	FineGiven float64 `json:"fine_given"`
	Amount    float64 `json:"amount"`
}

// Calculate resolves the two-way fine/amount derivation for the settlement
// entry form.
func (s *SettlementService) Calculate(input *CalculateInput) *CalculateOutput {
	calc := ledgerbook.EntryCalc{}.WithRate(decimal.NewFromFloat(input.MetalRate))
	if input.FineGiven != nil {
		calc = calc.WithFine(decimal.NewFromFloat(*input.FineGiven))
	}
	if input.Amount != nil {
		calc = calc.WithAmount(decimal.NewFromFloat(*input.Amount))
	}

	return &CalculateOutput{
		MetalRate: calc.Rate.InexactFloat64(),
		FineGiven: calc.Fine.InexactFloat64(),
		Amount:    calc.Amount.InexactFloat64(),
	}
}
