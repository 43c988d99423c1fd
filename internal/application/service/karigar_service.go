package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/domain/repository"
	infraRepo "github.com/jewelsoft/saraf-api/internal/infrastructure/repository"
	"github.com/jewelsoft/saraf-api/pkg/apperror"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
)

// KarigarService handles karigar (artisan) account operations
type KarigarService struct {
	karigarRepo repository.KarigarRepository
}

// NewKarigarService creates a new karigar service
func NewKarigarService(karigarRepo repository.KarigarRepository) *KarigarService {
	return &KarigarService{karigarRepo: karigarRepo}
}

// CreateKarigarInput represents the create karigar input
type CreateKarigarInput struct {
	Name  string
	Phone *string
}

// CreateKarigar creates a new karigar
func (s *KarigarService) CreateKarigar(ctx context.Context, input *CreateKarigarInput) (*entity.Karigar, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}

	karigar := &entity.Karigar{
		ShopID: shopID,
		Name:   input.Name,
		Phone:  input.Phone,
	}

	if err := s.karigarRepo.Create(ctx, karigar); err != nil {
		return nil, err
	}
	return karigar, nil
}

// GetKarigar retrieves a karigar by ID
func (s *KarigarService) GetKarigar(ctx context.Context, id uuid.UUID) (*entity.Karigar, error) {
	karigar, err := s.karigarRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if karigar == nil {
		return nil, apperror.NewNotFoundError("Karigar")
	}
	return karigar, nil
}

// ListKarigars lists the shop's karigars
func (s *KarigarService) ListKarigars(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Karigar], error) {
	karigars, total, err := s.karigarRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(karigars, pag), nil
}

// UpdateKarigarInput represents the update karigar input
type UpdateKarigarInput struct {
	ID    uuid.UUID
	Name  *string
	Phone *string
}

// UpdateKarigar updates a karigar
func (s *KarigarService) UpdateKarigar(ctx context.Context, input *UpdateKarigarInput) (*entity.Karigar, error) {
	karigar, err := s.GetKarigar(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		karigar.Name = *input.Name
	}
	if input.Phone != nil {
		karigar.Phone = input.Phone
	}

	if err := s.karigarRepo.Update(ctx, karigar); err != nil {
		return nil, err
	}
	return karigar, nil
}

// DeleteKarigar deletes a karigar and its entries
func (s *KarigarService) DeleteKarigar(ctx context.Context, id uuid.UUID) error {
	karigar, err := s.GetKarigar(ctx, id)
	if err != nil {
		return err
	}
	return s.karigarRepo.Delete(ctx, karigar.ID)
}

// AddEntryInput represents one metal movement on a karigar account
type AddEntryInput struct {
	KarigarID   uuid.UUID
	Kind        enum.KarigarEntryKind
	Date        time.Time
	MetalType   enum.MetalType
	GrossWeight float64
	Wastage     float64
	FineWeight  float64
	Narration   *string
}

// AddEntry records an issue or receive movement on a karigar account
func (s *KarigarService) AddEntry(ctx context.Context, input *AddEntryInput) (*entity.KarigarEntry, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}

	if !input.Kind.Valid() {
		return nil, apperror.NewBadRequestError("Invalid entry kind")
	}
	if !input.MetalType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid metal type")
	}

	karigar, err := s.GetKarigar(ctx, input.KarigarID)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	entry := &entity.KarigarEntry{
		ShopID:      shopID,
		KarigarID:   karigar.ID,
		Kind:        input.Kind,
		Date:        date,
		MetalType:   input.MetalType,
		GrossWeight: input.GrossWeight,
		Wastage:     input.Wastage,
		FineWeight:  input.FineWeight,
		Narration:   input.Narration,
	}

	if err := s.karigarRepo.AddEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes a karigar entry
func (s *KarigarService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	entry, err := s.karigarRepo.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperror.NewNotFoundError("Karigar entry")
	}
	return s.karigarRepo.DeleteEntry(ctx, id)
}

// KarigarBalance is the fine weight outstanding with a karigar per metal.
type KarigarBalance struct {
	GoldFineWeight   float64 `json:"gold_fine_weight"`
	SilverFineWeight float64 `json:"silver_fine_weight"`
}

// KarigarAccount is a karigar's entry history with the outstanding balance.
type KarigarAccount struct {
	Karigar *entity.Karigar       `json:"karigar"`
	Entries []entity.KarigarEntry `json:"entries"`
	Balance KarigarBalance        `json:"balance"`
}

// GetAccount returns a karigar's entries and outstanding balance. Issues add
// to the outstanding fine weight, receives subtract.
func (s *KarigarService) GetAccount(ctx context.Context, id uuid.UUID) (*KarigarAccount, error) {
	karigar, err := s.GetKarigar(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.karigarRepo.ListEntries(ctx, karigar.ID)
	if err != nil {
		return nil, err
	}

	var balance KarigarBalance
	for _, entry := range entries {
		delta := entry.FineWeight
		if entry.Kind == enum.KarigarReceive {
			delta = -delta
		}
		if entry.MetalType == enum.MetalSilver {
			balance.SilverFineWeight += delta
		} else {
			balance.GoldFineWeight += delta
		}
	}

	return &KarigarAccount{
		Karigar: karigar,
		Entries: entries,
		Balance: balance,
	}, nil
}
