package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/repository"
	infraRepo "github.com/jewelsoft/saraf-api/internal/infrastructure/repository"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook/export"
	"github.com/jewelsoft/saraf-api/pkg/apperror"
)

// StatementService renders and shares ledger statements
type StatementService struct {
	ledgerRepo repository.LedgerRepository
	shopRepo   repository.ShopRepository
	reconciler *Reconciler
}

// NewStatementService creates a new statement service
func NewStatementService(
	ledgerRepo repository.LedgerRepository,
	shopRepo repository.ShopRepository,
	reconciler *Reconciler,
) *StatementService {
	return &StatementService{
		ledgerRepo: ledgerRepo,
		shopRepo:   shopRepo,
		reconciler: reconciler,
	}
}

// ExportFile is a rendered statement ready to send to the client.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

func (s *StatementService) load(ctx context.Context, ledgerID uuid.UUID, from, to time.Time) (*ledgerbook.Statement, *entity.Shop, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, nil, apperror.NewBadRequestError("Shop context required")
	}

	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, nil, err
	}
	if shop == nil {
		return nil, nil, apperror.NewNotFoundError("Shop")
	}

	ledger, err := s.ledgerRepo.GetByID(ctx, ledgerID)
	if err != nil {
		return nil, nil, err
	}
	if ledger == nil {
		return nil, nil, apperror.NewNotFoundError("Ledger")
	}

	st, err := s.reconciler.Statement(ctx, ledger, from, to)
	if err != nil {
		return nil, nil, err
	}
	return st, shop, nil
}

// ExportCSV renders the ledger's statement as a CSV file.
func (s *StatementService) ExportCSV(ctx context.Context, ledgerID uuid.UUID, from, to time.Time) (*ExportFile, error) {
	st, shop, err := s.load(ctx, ledgerID, from, to)
	if err != nil {
		return nil, err
	}

	data, err := export.BuildCSV(st, shop)
	if errors.Is(err, export.ErrNothingToExport) {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Name:        exportName(st.Ledger.Name, "csv"),
		ContentType: "text/csv",
		Data:        data,
	}, nil
}

// ExportPDF renders the ledger's statement as a PDF file.
func (s *StatementService) ExportPDF(ctx context.Context, ledgerID uuid.UUID, from, to time.Time) (*ExportFile, error) {
	st, shop, err := s.load(ctx, ledgerID, from, to)
	if err != nil {
		return nil, err
	}

	data, err := export.BuildPDF(st, shop)
	if errors.Is(err, export.ErrNothingToExport) {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Name:        exportName(st.Ledger.Name, "pdf"),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// ShareLink builds a WhatsApp deep link carrying the ledger's balance
// summary, addressed to the ledger's phone when one is on file.
func (s *StatementService) ShareLink(ctx context.Context, ledgerID uuid.UUID) (string, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return "", apperror.NewBadRequestError("Shop context required")
	}

	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return "", err
	}
	if shop == nil {
		return "", apperror.NewNotFoundError("Shop")
	}

	ledger, err := s.ledgerRepo.GetByID(ctx, ledgerID)
	if err != nil {
		return "", err
	}
	if ledger == nil {
		return "", apperror.NewNotFoundError("Ledger")
	}

	phone := ""
	if ledger.Phone != nil {
		phone = *ledger.Phone
	}
	countryCode := shop.Settings.WhatsAppCountryCode
	if countryCode == "" {
		countryCode = "91"
	}

	text := export.ShareSummary(shop.Name, ledgerbook.BalanceOf(ledger))
	return export.WhatsAppLink(countryCode, phone, text), nil
}

func exportName(ledgerName, ext string) string {
	return fmt.Sprintf("statement-%s-%s.%s", ledgerName, time.Now().Format("2006-01-02"), ext)
}
