package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/repository"
	infraRepo "github.com/jewelsoft/saraf-api/internal/infrastructure/repository"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
	"github.com/jewelsoft/saraf-api/pkg/apperror"
	"github.com/jewelsoft/saraf-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	voucherRepo repository.VoucherRepository
	ledgerRepo  repository.LedgerRepository
	shopRepo    repository.ShopRepository
	printerType string
	charWidth   int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	voucherRepo repository.VoucherRepository,
	ledgerRepo repository.LedgerRepository,
	shopRepo repository.ShopRepository,
	printerType string,
	charWidth int,
) *PrinterService {
	if charWidth <= 0 {
		charWidth = 32 // 58mm paper
	}
	return &PrinterService{
		printer:     p,
		voucherRepo: voucherRepo,
		ledgerRepo:  ledgerRepo,
		shopRepo:    shopRepo,
		printerType: printerType,
		charWidth:   charWidth,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			ShopName: "PRINTER TEST",
			Address:  "Test Address",
			Phone:    "+91 00000 00000",
		},
		BillNo: "TEST-0001",
		Date:   "Test Date",
		Items: []entity.ReceiptItem{
			{Name: "Test Ring", Pieces: 1, GrossWeight: 5.500, FineWeight: 5.060, Amount: 100.00},
			{Name: "Test Chain", Pieces: 2, GrossWeight: 12.000, FineWeight: 11.040, Amount: 200.00},
		},
		Total: 300.00,
	}

	data := s.formatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintVoucherReceipt fetches a voucher (with items) and prints its receipt.
func (s *PrinterService) PrintVoucherReceipt(ctx context.Context, voucherID uuid.UUID) (*entity.Receipt, error) {
	voucher, err := s.voucherRepo.GetByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Voucher")
	}

	ledger, err := s.ledgerRepo.GetByID(ctx, voucher.LedgerID)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, apperror.NewNotFoundError("Ledger")
	}

	receipt := &entity.Receipt{
		BillNo:      voucher.BillNo,
		Date:        voucher.Date.Format("02/01/2006 15:04"),
		Customer:    ledger.Name,
		PaymentType: string(voucher.PaymentType),
		StoneAmount: voucher.StoneAmount,
		FineAmount:  voucher.FineAmount,
		CashPaid:    voucher.CashReceived,
	}

	if shopID, ok := infraRepo.GetShopID(ctx); ok {
		if shop, err := s.shopRepo.GetByID(ctx, shopID); err == nil && shop != nil {
			receipt.Header.ShopName = shop.Name
			if shop.Address != nil {
				receipt.Header.Address = *shop.Address
			}
			if shop.Phone != nil {
				receipt.Header.Phone = *shop.Phone
			}
			if shop.GSTIN != nil {
				receipt.Header.GSTIN = *shop.GSTIN
			}
		}
	}

	totals := ledgerbook.TotalsOf(voucher)
	receipt.Total = totals.VoucherTotal.InexactFloat64()

	for _, it := range voucher.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:        it.ItemName,
			Pieces:      it.Pieces,
			GrossWeight: it.GrossWeight,
			FineWeight:  it.FineWeight,
			Amount:      it.Amount,
		})
	}

	// Balance line shows what the customer owes after this voucher.
	balance := ledgerbook.BalanceOf(ledger).As(ledgerbook.CustomerLiability)
	receipt.BalanceCash = balance.Cash.InexactFloat64()
	receipt.BalanceGoldFine = balance.Gold.InexactFloat64()
	receipt.BalanceSilverFine = balance.Silver.InexactFloat64()

	data := s.formatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (voucher %s): %v", voucherID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// formatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) formatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.charWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.ShopName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Bill No:", r.BillNo).
		KeyValue("Date:", r.Date)

	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.PaymentType != "" {
		doc.KeyValue("Payment:", r.PaymentType)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Pieces, item.Name, fmt.Sprintf("%.2f", item.Amount))
		if item.GrossWeight > 0 {
			doc.TextF("  gr %.3f / fine %.3f", item.GrossWeight, item.FineWeight)
		}
	}

	doc.Separator('-')

	if r.StoneAmount > 0 {
		doc.KeyValue("Stone:", fmt.Sprintf("%.2f", r.StoneAmount))
	}
	if r.FineAmount > 0 {
		doc.KeyValue("Fine Amt:", fmt.Sprintf("%.2f", r.FineAmount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	if r.CashPaid > 0 {
		doc.KeyValue("Paid:", fmt.Sprintf("%.2f", r.CashPaid))
	}

	doc.Separator('-')

	// Outstanding balance, customer side
	doc.KeyValue("Balance:", fmt.Sprintf("%.2f", r.BalanceCash))
	if r.BalanceGoldFine != 0 {
		doc.KeyValue("Gold Fine:", fmt.Sprintf("%.3f g", r.BalanceGoldFine))
	}
	if r.BalanceSilverFine != 0 {
		doc.KeyValue("Silver Fine:", fmt.Sprintf("%.3f g", r.BalanceSilverFine))
	}

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, visit again!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
