package export

import (
	"bytes"
	"strings"

	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// BuildPDF renders the statement's running-balance rows as a printable PDF.
// The closing-balance footer repeats the last row's running totals, which
// BuildStatement guarantees equal the fold's final state.
func BuildPDF(st *ledgerbook.Statement, shop *entity.Shop) ([]byte, error) {
	if len(st.Rows) == 0 {
		return nil, ErrNothingToExport
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, shop.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Ledger Statement - "+st.Ledger.Name, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Period: "+formatPeriod(st.From, st.To), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	headers := []string{"Date", "Type", "Bill No", "Particulars", "Pcs", "Gross", "Gold Fine", "Silver Fine", "Melting %", "Rate", "Amount", "Received", "Running Balance"}
	widths := []float64{20, 18, 20, 48, 10, 18, 20, 20, 18, 18, 22, 22, 50}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range st.Rows {
		cells := []string{
			row.Date.Format(csvDateLayout),
			row.Kind.String(),
			row.BillNo,
			truncate(row.Particulars, 34),
			itoa(row.Pieces),
			weight(row.GrossWeight),
			weight(row.GoldFine),
			weight(row.SilverFine),
			money(row.Wastage),
			money(row.Rate),
			money(row.Amount),
			money(row.CashReceived),
			runningLabel(row.RunCash, row.RunGold, row.RunSilver),
		}
		for i, cell := range cells {
			align := "R"
			if i <= 3 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 6,
		"Closing Balance: "+runningLabel(st.ClosingCash, st.ClosingGold, st.ClosingSilver),
		"", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// runningLabel combines the three running balances into one compact cell,
// skipping zero components. All-zero balances still print as "Rs 0.00".
func runningLabel(cash, gold, silver decimal.Decimal) string {
	parts := make([]string, 0, 3)
	if !cash.IsZero() {
		parts = append(parts, "Rs "+money(cash))
	}
	if !gold.IsZero() {
		parts = append(parts, "Au "+weight(gold))
	}
	if !silver.IsZero() {
		parts = append(parts, "Ag "+weight(silver))
	}
	if len(parts) == 0 {
		return "Rs 0.00"
	}
	return strings.Join(parts, " | ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
