package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook/export"
)

func f(v float64) *float64 { return &v }

func fixtureStatement() *ledgerbook.Statement {
	ledger := &entity.Ledger{Name: "Asha", Amount: 1500, GoldFineWeight: 2}
	sale := ledgerbook.VoucherTxn(&entity.Voucher{
		Date:        time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		BillNo:      "S-101",
		VoucherType: enum.VoucherSale,
		Total:       f(500),
		Items: []entity.VoucherItem{
			{ItemName: "Ring", MetalType: enum.MetalGold, Pieces: 1, GrossWeight: 5.5, FineWeight: 2, Amount: 500},
			{ItemName: "Stud", MetalType: enum.MetalGold, Pieces: 2, GrossWeight: 1.2, FineWeight: 0.5, Amount: 120},
		},
	})
	settlement := ledgerbook.SettlementTxn(&entity.Settlement{
		Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), MetalType: enum.MetalGold, MetalRate: 5000, FineGiven: 1, Amount: 5000,
	})
	return ledgerbook.BuildStatement(ledger, []ledgerbook.Transaction{sale, settlement}, time.Time{}, time.Time{})
}

func TestBuildCSV_EmptyStatement(t *testing.T) {
	st := ledgerbook.BuildStatement(&entity.Ledger{Name: "Asha"}, nil, time.Time{}, time.Time{})

	_, err := export.BuildCSV(st, &entity.Shop{Name: "Saraf & Sons"})

	assert.ErrorIs(t, err, export.ErrNothingToExport)
}

func TestBuildCSV_Content(t *testing.T) {
	out, err := export.BuildCSV(fixtureStatement(), &entity.Shop{Name: "Saraf & Sons"})
	require.NoError(t, err)

	body := string(out)
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"), "payload starts with a UTF-8 BOM")
	assert.Contains(t, body, "Saraf & Sons")
	assert.Contains(t, body, "Asha")
	assert.Contains(t, body, "02/03/2025")
	assert.Contains(t, body, "Ring")
	assert.Contains(t, body, "Stud")
	assert.Contains(t, body, "Settlement (Gold)")
	assert.Contains(t, body, "Total Transactions,2")
	assert.Contains(t, body, "Sales,1")
	assert.Contains(t, body, "Settlements,1")
}

func TestBuildCSV_VoucherFieldsOnFirstItemRowOnly(t *testing.T) {
	out, err := export.BuildCSV(fixtureStatement(), &entity.Shop{Name: "Saraf & Sons"})
	require.NoError(t, err)

	var billRows int
	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, "S-101") {
			billRows++
		}
	}
	assert.Equal(t, 1, billRows, "bill number appears once per voucher group")
}

func TestBuildPDF_EmptyStatement(t *testing.T) {
	st := ledgerbook.BuildStatement(&entity.Ledger{Name: "Asha"}, nil, time.Time{}, time.Time{})

	_, err := export.BuildPDF(st, &entity.Shop{Name: "Saraf & Sons"})

	assert.ErrorIs(t, err, export.ErrNothingToExport)
}

func TestBuildPDF_ProducesDocument(t *testing.T) {
	out, err := export.BuildPDF(fixtureStatement(), &entity.Shop{Name: "Saraf & Sons"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "output is a PDF document")
	assert.Greater(t, len(out), 1000)
}

func TestWhatsAppLink(t *testing.T) {
	link := export.WhatsAppLink("91", "98765-43210", "Balance: Rs 100")

	assert.Equal(t, "https://wa.me/919876543210?text=Balance%3A+Rs+100", link)
}

func TestWhatsAppLink_CountryCodeAlreadyPresent(t *testing.T) {
	link := export.WhatsAppLink("91", "+91 98765 43210", "hi")

	assert.Equal(t, "https://wa.me/919876543210?text=hi", link)
}

func TestWhatsAppLink_NoPhone(t *testing.T) {
	link := export.WhatsAppLink("91", "", "hi")

	assert.Equal(t, "https://wa.me/?text=hi", link)
}

func TestShareSummary_CustomerPerspective(t *testing.T) {
	// Shop liability 500 reads as the shop owing; the shared text flips the
	// sign so a positive number means the customer owes.
	ledger := &entity.Ledger{Amount: -500, GoldFineWeight: -1}
	text := export.ShareSummary("Saraf & Sons", ledgerbook.BalanceOf(ledger))

	assert.Contains(t, text, "Saraf & Sons")
	assert.Contains(t, text, "Cash: Rs 500.00")
	assert.Contains(t, text, "Gold fine: 1.000 g")
}
