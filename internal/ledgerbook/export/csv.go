// Package export renders a derived ledger statement as CSV and PDF without
// divergent logic: both builders consume the same ledgerbook.Statement.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
	"github.com/shopspring/decimal"
)

// ErrNothingToExport is returned when the date window matches no
// transactions. Callers surface it as a recoverable notification; no file is
// produced.
var ErrNothingToExport = errors.New("no transactions in the selected period")

// utf8BOM keeps spreadsheet applications from misreading the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const csvDateLayout = "02/01/2006"

// BuildCSV renders the statement as a spreadsheet-friendly CSV payload: a
// metadata header block, one row per line item with voucher-level fields
// only on the first row of each group, and a summary block of counts per
// transaction kind.
func BuildCSV(st *ledgerbook.Statement, shop *entity.Shop) ([]byte, error) {
	if len(st.Transactions) == 0 {
		return nil, ErrNothingToExport
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	writeMetadata(w, st, shop)

	w.Write([]string{
		"Date", "Type", "Bill No", "Payment", "Item", "Metal", "Pieces",
		"Gross Wt", "Less Wt", "Net Wt", "Wastage %", "Fine Wt", "Labour Rate", "Amount",
	})

	counts := map[ledgerbook.Kind]int{}
	for _, t := range st.Transactions {
		kind := ledgerbook.Classify(t)
		counts[kind]++
		writeTransaction(w, t, kind)
	}

	w.Write(nil)
	w.Write([]string{"Summary"})
	w.Write([]string{"Total Transactions", itoa(len(st.Transactions))})
	w.Write([]string{"Sales", itoa(counts[ledgerbook.KindSale])})
	w.Write([]string{"Purchases", itoa(counts[ledgerbook.KindPurchase])})
	w.Write([]string{"Settlements", itoa(counts[ledgerbook.KindSettlement] + counts[ledgerbook.KindLegacySettlement])})

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeMetadata(w *csv.Writer, st *ledgerbook.Statement, shop *entity.Shop) {
	w.Write([]string{"Shop", shop.Name})
	if shop.Phone != nil {
		w.Write([]string{"Shop Phone", *shop.Phone})
	}
	w.Write([]string{"Customer", st.Ledger.Name})
	if st.Ledger.Phone != nil {
		w.Write([]string{"Customer Phone", *st.Ledger.Phone})
	}
	w.Write([]string{"Period", formatPeriod(st.From, st.To)})

	balance := ledgerbook.BalanceOf(st.Ledger)
	w.Write([]string{"Current Cash Balance", money(balance.Cash)})
	w.Write([]string{"Current Gold Fine", weight(balance.Gold)})
	w.Write([]string{"Current Silver Fine", weight(balance.Silver)})
	w.Write(nil)
}

// writeTransaction emits the item rows of one transaction. The shared
// voucher-level columns appear on the group's first row only, the common
// accountant-export convention.
func writeTransaction(w *csv.Writer, t ledgerbook.Transaction, kind ledgerbook.Kind) {
	if kind == ledgerbook.KindSettlement || kind == ledgerbook.KindLegacySettlement {
		view := ledgerbook.SettlementViewOf(t)
		payment := ""
		if t.Voucher != nil {
			payment = string(t.Voucher.PaymentType)
		}
		w.Write([]string{
			t.Date().Format(csvDateLayout), kind.String(), t.BillNo(), payment,
			"Settlement (" + view.MetalLabel + ")", view.MetalLabel, "",
			"", "", "", "", weight(view.FineGiven), money(view.MetalRate), money(view.Amount),
		})
		return
	}

	v := t.Voucher
	if len(v.Items) == 0 {
		totals := ledgerbook.TotalsOf(v)
		w.Write([]string{
			t.Date().Format(csvDateLayout), kind.String(), v.BillNo, string(v.PaymentType),
			"", "", "", "", "", "", "", "", "", money(totals.VoucherTotal),
		})
		return
	}

	for i := range v.Items {
		it := &v.Items[i]
		date, typ, bill, payment := "", "", "", ""
		if i == 0 {
			date = t.Date().Format(csvDateLayout)
			typ = kind.String()
			bill = v.BillNo
			payment = string(v.PaymentType)
		}
		w.Write([]string{
			date, typ, bill, payment,
			it.ItemName, string(it.MetalType), itoa(it.Pieces),
			weight(ledgerbook.Num(it.GrossWeight, 0)),
			weight(ledgerbook.Num(it.LessWeight, 0)),
			weight(ledgerbook.Num(it.NetWeight, 0)),
			money(ledgerbook.Num(it.Wastage, 0)),
			weight(ledgerbook.Num(it.FineWeight, 0)),
			money(ledgerbook.Num(it.LabourRate, 0)),
			money(ledgerbook.Num(it.Amount, 0)),
		})
	}
}

// money formats currency cells with two decimal places.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// weight formats weight cells with three decimal places.
func weight(d decimal.Decimal) string {
	return d.StringFixed(3)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func formatPeriod(from, to time.Time) string {
	f, t := "start", "today"
	if !from.IsZero() {
		f = from.Format(csvDateLayout)
	}
	if !to.IsZero() {
		t = to.Format(csvDateLayout)
	}
	return f + " - " + t
}
